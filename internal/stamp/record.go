package stamp

import (
	"bytes"
	"encoding/json"

	"stampvoice/internal/services"
)

// ReferenceInfo is the open-sources background block attached to a record.
type ReferenceInfo struct {
	Description       string `json:"description"`
	HistoricalContext string `json:"historical_context"`
	Purpose           string `json:"purpose"`
	InfoSource        string `json:"info_source"`
	VerificationNote  string `json:"verification_note"`
}

// Record is the structured description of a postal stamp. Any string field
// may be empty when the model could not determine it from the image.
type Record struct {
	Country        string        `json:"country"`
	PostalType     string        `json:"postal_type"`
	Denomination   string        `json:"denomination"`
	YearOrPeriod   string        `json:"year_or_period"`
	Subject        string        `json:"subject"`
	VisibleText    string        `json:"visible_text"`
	Colors         []string      `json:"colors"`
	ConditionNotes string        `json:"condition_notes"`
	Uncertainties  []string      `json:"uncertainties"`
	Confidence     float64       `json:"confidence"`
	ReferenceInfo  ReferenceInfo `json:"reference_info"`
}

// Decode parses formatted record JSON into a Record.
func Decode(data []byte) (Record, error) {
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return Record{}, services.WithPayload(
			services.Wrap(services.ErrMalformedResponse, "stamp", "decode record", "", err),
			string(data))
	}
	return record, nil
}

// FormatJSON validates raw analysis output and re-serializes it with stable
// two-space indentation, leaving non-ASCII text unescaped. A parse failure is
// tagged with services.ErrMalformedResponse and carries the raw text.
func FormatJSON(raw string) ([]byte, error) {
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, services.WithPayload(
			services.Wrap(services.ErrMalformedResponse, "stamp", "parse analysis payload", "", err),
			raw)
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return nil, services.Wrap(services.ErrUnexpected, "stamp", "format payload", "", err)
	}
	return buf.Bytes(), nil
}
