package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stampvoice/internal/services"
	"stampvoice/internal/stamp"
)

func TestShowCommandRendersRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	body := `{
  "country": "france",
  "denomination": "0.50 franc",
  "colors": ["blue", "carmine"],
  "uncertainties": ["year uncertain"],
  "confidence": 0.87,
  "reference_info": {
    "description": "Commemorative airmail issue",
    "info_source": "open sources",
    "verification_note": "Requires catalog verification"
  }
}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write result: %v", err)
	}

	stdout, _, err := runCommand(t, "show", path)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(stdout, "France") {
		t.Fatalf("country not title-cased:\n%s", stdout)
	}
	if !strings.Contains(stdout, "blue, carmine") {
		t.Fatalf("colors not joined:\n%s", stdout)
	}
	if !strings.Contains(stdout, "0.87") {
		t.Fatalf("confidence missing:\n%s", stdout)
	}
	if !strings.Contains(stdout, "open sources") {
		t.Fatalf("reference info missing:\n%s", stdout)
	}
	if strings.Contains(stdout, "Postal type") {
		t.Fatalf("empty fields should be omitted:\n%s", stdout)
	}
}

func TestShowCommandMissingFile(t *testing.T) {
	_, _, err := runCommand(t, "show", filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestShowCommandMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, _, err := runCommand(t, "show", path)
	if !errors.Is(err, services.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestRenderRecordSkipsEmptyReference(t *testing.T) {
	out := renderRecord(stamp.Record{Country: "Japan", Confidence: 0.5})
	if strings.Contains(out, "Reference") {
		t.Fatalf("empty reference rendered:\n%s", out)
	}
	if !strings.Contains(out, "Japan") {
		t.Fatalf("country missing:\n%s", out)
	}
}
