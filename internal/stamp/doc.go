// Package stamp defines the structured record extracted from a stamp image
// and the JSON formatting rules shared by the persister and narration stages.
//
// The schema is advisory: it mirrors what the analysis prompt asks the model
// to produce, but the only structural requirement this system enforces is
// that the response parses as JSON. FormatJSON therefore round-trips
// arbitrary JSON rather than forcing it through the Record type.
package stamp
