// Package services defines the shared error taxonomy consumed by the
// pipeline stages and the OpenAI client.
//
// Stage failures are tagged with one of the exported sentinel markers via
// Wrap so callers can classify them with errors.Is without inspecting
// message text. Errors that stem from a service payload (for example a
// non-JSON analysis response) additionally carry the offending raw text,
// recoverable through Payload for diagnostics.
package services
