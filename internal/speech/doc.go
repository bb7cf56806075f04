// Package speech converts a narration script into audio via the
// speech-synthesis endpoint.
package speech
