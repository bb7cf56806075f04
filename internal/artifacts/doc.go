// Package artifacts persists pipeline outputs under the configured output
// directory: result.json, voice_script.txt, and result.<format>.
//
// Writes go through a temp file plus rename in the same directory, so a
// crash mid-write never leaves a previously valid artifact corrupted.
// Reruns overwrite; there is no versioning.
package artifacts
