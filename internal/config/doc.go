// Package config loads and normalizes stampvoice configuration data.
//
// It supplies repository defaults, reads an optional TOML file, and applies
// environment overrides (API_KEY, MODEL, TTS_MODEL, TTS_VOICE, TTS_FORMAT).
// Presence of credentials is intentionally not validated here: each pipeline
// stage checks the values it needs at the point of use so that, for example,
// a missing TTS voice never blocks a plain analysis run.
package config
