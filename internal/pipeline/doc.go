// Package pipeline composes the stamp analysis stages end to end:
// encode → analyze → persist JSON → (optional) narrate → synthesize →
// persist audio.
//
// The narration branch is best-effort: once result.json has been persisted
// the run is a success, and a narration or synthesis failure is reported as
// a warning without changing the outcome. Every earlier stage failure is
// fatal. This asymmetry is deliberate; do not generalize it.
package pipeline
