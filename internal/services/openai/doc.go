// Package openai wraps the OpenAI-compatible chat-completions and speech
// endpoints used by the analysis, narration, and synthesis stages.
//
// The client issues exactly one request per call: no retries, no backoff.
// Empty results are tagged with services.ErrEmptyResponse or
// services.ErrEmptyAudio so stages can classify them without parsing
// message text. The base URL is configurable, which is also the seam the
// tests use to point the client at an httptest stub.
package openai
