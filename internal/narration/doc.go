// Package narration turns a persisted stamp analysis record into a short
// spoken-word script via a text-only chat completion.
package narration
