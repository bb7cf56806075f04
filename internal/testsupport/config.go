package testsupport

import (
	"path/filepath"
	"testing"

	"stampvoice/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with stub credentials and a unique temp
// output directory per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.OpenAI.APIKey = "test-key"
	cfg.OpenAI.Model = "test-model"
	cfg.Output.Dir = filepath.Join(t.TempDir(), "output")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithBaseURL points the OpenAI client at a stub server.
func WithBaseURL(url string) ConfigOption {
	return func(c *config.Config) {
		c.OpenAI.BaseURL = url
	}
}

// WithTTSFormat overrides the audio format on the test config.
func WithTTSFormat(format string) ConfigOption {
	return func(c *config.Config) {
		c.TTS.Format = format
	}
}
