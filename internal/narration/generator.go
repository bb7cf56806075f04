package narration

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"stampvoice/internal/config"
	"stampvoice/internal/services"
	"stampvoice/internal/services/openai"
	"stampvoice/internal/stamp"
)

// ChatClient is the narrow seam the generator needs from the OpenAI client.
type ChatClient interface {
	ChatCompletion(ctx context.Context, request openai.ChatRequest) (string, error)
}

// Generator runs the narration stage.
type Generator struct {
	cfg    *config.Config
	client ChatClient
	logger *slog.Logger
}

// New constructs the narration stage.
func New(cfg *config.Config, client ChatClient, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{cfg: cfg, client: client, logger: logger.With("component", "narration")}
}

// LoadResult reads a persisted analysis result and returns it pretty-printed
// for prompt embedding. A missing file is tagged with services.ErrNotFound,
// unparsable content with services.ErrMalformedResponse.
func LoadResult(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrNotFound, "narration", "read result", path, err)
		}
		return nil, services.Wrap(services.ErrUnexpected, "narration", "read result", path, err)
	}
	return stamp.FormatJSON(string(data))
}

// Generate produces the narration script for the given formatted record JSON.
func (g *Generator) Generate(ctx context.Context, record []byte) (string, error) {
	if g.cfg.OpenAI.APIKey == "" {
		return "", services.Wrap(services.ErrConfiguration, "narration", "check credentials", "API_KEY is not set", nil)
	}
	if g.cfg.OpenAI.Model == "" {
		return "", services.Wrap(services.ErrConfiguration, "narration", "check credentials", "MODEL is not set", nil)
	}

	content, err := g.client.ChatCompletion(ctx, openai.ChatRequest{
		Model: g.cfg.OpenAI.Model,
		Messages: []openai.Message{
			{Role: "system", Content: VoiceScriptSystemPrompt},
			{Role: "user", Content: "Stamp data:\n" + string(record)},
		},
		Temperature: voiceScriptTemperature,
	})
	if err != nil {
		return "", err
	}
	script := strings.TrimSpace(content)
	g.logger.Info("narration script generated", "chars", len(script))
	return script, nil
}
