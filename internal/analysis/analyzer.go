package analysis

import (
	"context"
	"log/slog"

	"stampvoice/internal/config"
	"stampvoice/internal/imageenc"
	"stampvoice/internal/services"
	"stampvoice/internal/services/openai"
)

// analysisTemperature keeps extraction near-deterministic.
const analysisTemperature = 0.1

// ChatClient is the narrow seam the analyzer needs from the OpenAI client.
type ChatClient interface {
	ChatCompletion(ctx context.Context, request openai.ChatRequest) (string, error)
}

// Analyzer runs the image analysis stage.
type Analyzer struct {
	cfg    *config.Config
	client ChatClient
	logger *slog.Logger
}

// New constructs the analyzer stage.
func New(cfg *config.Config, client ChatClient, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{cfg: cfg, client: client, logger: logger.With("component", "analysis")}
}

// Analyze encodes the image at imagePath and requests a structured JSON
// description from the model. Configuration is checked before the file is
// touched, and both are checked before any request is sent.
func (a *Analyzer) Analyze(ctx context.Context, imagePath string) (string, error) {
	if a.cfg.OpenAI.APIKey == "" {
		return "", services.Wrap(services.ErrConfiguration, "analysis", "check credentials", "API_KEY is not set", nil)
	}
	if a.cfg.OpenAI.Model == "" {
		return "", services.Wrap(services.ErrConfiguration, "analysis", "check credentials", "MODEL is not set", nil)
	}

	inline, err := imageenc.EncodeFile(imagePath)
	if err != nil {
		return "", err
	}
	a.logger.Debug("image encoded", "path", imagePath, "mime", inline.MIME)

	content, err := a.client.ChatCompletion(ctx, openai.ChatRequest{
		Model: a.cfg.OpenAI.Model,
		Messages: []openai.Message{
			{Role: "system", Content: AnalysisSystemPrompt},
			{Role: "user", Content: []openai.ContentPart{
				openai.TextPart(analysisUserInstruction),
				openai.ImagePart(inline.DataURL()),
			}},
		},
		Temperature: analysisTemperature,
		JSONOnly:    true,
	})
	if err != nil {
		return "", err
	}
	a.logger.Info("analysis response received", "bytes", len(content))
	return content, nil
}
