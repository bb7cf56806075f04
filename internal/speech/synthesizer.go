package speech

import (
	"context"
	"log/slog"

	"stampvoice/internal/config"
	"stampvoice/internal/services"
	"stampvoice/internal/services/openai"
)

// SupportedFormats lists the audio container formats the synthesis endpoint
// accepts.
var SupportedFormats = map[string]bool{
	"mp3":  true,
	"opus": true,
	"aac":  true,
	"flac": true,
}

// SpeechClient is the narrow seam the synthesizer needs from the OpenAI
// client.
type SpeechClient interface {
	Speech(ctx context.Context, request openai.SpeechRequest) ([]byte, error)
}

// Synthesizer runs the speech-synthesis stage.
type Synthesizer struct {
	cfg    *config.Config
	client SpeechClient
	logger *slog.Logger
}

// New constructs the synthesis stage.
func New(cfg *config.Config, client SpeechClient, logger *slog.Logger) *Synthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{cfg: cfg, client: client, logger: logger.With("component", "speech")}
}

// Synthesize renders the script as audio in the configured format.
func (s *Synthesizer) Synthesize(ctx context.Context, script string) ([]byte, error) {
	if s.cfg.OpenAI.APIKey == "" {
		return nil, services.Wrap(services.ErrConfiguration, "speech", "check credentials", "API_KEY is not set", nil)
	}
	if s.cfg.TTS.Model == "" {
		return nil, services.Wrap(services.ErrConfiguration, "speech", "check settings", "TTS_MODEL is not set", nil)
	}
	if s.cfg.TTS.Voice == "" {
		return nil, services.Wrap(services.ErrConfiguration, "speech", "check settings", "TTS_VOICE is not set", nil)
	}
	if !SupportedFormats[s.cfg.TTS.Format] {
		return nil, services.Wrap(services.ErrConfiguration, "speech", "check settings", "unsupported audio format "+s.cfg.TTS.Format, nil)
	}

	audio, err := s.client.Speech(ctx, openai.SpeechRequest{
		Model:  s.cfg.TTS.Model,
		Voice:  s.cfg.TTS.Voice,
		Input:  script,
		Format: s.cfg.TTS.Format,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("audio synthesized", "bytes", len(audio), "format", s.cfg.TTS.Format)
	return audio, nil
}
