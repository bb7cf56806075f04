package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"stampvoice/internal/analysis"
	"stampvoice/internal/artifacts"
	"stampvoice/internal/config"
	"stampvoice/internal/narration"
	"stampvoice/internal/services/openai"
	"stampvoice/internal/speech"
)

// Runner drives the analysis pipeline for a single invocation.
type Runner struct {
	cfg      *config.Config
	store    *artifacts.Store
	analyzer *analysis.Analyzer
	narrator *narration.Generator
	synth    *speech.Synthesizer
	logger   *slog.Logger
}

// NewRunner wires the stages against a single OpenAI client built from cfg.
func NewRunner(cfg *config.Config, store *artifacts.Store, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	client := openai.NewClient(openai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Timeout: time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second,
	})
	return &Runner{
		cfg:      cfg,
		store:    store,
		analyzer: analysis.New(cfg, client, logger),
		narrator: narration.New(cfg, client, logger),
		synth:    speech.New(cfg, client, logger),
		logger:   logger,
	}
}

// Outcome reports what a run produced. NarrationErr is set when the optional
// narration branch failed after the primary artifact was already persisted.
type Outcome struct {
	RunID        string
	ResultJSON   []byte
	ResultPath   string
	ScriptPath   string
	AudioPath    string
	NarrationErr error
}

// Run executes the pipeline for imagePath. When tts is true the narration
// branch runs after the structured result has been persisted; its failure is
// recorded in the outcome but does not fail the run.
func (r *Runner) Run(ctx context.Context, imagePath string, tts bool) (Outcome, error) {
	outcome := Outcome{RunID: uuid.NewString()}
	log := r.logger.With("component", "pipeline", "run_id", outcome.RunID)
	log.Info("analyzing image", "path", imagePath)

	raw, err := r.analyzer.Analyze(ctx, imagePath)
	if err != nil {
		return outcome, err
	}

	resultPath, err := r.store.SaveResult(raw)
	if err != nil {
		return outcome, err
	}
	outcome.ResultPath = resultPath
	log.Info("analysis result saved", "path", resultPath)

	formatted, err := narration.LoadResult(resultPath)
	if err != nil {
		return outcome, err
	}
	outcome.ResultJSON = formatted

	if tts {
		scriptPath, audioPath, err := r.narrate(ctx, formatted)
		if err != nil {
			log.Warn("voice narration failed", "error", err)
			outcome.NarrationErr = err
			return outcome, nil
		}
		outcome.ScriptPath = scriptPath
		outcome.AudioPath = audioPath
		log.Info("narration saved", "script", scriptPath, "audio", audioPath)
	}
	return outcome, nil
}

// Narrate runs the standalone narration entry point against a persisted
// result file. Unlike the branch inside Run, failures here are fatal.
func (r *Runner) Narrate(ctx context.Context, jsonPath string) (string, string, error) {
	record, err := narration.LoadResult(jsonPath)
	if err != nil {
		return "", "", err
	}
	return r.narrate(ctx, record)
}

func (r *Runner) narrate(ctx context.Context, record []byte) (string, string, error) {
	script, err := r.narrator.Generate(ctx, record)
	if err != nil {
		return "", "", err
	}
	audio, err := r.synth.Synthesize(ctx, script)
	if err != nil {
		return "", "", err
	}
	// Nothing lands on disk until synthesis has succeeded.
	scriptPath, err := r.store.SaveVoiceScript(script)
	if err != nil {
		return "", "", err
	}
	audioPath, err := r.store.SaveAudio(audio, r.cfg.TTS.Format)
	if err != nil {
		return "", "", err
	}
	return scriptPath, audioPath, nil
}
