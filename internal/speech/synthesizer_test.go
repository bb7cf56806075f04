package speech

import (
	"context"
	"errors"
	"testing"

	"stampvoice/internal/config"
	"stampvoice/internal/services"
	"stampvoice/internal/services/openai"
)

type fakeSpeechClient struct {
	calls   int
	request openai.SpeechRequest
	audio   []byte
	err     error
}

func (f *fakeSpeechClient) Speech(_ context.Context, request openai.SpeechRequest) ([]byte, error) {
	f.calls++
	f.request = request
	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.OpenAI.APIKey = "test-key"
	cfg.OpenAI.Model = "gpt-4.1"
	return &cfg
}

func TestSynthesizeConfigurationErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"missing api key", func(c *config.Config) { c.OpenAI.APIKey = "" }},
		{"missing tts model", func(c *config.Config) { c.TTS.Model = "" }},
		{"missing voice", func(c *config.Config) { c.TTS.Voice = "" }},
		{"unsupported format", func(c *config.Config) { c.TTS.Format = "wav" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(cfg)
			client := &fakeSpeechClient{audio: []byte{1}}

			_, err := New(cfg, client, nil).Synthesize(context.Background(), "hello")
			if !errors.Is(err, services.ErrConfiguration) {
				t.Fatalf("expected ErrConfiguration, got %v", err)
			}
			if client.calls != 0 {
				t.Fatal("network call attempted despite configuration error")
			}
		})
	}
}

func TestSynthesize(t *testing.T) {
	cfg := testConfig()
	cfg.TTS.Format = "opus"
	client := &fakeSpeechClient{audio: []byte{9, 8, 7}}

	audio, err := New(cfg, client, nil).Synthesize(context.Background(), "A short narration.")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(audio) != 3 {
		t.Fatalf("unexpected audio %v", audio)
	}
	req := client.request
	if req.Model != "tts-1" || req.Voice != "alloy" || req.Format != "opus" {
		t.Fatalf("unexpected request %+v", req)
	}
	if req.Input != "A short narration." {
		t.Fatalf("script altered: %q", req.Input)
	}
}

func TestSynthesizePropagatesEmptyAudio(t *testing.T) {
	client := &fakeSpeechClient{err: services.Wrap(services.ErrEmptyAudio, "openai", "speech", "no audio bytes returned", nil)}
	_, err := New(testConfig(), client, nil).Synthesize(context.Background(), "x")
	if !errors.Is(err, services.ErrEmptyAudio) {
		t.Fatalf("expected ErrEmptyAudio, got %v", err)
	}
}
