package config

const (
	defaultBaseURL        = "https://api.openai.com/v1"
	defaultTimeoutSeconds = 120
	defaultTTSModel       = "tts-1"
	defaultTTSVoice       = "alloy"
	defaultTTSFormat      = "mp3"
	defaultOutputDir      = "output"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		OpenAI: OpenAI{
			BaseURL:        defaultBaseURL,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		TTS: TTS{
			Model:  defaultTTSModel,
			Voice:  defaultTTSVoice,
			Format: defaultTTSFormat,
		},
		Output: Output{
			Dir: defaultOutputDir,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}
