package config

import (
	"os"
	"time"

	"soliddojo/internal/llm"
)

// Config is the user-editable application configuration, loaded from
// ~/.config/soliddojo/config.yaml. Every field is optional; zero values
// fall back to defaults.
type Config struct {
	// DBPath overrides the default database location.
	DBPath string `yaml:"db_path"`

	LLM LLMConfig `yaml:"llm"`

	Quiz QuizConfig `yaml:"quiz"`
}

// LLMConfig selects and tunes the LLM provider.
type LLMConfig struct {
	// Provider: "anthropic", "openai", "gemini", "openrouter", "mock".
	// Empty means auto-discover from standard API key env vars.
	Provider string `yaml:"provider"`

	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`

	// TimeoutSecs bounds a single request including retries.
	TimeoutSecs int `yaml:"timeout_secs"`

	// MaxRetries caps retry attempts for transient failures.
	MaxRetries int `yaml:"max_retries"`
}

// QuizConfig tunes quiz run behavior.
type QuizConfig struct {
	// Shuffle randomizes quiz order within a run.
	Shuffle bool `yaml:"shuffle"`

	// SnapshotKeep is how many progress snapshots to retain.
	SnapshotKeep int `yaml:"snapshot_keep"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Quiz: QuizConfig{
			SnapshotKeep: 10,
		},
	}
}

// Normalize fills derived defaults after parsing.
func Normalize(cfg *Config) {
	if cfg.Quiz.SnapshotKeep <= 0 {
		cfg.Quiz.SnapshotKeep = 10
	}
	if cfg.LLM.MaxRetries < 0 {
		cfg.LLM.MaxRetries = 0
	}
}

// LLMConfigFor merges the file configuration into an llm.Config built from
// the environment. Per-field precedence: SOLIDDOJO_* environment variables,
// then the file, then auto-discovery from standard API key env vars. API
// keys always come from the environment.
func (c Config) LLMConfigFor() llm.Config {
	base := llm.ConfigFromEnv()
	if c.LLM.Provider == "" && os.Getenv("SOLIDDOJO_LLM_PROVIDER") == "" {
		if found, ok := llm.DiscoverConfig(); ok {
			base = found
		}
	}

	if c.LLM.Provider != "" && os.Getenv("SOLIDDOJO_LLM_PROVIDER") == "" {
		base.Provider = c.LLM.Provider
	}
	if c.LLM.Model != "" {
		switch base.Provider {
		case "anthropic":
			if os.Getenv("SOLIDDOJO_ANTHROPIC_MODEL") == "" {
				base.Anthropic.Model = c.LLM.Model
			}
		case "openai":
			if os.Getenv("SOLIDDOJO_OPENAI_MODEL") == "" {
				base.OpenAI.Model = c.LLM.Model
			}
		case "gemini":
			if os.Getenv("SOLIDDOJO_GEMINI_MODEL") == "" {
				base.Gemini.Model = c.LLM.Model
			}
		case "openrouter":
			if os.Getenv("SOLIDDOJO_OPENROUTER_MODEL") == "" {
				base.OpenRouter.Model = c.LLM.Model
			}
		}
	}
	if c.LLM.BaseURL != "" {
		if os.Getenv("SOLIDDOJO_OPENAI_BASE_URL") == "" {
			base.OpenAI.BaseURL = c.LLM.BaseURL
		}
		base.OpenRouter.BaseURL = c.LLM.BaseURL
	}
	if c.LLM.TimeoutSecs > 0 {
		base.Timeout = time.Duration(c.LLM.TimeoutSecs) * time.Second
	}
	if c.LLM.MaxRetries > 0 {
		base.Retry.MaxAttempts = c.LLM.MaxRetries
	}
	return base
}
