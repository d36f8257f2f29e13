package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFull(t *testing.T) {
	data := []byte(`
db_path: /tmp/dojo.db
llm:
  provider: openai
  model: gpt-4o-mini
  timeout_secs: 60
  max_retries: 5
quiz:
  shuffle: true
  snapshot_keep: 3
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.DBPath != "/tmp/dojo.db" {
		t.Errorf("db_path = %q", cfg.DBPath)
	}
	if cfg.LLM.Provider != "openai" || cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("llm = %+v", cfg.LLM)
	}
	if cfg.LLM.TimeoutSecs != 60 || cfg.LLM.MaxRetries != 5 {
		t.Errorf("llm tuning = %+v", cfg.LLM)
	}
	if !cfg.Quiz.Shuffle || cfg.Quiz.SnapshotKeep != 3 {
		t.Errorf("quiz = %+v", cfg.Quiz)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("db_pathh: /tmp/x.db\n"))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestParseRejectsMultipleDocuments(t *testing.T) {
	_, err := Parse([]byte("db_path: /a\n---\ndb_path: /b\n"))
	if err == nil {
		t.Fatal("expected error for multiple documents")
	}
	if !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Quiz.SnapshotKeep != 10 {
		t.Errorf("snapshot_keep = %d, want default 10", cfg.Quiz.SnapshotKeep)
	}
}

func TestLoadNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("quiz:\n  snapshot_keep: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Quiz.SnapshotKeep != 10 {
		t.Errorf("snapshot_keep = %d, want normalized 10", cfg.Quiz.SnapshotKeep)
	}
}

func TestDefaultPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	want := filepath.Join("/xdg", "soliddojo", "config.yaml")
	if got := DefaultPath(); got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestLLMConfigForFileOverrides(t *testing.T) {
	t.Setenv("SOLIDDOJO_LLM_PROVIDER", "")
	t.Setenv("SOLIDDOJO_ANTHROPIC_MODEL", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg := Default()
	cfg.LLM.Provider = "anthropic"
	cfg.LLM.Model = "claude-sonnet"
	cfg.LLM.MaxRetries = 7

	out := cfg.LLMConfigFor()
	if out.Provider != "anthropic" {
		t.Errorf("provider = %q", out.Provider)
	}
	if out.Anthropic.Model != "claude-sonnet" {
		t.Errorf("model = %q", out.Anthropic.Model)
	}
	if out.Retry.MaxAttempts != 7 {
		t.Errorf("max attempts = %d", out.Retry.MaxAttempts)
	}
}

func TestLLMConfigForEnvWinsOverFile(t *testing.T) {
	t.Setenv("SOLIDDOJO_LLM_PROVIDER", "openai")
	t.Setenv("SOLIDDOJO_OPENAI_MODEL", "gpt-4o")

	cfg := Default()
	cfg.LLM.Provider = "anthropic"
	cfg.LLM.Model = "gpt-4o-mini"

	out := cfg.LLMConfigFor()
	if out.Provider != "openai" {
		t.Errorf("provider = %q, want env value openai", out.Provider)
	}
	if out.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q, want env value gpt-4o", out.OpenAI.Model)
	}
}

func TestLLMConfigForDiscovery(t *testing.T) {
	t.Setenv("SOLIDDOJO_LLM_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	out := Default().LLMConfigFor()
	if out.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini via discovery", out.Provider)
	}
	if out.Gemini.APIKey != "g-key" {
		t.Errorf("api key = %q", out.Gemini.APIKey)
	}
}
