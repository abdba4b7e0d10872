package quizgen

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.validate(); err != nil {
		t.Errorf("DefaultConfig() fails validation: %v", err)
	}
	if len(cfg.Validators) == 0 {
		t.Error("DefaultConfig() carries no validators")
	}
}

func writeTuning(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeTuning(t, "top_phrases: 12\ntrue_bias: 0.8\nseed: 99\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.TopPhrases != 12 {
		t.Errorf("TopPhrases = %d, want 12", cfg.TopPhrases)
	}
	if cfg.TrueBias != 0.8 {
		t.Errorf("TrueBias = %v, want 0.8", cfg.TrueBias)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d, want 99", cfg.Seed)
	}
	// Untouched keys keep their defaults.
	if cfg.MinSentenceLen != DefaultConfig().MinSentenceLen {
		t.Errorf("MinSentenceLen = %d, want default", cfg.MinSentenceLen)
	}
	if len(cfg.Validators) == 0 {
		t.Error("loaded config lost the validator chain")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeTuning(t, "top_phrase: 12\n") // typo
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() accepted an unknown key")
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []string{
		"true_bias: 1.5\n",
		"top_phrases: 2\n",
		"min_sentence_len: 0\n",
		"similarity_cutoff: 0\n",
		"comprehension_share: 0.9\n", // shares no longer sum to 1
	}
	for _, content := range tests {
		path := writeTuning(t, content)
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("LoadConfig() accepted invalid tuning %q", content)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadConfig() ignored a missing file")
	}
}
