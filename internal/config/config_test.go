package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Gemini: GeminiConfig{
					APIKeys: []string{"key-1"},
				},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "missing api keys",
			config: Config{
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "missing paths",
			config: Config{
				Gemini: GeminiConfig{
					APIKeys: []string{"key-1"},
				},
			},
			wantErr: true,
		},
		{
			name: "unknown target language",
			config: Config{
				Gemini: GeminiConfig{
					APIKeys: []string{"key-1"},
				},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
				Processing: ProcessingConfig{
					TargetLanguage: "xx",
				},
			},
			wantErr: true,
		},
		{
			name: "known target language",
			config: Config{
				Gemini: GeminiConfig{
					APIKeys: []string{"key-1"},
				},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
				Processing: ProcessingConfig{
					TargetLanguage: "es",
				},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Gemini: GeminiConfig{APIKeys: []string{"key-1"}},
		Paths:  PathsConfig{Input: "in", Output: "out"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Model default = %q", cfg.Gemini.Model)
	}
	if cfg.Processing.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent default = %d", cfg.Processing.MaxConcurrent)
	}
	if cfg.Paths.Temp == "" {
		t.Error("Temp default should be set")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level default = %q", cfg.Logging.Level)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
gemini:
  api_keys:
    - "test-key"
  model: "gemini-2.5-flash"

paths:
  input: "data/input"
  output: "data/output"

processing:
  timecodes: true
  target_language: "es"
  extract_quotes: true

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Gemini.APIKeys) == 0 || cfg.Gemini.APIKeys[0] != "test-key" {
		t.Errorf("APIKeys = %v, want [test-key]", cfg.Gemini.APIKeys)
	}
	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
	if !cfg.Processing.Timecodes {
		t.Error("Timecodes should be true")
	}
	if cfg.Processing.TargetLanguage != "es" {
		t.Errorf("TargetLanguage = %v, want es", cfg.Processing.TargetLanguage)
	}
}

func TestLoadEnvKey(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  input: "data/input"
  output: "data/output"
`
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Gemini.APIKeys) != 1 || cfg.Gemini.APIKeys[0] != "env-key" {
		t.Errorf("APIKeys = %v, want [env-key]", cfg.Gemini.APIKeys)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
