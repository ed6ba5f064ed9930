package config

import (
	"fmt"

	"github.com/voicequill/voicequill/internal/language"
)

type Config struct {
	Gemini     GeminiConfig     `yaml:"gemini"`
	Paths      PathsConfig      `yaml:"paths"`
	Processing ProcessingConfig `yaml:"processing"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type ProcessingConfig struct {
	Timecodes      bool   `yaml:"timecodes"`
	TargetLanguage string `yaml:"target_language"`
	ExtractQuotes  bool   `yaml:"extract_quotes"`
	MaxConcurrent  int    `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) Validate() error {
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required (or set GEMINI_API_KEY)")
	}
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Processing.TargetLanguage != "" {
		if _, ok := language.ByCode(c.Processing.TargetLanguage); !ok {
			return fmt.Errorf("processing.target_language %q is not in the language catalog", c.Processing.TargetLanguage)
		}
	}

	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Processing.MaxConcurrent == 0 {
		c.Processing.MaxConcurrent = 2
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
