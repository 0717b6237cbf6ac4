// Package config validates the user's work preferences and secrets documents
// and loads the runtime settings of the CLI.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every settings environment variable.
const EnvPrefix = "RESUME_BUILDER"

// Settings holds runtime options that are not part of the user's data folder.
// Values come from defaults, RESUME_BUILDER_* environment variables and
// command-line flags, in increasing priority.
type Settings struct {
	DataDir        string        `mapstructure:"data_dir"`        // Folder holding the YAML documents
	LLMProvider    string        `mapstructure:"llm_provider"`    // gemini or openai
	LLMModel       string        `mapstructure:"llm_model"`       // Replaces the model of every tier
	BrowserTimeout time.Duration `mapstructure:"browser_timeout"` // Per-render headless browser budget
	FetchTimeout   time.Duration `mapstructure:"fetch_timeout"`   // HTTP timeout for job pages
	UseBrowser     bool          `mapstructure:"use_browser"`     // Render SPA job pages in the browser
	Verbose        bool          `mapstructure:"verbose"`         // Print detailed debug information
	LogLevel       string        `mapstructure:"log_level"`       // debug, info, warn or error; verbose forces debug
}

// NewViper returns a viper instance with defaults and environment lookup configured.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("data_dir", "data_folder")
	v.SetDefault("llm_provider", "gemini")
	v.SetDefault("llm_model", "")
	v.SetDefault("browser_timeout", 60*time.Second)
	v.SetDefault("fetch_timeout", 30*time.Second)
	v.SetDefault("use_browser", true)
	v.SetDefault("verbose", false)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings decodes and validates the settings held by v.
func LoadSettings(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that the settings have usable values.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.DataDir) == "" {
		return fmt.Errorf("config error: 'data_dir' must not be empty")
	}

	switch s.LLMProvider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("config error: unsupported llm_provider %q (want gemini or openai)", s.LLMProvider)
	}

	if s.BrowserTimeout <= 0 {
		return fmt.Errorf("config error: 'browser_timeout' must be positive")
	}
	if s.FetchTimeout <= 0 {
		return fmt.Errorf("config error: 'fetch_timeout' must be positive")
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
