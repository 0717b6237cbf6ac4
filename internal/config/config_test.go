package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings(NewViper())
	require.NoError(t, err)

	assert.Equal(t, "data_folder", s.DataDir)
	assert.Equal(t, "gemini", s.LLMProvider)
	assert.Empty(t, s.LLMModel)
	assert.Equal(t, 60*time.Second, s.BrowserTimeout)
	assert.Equal(t, 30*time.Second, s.FetchTimeout)
	assert.True(t, s.UseBrowser)
	assert.False(t, s.Verbose)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLoadSettings_Environment(t *testing.T) {
	t.Setenv("RESUME_BUILDER_DATA_DIR", "/tmp/profile")
	t.Setenv("RESUME_BUILDER_LLM_PROVIDER", "openai")
	t.Setenv("RESUME_BUILDER_BROWSER_TIMEOUT", "2m")
	t.Setenv("RESUME_BUILDER_USE_BROWSER", "false")
	t.Setenv("RESUME_BUILDER_LOG_LEVEL", "warn")

	s, err := LoadSettings(NewViper())
	require.NoError(t, err)

	assert.Equal(t, "/tmp/profile", s.DataDir)
	assert.Equal(t, "openai", s.LLMProvider)
	assert.Equal(t, 2*time.Minute, s.BrowserTimeout)
	assert.False(t, s.UseBrowser)
	assert.Equal(t, "warn", s.LogLevel)
}

func TestLoadSettings_Overrides(t *testing.T) {
	v := NewViper()
	v.Set("llm_model", "gpt-4o")
	v.Set("verbose", true)

	s, err := LoadSettings(v)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", s.LLMModel)
	assert.True(t, s.Verbose)
}

func TestSettingsValidate(t *testing.T) {
	valid := func() Settings {
		return Settings{
			DataDir:        "data_folder",
			LLMProvider:    "gemini",
			BrowserTimeout: time.Second,
			FetchTimeout:   time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr string
	}{
		{"valid", func(_ *Settings) {}, ""},
		{"empty data dir", func(s *Settings) { s.DataDir = " " }, "data_dir"},
		{"unknown provider", func(s *Settings) { s.LLMProvider = "llama" }, "unsupported llm_provider"},
		{"zero browser timeout", func(s *Settings) { s.BrowserTimeout = 0 }, "browser_timeout"},
		{"negative fetch timeout", func(s *Settings) { s.FetchTimeout = -time.Second }, "fetch_timeout"},
		{"known log level", func(s *Settings) { s.LogLevel = "ERROR" }, ""},
		{"unknown log level", func(s *Settings) { s.LogLevel = "loud" }, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
