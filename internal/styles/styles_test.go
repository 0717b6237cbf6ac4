package styles

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/jonathan/resume-builder/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPrompter struct {
	answer  string
	err     error
	options []string
	calls   int
}

func (s *stubPrompter) Select(_ string, options []string) (string, error) {
	s.calls++
	s.options = options
	return s.answer, s.err
}

func (s *stubPrompter) Input(string) (string, error) {
	return "", errors.New("unexpected input prompt")
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager()
	require.NoError(t, err)
	return m
}

func TestNewManager_EmbeddedStyles(t *testing.T) {
	m := newTestManager(t)

	assert.ElementsMatch(t, Allowed(), m.Names())
	d := m.Styles()["clean-blue"]
	assert.Equal(t, "Clean Blue", d.DisplayName)
	assert.Equal(t, "https://github.com/samodum", d.AuthorLink)
	assert.Equal(t, "css/clean_blue.css", d.File)
}

func TestNewManagerFS_HeaderFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"s/plain.css":  {Data: []byte("body { color: red; }\n")},
		"s/fancy.css":  {Data: []byte("/* Fancy $ https://example.com/me */\nbody {}\n")},
		"s/readme.txt": {Data: []byte("ignored")},
	}
	m, err := NewManagerFS(fsys, "s")
	require.NoError(t, err)

	assert.Equal(t, []string{"fancy", "plain"}, m.Names())
	assert.Equal(t, "plain", m.Styles()["plain"].DisplayName)
	assert.Empty(t, m.Styles()["plain"].AuthorLink)
	assert.Equal(t, []string{"fancy (style author -> https://example.com/me)", "plain"}, m.FormatChoices())
}

func TestNewManagerFS_MissingDir(t *testing.T) {
	_, err := NewManagerFS(fstest.MapFS{}, "nope")
	assert.Error(t, err)
}

func TestStylesReturnsCopy(t *testing.T) {
	m := newTestManager(t)
	s := m.Styles()
	delete(s, "default")
	assert.Contains(t, m.Styles(), "default")
}

func TestFromChoice(t *testing.T) {
	m := newTestManager(t)
	for _, choice := range m.FormatChoices() {
		name, ok := m.FromChoice(choice)
		assert.True(t, ok, choice)
		assert.Contains(t, choice, name)
	}

	name, ok := m.FromChoice("modern-grey (style author -> https://github.com/josylad)")
	assert.True(t, ok)
	assert.Equal(t, "modern-grey", name)

	_, ok = m.FromChoice("modern")
	assert.False(t, ok)
}

func TestSelectAndCSS(t *testing.T) {
	m := newTestManager(t)

	css, err := m.CSS()
	require.NoError(t, err)
	assert.Contains(t, css, "/* Default $")

	require.NoError(t, m.Select("cloyola-grey"))
	assert.Equal(t, "cloyola-grey", m.Selected())
	css, err = m.CSS()
	require.NoError(t, err)
	assert.Contains(t, css, "Cloyola Grey")

	err = m.Select("neon")
	assert.ErrorIs(t, err, ErrUnknownStyle)
	assert.Equal(t, "cloyola-grey", m.Selected())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		flag        string
		answer      string
		err         error
		want        string
		wantPrompts int
		wantLog     string
	}{
		{name: "flag used", flag: "modern-blue", want: "modern-blue"},
		{name: "prompt answer", answer: "clean-blue (style author -> https://github.com/samodum)", want: "clean-blue", wantPrompts: 1},
		{name: "unknown flag prompts", flag: "neon", answer: "default (style author -> https://github.com/jonathan/resume-builder)", want: "default", wantPrompts: 1, wantLog: "ignoring unknown style"},
		{name: "cancelled falls back", err: prompt.ErrCancelled, want: DefaultStyle, wantPrompts: 1, wantLog: "no style selected"},
		{name: "unmatched answer falls back", answer: "something else", want: DefaultStyle, wantPrompts: 1, wantLog: "no style selected"},
		{name: "prompt failure falls back", err: errors.New("tty gone"), want: DefaultStyle, wantPrompts: 1, wantLog: "style prompt failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t)
			p := &stubPrompter{answer: tt.answer, err: tt.err}
			var buf bytes.Buffer

			got := Resolve(tt.flag, m, p, slog.New(slog.NewTextHandler(&buf, nil)))

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, m.Selected())
			assert.Equal(t, tt.wantPrompts, p.calls)
			if tt.wantPrompts > 0 {
				assert.Equal(t, m.FormatChoices(), p.options)
			}
			if tt.wantLog != "" {
				assert.Contains(t, buf.String(), tt.wantLog)
			}
		})
	}
}

func TestIsAllowed(t *testing.T) {
	assert.True(t, IsAllowed("default"))
	assert.True(t, IsAllowed("cloyola-grey"))
	assert.False(t, IsAllowed("Clean Blue"))
}
