// Package styles manages the CSS themes a document can be rendered with.
package styles

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/jonathan/resume-builder/internal/prompt"
)

//go:embed css/*.css
var cssFS embed.FS

// DefaultStyle is used when nothing else was chosen.
const DefaultStyle = "default"

var allowed = [...]string{"clean-blue", "modern-blue", "modern-grey", DefaultStyle, "cloyola-grey"}

// Allowed returns the style names accepted on the command line.
func Allowed() []string {
	return append([]string(nil), allowed[:]...)
}

// IsAllowed reports whether name may be passed as --style.
func IsAllowed(name string) bool {
	for _, s := range allowed {
		if s == name {
			return true
		}
	}
	return false
}

// ErrUnknownStyle is returned when selecting a style that is not installed.
var ErrUnknownStyle = errors.New("unknown style")

// Descriptor describes one installed stylesheet.
type Descriptor struct {
	File        string
	DisplayName string
	AuthorLink  string
}

// Manager holds the installed styles and the current selection.
type Manager struct {
	fsys     fs.FS
	styles   map[string]Descriptor
	selected string
}

// NewManager loads the embedded stylesheets.
func NewManager() (*Manager, error) {
	return NewManagerFS(cssFS, "css")
}

// NewManagerFS loads every *.css file under dir in fsys. The style name is
// the file name without extension, with underscores turned into dashes.
func NewManagerFS(fsys fs.FS, dir string) (*Manager, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read styles directory %s: %w", dir, err)
	}

	m := &Manager{fsys: fsys, styles: make(map[string]Descriptor)}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".css" {
			continue
		}
		file := path.Join(dir, e.Name())
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read style %s: %w", file, err)
		}
		name := strings.ReplaceAll(strings.TrimSuffix(e.Name(), ".css"), "_", "-")
		display, link := parseHeader(string(data))
		if display == "" {
			display = name
		}
		m.styles[name] = Descriptor{File: file, DisplayName: display, AuthorLink: link}
	}
	return m, nil
}

// parseHeader reads "/* Display Name $ link */" from the first line.
func parseHeader(css string) (display, link string) {
	first, _, _ := strings.Cut(css, "\n")
	first = strings.TrimSpace(first)
	if !strings.HasPrefix(first, "/*") || !strings.HasSuffix(first, "*/") {
		return "", ""
	}
	inner := strings.TrimSpace(first[2 : len(first)-2])
	display, link, _ = strings.Cut(inner, "$")
	return strings.TrimSpace(display), strings.TrimSpace(link)
}

// Styles returns a copy of the installed styles keyed by name.
func (m *Manager) Styles() map[string]Descriptor {
	out := make(map[string]Descriptor, len(m.styles))
	for k, v := range m.styles {
		out[k] = v
	}
	return out
}

// Names returns the installed style names, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.styles))
	for k := range m.styles {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// FormatChoices renders one menu line per style, sorted by name.
func (m *Manager) FormatChoices() []string {
	names := m.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = choiceLine(n, m.styles[n])
	}
	return out
}

func choiceLine(name string, d Descriptor) string {
	if d.AuthorLink == "" {
		return name
	}
	return fmt.Sprintf("%s (style author -> %s)", name, d.AuthorLink)
}

// FromChoice maps a menu line back to its style name.
func (m *Manager) FromChoice(choice string) (string, bool) {
	for _, n := range m.Names() {
		if choice == n || strings.HasPrefix(choice, n+" (") {
			return n, true
		}
	}
	return "", false
}

// Select makes name the current style.
func (m *Manager) Select(name string) error {
	if _, ok := m.styles[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownStyle, name)
	}
	m.selected = name
	return nil
}

// Selected returns the current style, or an empty string.
func (m *Manager) Selected() string {
	return m.selected
}

// CSS returns the stylesheet of the selected style, falling back to the
// default style when nothing was selected.
func (m *Manager) CSS() (string, error) {
	name := m.selected
	if name == "" {
		name = DefaultStyle
	}
	d, ok := m.styles[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownStyle, name)
	}
	data, err := fs.ReadFile(m.fsys, d.File)
	if err != nil {
		return "", fmt.Errorf("failed to read style %s: %w", d.File, err)
	}
	return string(data), nil
}

// Resolve picks the style for this run. An allowed flag value is used as is.
// Otherwise the user chooses from the installed styles, and an unanswered
// prompt falls back to DefaultStyle.
func Resolve(flag string, m *Manager, p prompt.Prompter, logger *slog.Logger) string {
	if flag != "" {
		if IsAllowed(flag) && m.Select(flag) == nil {
			logger.Info("using style", "style", flag)
			return flag
		}
		logger.Warn("ignoring unknown style", "style", flag)
	}

	if answer, err := p.Select("Which style would you like to adopt?", m.FormatChoices()); err == nil {
		if name, ok := m.FromChoice(answer); ok && m.Select(name) == nil {
			logger.Info("selected style", "style", name)
			return name
		}
	} else if !errors.Is(err, prompt.ErrCancelled) {
		logger.Error("style prompt failed", "error", err)
	}

	logger.Warn("no style selected, proceeding with default style")
	if err := m.Select(DefaultStyle); err != nil {
		logger.Error("default style is not installed", "error", err)
	}
	return DefaultStyle
}
