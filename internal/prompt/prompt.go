// Package prompt asks the user interactive questions in the terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user aborts a prompt or gives no answer.
var ErrCancelled = errors.New("prompt cancelled")

// Prompter asks the user to choose an option or type a value.
type Prompter interface {
	// Select shows options and returns the chosen one.
	Select(title string, options []string) (string, error)
	// Input asks for free text and returns it trimmed.
	Input(title string) (string, error)
}

// Terminal is a Prompter backed by bubbletea programs.
type Terminal struct {
	in  io.Reader
	out io.Writer
}

// NewTerminal creates a Terminal reading from in and drawing to out.
// Nil streams default to stdin and stdout.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Terminal{in: in, out: out}
}

// Select implements Prompter.
func (t *Terminal) Select(title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrCancelled
	}
	final, err := t.run(newSelectModel(title, options))
	if err != nil {
		return "", err
	}
	m, ok := final.(selectModel)
	if !ok || m.cancelled || m.choice == "" {
		return "", ErrCancelled
	}
	return m.choice, nil
}

// Input implements Prompter.
func (t *Terminal) Input(title string) (string, error) {
	final, err := t.run(newInputModel(title))
	if err != nil {
		return "", err
	}
	m, ok := final.(inputModel)
	if !ok || m.cancelled || !m.submitted {
		return "", ErrCancelled
	}
	return m.value, nil
}

func (t *Terminal) run(model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model, tea.WithInput(t.in), tea.WithOutput(t.out))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return final, nil
}
