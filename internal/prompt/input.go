package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	title     string
	input     textinput.Model
	value     string
	submitted bool
	cancelled bool
}

func newInputModel(title string) inputModel {
	ti := textinput.New()
	ti.Placeholder = "https://"
	ti.CharLimit = 2048
	ti.Width = defaultWidth - 4
	ti.Focus()

	return inputModel{title: title, input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			m.value = strings.TrimSpace(m.input.Value())
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	return titleStyle.Render(m.title) + "\n" +
		m.input.View() + "\n" +
		helpStyle.Render("enter to confirm • esc to cancel") + "\n"
}
