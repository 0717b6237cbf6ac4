package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendKeys(t *testing.T, model tea.Model, keys ...tea.KeyMsg) tea.Model {
	t.Helper()
	for _, k := range keys {
		model, _ = model.Update(k)
	}
	return model
}

func TestSelectModel_EnterPicksFirst(t *testing.T) {
	m := sendKeys(t, newSelectModel("Pick", []string{"a", "b", "c"}),
		tea.KeyMsg{Type: tea.KeyEnter})

	sm := m.(selectModel)
	assert.Equal(t, "a", sm.choice)
	assert.False(t, sm.cancelled)
	assert.Empty(t, sm.View())
}

func TestSelectModel_Navigate(t *testing.T) {
	m := sendKeys(t, newSelectModel("Pick", []string{"a", "b", "c"}),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "c", m.(selectModel).choice)
}

func TestSelectModel_Cancel(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		m := sendKeys(t, newSelectModel("Pick", []string{"a"}), key)
		sm := m.(selectModel)
		assert.True(t, sm.cancelled, key.String())
		assert.Empty(t, sm.choice)
	}
}

func TestSelectModel_ViewShowsTitleAndOptions(t *testing.T) {
	view := newSelectModel("Select the action", []string{"Generate Resume"}).View()
	assert.Contains(t, view, "Select the action")
	assert.Contains(t, view, "Generate Resume")
}

func TestInputModel_Submit(t *testing.T) {
	m := sendKeys(t, newInputModel("URL?"),
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" https://jobs.example.com/1 ")},
		tea.KeyMsg{Type: tea.KeyEnter})

	im := m.(inputModel)
	require.True(t, im.submitted)
	assert.Equal(t, "https://jobs.example.com/1", im.value)
}

func TestInputModel_Cancel(t *testing.T) {
	m := sendKeys(t, newInputModel("URL?"),
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")},
		tea.KeyMsg{Type: tea.KeyEsc})

	im := m.(inputModel)
	assert.True(t, im.cancelled)
	assert.False(t, im.submitted)
}

func TestTerminalSelect_NoOptions(t *testing.T) {
	_, err := NewTerminal(nil, nil).Select("Pick", nil)
	assert.ErrorIs(t, err, ErrCancelled)
}
