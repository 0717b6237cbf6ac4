// Package actions enumerates what a run can produce and picks one of them.
package actions

import (
	"errors"
	"log/slog"

	"github.com/jonathan/resume-builder/internal/prompt"
)

// Action identifies one of the supported document flows.
type Action string

// Supported actions, named by their CLI identifier.
const (
	ActionResume Action = "resume"
	ActionJob    Action = "job"
	ActionCover  Action = "cover"
)

// None is the empty selection.
const None Action = ""

var ordered = [...]Action{ActionResume, ActionJob, ActionCover}

var labels = map[Action]string{
	ActionResume: "Generate Resume",
	ActionJob:    "Generate Resume Tailored for Job Description",
	ActionCover:  "Generate Tailored Cover Letter for Job Description",
}

// IDs returns the CLI identifiers in menu order.
func IDs() []string {
	ids := make([]string, len(ordered))
	for i, a := range ordered {
		ids[i] = string(a)
	}
	return ids
}

// Labels returns the human-readable labels in menu order.
func Labels() []string {
	out := make([]string, len(ordered))
	for i, a := range ordered {
		out[i] = labels[a]
	}
	return out
}

// Parse maps a CLI identifier to its action.
func Parse(id string) (Action, bool) {
	a := Action(id)
	_, ok := labels[a]
	return a, ok
}

// FromLabel maps a menu label back to its action.
func FromLabel(label string) (Action, bool) {
	for a, l := range labels {
		if l == label {
			return a, true
		}
	}
	return None, false
}

// Label returns the menu label, or an empty string for unknown actions.
func (a Action) Label() string {
	return labels[a]
}

// ShortName is the tag used in generated file names.
func (a Action) ShortName() string {
	if _, ok := labels[a]; ok {
		return string(a)
	}
	return "output"
}

// RequiresJob reports whether the action needs a job description URL.
func (a Action) RequiresJob() bool {
	return a == ActionJob || a == ActionCover
}

// Select resolves the action for this run. A non-empty id is looked up
// directly and an unknown id yields None. An empty id asks the user; a
// cancelled prompt also yields None.
func Select(id string, p prompt.Prompter, logger *slog.Logger) Action {
	if id != "" {
		a, ok := Parse(id)
		if !ok {
			logger.Error("invalid action", "action", id)
			return None
		}
		return a
	}

	answer, err := p.Select("Select the action you want to perform:", Labels())
	if err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			logger.Warn("no answer provided, the user may have interrupted")
		} else {
			logger.Error("action prompt failed", "error", err)
		}
		return None
	}

	a, ok := FromLabel(answer)
	if !ok {
		return None
	}
	return a
}
