//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
)

// Job is a parsed job posting.
type Job struct {
	Company          string   `json:"company"`
	Role             string   `json:"role"`
	Location         string   `json:"location"`
	Link             string   `json:"link"`
	Description      string   `json:"description"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
}

// Summary renders the job as plain text for prompts.
func (j *Job) Summary() string {
	var sb strings.Builder
	line := func(label, value string) {
		if value != "" {
			sb.WriteString(label)
			sb.WriteString(": ")
			sb.WriteString(value)
			sb.WriteString("\n")
		}
	}
	list := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(label)
		sb.WriteString(":\n")
		for _, it := range items {
			sb.WriteString("- ")
			sb.WriteString(it)
			sb.WriteString("\n")
		}
	}

	line("Company", j.Company)
	line("Role", j.Role)
	line("Location", j.Location)
	line("Link", j.Link)
	line("Description", j.Description)
	list("Requirements", j.Requirements)
	list("Responsibilities", j.Responsibilities)
	return strings.TrimRight(sb.String(), "\n")
}
