// Package observability prints human-readable summaries in verbose mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	boxWidth       = 60
	maxItemsToShow = 5
)

// Printer writes boxed summaries to out.
type Printer struct {
	out io.Writer
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

//nolint:errcheck // terminal output; nothing useful to do on failure
func (p *Printer) printBox(title, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, inner))
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or right-pads s to exactly width runes.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		r := []rune(s)
		return string(r[:width-3]) + "..."
	}
	return s + strings.Repeat(" ", width-n)
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s:\n", label)
	for _, it := range items[:min(len(items), maxItemsToShow)] {
		fmt.Fprintf(sb, "  • %s\n", it)
	}
	if len(items) > maxItemsToShow {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-maxItemsToShow)
	}
}

// PrintPreferences summarizes validated work preferences.
func (p *Printer) PrintPreferences(prefs *config.WorkPreferences) {
	if prefs == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Remote:     %t\n", prefs.Remote)
	fmt.Fprintf(&sb, "Distance:   %d\n", prefs.Distance)
	fmt.Fprintf(&sb, "Experience: %s\n", orNone(prefs.ExperienceLevel.Enabled()))
	fmt.Fprintf(&sb, "Job types:  %s\n", orNone(prefs.JobTypes.Enabled()))
	fmt.Fprintf(&sb, "Posted:     %s\n", orNone(prefs.Date.Enabled()))
	sb.WriteString("\n")
	writeList(&sb, "Positions", prefs.Positions)
	writeList(&sb, "Locations", prefs.Locations)
	blacklisted := len(prefs.CompanyBlacklist) + len(prefs.TitleBlacklist) + len(prefs.LocationBlacklist)
	fmt.Fprintf(&sb, "Blacklist entries: %d", blacklisted)

	p.printBox("WORK PREFERENCES", sb.String())
}

// PrintJob summarizes a parsed job description.
func (p *Printer) PrintJob(job *types.Job) {
	if job == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Company:  %s\n", job.Company)
	fmt.Fprintf(&sb, "Role:     %s\n", job.Role)
	if job.Location != "" {
		fmt.Fprintf(&sb, "Location: %s\n", job.Location)
	}
	sb.WriteString("\n")
	writeList(&sb, "Requirements", job.Requirements)
	writeList(&sb, "Responsibilities", job.Responsibilities)

	p.printBox("JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult reports a saved document.
func (p *Printer) PrintResult(path string, size int) {
	p.printBox("DOCUMENT SAVED", fmt.Sprintf("Path: %s\nSize: %s", path, humanSize(size)))
}

// PrintStyles lists the installed styles with the selected one marked.
func (p *Printer) PrintStyles(choices []string, selected string) {
	var sb strings.Builder
	for i, c := range choices {
		mark := " "
		if selected != "" && strings.HasPrefix(c, selected) {
			mark = "*"
		}
		fmt.Fprintf(&sb, "%s %s", mark, c)
		if i < len(choices)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("STYLES", sb.String())
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

func humanSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
