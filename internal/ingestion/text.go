package ingestion

import (
	"regexp"
	"strings"
)

var (
	spaceRE      = regexp.MustCompile(`[ \t\f\v]+`)
	blankLinesRE = regexp.MustCompile(`\n{3,}`)
	bulletRE     = regexp.MustCompile(`^[•·▪◦*]\s+`)
)

// CleanText normalizes line endings, collapses runs of spaces, turns
// bullet glyphs into "- " and keeps at most one blank line in a row.
func CleanText(content string) string {
	if content == "" {
		return ""
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(spaceRE.ReplaceAllString(line, " "))
		lines[i] = bulletRE.ReplaceAllString(line, "- ")
	}

	out := strings.Join(lines, "\n")
	out = blankLinesRE.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}
