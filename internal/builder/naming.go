package builder

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// SuggestedName is the output folder for documents about job: the company
// slug plus a short stable id derived from the job link.
func SuggestedName(job *types.Job) string {
	seed := job.Link
	if seed == "" {
		seed = job.Company + "|" + job.Role
	}
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed))
	return slug(job.Company) + "_" + strings.ReplaceAll(id.String(), "-", "")[:8]
}

func slug(s string) string {
	var sb strings.Builder
	underscore := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			underscore = false
			continue
		}
		if !underscore && sb.Len() > 0 {
			sb.WriteByte('_')
			underscore = true
		}
	}
	out := strings.TrimRight(sb.String(), "_")
	if out == "" {
		return "job"
	}
	return out
}
