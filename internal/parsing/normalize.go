package parsing

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"reactjs":    "React",
	"react.js":   "React",
	"nodejs":     "Node.js",
	"node.js":    "Node.js",
}

// NormalizeSkillName maps common spellings of a skill to one canonical name.
// Unknown names are returned trimmed.
func NormalizeSkillName(name string) string {
	name = strings.TrimSpace(name)
	if canonical, ok := skillNormalizations[strings.ToLower(name)]; ok {
		return canonical
	}
	return name
}

// Normalize trims every field of job, canonicalises single-skill
// requirements and drops empty or repeated list items.
func Normalize(job *types.Job) {
	job.Company = strings.TrimSpace(job.Company)
	job.Role = strings.TrimSpace(job.Role)
	job.Location = strings.TrimSpace(job.Location)
	job.Description = strings.TrimSpace(job.Description)
	job.Requirements = dedupe(job.Requirements, NormalizeSkillName)
	job.Responsibilities = dedupe(job.Responsibilities, strings.TrimSpace)
}

func dedupe(items []string, norm func(string) string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		it = norm(it)
		key := strings.ToLower(it)
		if it == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out
}
