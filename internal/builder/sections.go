package builder

import (
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/types"
)

type section struct {
	name string
	// keys are the resume sections fed to the prompt
	keys   []string
	prompt func(r *types.Resume, jobContext string) (string, error)
}

func (s section) present(r *types.Resume) bool {
	for _, k := range s.keys {
		if r.Has(k) {
			return true
		}
	}
	return false
}

func sectionPrompt(key string, keys ...string) func(*types.Resume, string) (string, error) {
	return func(r *types.Resume, jobContext string) (string, error) {
		return prompts.Render(prompts.ResumeFile, key, map[string]string{
			"Section":    r.Sections(keys...),
			"JobContext": jobContext,
		})
	}
}

func newSection(key string, keys ...string) section {
	return section{name: key, keys: keys, prompt: sectionPrompt(key, keys...)}
}

var headerSection = newSection("header", types.SectionPersonal)

// resumeSections are rendered in this order.
var resumeSections = []section{
	headerSection,
	newSection("education", types.SectionEducation),
	newSection("experience", types.SectionExperience),
	newSection("projects", types.SectionProjects),
	newSection("achievements", types.SectionAchievements),
	newSection("certifications", types.SectionCertifications),
	newSection("additional_skills", types.SectionExperience, types.SectionLanguages, types.SectionInterests),
}

var coverLetterResumeKeys = []string{
	types.SectionPersonal,
	types.SectionEducation,
	types.SectionExperience,
	types.SectionProjects,
	types.SectionAchievements,
	types.SectionCertifications,
}
