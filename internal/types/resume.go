// Package types holds the resume and job models passed between the builder stages.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/schemas"
	"gopkg.in/yaml.v3"
)

// Resume section keys of plain_text_resume.yaml.
const (
	SectionPersonal           = "personal_information"
	SectionEducation          = "education_details"
	SectionExperience         = "experience_details"
	SectionProjects           = "projects"
	SectionAchievements       = "achievements"
	SectionCertifications     = "certifications"
	SectionLanguages          = "languages"
	SectionInterests          = "interests"
	SectionAvailability       = "availability"
	SectionSalary             = "salary_expectations"
	SectionSelfIdentification = "self_identification"
	SectionLegal              = "legal_authorization"
	SectionWorkPreferences    = "work_preferences"
)

// PersonalInformation is the contact block of a resume.
type PersonalInformation struct {
	Name        string `yaml:"name"`
	Surname     string `yaml:"surname"`
	DateOfBirth string `yaml:"date_of_birth"`
	Country     string `yaml:"country"`
	City        string `yaml:"city"`
	Address     string `yaml:"address"`
	ZipCode     string `yaml:"zip_code"`
	PhonePrefix string `yaml:"phone_prefix"`
	Phone       string `yaml:"phone"`
	Email       string `yaml:"email"`
	GitHub      string `yaml:"github"`
	LinkedIn    string `yaml:"linkedin"`
}

// Language is a spoken language and its level.
type Language struct {
	Language    string `yaml:"language"`
	Proficiency string `yaml:"proficiency"`
}

// Resume is the parsed plain text resume. Sections other than the typed
// ones are kept as YAML and handed to the LLM verbatim.
type Resume struct {
	Personal  PersonalInformation `yaml:"personal_information"`
	Languages []Language          `yaml:"languages"`
	Interests []string            `yaml:"interests"`

	sections map[string]*yaml.Node
	order    []string
}

// ResumeError means the resume text could not be used.
type ResumeError struct {
	Message string
	Cause   error
}

func (e *ResumeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid resume: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid resume: %s", e.Message)
}

func (e *ResumeError) Unwrap() error {
	return e.Cause
}

// ParseResume decodes plain_text_resume.yaml content.
func ParseResume(text string) (*Resume, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, &ResumeError{Message: "malformed YAML", Cause: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, &ResumeError{Message: "expected a mapping at the top level"}
	}
	root := doc.Content[0]

	var shape map[string]any
	if err := root.Decode(&shape); err != nil {
		return nil, &ResumeError{Message: "malformed YAML", Cause: err}
	}
	if err := schemas.ValidateGo(schemas.ResumeSections, shape); err != nil {
		return nil, &ResumeError{Message: "unexpected structure", Cause: err}
	}

	r := &Resume{sections: make(map[string]*yaml.Node)}
	if err := root.Decode(r); err != nil {
		return nil, &ResumeError{Message: "unexpected field types", Cause: err}
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		r.sections[key] = root.Content[i+1]
		r.order = append(r.order, key)
	}
	return r, nil
}

// FullName joins name and surname.
func (r *Resume) FullName() string {
	return strings.TrimSpace(r.Personal.Name + " " + r.Personal.Surname)
}

// Has reports whether the section is present and not empty.
func (r *Resume) Has(name string) bool {
	n, ok := r.sections[name]
	if !ok || n == nil {
		return false
	}
	switch n.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		return len(n.Content) > 0
	case yaml.ScalarNode:
		return n.Tag != "!!null" && n.Value != ""
	default:
		return true
	}
}

// Section renders one section back to YAML, or an empty string when absent.
func (r *Resume) Section(name string) string {
	if !r.Has(name) {
		return ""
	}
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(r.sections[name]); err != nil {
		return ""
	}
	_ = enc.Close()
	return strings.TrimSpace(sb.String())
}

// Sections renders several sections under their keys, skipping absent ones.
func (r *Resume) Sections(names ...string) string {
	var sb strings.Builder
	for _, name := range names {
		body := r.Section(name)
		if body == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(name)
		sb.WriteString(":\n")
		for _, line := range strings.Split(body, "\n") {
			sb.WriteString("  ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Keys returns the section keys in document order.
func (r *Resume) Keys() []string {
	return append([]string(nil), r.order...)
}
