//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `personal_information:
  name: Ada
  surname: Lovelace
  city: London
  country: UK
  email: ada@example.com
  phone_prefix: "+44"
  phone: "2071234567"
  github: https://github.com/ada
  linkedin: https://linkedin.com/in/ada
education_details:
  - education_level: Master's Degree
    institution: University of London
    field_of_study: Mathematics
    final_evaluation_grade: "4.0"
    start_date: "1830"
    year_of_completion: "1835"
experience_details:
  - position: Analyst
    company: Analytical Engines Ltd
    employment_period: 1842 - 1843
    key_responsibilities:
      - responsibility_1: Wrote the first published algorithm
projects: []
languages:
  - language: English
    proficiency: Native
interests:
  - Poetry
  - Mechanics
availability:
  notice_period: 2 weeks
`

func TestParseResume(t *testing.T) {
	r, err := ParseResume(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", r.FullName())
	assert.Equal(t, "ada@example.com", r.Personal.Email)
	assert.Equal(t, "+44", r.Personal.PhonePrefix)
	assert.Equal(t, []Language{{Language: "English", Proficiency: "Native"}}, r.Languages)
	assert.Equal(t, []string{"Poetry", "Mechanics"}, r.Interests)
	assert.Equal(t, []string{SectionPersonal, SectionEducation, SectionExperience, SectionProjects, SectionLanguages, SectionInterests, SectionAvailability}, r.Keys())
}

func TestResume_Section(t *testing.T) {
	r, err := ParseResume(sampleResume)
	require.NoError(t, err)

	edu := r.Section(SectionEducation)
	assert.Contains(t, edu, "institution: University of London")
	assert.Contains(t, edu, "year_of_completion: \"1835\"")

	assert.True(t, r.Has(SectionExperience))
	assert.False(t, r.Has(SectionProjects), "empty list counts as absent")
	assert.False(t, r.Has(SectionCertifications))
	assert.Empty(t, r.Section(SectionCertifications))
}

func TestResume_Sections(t *testing.T) {
	r, err := ParseResume(sampleResume)
	require.NoError(t, err)

	out := r.Sections(SectionLanguages, SectionCertifications, SectionInterests)
	assert.True(t, strings.HasPrefix(out, "languages:\n  - language: English\n"), out)
	assert.Contains(t, out, "proficiency: Native")
	assert.Contains(t, out, "interests:\n  - Poetry\n  - Mechanics")
	assert.NotContains(t, out, "certifications")
}

func TestParseResume_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		msg  string
	}{
		{name: "malformed", text: "personal_information: [", msg: "malformed YAML"},
		{name: "scalar document", text: "just text", msg: "mapping"},
		{name: "empty", text: "", msg: "mapping"},
		{name: "missing personal information", text: "interests: [a]", msg: "unexpected structure"},
		{name: "wrong section type", text: "personal_information: {name: A}\nexperience_details: nope", msg: "unexpected structure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResume(tt.text)
			var re *ResumeError
			require.ErrorAs(t, err, &re)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
