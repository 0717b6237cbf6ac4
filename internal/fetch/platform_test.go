package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://www.linkedin.com/jobs/view/3912345678", PlatformLinkedIn},
		{"https://job-boards.greenhouse.io/doordashusa/jobs/7063751", PlatformGreenhouse},
		{"https://boards.greenhouse.io/company/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/company/job-id", PlatformLever},
		{"https://acme.wd5.myworkdayjobs.com/en-US/careers/job/123", PlatformWorkday},
		{"https://www.indeed.com/viewjob?jk=abc", PlatformIndeed},
		{"https://notlinkedin.com/jobs/1", PlatformUnknown},
		{"https://example.com/careers/1", PlatformUnknown},
		{"::bad::", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestPlatformContentSelectors(t *testing.T) {
	assert.Equal(t, ".show-more-less-html__markup", PlatformContentSelectors(PlatformLinkedIn)[0])
	assert.Equal(t, "#jobDescriptionText", PlatformContentSelectors(PlatformIndeed)[0])
	assert.Equal(t, JobPostingSelectors(), PlatformContentSelectors(PlatformUnknown))
}

func TestPlatformNoiseSelectors(t *testing.T) {
	common := PlatformNoiseSelectors(PlatformUnknown)
	assert.Contains(t, common, "form")

	for _, p := range []Platform{PlatformLinkedIn, PlatformGreenhouse, PlatformLever, PlatformWorkday, PlatformIndeed} {
		got := PlatformNoiseSelectors(p)
		assert.Greater(t, len(got), len(common), p)
		assert.Subset(t, got, common)
	}
}
