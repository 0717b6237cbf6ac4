// Package parsing turns job posting text into a structured job with an LLM.
package parsing

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// maxPromptText caps the posting text sent to the model.
const maxPromptText = 20000

// ParseJob asks client to extract the job in text, checks the answer
// against the job description schema and returns it with link set.
func ParseJob(ctx context.Context, client llm.Client, text, link string) (*types.Job, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &JobError{Stage: StageInput, Link: link, Reason: "posting text is empty"}
	}
	if len(text) > maxPromptText {
		text = text[:maxPromptText]
	}

	prompt, err := prompts.Render(prompts.JobFile, "extract-job", map[string]string{"Text": text})
	if err != nil {
		return nil, err
	}

	answer, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &JobError{Stage: StageLLM, Link: link, Reason: "model request failed", Cause: err}
	}
	answer = llm.CleanJSONBlock(answer)

	if err := schemas.Validate(schemas.JobDescription, []byte(answer)); err != nil {
		return nil, &JobError{Stage: StageSchema, Link: link, Reason: "answer does not match the job description schema", Cause: err}
	}

	var job types.Job
	if err := json.Unmarshal([]byte(answer), &job); err != nil {
		return nil, &JobError{Stage: StageDecode, Link: link, Reason: "answer is not a job description object", Cause: err}
	}
	job.Link = link
	Normalize(&job)
	return &job, nil
}
