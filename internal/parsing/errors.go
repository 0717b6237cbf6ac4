package parsing

import "fmt"

// Stage names the step of job extraction that failed.
type Stage string

const (
	StageInput  Stage = "input"  // nothing to send to the model
	StageLLM    Stage = "llm"    // the model call failed
	StageSchema Stage = "schema" // the answer broke the job description schema
	StageDecode Stage = "decode" // the answer was not a JSON object
)

// JobError reports why a posting could not be turned into a job.
type JobError struct {
	Stage  Stage
	Link   string
	Reason string
	Cause  error
}

func (e *JobError) Error() string {
	msg := fmt.Sprintf("job extraction failed at %s: %s", e.Stage, e.Reason)
	if e.Link != "" {
		msg += " (" + e.Link + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *JobError) Unwrap() error {
	return e.Cause
}
