package dispatch

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/actions"
	"github.com/jonathan/resume-builder/internal/files"
	"github.com/jonathan/resume-builder/internal/prompt"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

type fakeFacade struct {
	encoded   string
	suggested string
	err       error
	linked    string
	calls     []string
}

func (f *fakeFacade) BuildResume(context.Context) (string, error) {
	f.calls = append(f.calls, "resume")
	return f.encoded, f.err
}

func (f *fakeFacade) LinkToJob(_ context.Context, url string) error {
	f.calls = append(f.calls, "link")
	f.linked = url
	return nil
}

func (f *fakeFacade) BuildTailoredResume(context.Context) (string, string, error) {
	f.calls = append(f.calls, "tailored")
	return f.encoded, f.suggested, f.err
}

func (f *fakeFacade) BuildCoverLetter(context.Context) (string, string, error) {
	f.calls = append(f.calls, "cover")
	return f.encoded, f.suggested, f.err
}

type fakePrompter struct {
	selectAnswer string
	inputAnswer  string
	inputErr     error
	inputs       []string
}

func (p *fakePrompter) Select(string, []string) (string, error) {
	if p.selectAnswer == "" {
		return "", prompt.ErrCancelled
	}
	return p.selectAnswer, nil
}

func (p *fakePrompter) Input(title string) (string, error) {
	p.inputs = append(p.inputs, title)
	return p.inputAnswer, p.inputErr
}

type harness struct {
	dispatcher *Dispatcher
	facade     *fakeFacade
	prompter   *fakePrompter
	params     files.Parameters
	logs       *bytes.Buffer
	opts       FacadeOptions
	cleaned    bool
	saved      []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	resume := filepath.Join(dir, files.PlainTextResumeFile)
	require.NoError(t, os.WriteFile(resume, []byte("personal_information:\n  name: Ada\n"), 0644))
	output := filepath.Join(dir, files.OutputDir)
	require.NoError(t, os.MkdirAll(output, 0755))

	h := &harness{
		facade:   &fakeFacade{encoded: base64.StdEncoding.EncodeToString([]byte("%PDF-1.7 test")), suggested: "acme_1234abcd"},
		prompter: &fakePrompter{},
		params: files.Parameters{
			Uploads:   map[string]string{files.PlainTextResumeKey: resume},
			OutputDir: output,
		},
		logs: &bytes.Buffer{},
	}
	h.dispatcher = &Dispatcher{
		Prompter: h.prompter,
		NewFacade: func(_ context.Context, opts FacadeOptions) (Facade, func(), error) {
			h.opts = opts
			return h.facade, func() { h.cleaned = true }, nil
		},
		Logger: slog.New(slog.NewTextHandler(h.logs, nil)),
		Now:    func() time.Time { return fixedNow },
		Saved:  func(path string, _ int) { h.saved = append(h.saved, path) },
	}
	return h
}

func TestRun_NoAction(t *testing.T) {
	h := newHarness(t)

	err := h.dispatcher.Run(context.Background(), Request{Params: h.params})

	require.NoError(t, err)
	assert.Contains(t, h.logs.String(), "No actions selected")
	assert.Empty(t, h.facade.calls)
}

func TestRun_PlainResume(t *testing.T) {
	h := newHarness(t)

	err := h.dispatcher.Run(context.Background(), Request{
		Action: actions.ActionResume,
		Params: h.params,
		APIKey: "sk-test",
		Style:  "modern-blue",
	})

	require.NoError(t, err)
	want := filepath.Join(h.params.OutputDir, "resume_modern-blue_20240309_140507.pdf")
	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 test", string(data))
	assert.Equal(t, []string{"resume"}, h.facade.calls)
	assert.Equal(t, "sk-test", h.opts.APIKey)
	assert.Contains(t, h.opts.ResumeText, "Ada")
	assert.Equal(t, "modern-blue", h.opts.Styles.Selected())
	assert.Empty(t, h.prompter.inputs)
	assert.True(t, h.cleaned)
	assert.Equal(t, []string{want}, h.saved)
}

func TestRun_PlainResumeDefaultStyle(t *testing.T) {
	h := newHarness(t)

	err := h.dispatcher.Run(context.Background(), Request{Action: actions.ActionResume, Params: h.params})

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(h.params.OutputDir, "resume_default_20240309_140507.pdf"))
	assert.Contains(t, h.logs.String(), "no style selected")
}

func TestRun_JobPromptsForURL(t *testing.T) {
	h := newHarness(t)
	h.prompter.inputAnswer = "  https://jobs.example.com/42  "

	err := h.dispatcher.Run(context.Background(), Request{
		Action: actions.ActionJob,
		Params: h.params,
		Style:  "default",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{jobURLPrompt}, h.prompter.inputs)
	assert.Equal(t, "https://jobs.example.com/42", h.facade.linked)
	assert.Equal(t, []string{"link", "tailored"}, h.facade.calls)
	assert.FileExists(t, filepath.Join(h.params.OutputDir, "acme_1234abcd", "job_default_20240309_140507.pdf"))
}

func TestRun_CoverUsesGivenURLAndFilename(t *testing.T) {
	h := newHarness(t)

	err := h.dispatcher.Run(context.Background(), Request{
		Action:   actions.ActionCover,
		Params:   h.params,
		Style:    "clean-blue",
		JobURL:   "https://jobs.example.com/7",
		Filename: "letter.pdf",
	})

	require.NoError(t, err)
	assert.Empty(t, h.prompter.inputs)
	assert.Equal(t, "https://jobs.example.com/7", h.facade.linked)
	assert.Equal(t, []string{"link", "cover"}, h.facade.calls)
	assert.FileExists(t, filepath.Join(h.params.OutputDir, "acme_1234abcd", "letter.pdf"))
}

func TestRun_JobWithoutURL(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "empty answer"},
		{name: "cancelled", err: prompt.ErrCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.prompter.inputErr = tt.err

			err := h.dispatcher.Run(context.Background(), Request{Action: actions.ActionJob, Params: h.params, Style: "default"})

			assert.ErrorIs(t, err, ErrNoJobURL)
			assert.Empty(t, h.facade.calls)
		})
	}
}

func TestRun_DecodeFailure(t *testing.T) {
	h := newHarness(t)
	h.facade.encoded = "not base64 !!"

	err := h.dispatcher.Run(context.Background(), Request{Action: actions.ActionResume, Params: h.params, Style: "default"})

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "resume", decodeErr.Action)
	assert.Contains(t, h.logs.String(), "Error decoding Base64")

	entries, err := os.ReadDir(h.params.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Empty(t, h.saved)
}

func TestRun_WriteFailure(t *testing.T) {
	h := newHarness(t)
	h.params.OutputDir = filepath.Join(h.params.OutputDir, "missing", "dir")

	err := h.dispatcher.Run(context.Background(), Request{Action: actions.ActionResume, Params: h.params, Style: "default"})

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Contains(t, h.logs.String(), "Error writing file")
}

func TestRun_SuggestedFolderMustStayInOutput(t *testing.T) {
	for _, suggested := range []string{"../escape", "/tmp/abs", "a/../../b", ".."} {
		t.Run(suggested, func(t *testing.T) {
			h := newHarness(t)
			h.facade.suggested = suggested

			err := h.dispatcher.Run(context.Background(), Request{
				Action: actions.ActionJob,
				Params: h.params,
				Style:  "default",
				JobURL: "https://jobs.example.com/1",
			})

			var writeErr *WriteError
			require.ErrorAs(t, err, &writeErr)
			assert.ErrorIs(t, err, ErrUnsafeSubdir)
			assert.Empty(t, h.saved)

			entries, err := os.ReadDir(filepath.Dir(h.params.OutputDir))
			require.NoError(t, err)
			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, e.Name())
			}
			assert.ElementsMatch(t, []string{files.PlainTextResumeFile, files.OutputDir}, names)
		})
	}
}

func TestRun_NestedSuggestedFolder(t *testing.T) {
	h := newHarness(t)
	h.facade.suggested = filepath.Join("acme", "2024")

	err := h.dispatcher.Run(context.Background(), Request{
		Action: actions.ActionCover,
		Params: h.params,
		Style:  "default",
		JobURL: "https://jobs.example.com/1",
	})

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(h.params.OutputDir, "acme", "2024", "cover_default_20240309_140507.pdf"))
}

func TestRun_FacadeError(t *testing.T) {
	h := newHarness(t)
	h.facade.err = errors.New("llm unavailable")

	err := h.dispatcher.Run(context.Background(), Request{Action: actions.ActionResume, Params: h.params, Style: "default"})

	assert.EqualError(t, err, "llm unavailable")
	assert.True(t, h.cleaned)
}

func TestRun_ResumeMissing(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.Remove(h.params.ResumePath()))

	err := h.dispatcher.Run(context.Background(), Request{Action: actions.ActionResume, Params: h.params, Style: "default"})

	var nf *files.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, files.KindFileMissing, nf.Kind)
}

func TestRun_StylesInjected(t *testing.T) {
	h := newHarness(t)
	var created *styles.Manager
	h.dispatcher.NewStyles = func() (*styles.Manager, error) {
		m, err := styles.NewManager()
		created = m
		return m, err
	}

	err := h.dispatcher.Run(context.Background(), Request{Action: actions.ActionResume, Params: h.params, Style: "cloyola-grey"})

	require.NoError(t, err)
	assert.Same(t, created, h.opts.Styles)
}

func TestOutputFilename(t *testing.T) {
	assert.Equal(t, "custom.pdf", OutputFilename(actions.ActionJob, "default", "custom.pdf", fixedNow))
	assert.Equal(t, "cover_modern-grey_20240309_140507.pdf", OutputFilename(actions.ActionCover, "modern-grey", "", fixedNow))
	assert.Equal(t, "output_default_20240309_140507.pdf", OutputFilename(actions.None, "default", "", fixedNow))
}
