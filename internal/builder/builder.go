// Package builder writes resumes and cover letters with an LLM and prints
// them to PDF.
package builder

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/sync/errgroup"
)

// ErrNoJob is returned by tailored builds before LinkToJob succeeded.
var ErrNoJob = errors.New("no job description linked")

// Renderer prints an HTML page to PDF.
type Renderer interface {
	PrintToPDF(ctx context.Context, html string) ([]byte, error)
}

// JobIngester turns a job URL into a parsed job.
type JobIngester interface {
	Job(ctx context.Context, url string) (*types.Job, error)
}

// Options are the collaborators of a Facade.
type Options struct {
	LLM      llm.Client
	Styles   *styles.Manager
	Renderer Renderer
	Ingester JobIngester
	Resume   *types.Resume
	Logger   *slog.Logger

	// Concurrency caps parallel LLM calls; zero means one per section.
	Concurrency int
}

// Facade builds documents for one resume.
type Facade struct {
	opts Options
	job  *types.Job
}

// New checks opts and returns a Facade.
func New(opts Options) (*Facade, error) {
	switch {
	case opts.LLM == nil:
		return nil, errors.New("builder: LLM client is required")
	case opts.Styles == nil:
		return nil, errors.New("builder: styles are required")
	case opts.Renderer == nil:
		return nil, errors.New("builder: renderer is required")
	case opts.Resume == nil:
		return nil, errors.New("builder: resume is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Facade{opts: opts}, nil
}

// Job returns the linked job, or nil.
func (f *Facade) Job() *types.Job {
	return f.job
}

// LinkToJob loads the job description behind url.
func (f *Facade) LinkToJob(ctx context.Context, url string) error {
	if f.opts.Ingester == nil {
		return errors.New("builder: no job ingester configured")
	}
	job, err := f.opts.Ingester.Job(ctx, url)
	if err != nil {
		return err
	}
	f.job = job
	f.opts.Logger.Info("linked job description", "company", job.Company, "role", job.Role)
	return nil
}

// BuildResume returns the base64 PDF of the plain resume.
func (f *Facade) BuildResume(ctx context.Context) (string, error) {
	return f.resume(ctx, nil)
}

// BuildTailoredResume returns the base64 PDF of a resume tailored to the
// linked job and the suggested output folder name.
func (f *Facade) BuildTailoredResume(ctx context.Context) (string, string, error) {
	if f.job == nil {
		return "", "", ErrNoJob
	}
	pdf, err := f.resume(ctx, f.job)
	if err != nil {
		return "", "", err
	}
	return pdf, SuggestedName(f.job), nil
}

// BuildCoverLetter returns the base64 PDF of a cover letter for the
// linked job and the suggested output folder name.
func (f *Facade) BuildCoverLetter(ctx context.Context) (string, string, error) {
	if f.job == nil {
		return "", "", ErrNoJob
	}

	r := f.opts.Resume
	sections := []section{
		headerSection,
		{
			name: "cover_letter",
			prompt: func(*types.Resume, string) (string, error) {
				return prompts.Render(prompts.CoverLetterFile, "cover-letter", map[string]string{
					"Company":        f.job.Company,
					"Role":           f.job.Role,
					"JobDescription": f.job.Summary(),
					"Resume":         r.Sections(coverLetterResumeKeys...),
				})
			},
		},
	}
	fragments, err := f.generate(ctx, sections, "")
	if err != nil {
		return "", "", err
	}

	signature, err := prompts.Render(prompts.CoverLetterFile, "signature", map[string]string{"Name": r.FullName()})
	if err != nil {
		return "", "", err
	}
	fragments = append(fragments, signature)

	pdf, err := f.print(ctx, r.FullName()+" - Cover Letter", fragments)
	if err != nil {
		return "", "", err
	}
	return pdf, SuggestedName(f.job), nil
}

func (f *Facade) resume(ctx context.Context, job *types.Job) (string, error) {
	jobContext := ""
	if job != nil {
		var err error
		jobContext, err = prompts.Render(prompts.ResumeFile, "job_context", map[string]string{"JobDescription": job.Summary()})
		if err != nil {
			return "", err
		}
	}

	var todo []section
	for _, s := range resumeSections {
		if s.present(f.opts.Resume) {
			todo = append(todo, s)
		}
	}

	fragments, err := f.generate(ctx, todo, jobContext)
	if err != nil {
		return "", err
	}
	return f.print(ctx, f.opts.Resume.FullName()+" - Resume", fragments)
}

// generate asks the LLM for every section concurrently and returns the
// cleaned fragments in section order.
func (f *Facade) generate(ctx context.Context, sections []section, jobContext string) ([]string, error) {
	out := make([]string, len(sections))
	g, gctx := errgroup.WithContext(ctx)
	if f.opts.Concurrency > 0 {
		g.SetLimit(f.opts.Concurrency)
	}

	for i, s := range sections {
		i, s := i, s
		g.Go(func() error {
			prompt, err := s.prompt(f.opts.Resume, jobContext)
			if err != nil {
				return err
			}
			f.opts.Logger.Debug("generating section", "section", s.name)
			raw, err := f.opts.LLM.GenerateContent(gctx, prompt, llm.TierAdvanced)
			if err != nil {
				return &SectionError{Section: s.name, Cause: err}
			}
			out[i] = rendering.CleanFragment(llm.CleanHTMLBlock(raw))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (f *Facade) print(ctx context.Context, title string, fragments []string) (string, error) {
	css, err := f.opts.Styles.CSS()
	if err != nil {
		return "", err
	}
	html, err := rendering.RenderDocument(rendering.Document{
		Title: strings.TrimPrefix(title, " - "),
		CSS:   css,
		Body:  rendering.Fragments(fragments...),
	})
	if err != nil {
		return "", err
	}

	pdf, err := f.opts.Renderer.PrintToPDF(ctx, html)
	if err != nil {
		return "", err
	}
	f.opts.Logger.Debug("document printed", "title", title, "bytes", len(pdf))
	return base64.StdEncoding.EncodeToString(pdf), nil
}

// SectionError wraps an LLM failure for one section.
type SectionError struct {
	Section string
	Cause   error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("failed to generate %s section: %v", e.Section, e.Cause)
}

func (e *SectionError) Unwrap() error {
	return e.Cause
}
