// Package dispatch runs the selected document flow and saves its PDF.
package dispatch

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/actions"
	"github.com/jonathan/resume-builder/internal/files"
	"github.com/jonathan/resume-builder/internal/prompt"
	"github.com/jonathan/resume-builder/internal/styles"
)

const jobURLPrompt = "Please enter the URL of the job description:"

// Facade builds documents. Every build returns the PDF as base64 text;
// job flows also return the suggested output subdirectory.
type Facade interface {
	BuildResume(ctx context.Context) (string, error)
	LinkToJob(ctx context.Context, url string) error
	BuildTailoredResume(ctx context.Context) (string, string, error)
	BuildCoverLetter(ctx context.Context) (string, string, error)
}

// FacadeOptions is what a Facade is built from.
type FacadeOptions struct {
	APIKey     string
	ResumeText string
	Styles     *styles.Manager
}

// FacadeFactory creates a Facade and a cleanup func that releases it.
type FacadeFactory func(ctx context.Context, opts FacadeOptions) (Facade, func(), error)

// Request is one run of the tool.
type Request struct {
	Action   actions.Action
	Params   files.Parameters
	APIKey   string
	Style    string
	JobURL   string
	Filename string
}

// Dispatcher routes a Request to the matching flow.
type Dispatcher struct {
	Prompter  prompt.Prompter
	NewStyles func() (*styles.Manager, error)
	NewFacade FacadeFactory
	Logger    *slog.Logger
	Now       func() time.Time

	// Saved, when set, is told about every written document.
	Saved func(path string, size int)
}

type flow struct {
	action  actions.Action
	start   string
	intro   string
	noun    string
	tailors bool
}

var flows = map[actions.Action]flow{
	actions.ActionResume: {
		start: "Crafting a standout professional resume...",
		intro: "Generating a CV based on provided parameters.",
		noun:  "Resume",
	},
	actions.ActionJob: {
		start:   "Customizing your resume to enhance your job application...",
		intro:   "Generating a job-tailored CV based on provided parameters.",
		noun:    "Resume",
		tailors: true,
	},
	actions.ActionCover: {
		start:   "Designing a personalized cover letter to enhance your job application...",
		intro:   "Generating a cover letter based on provided parameters.",
		noun:    "Cover letter",
		tailors: true,
	},
}

// Run executes req. An empty action is logged and ignored.
func (d *Dispatcher) Run(ctx context.Context, req Request) error {
	f, ok := flows[req.Action]
	if !ok {
		if req.Action == actions.None {
			d.logger().Warn("No actions selected. Nothing to execute.")
			return nil
		}
		return fmt.Errorf("unsupported action %q", req.Action)
	}
	f.action = req.Action

	d.logger().Info(f.start)
	if err := d.run(ctx, f, req); err != nil {
		d.logger().Error("failed to build document", "action", string(req.Action), "error", err)
		return err
	}
	return nil
}

func (d *Dispatcher) run(ctx context.Context, f flow, req Request) error {
	log := d.logger()
	log.Info(f.intro)

	resumeText, err := readResume(req.Params.ResumePath())
	if err != nil {
		return err
	}

	manager, err := d.newStyles()
	if err != nil {
		return fmt.Errorf("failed to load styles: %w", err)
	}
	style := styles.Resolve(req.Style, manager, d.Prompter, log)

	jobURL := req.JobURL
	if f.tailors && jobURL == "" {
		jobURL, err = d.askJobURL()
		if err != nil {
			return err
		}
	}

	facade, cleanup, err := d.NewFacade(ctx, FacadeOptions{
		APIKey:     req.APIKey,
		ResumeText: resumeText,
		Styles:     manager,
	})
	if err != nil {
		return fmt.Errorf("failed to create document builder: %w", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	var encoded, suggested string
	switch f.action {
	case actions.ActionResume:
		encoded, err = facade.BuildResume(ctx)
	case actions.ActionJob, actions.ActionCover:
		if err = facade.LinkToJob(ctx, jobURL); err != nil {
			return fmt.Errorf("failed to load job description: %w", err)
		}
		if f.action == actions.ActionJob {
			encoded, suggested, err = facade.BuildTailoredResume(ctx)
		} else {
			encoded, suggested, err = facade.BuildCoverLetter(ctx)
		}
	}
	if err != nil {
		return err
	}

	pdf, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		log.Error("Error decoding Base64", "error", err)
		return &DecodeError{Action: string(f.action), Cause: err}
	}

	dir := req.Params.OutputDir
	if suggested != "" {
		if !filepath.IsLocal(suggested) {
			log.Error("Error creating output directory", "suggested", suggested, "error", ErrUnsafeSubdir)
			return &WriteError{Path: suggested, Cause: ErrUnsafeSubdir}
		}
		dir = filepath.Join(dir, suggested)
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Error("Error creating output directory", "path", dir, "error", err)
			return &WriteError{Path: dir, Cause: err}
		}
	}

	path := filepath.Join(dir, OutputFilename(f.action, style, req.Filename, d.now()))
	if err := os.WriteFile(path, pdf, 0644); err != nil {
		log.Error("Error writing file", "path", path, "error", err)
		return &WriteError{Path: path, Cause: err}
	}

	log.Info(f.noun+" saved", "path", path, "bytes", len(pdf))
	if d.Saved != nil {
		d.Saved(path, len(pdf))
	}
	return nil
}

func (d *Dispatcher) askJobURL() (string, error) {
	if d.Prompter == nil {
		return "", ErrNoJobURL
	}
	answer, err := d.Prompter.Input(jobURLPrompt)
	if err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			return "", ErrNoJobURL
		}
		return "", fmt.Errorf("job URL prompt failed: %w", err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", ErrNoJobURL
	}
	return answer, nil
}

func readResume(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &files.NotFoundError{Kind: files.KindFileMissing, Path: path}
		}
		return "", fmt.Errorf("failed to read resume %s: %w", path, err)
	}
	return string(data), nil
}

// OutputFilename returns custom when set, otherwise
// "<action>_<style>_<YYYYMMDD_HHMMSS>.pdf".
func OutputFilename(action actions.Action, style, custom string, now time.Time) string {
	if custom != "" {
		return custom
	}
	return fmt.Sprintf("%s_%s_%s.pdf", action.ShortName(), style, now.Format("20060102_150405"))
}

func (d *Dispatcher) newStyles() (*styles.Manager, error) {
	if d.NewStyles != nil {
		return d.NewStyles()
	}
	return styles.NewManager()
}

func (d *Dispatcher) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

func (d *Dispatcher) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
