// Package ingestion downloads a job posting and turns it into a parsed job.
package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonathan/resume-builder/internal/fetch"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/jonathan/resume-builder/internal/types"
)

// MinContentLength is the shortest extracted text accepted without trying
// the headless browser.
const MinContentLength = 500

// ErrNoContent is returned when no text could be extracted from the page.
var ErrNoContent = errors.New("no job description text found")

// BrowserRenderer renders script-driven pages.
type BrowserRenderer interface {
	RenderHTML(ctx context.Context, url string) (string, error)
}

// Ingester fetches postings over HTTP and falls back to a browser for
// pages that only render client side.
type Ingester struct {
	Fetcher  *fetch.Client
	Renderer BrowserRenderer // optional
	LLM      llm.Client
	Logger   *slog.Logger

	MinContentLength int
}

// FromURL returns the cleaned posting text behind url.
func (in *Ingester) FromURL(ctx context.Context, url string) (*Posting, error) {
	log := in.logger()
	url = strings.TrimSpace(url)
	if err := fetch.ValidateURL(url); err != nil {
		return nil, err
	}

	platform := fetch.DetectPlatform(url)
	log.Debug("fetching job posting", "url", url, "platform", string(platform))

	fetcher := in.Fetcher
	if fetcher == nil {
		fetcher = fetch.NewClient(0)
	}

	var text, title string
	page, fetchErr := fetcher.Get(ctx, url)
	if fetchErr == nil {
		extracted, err := fetch.JobText(page.HTML, url)
		if err != nil {
			return nil, fmt.Errorf("failed to extract job posting: %w", err)
		}
		text = CleanText(extracted)
		title = fetch.Title(page.HTML)
		log.Debug("extracted job posting", "chars", len(text))
	} else {
		log.Warn("HTTP fetch failed", "url", url, "error", fetchErr)
	}

	if len(text) >= in.minLength() {
		return newPosting(url, platform, title, text, false), nil
	}

	if in.Renderer == nil {
		if fetchErr != nil {
			return nil, fetchErr
		}
		if text == "" {
			return nil, ErrNoContent
		}
		return newPosting(url, platform, title, text, false), nil
	}

	log.Debug("content too short, rendering in browser", "chars", len(text), "min", in.minLength())
	html, err := in.Renderer.RenderHTML(ctx, url)
	if err != nil {
		if text != "" {
			log.Warn("browser rendering failed, using fetched text", "error", err)
			return newPosting(url, platform, title, text, false), nil
		}
		if fetchErr != nil {
			return nil, errors.Join(fetchErr, err)
		}
		return nil, err
	}

	extracted, err := fetch.JobText(html, url)
	if err != nil {
		return nil, fmt.Errorf("failed to extract rendered job posting: %w", err)
	}
	rendered := CleanText(extracted)
	if len(rendered) <= len(text) {
		if text == "" {
			return nil, ErrNoContent
		}
		return newPosting(url, platform, title, text, false), nil
	}
	if t := fetch.Title(html); t != "" {
		title = t
	}
	return newPosting(url, platform, title, rendered, true), nil
}

// Job fetches url and parses the posting with the LLM.
func (in *Ingester) Job(ctx context.Context, url string) (*types.Job, error) {
	if in.LLM == nil {
		return nil, errors.New("ingester has no LLM client")
	}
	posting, err := in.FromURL(ctx, url)
	if err != nil {
		return nil, err
	}

	text := posting.Text
	if posting.Title != "" {
		text = "Page title: " + posting.Title + "\n\n" + text
	}
	job, err := parsing.ParseJob(ctx, in.LLM, text, posting.URL)
	if err != nil {
		return nil, err
	}
	in.logger().Info("parsed job description", "company", job.Company, "role", job.Role, "platform", string(posting.Platform))
	return job, nil
}

func (in *Ingester) minLength() int {
	if in.MinContentLength > 0 {
		return in.MinContentLength
	}
	return MinContentLength
}

func (in *Ingester) logger() *slog.Logger {
	if in.Logger != nil {
		return in.Logger
	}
	return slog.Default()
}
