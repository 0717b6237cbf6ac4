package builder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonathan/resume-builder/internal/browser"
	"github.com/jonathan/resume-builder/internal/dispatch"
	"github.com/jonathan/resume-builder/internal/fetch"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/types"
)

// FactoryConfig holds what NewFactory needs beyond the per-run options.
type FactoryConfig struct {
	LLM            *llm.Config
	BrowserTimeout time.Duration
	FetchTimeout   time.Duration
	// UseBrowser lets job ingestion render script-driven pages.
	UseBrowser bool
	Logger     *slog.Logger

	// NewLLM and NewRenderer override the real clients, mainly in tests.
	NewLLM      func(ctx context.Context, cfg *llm.Config, apiKey string) (llm.Client, error)
	NewRenderer func(ctx context.Context) (Renderer, func(), error)
}

// NewFactory returns a dispatch.FacadeFactory wiring the LLM client, a
// headless browser session and the job ingester.
func NewFactory(cfg FactoryConfig) dispatch.FacadeFactory {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	newLLM := cfg.NewLLM
	if newLLM == nil {
		newLLM = llm.NewClient
	}
	newRenderer := cfg.NewRenderer
	if newRenderer == nil {
		newRenderer = func(ctx context.Context) (Renderer, func(), error) {
			s, err := browser.New(ctx, browser.Options{Timeout: cfg.BrowserTimeout, Logger: cfg.Logger})
			if err != nil {
				return nil, nil, err
			}
			return s, s.Close, nil
		}
	}

	return func(ctx context.Context, opts dispatch.FacadeOptions) (dispatch.Facade, func(), error) {
		resume, err := types.ParseResume(opts.ResumeText)
		if err != nil {
			return nil, nil, err
		}

		client, err := newLLM(ctx, cfg.LLM, opts.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}

		renderer, closeRenderer, err := newRenderer(ctx)
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}

		ingester := &ingestion.Ingester{
			Fetcher: fetch.NewClient(cfg.FetchTimeout),
			LLM:     client,
			Logger:  cfg.Logger,
		}
		if cfg.UseBrowser {
			if r, ok := renderer.(ingestion.BrowserRenderer); ok {
				ingester.Renderer = r
			}
		}

		facade, err := New(Options{
			LLM:      client,
			Styles:   opts.Styles,
			Renderer: renderer,
			Ingester: ingester,
			Resume:   resume,
			Logger:   cfg.Logger,
		})
		cleanup := func() {
			if closeRenderer != nil {
				closeRenderer()
			}
			if err := client.Close(); err != nil {
				cfg.Logger.Debug("failed to close LLM client", "error", err)
			}
		}
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		return facade, cleanup, nil
	}
}
