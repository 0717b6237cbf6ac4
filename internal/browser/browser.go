// Package browser drives a headless Chrome to render pages and print PDFs.
package browser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single render or print.
const DefaultTimeout = 60 * time.Second

// A4 paper in inches.
const (
	paperWidth  = 8.27
	paperHeight = 11.69
)

// Options configures a Session.
type Options struct {
	Timeout time.Duration
	// ExecPath overrides the Chrome binary; empty uses the one on PATH.
	ExecPath string
	// Settle is how long RenderHTML waits for scripts after load.
	Settle time.Duration
	Logger *slog.Logger
}

// Session owns one headless browser process.
type Session struct {
	opts        Options
	allocCancel context.CancelFunc
	ctx         context.Context
	cancel      context.CancelFunc
}

// New starts a headless browser. Close must be called to stop it.
func New(ctx context.Context, opts Options) (*Session, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Settle <= 0 {
		opts.Settle = 2 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("hide-scrollbars", true),
	)
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	browserCtx, cancel := chromedp.NewContext(allocCtx)

	// an empty Run launches the browser so startup failures surface here
	if err := chromedp.Run(browserCtx); err != nil {
		cancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	opts.Logger.Debug("browser started")
	return &Session{opts: opts, allocCancel: allocCancel, ctx: browserCtx, cancel: cancel}, nil
}

// tab opens a new tab bound to both the session and ctx.
func (s *Session) tab(ctx context.Context) (context.Context, context.CancelFunc) {
	tabCtx, tabCancel := chromedp.NewContext(s.ctx)
	tabCtx, timeoutCancel := context.WithTimeout(tabCtx, s.opts.Timeout)
	stop := context.AfterFunc(ctx, timeoutCancel)
	return tabCtx, func() {
		stop()
		timeoutCancel()
		tabCancel()
	}
}

// PrintToPDF loads html into a blank page and prints it on A4 paper.
func (s *Session) PrintToPDF(ctx context.Context, html string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tabCtx, cancel := s.tab(ctx)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print PDF: %w", err)
	}

	s.opts.Logger.Debug("printed PDF", "bytes", len(pdf))
	return pdf, nil
}

// RenderHTML navigates to url, lets scripts run and returns the page HTML.
func (s *Session) RenderHTML(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	tabCtx, cancel := s.tab(ctx)
	defer cancel()

	s.opts.Logger.Debug("rendering page", "url", url)
	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(s.opts.Settle),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// cookie banners; absence is fine
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible, chromedp.AtLeast(0)).Do(ctx)
			return nil
		}),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	s.opts.Logger.Debug("rendered page", "url", url, "bytes", len(html))
	return html, nil
}

// Close stops the browser.
func (s *Session) Close() {
	s.cancel()
	s.allocCancel()
}
