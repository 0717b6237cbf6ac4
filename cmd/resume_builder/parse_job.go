package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/browser"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/fetch"
	"github.com/jonathan/resume-builder/internal/files"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Fetch a job posting and print its parsed description",
	Long:  "Download the job posting at --url, extract its text and parse it with the configured LLM into the structured job description used for tailoring.",
	RunE:  runParseJob,
}

var (
	parseJobURL    string
	parseJobOut    string
	parseJobAPIKey string
)

func init() {
	parseJobCmd.Flags().StringVar(&parseJobURL, "url", "", "Job posting URL (required)")
	parseJobCmd.Flags().StringVarP(&parseJobOut, "out", "o", "", "Write the parsed job as JSON to this file")
	parseJobCmd.Flags().StringVar(&parseJobAPIKey, "api-key", "", "LLM API key (overrides secrets.yaml)")
	if err := parseJobCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}

	rootCmd.AddCommand(parseJobCmd)
}

func runParseJob(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(settingsViper)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), settings)
	ctx := cmd.Context()

	apiKey := parseJobAPIKey
	if apiKey == "" {
		paths, err := files.Resolve(settings.DataDir)
		if err != nil {
			report(logger, err)
			return nil
		}
		if apiKey, err = config.ValidateSecrets(paths.Secrets); err != nil {
			report(logger, err)
			return nil
		}
	}

	client, err := llm.NewClient(ctx, llm.ConfigFor(settings.LLMProvider, settings.LLMModel), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	ingester := &ingestion.Ingester{
		Fetcher: fetch.NewClient(settings.FetchTimeout),
		LLM:     client,
		Logger:  logger,
	}
	if settings.UseBrowser {
		session, err := browser.New(ctx, browser.Options{Timeout: settings.BrowserTimeout, Logger: logger})
		if err != nil {
			logger.Warn("headless browser unavailable, using HTTP only", "error", err)
		} else {
			defer session.Close()
			ingester.Renderer = session
		}
	}

	job, err := ingester.Job(ctx, parseJobURL)
	if err != nil {
		return fmt.Errorf("failed to parse job posting: %w", err)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintJob(job)

	if parseJobOut != "" {
		data, err := json.MarshalIndent(job, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(parseJobOut, data, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", parseJobOut)
	}
	return nil
}
