package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jonathan/resume-builder/internal/actions"
	"github.com/jonathan/resume-builder/internal/builder"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/dispatch"
	"github.com/jonathan/resume-builder/internal/files"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/prompt"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/spf13/cobra"
)

const configGuideHint = "Refer to the configuration guide for troubleshooting: " +
	"https://github.com/jonathan/resume-builder?tab=readme-ov-file#configuration"

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Generate resumes and cover letters as PDF",
	Long: "resume_builder reads the documents in the data folder and builds a resume, " +
		"a job-tailored resume or a cover letter, saved as PDF under <data-dir>/output.",
	SilenceUsage:      true,
	PersistentPreRunE: bindSettings,
	PreRunE:           checkChoices,
	RunE:              runRoot,
}

var settingsViper = config.NewViper()

var (
	rootAction   string
	rootStyle    string
	rootJobURL   string
	rootFilename string
)

func init() {
	rootCmd.Flags().StringVar(&rootAction, "action", "", "Action to perform: "+strings.Join(actions.IDs(), ", "))
	rootCmd.Flags().StringVar(&rootStyle, "style", "", "Style to apply: "+strings.Join(styles.Allowed(), ", "))
	rootCmd.Flags().StringVar(&rootJobURL, "job-url", "", "Job description URL for job and cover actions")
	rootCmd.Flags().StringVar(&rootFilename, "filename", "", "Custom output file name")

	pf := rootCmd.PersistentFlags()
	pf.String("data-dir", "data_folder", "Folder holding secrets.yaml, work_preferences.yaml and plain_text_resume.yaml")
	pf.String("llm-provider", "gemini", "LLM provider (gemini or openai)")
	pf.String("llm-model", "", "Model used for every tier (defaults to the provider's models)")
	pf.BoolP("verbose", "v", false, "Print detailed debug information")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")
}

// bindSettings wires the persistent flags into viper so flag values win
// over RESUME_BUILDER_* environment variables.
func bindSettings(cmd *cobra.Command, _ []string) error {
	for key, flag := range map[string]string{
		"data_dir":     "data-dir",
		"llm_provider": "llm-provider",
		"llm_model":    "llm-model",
		"verbose":      "verbose",
		"log_level":    "log-level",
	} {
		if err := settingsViper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", flag, err)
		}
	}
	return nil
}

// checkChoices rejects --action and --style values outside their fixed sets.
func checkChoices(_ *cobra.Command, _ []string) error {
	if rootAction != "" {
		if _, ok := actions.Parse(rootAction); !ok {
			return fmt.Errorf("invalid value %q for --action (choose from %s)", rootAction, strings.Join(actions.IDs(), ", "))
		}
	}
	if rootStyle != "" && !styles.IsAllowed(rootStyle) {
		return fmt.Errorf("invalid value %q for --style (choose from %s)", rootStyle, strings.Join(styles.Allowed(), ", "))
	}
	return nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(settingsViper)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), settings)

	app := &app{
		settings: settings,
		logger:   logger,
		out:      cmd.OutOrStdout(),
		prompter: prompt.NewTerminal(nil, nil),
		newFacade: builder.NewFactory(builder.FactoryConfig{
			LLM:            llm.ConfigFor(settings.LLMProvider, settings.LLMModel),
			BrowserTimeout: settings.BrowserTimeout,
			FetchTimeout:   settings.FetchTimeout,
			UseBrowser:     settings.UseBrowser,
			Logger:         logger,
		}),
	}
	report(logger, app.run(cmd.Context(), invocation{
		action:   rootAction,
		style:    rootStyle,
		jobURL:   rootJobURL,
		filename: rootFilename,
	}))
	return nil
}

// invocation is the per-run choice made on the command line.
type invocation struct {
	action   string
	style    string
	jobURL   string
	filename string
}

type app struct {
	settings  *config.Settings
	logger    *slog.Logger
	out       io.Writer
	prompter  prompt.Prompter
	newFacade dispatch.FacadeFactory
}

func (a *app) run(ctx context.Context, inv invocation) error {
	paths, err := files.Resolve(a.settings.DataDir)
	if err != nil {
		return err
	}

	prefs, err := config.ValidateConfig(paths.Config)
	if err != nil {
		return err
	}
	apiKey, err := config.ValidateSecrets(paths.Secrets)
	if err != nil {
		return err
	}

	params, err := files.NewParameters(prefs, paths)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(a.out)
	if a.settings.Verbose {
		printer.PrintPreferences(prefs)
	}

	action := actions.Select(inv.action, a.prompter, a.logger)

	d := &dispatch.Dispatcher{
		Prompter:  a.prompter,
		NewFacade: a.newFacade,
		Logger:    a.logger,
	}
	if a.settings.Verbose {
		d.Saved = printer.PrintResult
	}
	return d.Run(ctx, dispatch.Request{
		Action:   action,
		Params:   params,
		APIKey:   apiKey,
		Style:    inv.style,
		JobURL:   inv.jobURL,
		Filename: inv.filename,
	})
}

// report logs a run failure. Configuration and data folder problems are
// reported with a hint and do not change the exit status.
func report(logger *slog.Logger, err error) {
	if err == nil {
		return
	}

	var cfgErr *config.Error
	var nfErr *files.NotFoundError
	switch {
	case errors.As(err, &cfgErr):
		logger.Error("Configuration error", "error", err)
		logger.Error(configGuideHint)
	case errors.As(err, &nfErr):
		logger.Error("File not found", "error", err)
		logger.Error("Ensure all required files are present in the data folder: " +
			strings.Join(files.RequiredFiles(), ", "))
	default:
		logger.Error("unexpected error", "error", err)
	}
}

// newLogger builds the run logger. --verbose wins over --log-level.
func newLogger(w io.Writer, settings *config.Settings) *slog.Logger {
	if settings.Verbose {
		return logging.New(w, true)
	}
	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return logging.NewWithLevel(w, level)
}
