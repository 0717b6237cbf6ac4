package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/files"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the documents in the data folder",
	Long:  "Check that the data folder holds every required file and that work_preferences.yaml and secrets.yaml are well-formed, then print a summary.",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(settingsViper)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), settings)

	prefs, err := validateDataDir(settings.DataDir)
	if err != nil {
		report(logger, err)
		return nil
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintPreferences(prefs)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Data folder %s is valid\n", settings.DataDir)
	return nil
}

func validateDataDir(dir string) (*config.WorkPreferences, error) {
	paths, err := files.Resolve(dir)
	if err != nil {
		return nil, err
	}
	prefs, err := config.ValidateConfig(paths.Config)
	if err != nil {
		return nil, err
	}
	if _, err := config.ValidateSecrets(paths.Secrets); err != nil {
		return nil, err
	}
	if _, err := files.NewParameters(prefs, paths); err != nil {
		return nil, err
	}
	return prefs, nil
}
