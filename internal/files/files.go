// Package files locates the user's data folder and the documents it must contain.
package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/config"
)

// Names of the documents expected in the data folder.
const (
	SecretsFile         = "secrets.yaml"
	WorkPreferencesFile = "work_preferences.yaml"
	PlainTextResumeFile = "plain_text_resume.yaml"
	OutputDir           = "output"

	// PlainTextResumeKey is the uploads entry pointing at the resume source.
	PlainTextResumeKey = "plainTextResume"
)

var requiredFiles = [...]string{SecretsFile, WorkPreferencesFile, PlainTextResumeFile}

// RequiredFiles returns the file names every data folder must contain.
func RequiredFiles() []string {
	return append([]string(nil), requiredFiles[:]...)
}

// Paths are the resolved locations inside a data folder.
type Paths struct {
	Secrets string
	Config  string
	Resume  string
	Output  string
}

// Resolve checks dataDir and its required files and creates the output folder.
// Every missing file is reported, not only the first.
func Resolve(dataDir string) (*Paths, error) {
	info, err := os.Stat(dataDir)
	if err != nil || !info.IsDir() {
		return nil, &NotFoundError{Kind: KindDirectoryMissing, Path: dataDir}
	}

	var missing []string
	for _, name := range requiredFiles {
		if _, err := os.Stat(filepath.Join(dataDir, name)); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &NotFoundError{Kind: KindFilesMissing, Path: dataDir, Missing: missing}
	}

	output := filepath.Join(dataDir, OutputDir)
	if err := os.MkdirAll(output, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", output, err)
	}

	return &Paths{
		Secrets: filepath.Join(dataDir, SecretsFile),
		Config:  filepath.Join(dataDir, WorkPreferencesFile),
		Resume:  filepath.Join(dataDir, PlainTextResumeFile),
		Output:  output,
	}, nil
}

// Uploads maps the plain text resume key to its path after re-checking it exists.
func Uploads(resumePath string) (map[string]string, error) {
	if _, err := os.Stat(resumePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Kind: KindFileMissing, Path: resumePath}
		}
		return nil, fmt.Errorf("failed to stat %s: %w", resumePath, err)
	}
	return map[string]string{PlainTextResumeKey: resumePath}, nil
}

// Parameters is the validated input threaded into the dispatch stage.
// It is built once per run and not modified afterwards.
type Parameters struct {
	Preferences *config.WorkPreferences
	Uploads     map[string]string
	OutputDir   string
}

// NewParameters bundles validated preferences with the uploads and output folder.
func NewParameters(prefs *config.WorkPreferences, paths *Paths) (Parameters, error) {
	uploads, err := Uploads(paths.Resume)
	if err != nil {
		return Parameters{}, err
	}
	return Parameters{
		Preferences: prefs,
		Uploads:     uploads,
		OutputDir:   paths.Output,
	}, nil
}

// ResumePath returns the plain text resume location.
func (p Parameters) ResumePath() string {
	return p.Uploads[PlainTextResumeKey]
}
