package unit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ArtifactKind distinguishes the two generated file types
type ArtifactKind string

const (
	ArtifactService ArtifactKind = "service"
	ArtifactTimer   ArtifactKind = "timer"
)

// Artifact records one unit file that was written to disk
type Artifact struct {
	Kind ArtifactKind
	Path string
}

// CreateAndWrite writes content to path, creating the file or silently
// truncating an existing one. Directory creation, permissions, and
// overwrite policy are intentionally not managed here.
func CreateAndWrite(path, content string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create unit file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("failed to write unit file %s: %w", path, err)
	}
	return nil
}

// ServicePath returns the output path of the .service file for o
func (o *Options) ServicePath() string {
	return filepath.Join(o.OutputDir, o.Name+".service")
}

// TimerPath returns the output path of the .timer file for o
func (o *Options) TimerPath() string {
	return filepath.Join(o.OutputDir, o.Name+".timer")
}

// Generate validates o, renders the requested artifacts, and writes each
// one under o.OutputDir. The service and timer files are written
// independently: a failure on one does not stop the other, and files
// already written are not rolled back. The returned artifacts are the
// files that were actually written, even when an error is also returned.
func Generate(o *Options) ([]Artifact, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var (
		written []Artifact
		errs    []error
	)

	servicePath := o.ServicePath()
	if err := CreateAndWrite(servicePath, RenderService(o)); err != nil {
		errs = append(errs, err)
	} else {
		written = append(written, Artifact{Kind: ArtifactService, Path: servicePath})
	}

	if o.TimerEnabled {
		timerPath := o.TimerPath()
		if err := CreateAndWrite(timerPath, RenderTimer(o)); err != nil {
			errs = append(errs, err)
		} else {
			written = append(written, Artifact{Kind: ArtifactTimer, Path: timerPath})
		}
	}

	return written, errors.Join(errs...)
}
