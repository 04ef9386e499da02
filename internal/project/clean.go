// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Project cleanup: remove the directory and workspace descriptor

package project

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/sony-level/projspace/internal/config"
	"github.com/sony-level/projspace/internal/vcs"
	"github.com/sony-level/projspace/internal/workspace"
)

// Clean removes the project directory and workspace descriptor for name.
// Either artifact may already be absent; only when both are missing does
// Clean fail with ErrNotFound. A removal failure on one artifact does not
// suppress the attempt on, or the report for, the other.
func Clean(cfg *config.Config, name string, opts Options) error {
	opts = opts.withDefaults()

	if !vcs.IsProjectName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}

	projectDir := cfg.ProjectDir(name)
	descriptorPath := workspace.FilePath(cfg.Workspace, name)

	dirPresent := dirExists(projectDir)
	descPresent := workspace.Exists(descriptorPath)

	slog.Debug("cleaning project", "name", name, "dir", dirPresent, "descriptor", descPresent)

	if !dirPresent && !descPresent {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	var errs []error

	if dirPresent {
		if err := os.RemoveAll(projectDir); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", projectDir, err))
		} else {
			opts.Reporter.Removed(projectDir)
		}
	}

	if descPresent {
		if err := workspace.Remove(descriptorPath); err != nil {
			errs = append(errs, err)
		} else {
			opts.Reporter.Removed(descriptorPath)
		}
	}

	return errors.Join(errs...)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
