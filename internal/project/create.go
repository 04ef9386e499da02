// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Project creation: init a fresh repository or clone a remote one

package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/sony-level/projspace/internal/config"
	"github.com/sony-level/projspace/internal/vcs"
	"github.com/sony-level/projspace/internal/workspace"
)

// Create scaffolds the project named by identifier. A bare name gets a
// fresh directory with an initialized repository and template files; a URL
// gets cloned under its derived name. The workspace descriptor is written
// only after init/clone succeeds, so it never points at an absent or
// half-populated directory. Returns the resolved project name.
func Create(ctx context.Context, cfg *config.Config, identifier string, opts Options) (string, error) {
	opts = opts.withDefaults()

	kind := vcs.Classify(identifier)
	name := identifier
	if kind == vcs.KindURL {
		derived, err := vcs.DeriveName(identifier)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidIdentifier, err)
		}
		name = derived
	} else if kind != vcs.KindName {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, identifier)
	}

	projectDir := cfg.ProjectDir(name)
	descriptorPath := workspace.FilePath(cfg.Workspace, name)

	slog.Debug("creating project", "name", name, "kind", kind, "dir", projectDir)

	// Pre-check before any mutation.
	if _, err := os.Stat(projectDir); err == nil {
		return name, fmt.Errorf("%w: %s", ErrExists, name)
	} else if !errors.Is(err, os.ErrNotExist) {
		return name, fmt.Errorf("failed to stat %s: %w", projectDir, err)
	}

	switch kind {
	case vcs.KindName:
		if err := os.MkdirAll(projectDir, 0755); err != nil {
			return name, fmt.Errorf("failed to create %s: %w", projectDir, err)
		}
		if err := vcs.Init(projectDir); err != nil {
			_ = os.RemoveAll(projectDir)
			return name, err
		}
		if err := opts.Template.Apply(projectDir); err != nil {
			return name, err
		}
	case vcs.KindURL:
		if err := vcs.Clone(ctx, identifier, projectDir, opts.Progress); err != nil {
			return name, err
		}
	}

	if err := workspace.New(projectDir, name).Write(descriptorPath); err != nil {
		return name, err
	}

	opts.Reporter.Added(projectDir)
	opts.Reporter.Added(descriptorPath)

	return name, nil
}
