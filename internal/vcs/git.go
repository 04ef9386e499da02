// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Repository init and clone via go-git

package vcs

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-git/v5"
)

// Init creates a fresh non-bare repository in dir. The directory must
// already exist.
func Init(dir string) error {
	if _, err := git.PlainInit(dir, false); err != nil {
		return fmt.Errorf("failed to init repository in %s: %w", dir, err)
	}
	return nil
}

// Clone clones the repository at url into dir. On failure the partial
// clone is removed so no half-populated project directory is left behind.
func Clone(ctx context.Context, url, dir string, progress io.Writer) error {
	opts := &git.CloneOptions{
		URL:      url,
		Progress: progress,
	}

	if _, err := git.PlainCloneContext(ctx, dir, false, opts); err != nil {
		_ = os.RemoveAll(dir)
		return fmt.Errorf("failed to clone %s: %w", url, err)
	}

	return nil
}
