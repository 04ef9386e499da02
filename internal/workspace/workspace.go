// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Workspace descriptor creation and removal

package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FilePath returns the descriptor path for a project name under root.
func FilePath(root, name string) string {
	return filepath.Join(root, name+Extension)
}

// New builds a single-folder descriptor pointing at the project directory.
func New(projectDir, name string) *Descriptor {
	return &Descriptor{
		Folders: []Folder{
			{Path: projectDir, Name: name},
		},
	}
}

// Write serializes the descriptor to path, overwriting any existing file.
// The document is regenerated whole on every write, never patched.
func (d *Descriptor) Write(path string) error {
	data, err := json.MarshalIndent(d, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode workspace descriptor: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write workspace descriptor %s: %w", path, err)
	}

	return nil
}

// Exists checks whether a descriptor file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Remove deletes the descriptor file at path.
func Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove workspace descriptor %s: %w", path, err)
	}
	return nil
}
