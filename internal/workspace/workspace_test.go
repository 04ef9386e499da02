// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Workspace descriptor tests

package workspace_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sony-level/projspace/internal/workspace"
)

func TestFilePath(t *testing.T) {
	got := workspace.FilePath("/w", "foo")
	want := filepath.Join("/w", "foo.code-workspace")
	if got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foo.code-workspace")

	desc := workspace.New("/r/foo", "foo")
	if err := desc.Write(path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read descriptor: %v", err)
	}

	var decoded workspace.Descriptor
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Descriptor is not valid JSON: %v", err)
	}

	if len(decoded.Folders) != 1 {
		t.Fatalf("Folders = %d, want 1", len(decoded.Folders))
	}
	if decoded.Folders[0].Path != "/r/foo" {
		t.Errorf("Folders[0].Path = %q, want %q", decoded.Folders[0].Path, "/r/foo")
	}
	if decoded.Folders[0].Name != "foo" {
		t.Errorf("Folders[0].Name = %q, want %q", decoded.Folders[0].Name, "foo")
	}
}

func TestWrite_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foo.code-workspace")

	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatalf("Failed to seed stale descriptor: %v", err)
	}

	if err := workspace.New("/r/foo", "foo").Write(path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read descriptor: %v", err)
	}

	var decoded workspace.Descriptor
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Overwritten descriptor is not valid JSON: %v", err)
	}
}

func TestExistsAndRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foo.code-workspace")

	if workspace.Exists(path) {
		t.Error("Exists() = true before Write()")
	}

	if err := workspace.New("/r/foo", "foo").Write(path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !workspace.Exists(path) {
		t.Error("Exists() = false after Write()")
	}

	if err := workspace.Remove(path); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if workspace.Exists(path) {
		t.Error("Exists() = true after Remove()")
	}
}

func TestRemove_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.code-workspace")
	if err := workspace.Remove(path); err == nil {
		t.Error("Remove() on a missing descriptor expected an error")
	}
}
