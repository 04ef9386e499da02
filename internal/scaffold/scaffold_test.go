// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Scaffold template tests

package scaffold_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sony-level/projspace/internal/scaffold"
)

func TestDefault_Apply(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, scaffold.Default().Apply(dir))

	for _, name := range []string{"README.md", ".gitignore"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Equal(t, int64(0), info.Size(), "%s should be empty", name)
	}
}

func TestApply_KeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("# cloned\n"), 0644))

	require.NoError(t, scaffold.Default().Apply(dir))

	data, err := os.ReadFile(readme)
	require.NoError(t, err)
	assert.Equal(t, "# cloned\n", string(data))
}

func TestApply_IgnoreFrom(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(t.TempDir(), "patterns.txt")
	require.NoError(t, os.WriteFile(source, []byte("# build output\n\nnode_modules\ndist\n  \n*.log\n"), 0644))

	tpl := &scaffold.Template{
		Files: []scaffold.File{{Path: ".gitignore", IgnoreFrom: source}},
	}
	require.NoError(t, tpl.Apply(dir))

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, "node_modules\ndist\n*.log\n", string(data))
}

func TestApply_NestedPath(t *testing.T) {
	dir := t.TempDir()

	tpl := &scaffold.Template{
		Files: []scaffold.File{{Path: "docs/index.md", Content: "# docs\n"}},
	}
	require.NoError(t, tpl.Apply(dir))

	data, err := os.ReadFile(filepath.Join(dir, "docs", "index.md"))
	require.NoError(t, err)
	assert.Equal(t, "# docs\n", string(data))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.yaml")
	manifest := `files:
  - path: README.md
    content: "# New project\n"
  - path: .gitignore
`
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0644))

	tpl, err := scaffold.Load(path)
	require.NoError(t, err)
	require.Len(t, tpl.Files, 2)
	assert.Equal(t, "README.md", tpl.Files[0].Path)
	assert.Equal(t, "# New project\n", tpl.Files[0].Content)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", ":\n  - ["},
		{"no files", "files: []\n"},
		{"absolute path", "files:\n  - path: /etc/passwd\n"},
		{"escaping path", "files:\n  - path: ../outside\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "template.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			tpl, err := scaffold.Load(path)
			assert.Nil(t, tpl)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	tpl, err := scaffold.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Nil(t, tpl)
	assert.Error(t, err)
}
