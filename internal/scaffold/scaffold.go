// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Scaffold templates for freshly initialized projects

package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sony-level/projspace/pkg/linefilter"
)

// Template describes the files laid down in a freshly initialized project.
type Template struct {
	Files []File `yaml:"files"`
}

// File is one scaffolded file. Content is written verbatim. IgnoreFrom
// names a plain-text pattern file whose non-comment lines become the
// content, one pattern per line.
type File struct {
	Path       string `yaml:"path"`
	Content    string `yaml:"content,omitempty"`
	IgnoreFrom string `yaml:"ignore_from,omitempty"`
}

// keepPattern drops blank lines and comments from ignore sources.
var keepPattern linefilter.Predicate = func(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && !strings.HasPrefix(trimmed, "#")
}

// Default returns the built-in template: an empty README and ignore file.
func Default() *Template {
	return &Template{
		Files: []File{
			{Path: "README.md"},
			{Path: ".gitignore"},
		},
	}
}

// Load parses a YAML template manifest.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	var tpl Template
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}

	if len(tpl.Files) == 0 {
		return nil, fmt.Errorf("template %s lists no files", path)
	}
	for _, f := range tpl.Files {
		if f.Path == "" || !filepath.IsLocal(f.Path) {
			return nil, fmt.Errorf("template %s has invalid file path %q", path, f.Path)
		}
	}

	return &tpl, nil
}

// Apply writes the template files into dir. Files already present are
// left untouched, so a template can never clobber cloned content.
func (t *Template) Apply(dir string) error {
	for _, f := range t.Files {
		target := filepath.Join(dir, f.Path)

		if _, err := os.Stat(target); err == nil {
			continue
		}

		content := f.Content
		if f.IgnoreFrom != "" {
			patterns, err := linefilter.ReadLines(f.IgnoreFrom, keepPattern)
			if err != nil {
				return fmt.Errorf("failed to load ignore patterns for %s: %w", f.Path, err)
			}
			if len(patterns) > 0 {
				content = strings.Join(patterns, "\n") + "\n"
			}
		}

		if parent := filepath.Dir(target); parent != dir {
			if err := os.MkdirAll(parent, 0755); err != nil {
				return fmt.Errorf("failed to create directory for %s: %w", f.Path, err)
			}
		}
		if err := os.WriteFile(target, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
	}

	return nil
}
