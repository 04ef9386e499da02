// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Project operation types and sentinels

package project

import (
	"errors"
	"io"

	"github.com/sony-level/projspace/internal/scaffold"
)

// Error classes the CLI maps to exit codes.
var (
	ErrExists            = errors.New("project already exists")
	ErrNotFound          = errors.New("project not found")
	ErrInvalidIdentifier = errors.New("invalid project identifier")
)

// Reporter receives one call per artifact added or removed.
type Reporter interface {
	Added(path string)
	Removed(path string)
}

// Options control project operations. The zero value is usable: default
// template, discarded clone progress, no reporting.
type Options struct {
	Template *scaffold.Template // nil means scaffold.Default()
	Progress io.Writer          // clone progress output, nil means io.Discard
	Reporter Reporter           // nil means no action reporting
}

type nopReporter struct{}

func (nopReporter) Added(string)   {}
func (nopReporter) Removed(string) {}

func (o Options) withDefaults() Options {
	if o.Template == nil {
		o.Template = scaffold.Default()
	}
	if o.Progress == nil {
		o.Progress = io.Discard
	}
	if o.Reporter == nil {
		o.Reporter = nopReporter{}
	}
	return o
}
