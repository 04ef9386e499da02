// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Console action reporting

package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	green = color.New(color.FgHiGreen).SprintFunc()
	red   = color.New(color.FgHiRed).SprintFunc()
)

// ConsoleReporter prints one action line per artifact: "add +" when an
// artifact is created, "clean -" when one is removed. Color is dropped
// automatically when stdout is not a terminal.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a reporter writing to out.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// Added reports a created artifact.
func (r *ConsoleReporter) Added(path string) {
	fmt.Fprintf(r.out, "%s %s\n", green("add +"), path)
}

// Removed reports a removed artifact.
func (r *ConsoleReporter) Removed(path string) {
	fmt.Fprintf(r.out, "%s %s\n", red("clean -"), path)
}
