// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Predicate-based line filtering over text files

package linefilter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// ErrNotFound is returned when the input file does not exist.
// Callers use it to tell a missing file apart from a file with no matches.
var ErrNotFound = errors.New("file not found")

// Predicate decides whether a line is kept.
// Lines are passed without their trailing newline.
type Predicate func(line string) bool

// All keeps every line. ReadLines falls back to it when given a nil predicate.
func All(string) bool { return true }

// Contains keeps lines containing the given substring.
func Contains(substr string) Predicate {
	return func(line string) bool {
		return strings.Contains(line, substr)
	}
}

// Matches keeps lines matching the regular expression.
func Matches(re *regexp.Regexp) Predicate {
	return func(line string) bool {
		return re.MatchString(line)
	}
}

// Not inverts a predicate.
func Not(p Predicate) Predicate {
	return func(line string) bool {
		return !p(line)
	}
}

// ReadLines reads the file at path and returns the lines for which match
// returns true, in file order, each without its trailing newline. Line
// length is unbounded. A nil predicate keeps all lines. A missing file
// yields a nil slice and an error wrapping ErrNotFound; a file with no
// matching lines yields an empty, non-nil slice.
func ReadLines(path string, match Predicate) ([]string, error) {
	if match == nil {
		match = All
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	lines := []string{}
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			text := strings.TrimSuffix(line, "\n")
			if match(text) {
				lines = append(lines, text)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	return lines, nil
}
