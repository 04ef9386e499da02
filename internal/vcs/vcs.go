// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Identifier classification and name derivation

package vcs

import (
	"fmt"
	"strings"
)

// Classify buckets a command-line identifier as a bare project name, a
// remote repository URL, or invalid. Name wins over URL; a bare name can
// never contain a scheme separator, so the order only fixes priority.
func Classify(identifier string) string {
	if IsProjectName(identifier) {
		return KindName
	}
	if IsRemoteURL(identifier) {
		return KindURL
	}
	return KindInvalid
}

// IsProjectName checks if the identifier is a valid bare project name.
func IsProjectName(identifier string) bool {
	return namePattern.MatchString(identifier)
}

// IsRemoteURL checks if the identifier is a clonable repository URL.
func IsRemoteURL(identifier string) bool {
	return urlPattern.MatchString(identifier)
}

// DeriveName extracts a project name from a repository URL: the last path
// segment with any extension stripped, so ".../org/bar.git" yields "bar".
// The derived name must itself be a valid bare project name.
func DeriveName(url string) (string, error) {
	trimmed := strings.TrimRight(url, "/")
	segment := trimmed[strings.LastIndex(trimmed, "/")+1:]
	name, _, _ := strings.Cut(segment, ".")

	if !IsProjectName(name) {
		return "", fmt.Errorf("cannot derive a project name from %q", url)
	}

	return name, nil
}
