// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Identifier kinds and patterns

package vcs

import "regexp"

// Identifier kind constants
const (
	KindInvalid = "invalid"
	KindName    = "name"
	KindURL     = "url"
)

var (
	// Bare project names: alphanumerics, hyphens and underscores only
	namePattern = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)
	// Remote repository URLs: http, https or git scheme
	urlPattern = regexp.MustCompile(`^(?:https?|git)://\S+$`)
)
