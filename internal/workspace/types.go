// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Workspace descriptor types/constants

package workspace

// Extension is the descriptor file suffix recognized by the editor.
const Extension = ".code-workspace"

// Folder is one entry in a descriptor's folder list.
type Folder struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// Descriptor is the editor workspace document grouping project folders.
type Descriptor struct {
	Folders []Folder `json:"folders"`
}
