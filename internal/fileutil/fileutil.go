// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "preview" -> false (name)
//   - "./custom.css" -> true (relative path)
//   - "/absolute/path.css" -> true (absolute)
//   - "my-style" -> false (hyphenated name)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsCSS returns true if the string looks like raw CSS content rather than a
// style name or path. A declaration block ({) is the tell.
func IsCSS(s string) bool {
	return strings.Contains(s, "{")
}

// IsMarkdownFile returns true for .md and .markdown files.
func IsMarkdownFile(path string) bool {
	switch filepath.Ext(path) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// IsHTMLFile returns true for .html and .htm files.
func IsHTMLFile(path string) bool {
	switch filepath.Ext(path) {
	case ".html", ".htm":
		return true
	}
	return false
}
