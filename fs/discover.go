// Package fs provides file system access for confession documents:
// discovery, change notification and markdown export.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/confindex"
)

// ignoredFiles are site pages that sit next to the confessions but are
// not confessions themselves.
var ignoredFiles = map[string]bool{
	"index.html":   true,
	"privacy.html": true,
	"terms.html":   true,
}

// IsDocument reports whether path names a confession document.
func IsDocument(path string) bool {
	name := filepath.Base(path)
	return strings.EqualFold(filepath.Ext(name), ".html") && !ignoredFiles[strings.ToLower(name)]
}

// Discover returns the documents to index at path. A file is returned as
// is unless it is one of the ignored site pages; a directory yields its
// documents sorted by name. Subdirectories are not searched.
func Discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, confindex.Errorf(confindex.ENOTFOUND, "path %q not found", path)
	}
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !strings.EqualFold(filepath.Ext(path), ".html") {
			return nil, confindex.Errorf(confindex.EINVALID, "%q is not an HTML file", path)
		}
		if !IsDocument(path) {
			return nil, nil
		}
		return []string{path}, nil
	}

	// ReadDir returns entries sorted by file name.
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !IsDocument(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(path, e.Name()))
	}
	return paths, nil
}
