// Package catalog lists selectable asset files from a directory.
package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MaxEntries bounds a catalog; entries past the bound are silently dropped.
const MaxEntries = 256

// Extension sets for the two asset kinds served by this plugin.
var (
	ModelExts = []string{".nam", ".json", ".aidax"}
	CabExts   = []string{".wav"}
)

// Entry is one selectable asset: a display name and the absolute path it
// came from.
type Entry struct {
	Name string
	Path string
}

// DisplayName strips the directory and extension from a path.
func DisplayName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Scan enumerates dir and returns entries whose extension matches exts
// (case-insensitive), sorted case-insensitively by display name. Hidden
// (dot-prefixed) entries are skipped. A missing or unreadable directory is
// not an error: it yields an empty catalog; callers report the diagnostic.
func Scan(dir string, exts []string) []Entry {
	listing, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var entries []Entry
	for _, item := range listing {
		name := item.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if item.IsDir() {
			continue
		}
		if !matchExt(name, exts) {
			continue
		}
		if len(entries) >= MaxEntries {
			break
		}
		entries = append(entries, Entry{
			Name: DisplayName(name),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	return entries
}

// Names returns the display names of entries, in order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func matchExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range exts {
		if ext == want {
			return true
		}
	}
	return false
}
