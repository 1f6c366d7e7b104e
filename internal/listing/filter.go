package listing

import (
	"strings"

	"dpfm/internal/fileinfo"
	"github.com/bmatcuk/doublestar/v4"
)

// CategorySet is the set of file categories a filter admits. An empty or
// nil set admits every category.
type CategorySet map[fileinfo.Category]bool

// MatchesPattern reports whether name matches the case-insensitive filter
// pattern. Patterns containing wildcard metacharacters (*, ?, [, {) match
// the whole name glob-style; plain patterns match as substrings. An empty
// pattern matches everything.
func MatchesPattern(name, pattern string) bool {
	if pattern == "" {
		return true
	}
	name = strings.ToLower(name)
	pattern = strings.ToLower(pattern)
	if !strings.ContainsAny(pattern, "*?[{") {
		return strings.Contains(name, pattern)
	}
	ok, err := doublestar.Match(pattern, name)
	if err != nil {
		// malformed pattern: degrade to substring semantics
		return strings.Contains(name, pattern)
	}
	return ok
}

// FilterEntries returns the subsequence of entries whose name matches the
// pattern and whose category is admitted. Directories are exempt from the
// category check (category filters apply to files only) but are matched
// against the name pattern like any entry. Relative order is preserved.
func FilterEntries(entries []fileinfo.FileInfo, pattern string, categories CategorySet) []fileinfo.FileInfo {
	out := make([]fileinfo.FileInfo, 0, len(entries))
	for _, e := range entries {
		if !MatchesPattern(e.Name, pattern) {
			continue
		}
		if !e.IsDir && len(categories) > 0 && !categories[e.Category] {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterListing applies FilterEntries to both groups and returns a new
// Listing; the input is left untouched.
func FilterListing(l *Listing, pattern string, categories CategorySet) *Listing {
	return &Listing{
		Path:    l.Path,
		Folders: FilterEntries(l.Folders, pattern, categories),
		Files:   FilterEntries(l.Files, pattern, categories),
	}
}
