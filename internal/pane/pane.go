// Package pane holds the per-pane browsing state: current directory,
// navigation history, sort/filter settings and the enumerated listing.
// Two instances of State back a dual-pane layout; they share nothing.
package pane

import (
	"fmt"
	"sync"

	"dpfm/internal/errors"
	"dpfm/internal/fileinfo"
	"dpfm/internal/listing"
)

// ViewMode selects how a pane presents its entries.
type ViewMode int

const (
	ViewIcon ViewMode = iota
	ViewList
	ViewThumbnail
)

func (m ViewMode) String() string {
	switch m {
	case ViewIcon:
		return "icon"
	case ViewList:
		return "list"
	case ViewThumbnail:
		return "thumbnail"
	default:
		return "icon"
	}
}

// ParseViewMode maps a config string to a ViewMode, defaulting to icon.
func ParseViewMode(s string) ViewMode {
	switch s {
	case "list":
		return ViewList
	case "thumbnail":
		return ViewThumbnail
	default:
		return ViewIcon
	}
}

// ListFunc enumerates a directory. Swapped in tests.
type ListFunc func(path string, showHidden bool) (*listing.Listing, error)

// Options seed a new pane from configuration.
type Options struct {
	SortKey    listing.SortKey
	SortOrder  listing.SortOrder
	ShowHidden bool
	View       ViewMode
	Bookmarks  []string
}

// State is one pane. All methods are safe for concurrent use.
type State struct {
	mu sync.Mutex

	current string
	history []string
	forward []string

	bookmarks []string

	sortKey    listing.SortKey
	sortOrder  listing.SortOrder
	pattern    string
	categories listing.CategorySet
	showHidden bool
	view       ViewMode

	// snapshot is the sorted enumeration of current; visible is the
	// filtered projection handed to callers. Both are swapped wholesale
	// so readers never see a half-updated listing.
	snapshot *listing.Listing
	visible  *listing.Listing

	list ListFunc
}

// New creates a pane. list may be nil, in which case the real enumerator
// is used.
func New(opts Options, list ListFunc) *State {
	if list == nil {
		list = listing.List
	}
	return &State{
		sortKey:    opts.SortKey,
		sortOrder:  opts.SortOrder,
		showHidden: opts.ShowHidden,
		view:       opts.View,
		bookmarks:  append([]string(nil), opts.Bookmarks...),
		list:       list,
	}
}

// Navigate enumerates path and makes it the current directory. The old
// directory is pushed onto the back stack and the forward stack is
// cleared. On failure the pane is left exactly as it was.
func (s *State) Navigate(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enterLocked(path); err != nil {
		return err
	}
	if s.current != "" && s.current != path {
		s.history = append(s.history, s.current)
	}
	s.forward = s.forward[:0]
	s.current = path
	return nil
}

// GoBack returns to the previous directory, pushing the current one onto
// the forward stack. It is a no-op when the back stack is empty.
func (s *State) GoBack() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) == 0 {
		return nil
	}
	target := s.history[len(s.history)-1]
	if err := s.enterLocked(target); err != nil {
		return err
	}
	s.history = s.history[:len(s.history)-1]
	s.forward = append(s.forward, s.current)
	s.current = target
	return nil
}

// GoForward undoes a GoBack. No-op when the forward stack is empty.
func (s *State) GoForward() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.forward) == 0 {
		return nil
	}
	target := s.forward[len(s.forward)-1]
	if err := s.enterLocked(target); err != nil {
		return err
	}
	s.forward = s.forward[:len(s.forward)-1]
	s.history = append(s.history, s.current)
	s.current = target
	return nil
}

// GoUp navigates to the parent directory. At a filesystem or share root
// it is a no-op.
func (s *State) GoUp() error {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()
	if !fileinfo.HasParent(current) {
		return nil
	}
	return s.Navigate(fileinfo.ParentPath(current))
}

// Refresh re-enumerates the current directory in place. History and
// forward stacks are untouched.
func (s *State) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == "" {
		return errors.NewNavigationError("refresh", "", "no current directory", nil)
	}
	return s.enterLocked(s.current)
}

// enterLocked performs the single enumeration for a navigation and swaps
// the listing atomically. State is unchanged on error.
func (s *State) enterLocked(path string) error {
	l, err := s.list(path, s.showHidden)
	if err != nil {
		return fmt.Errorf("entering %s: %w", path, err)
	}
	listing.SortListing(l, s.sortKey, s.sortOrder)
	s.snapshot = l
	s.applyFilterLocked()
	return nil
}

func (s *State) applyFilterLocked() {
	if s.snapshot == nil {
		s.visible = nil
		return
	}
	s.visible = listing.FilterListing(s.snapshot, s.pattern, s.categories)
}

// SetSort re-sorts the current listing without re-enumerating.
func (s *State) SetSort(key listing.SortKey, order listing.SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortKey = key
	s.sortOrder = order
	if s.snapshot != nil {
		listing.SortListing(s.snapshot, key, order)
		s.applyFilterLocked()
	}
}

// SetFilter changes the wildcard pattern and category selection. The
// filtered view is recomputed from the in-memory snapshot; no I/O runs.
func (s *State) SetFilter(pattern string, categories listing.CategorySet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pattern = pattern
	s.categories = categories
	s.applyFilterLocked()
}

// SetShowHidden toggles hidden-entry visibility and re-enumerates, since
// hidden entries are excluded at enumeration time.
func (s *State) SetShowHidden(show bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.showHidden == show {
		return nil
	}
	s.showHidden = show
	if s.current == "" {
		return nil
	}
	return s.enterLocked(s.current)
}

// SetView changes the presentation mode. Purely cosmetic state; the
// listing is untouched.
func (s *State) SetView(m ViewMode) {
	s.mu.Lock()
	s.view = m
	s.mu.Unlock()
}

// AddBookmark appends path to the bookmark list. Duplicates are allowed;
// the list is ordered by insertion.
func (s *State) AddBookmark(path string) {
	s.mu.Lock()
	s.bookmarks = append(s.bookmarks, path)
	s.mu.Unlock()
}

// Bookmarks returns a copy of the bookmark list.
func (s *State) Bookmarks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.bookmarks...)
}

// Current returns the pane's current directory, empty before the first
// successful Navigate.
func (s *State) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Entries returns the filtered, sorted listing, or nil before the first
// navigation.
func (s *State) Entries() *listing.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// CanGoBack and CanGoForward report navigation stack depth for the
// presentation layer.
func (s *State) CanGoBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history) > 0
}

func (s *State) CanGoForward() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.forward) > 0
}

// View returns the presentation mode.
func (s *State) View() ViewMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Settings reports the pane's persistable state for config save.
func (s *State) Settings() Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Options{
		SortKey:    s.sortKey,
		SortOrder:  s.sortOrder,
		ShowHidden: s.showHidden,
		View:       s.view,
		Bookmarks:  append([]string(nil), s.bookmarks...),
	}
}
