package listing

import (
	"errors"
	"fmt"
	"io/fs"

	"dpfm/internal/fileinfo"
)

// Typed enumeration failures. Callers branch with errors.Is; anything else
// wrapping out of List is the "other" case carrying the OS detail.
var (
	ErrNotFound         = errors.New("path not found")
	ErrNotADirectory    = errors.New("not a directory")
	ErrPermissionDenied = errors.New("permission denied")
)

// Listing is one directory snapshot: folders and files enumerated and kept
// as two independently sorted groups. A fresh Listing replaces the previous
// one wholesale; entries are never patched in place.
type Listing struct {
	Path    string
	Folders []fileinfo.FileInfo
	Files   []fileinfo.FileInfo
}

// Len returns the total number of entries across both groups.
func (l *Listing) Len() int { return len(l.Folders) + len(l.Files) }

// All returns folders followed by files as one slice.
func (l *Listing) All() []fileinfo.FileInfo {
	out := make([]fileinfo.FileInfo, 0, l.Len())
	out = append(out, l.Folders...)
	out = append(out, l.Files...)
	return out
}

// List enumerates the immediate children of path into a new Listing.
// Hidden entries and the "."/".." pseudo-entries are excluded unless
// showHidden is set (the pseudo-entries never appear). Entry order within
// each group follows the provider's ReadDir order, which is sorted by name
// and therefore deterministic for a given snapshot.
//
// Failures are reported, never thrown: a vanished path is ErrNotFound, a
// non-directory target is ErrNotADirectory, an enumeration refusal is
// ErrPermissionDenied. A race between the directory check and the read
// surfaces as one of the same values.
func List(path string, showHidden bool) (*Listing, error) {
	vfs, parsed, err := fileinfo.ResolveRead(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	native := parsed.Native
	if native == "" {
		native = path
	}

	info, err := vfs.Stat(native)
	if err != nil {
		return nil, mapIOError(path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotADirectory)
	}

	entries, err := vfs.ReadDir(native)
	if err != nil {
		return nil, mapIOError(path, err)
	}

	l := &Listing{Path: path}
	for _, entry := range entries {
		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}
		childDisplay := fileinfo.JoinPath(path, name)
		childNative := vfs.Join(native, name)
		if !showHidden && fileinfo.IsHiddenName(childNative, name) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// entry vanished mid-listing; skip, do not abort siblings
			continue
		}
		fi := fileinfo.FileInfo{
			Name:     name,
			Path:     childDisplay,
			IsDir:    entry.IsDir(),
			Modified: info.ModTime(),
			Category: fileinfo.Classify(childDisplay, entry.IsDir()),
			Hidden:   fileinfo.IsHiddenName(childNative, name),
		}
		if fi.IsDir {
			l.Folders = append(l.Folders, fi)
		} else {
			fi.Size = info.Size()
			l.Files = append(l.Files, fi)
		}
	}
	return l, nil
}

// mapIOError converts OS-level failures into the typed taxonomy, keeping
// the original error in the chain.
func mapIOError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s: %w: %v", path, ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%s: %w: %v", path, ErrPermissionDenied, err)
	case errors.Is(err, ErrNotADirectory), errors.Is(err, ErrNotFound), errors.Is(err, ErrPermissionDenied):
		return err
	default:
		return fmt.Errorf("listing %s: %w", path, err)
	}
}
