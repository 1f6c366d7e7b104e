package fileinfo

import (
	"path"
	"path/filepath"
	"strings"
)

// IsSMBDisplay reports whether the path is a canonical smb display path (smb://...).
func IsSMBDisplay(p string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(p)), "smb://")
}

// JoinPath joins base and name for display paths.
// smb:// display paths join with forward slashes; everything else goes
// through filepath.Join.
func JoinPath(base, name string) string {
	if IsSMBDisplay(base) {
		b := strings.TrimRight(base, "/")
		return b + "/" + name
	}
	return filepath.Join(base, name)
}

// ParentPath returns the parent directory for a path.
//   - For smb:// display paths, it trims one segment after the share.
//     Root (smb://host/share) returns itself.
//   - Otherwise it uses filepath.Dir.
func ParentPath(p string) string {
	if !IsSMBDisplay(p) {
		return filepath.Dir(p)
	}
	rest := strings.TrimPrefix(p, "smb://")
	parts := strings.Split(rest, "/")
	if len(parts) <= 2 { // smb://host/share => root, no parent
		return p
	}
	return "smb://" + strings.Join(parts[:len(parts)-1], "/")
}

// HasParent reports whether the path has a distinct parent directory.
// Filesystem roots and share roots are their own parent.
func HasParent(p string) bool {
	return ParentPath(p) != p
}

// BaseName returns the last path segment analogous to filepath.Base.
// For smb:// paths, it uses URL-style segments.
func BaseName(p string) string {
	if !IsSMBDisplay(p) {
		return filepath.Base(p)
	}
	rest := strings.TrimSuffix(strings.TrimPrefix(p, "smb://"), "/")
	_, last := path.Split(rest)
	return last
}

// SMBDisplayToUNC converts smb://host/share/seg to \\host\share\seg.
// Non-smb paths are returned unchanged.
func SMBDisplayToUNC(p string) string {
	if !IsSMBDisplay(p) {
		return p
	}
	rest := strings.TrimPrefix(strings.TrimSpace(p), "smb://")
	rest = strings.TrimPrefix(rest, "SMB://")
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	return `\\` + strings.Join(parts, `\`)
}
