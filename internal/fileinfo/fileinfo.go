package fileinfo

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Category is the semantic file-type classification used to pick a
// preview/thumbnail strategy.
type Category int

const (
	CategoryOther Category = iota
	CategoryFolder
	CategoryImage
	CategoryVideo
	CategoryAudio
	CategoryGIF
	CategoryText
	CategoryArchive
	CategoryHTML
	CategoryDocument
)

// String returns the lowercase name of the category.
func (c Category) String() string {
	switch c {
	case CategoryFolder:
		return "folder"
	case CategoryImage:
		return "image"
	case CategoryVideo:
		return "video"
	case CategoryAudio:
		return "audio"
	case CategoryGIF:
		return "gif"
	case CategoryText:
		return "text"
	case CategoryArchive:
		return "archive"
	case CategoryHTML:
		return "html"
	case CategoryDocument:
		return "document"
	default:
		return "other"
	}
}

// FileInfo represents a file or directory entry in a listing.
// Entries are built fresh on every enumeration and never mutated after.
type FileInfo struct {
	Name     string
	Path     string
	IsDir    bool
	Size     int64 // 0 for directories; display is presentation's concern
	Modified time.Time
	Category Category
	Hidden   bool
}

// Extension tables. Lookup keys are lowercase including the leading dot.
var (
	videoExts = map[string]bool{
		".mp4": true, ".avi": true, ".mov": true, ".mkv": true, ".wmv": true,
		".flv": true, ".webm": true, ".m4v": true, ".3gp": true,
	}
	audioExts = map[string]bool{
		".mp3": true, ".wav": true, ".flac": true, ".aac": true, ".ogg": true,
		".m4a": true, ".wma": true, ".aiff": true,
	}
	imageExts = map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true, ".bmp": true, ".tiff": true,
		".webp": true, ".svg": true,
	}
	textExts = map[string]bool{
		".txt": true, ".md": true, ".py": true, ".js": true, ".go": true,
		".css": true, ".json": true, ".xml": true, ".csv": true, ".log": true,
		".ini": true, ".cfg": true, ".conf": true,
	}
	archiveExts = map[string]bool{
		".zip": true, ".tar": true, ".tgz": true, ".rar": true, ".7z": true,
	}
	docExts = map[string]bool{
		".pdf": true, ".doc": true, ".docx": true, ".rtf": true, ".xls": true,
		".xlsx": true, ".ppt": true, ".pptx": true,
	}
)

// Classify maps a path to its category from the extension alone; it never
// touches the filesystem. Directories are always CategoryFolder.
// Precedence: gif beats the image table, html/htm beat the text table, and
// multi-suffix archives (.tar.gz) are recognized before the plain suffix.
func Classify(path string, isDir bool) Category {
	if isDir {
		return CategoryFolder
	}
	name := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(name, ".tar.gz") {
		return CategoryArchive
	}
	ext := filepath.Ext(name)
	switch {
	case ext == ".gif":
		return CategoryGIF
	case ext == ".html" || ext == ".htm":
		return CategoryHTML
	case videoExts[ext]:
		return CategoryVideo
	case audioExts[ext]:
		return CategoryAudio
	case imageExts[ext]:
		return CategoryImage
	case textExts[ext]:
		return CategoryText
	case archiveExts[ext]:
		return CategoryArchive
	case docExts[ext]:
		return CategoryDocument
	default:
		return CategoryOther
	}
}

// IsHiddenName reports whether the entry should be treated as hidden.
// Dotfiles are hidden everywhere; Windows additionally honors the hidden
// file attribute.
func IsHiddenName(path string, name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	return IsWindowsHidden(path)
}

// TypeLabel returns a short display type for an entry ("Folder", "PNG File").
func TypeLabel(fi FileInfo) string {
	if fi.IsDir {
		return "Folder"
	}
	ext := filepath.Ext(fi.Name)
	if ext == "" {
		return "File"
	}
	return strings.ToUpper(strings.TrimPrefix(ext, ".")) + " File"
}

// FormatFileSize formats file size in human-readable format
func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
