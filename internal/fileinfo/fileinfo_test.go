package fileinfo

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		isDir    bool
		expected Category
	}{
		{
			name:     "Directory ignores extension",
			path:     "/home/user/photos.zip",
			isDir:    true,
			expected: CategoryFolder,
		},
		{
			name:     "JPEG image",
			path:     "/home/user/photo.jpg",
			expected: CategoryImage,
		},
		{
			name:     "Uppercase extension",
			path:     "/home/user/IMG.PNG",
			expected: CategoryImage,
		},
		{
			name:     "GIF wins over image table",
			path:     "/home/user/anim.gif",
			expected: CategoryGIF,
		},
		{
			name:     "HTML wins over text table",
			path:     "/srv/www/index.html",
			expected: CategoryHTML,
		},
		{
			name:     "htm variant",
			path:     "/srv/www/legacy.HTM",
			expected: CategoryHTML,
		},
		{
			name:     "Video",
			path:     "/media/clip.mkv",
			expected: CategoryVideo,
		},
		{
			name:     "Audio",
			path:     "/media/song.flac",
			expected: CategoryAudio,
		},
		{
			name:     "Text",
			path:     "/home/user/notes.md",
			expected: CategoryText,
		},
		{
			name:     "Zip archive",
			path:     "/home/user/bundle.zip",
			expected: CategoryArchive,
		},
		{
			name:     "Tarball with double suffix",
			path:     "/home/user/backup.tar.gz",
			expected: CategoryArchive,
		},
		{
			name:     "tgz archive",
			path:     "/home/user/backup.tgz",
			expected: CategoryArchive,
		},
		{
			name:     "Document",
			path:     "/home/user/report.pdf",
			expected: CategoryDocument,
		},
		{
			name:     "Unknown extension",
			path:     "/home/user/data.xyz",
			expected: CategoryOther,
		},
		{
			name:     "Extensionless file",
			path:     "/usr/bin/env-dump",
			expected: CategoryOther,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Classify(tc.path, tc.isDir)
			if result != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, result)
			}
		})
	}
}

func TestCategoryString(t *testing.T) {
	testCases := []struct {
		category Category
		expected string
	}{
		{CategoryFolder, "folder"},
		{CategoryImage, "image"},
		{CategoryVideo, "video"},
		{CategoryAudio, "audio"},
		{CategoryGIF, "gif"},
		{CategoryText, "text"},
		{CategoryArchive, "archive"},
		{CategoryHTML, "html"},
		{CategoryDocument, "document"},
		{CategoryOther, "other"},
		{Category(999), "other"},
	}

	for _, tc := range testCases {
		if got := tc.category.String(); got != tc.expected {
			t.Errorf("For category %d, expected '%s', got '%s'", int(tc.category), tc.expected, got)
		}
	}
}

func TestIsHiddenName(t *testing.T) {
	if !IsHiddenName("/home/user/.bashrc", ".bashrc") {
		t.Error("Dotfiles should be hidden")
	}
	if IsHiddenName("/home/user/file.txt", "file.txt") {
		t.Error("Plain files should not be hidden")
	}
}

func TestTypeLabel(t *testing.T) {
	testCases := []struct {
		fi       FileInfo
		expected string
	}{
		{FileInfo{Name: "docs", IsDir: true}, "Folder"},
		{FileInfo{Name: "photo.png"}, "PNG File"},
		{FileInfo{Name: "song.Mp3"}, "MP3 File"},
		{FileInfo{Name: "README"}, "File"},
	}

	for _, tc := range testCases {
		if got := TypeLabel(tc.fi); got != tc.expected {
			t.Errorf("For %q, expected '%s', got '%s'", tc.fi.Name, tc.expected, got)
		}
	}
}

func TestFormatFileSize(t *testing.T) {
	testCases := []struct {
		size     int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{1073741824, "1.0 GB"},
	}

	for _, tc := range testCases {
		if got := FormatFileSize(tc.size); got != tc.expected {
			t.Errorf("For size %d, expected '%s', got '%s'", tc.size, tc.expected, got)
		}
	}
}

func TestFileInfoValueSemantics(t *testing.T) {
	now := time.Now()
	a := FileInfo{Name: "a.txt", Path: "/tmp/a.txt", Size: 3, Modified: now, Category: CategoryText}
	b := a
	b.Name = "b.txt"
	if a.Name != "a.txt" {
		t.Error("FileInfo copies must not alias")
	}
}
