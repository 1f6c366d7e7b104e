package constants

import "time"

// Application constants
const (
	ApplicationName  = "dpfm"
	ApplicationTitle = "Dual-Pane File Manager"
)

// Preview constants
const (
	// Default bounding square for generated thumbnails (pixels)
	DefaultThumbnailSize = 128

	// Video frame scanning
	VideoScanFrameLimit = 30
	// Blank-frame heuristic on a 0-255 luma scale. A frame qualifies only
	// when both hold. Tunable via config; not guaranteed correct for every
	// codec or color space.
	VideoMinMeanIntensity = 10.0
	VideoMinStdDev        = 5.0

	// Archive previews list at most this many entry names
	ArchivePreviewMaxEntries = 20

	// Text previews return at most this many characters
	TextPreviewMaxChars = 1000

	// Worker pool size for thumbnail jobs
	PreviewWorkers = 4

	// Completion channel buffer; senders never block the workers for long
	PreviewEventBuffer = 64
)

// Directory watcher constants
const (
	WatcherInterval   = 2 * time.Second
	WatcherBufferSize = 10
)

// File size constants
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// File system constants
const (
	RootPath            = "/"
	ParentDirectoryName = ".."
)

// Configuration constants
const (
	ConfigFileName          = "config.json"
	DefaultSortBy           = "name"
	DefaultSortOrder        = "asc"
	DefaultDirectoriesFirst = true
	DefaultShowHiddenFiles  = false
	DefaultViewMode         = "icon"
)

// Job manager constants
const (
	JobHistoryMax = 100
	CopyBufSize   = 1 << 20
)
