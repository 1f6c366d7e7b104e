package preview

import (
	"errors"
	"image"
)

// Typed resolution failures delivered on the completion channel. Callers
// branch with errors.Is; NoRepresentativeFrame and NoPreviewAvailable are
// soft failures the presentation side maps to a placeholder icon.
var (
	ErrNoRepresentativeFrame    = errors.New("no representative frame found")
	ErrUnsupportedArchiveFormat = errors.New("unsupported archive format")
	ErrNoPreviewAvailable       = errors.New("no preview available")
	ErrDecodeFailed             = errors.New("decode failed")
	ErrIoFailed                 = errors.New("preview i/o failed")
)

// Kind tells the caller which Thumbnail fields are populated.
type Kind int

const (
	KindImage Kind = iota // Image holds a scaled bitmap
	KindText              // Text holds a bounded text head
	KindArchive           // Entries holds archive member names
)

// Thumbnail is a completed preview surface for one path.
type Thumbnail struct {
	Path string
	Kind Kind

	// KindImage: decoded bitmap scaled into the requested square bound,
	// aspect ratio preserved. Also used for video frames and static gifs.
	Image image.Image

	// KindText
	Text          string
	TextTruncated bool

	// KindArchive: first entry names plus how many more exist beyond them.
	Entries     []string
	MoreEntries int
}

// Result pairs a thumbnail with its error; exactly one of the two is set.
// Failed resolutions are cached like successes so a broken file is not
// re-decoded every time it scrolls into view.
type Result struct {
	Thumb *Thumbnail
	Err   error
}

// Event is one completion notification, keyed by path.
type Event struct {
	Path  string
	Thumb *Thumbnail
	Err   error
}
