package preview

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mholt/archives"

	"dpfm/internal/fileinfo"
)

func (r *Resolver) resolveArchive(path string) (*Thumbnail, error) {
	f, err := fileinfo.OpenPortable(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIoFailed, err)
	}
	defer f.Close()

	ctx := context.Background()
	format, input, err := archives.Identify(ctx, filepath.Base(path), f)
	if err != nil {
		if errors.Is(err, archives.NoMatch) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedArchiveFormat, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrIoFailed, err)
	}
	extractor, ok := format.(archives.Extractor)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedArchiveFormat, path)
	}

	max := r.limits.ArchiveMaxEntries
	var names []string
	more := 0
	err = extractor.Extract(ctx, input, func(ctx context.Context, fi archives.FileInfo) error {
		if len(names) < max {
			names = append(names, fi.NameInArchive)
		} else {
			more++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeFailed, path, err)
	}
	return &Thumbnail{
		Path:        path,
		Kind:        KindArchive,
		Entries:     names,
		MoreEntries: more,
	}, nil
}
