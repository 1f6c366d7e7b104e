package preview

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"dpfm/internal/fileinfo"
)

func (r *Resolver) resolveImage(path string, size int) (*Thumbnail, error) {
	f, err := fileinfo.OpenPortable(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIoFailed, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeFailed, path, err)
	}
	return &Thumbnail{
		Path:  path,
		Kind:  KindImage,
		Image: scaleToBound(img, size),
	}, nil
}

// scaleToBound fits img into a size x size box preserving aspect ratio.
// Images already inside the box pass through unscaled.
func scaleToBound(img image.Image, size int) image.Image {
	b := img.Bounds()
	if b.Dx() <= size && b.Dy() <= size {
		return img
	}
	return resize.Thumbnail(uint(size), uint(size), img, resize.Lanczos3)
}
