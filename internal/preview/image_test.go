package preview

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 11), B: 200, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestResolveImage(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "pic.png")
	writePNG(t, p, 300, 60)

	r := newTestResolver(t)
	thumb, err := r.resolveImage(p, 128)
	if err != nil {
		t.Fatal(err)
	}
	if thumb.Kind != KindImage || thumb.Image == nil {
		t.Fatalf("unexpected thumbnail: %+v", thumb)
	}
	b := thumb.Image.Bounds()
	if b.Dx() > 128 || b.Dy() > 128 {
		t.Errorf("thumbnail %dx%d exceeds the 128px bound", b.Dx(), b.Dy())
	}
	// aspect ratio preserved: 300x60 scales to 128x25
	if b.Dx() != 128 {
		t.Errorf("width = %d, want 128", b.Dx())
	}
}

func TestResolveImageCorrupt(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(p, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	r := newTestResolver(t)
	if _, err := r.resolveImage(p, 128); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestScaleToBoundPassthrough(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	if got := scaleToBound(img, 128); got != img {
		t.Error("image inside the bound should pass through unscaled")
	}
}
