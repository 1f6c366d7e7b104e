package preview

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func writeZip(t *testing.T, path string, entries int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	zw := zip.NewWriter(f)
	for i := 0; i < entries; i++ {
		w, err := zw.Create(fmt.Sprintf("file%02d.txt", i))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte("x")); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestResolveArchive(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "pack.zip")
	writeZip(t, p, 25)

	r := newTestResolver(t)
	thumb, err := r.resolveArchive(p)
	if err != nil {
		t.Fatal(err)
	}
	if thumb.Kind != KindArchive {
		t.Fatalf("kind = %v, want KindArchive", thumb.Kind)
	}
	if len(thumb.Entries) != 20 {
		t.Fatalf("entries = %d, want 20", len(thumb.Entries))
	}
	if thumb.MoreEntries != 5 {
		t.Errorf("more = %d, want 5", thumb.MoreEntries)
	}
	if thumb.Entries[0] != "file00.txt" {
		t.Errorf("first entry = %q", thumb.Entries[0])
	}
}

func TestResolveArchiveSmall(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "few.zip")
	writeZip(t, p, 3)

	r := newTestResolver(t)
	thumb, err := r.resolveArchive(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(thumb.Entries) != 3 || thumb.MoreEntries != 0 {
		t.Errorf("entries = %d more = %d, want 3 and 0", len(thumb.Entries), thumb.MoreEntries)
	}
}

func TestResolveArchiveUnsupported(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "garbage.zip")
	if err := os.WriteFile(p, []byte("definitely not an archive"), 0644); err != nil {
		t.Fatal(err)
	}
	r := newTestResolver(t)
	_, err := r.resolveArchive(p)
	if !errors.Is(err, ErrUnsupportedArchiveFormat) {
		t.Errorf("err = %v, want ErrUnsupportedArchiveFormat", err)
	}
}
