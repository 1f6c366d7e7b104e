package fileinfo

import (
	"io"
	"os"
)

// StatPortable resolves the input path to a suitable provider and performs
// Stat against the provider-native path.
func StatPortable(p string) (os.FileInfo, error) {
	vfs, parsed, err := ResolveRead(p)
	if err != nil {
		return nil, err
	}
	native := parsed.Native
	if native == "" {
		native = p
	}
	return vfs.Stat(native)
}

// OpenPortable resolves the input path and opens it for reading through the
// selected provider; preview resolution reads files this way so smb://
// paths preview like local ones.
func OpenPortable(p string) (io.ReadCloser, error) {
	vfs, parsed, err := ResolveRead(p)
	if err != nil {
		return nil, err
	}
	native := parsed.Native
	if native == "" {
		native = p
	}
	return vfs.Open(native)
}
