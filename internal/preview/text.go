package preview

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"dpfm/internal/fileinfo"
)

func (r *Resolver) resolveText(path string) (*Thumbnail, error) {
	f, err := fileinfo.OpenPortable(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIoFailed, err)
	}
	defer f.Close()

	limit := r.limits.TextMaxChars
	// limit characters can span up to utf8.UTFMax bytes each; one extra
	// byte tells us whether anything follows the head
	raw := make([]byte, limit*utf8.UTFMax+1)
	n, err := io.ReadFull(f, raw)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("%w: %v", ErrIoFailed, err)
	}
	head, truncated := textHead(raw[:n], limit)
	return &Thumbnail{
		Path:          path,
		Kind:          KindText,
		Text:          head,
		TextTruncated: truncated,
	}, nil
}

// textHead sanitizes raw into valid UTF-8 (invalid sequences become the
// replacement character) and bounds it to limit characters.
func textHead(raw []byte, limit int) (string, bool) {
	s := strings.ToValidUTF8(string(raw), string(utf8.RuneError))
	runes := []rune(s)
	if len(runes) <= limit {
		return s, false
	}
	return string(runes[:limit]), true
}
