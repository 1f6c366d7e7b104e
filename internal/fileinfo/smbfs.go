package fileinfo

import (
	"errors"
	"io"
	"net"
	"os"
	"path"
	"strings"
	"time"

	"github.com/hirochachacha/go-smb2"
)

var errInvalidSMB = errors.New("invalid smb path: expected smb://host/share[/path]")

// SMBFS implements VFS for direct SMB access via go-smb2.
// Each call dials, mounts the share, performs the operation and tears the
// session down again; panes list directories far too rarely for connection
// pooling to matter.
type SMBFS struct {
	host  string
	share string
	cred  *Credentials
}

func NewSMBFS(host, share string) SMBFS { return SMBFS{host: host, share: share} }
func NewSMBFSWithCred(host, share string, c Credentials) SMBFS {
	return SMBFS{host: host, share: share, cred: &c}
}

func (SMBFS) Capabilities() Capabilities { return Capabilities{FastList: false, Watch: false} }

func (s SMBFS) Join(elem ...string) string { return path.Join(elem...) }
func (s SMBFS) Base(p string) string       { return path.Base(p) }

func (s SMBFS) ReadDir(relPath string) ([]os.DirEntry, error) {
	var out []os.DirEntry
	err := s.withShare(func(share *smb2.Share) error {
		fis, err := share.ReadDir(shareRelative(relPath))
		if err != nil {
			return err
		}
		out = make([]os.DirEntry, 0, len(fis))
		for _, fi := range fis {
			if fi.Name() == "." {
				continue
			}
			out = append(out, smbDirEntry{fi: fi})
		}
		return nil
	})
	return out, err
}

func (s SMBFS) Stat(relPath string) (os.FileInfo, error) {
	var out os.FileInfo
	err := s.withShare(func(share *smb2.Share) error {
		fi, err := share.Stat(shareRelative(relPath))
		if err != nil {
			return err
		}
		out = fi
		return nil
	})
	return out, err
}

// Open reads the whole remote file into memory before the session closes;
// previews are bounded so this stays small in practice.
func (s SMBFS) Open(relPath string) (io.ReadCloser, error) {
	var data []byte
	err := s.withShare(func(share *smb2.Share) error {
		f, err := share.Open(shareRelative(relPath))
		if err != nil {
			return err
		}
		defer f.Close()
		b, err := io.ReadAll(f)
		if err != nil {
			return err
		}
		data = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return io.NopCloser(strings.NewReader(string(data))), nil
}

// withShare dials the host, mounts the share and runs fn against it.
func (s SMBFS) withShare(fn func(*smb2.Share) error) error {
	creds := s.credentials()

	d := &smb2.Dialer{
		Initiator: &smb2.NTLMInitiator{
			User:     creds.Username,
			Password: creds.Password,
			Domain:   creds.Domain,
		},
	}

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(s.host, "445"), 5*time.Second)
	if err != nil {
		return err
	}
	defer conn.Close()

	sess, err := d.Dial(conn)
	if err != nil {
		if isAuthError(err) {
			ClearCachedCredentials(s.host, s.share)
		}
		return err
	}
	defer sess.Logoff()

	share, err := sess.Mount(s.share)
	if err != nil {
		return err
	}
	defer share.Umount()

	// Persist credentials after a successful mount if requested
	if creds.Persist && secretStore != nil {
		_ = secretStore.Set(s.host, s.share, creds.Domain, creds.Username, creds.Password)
	}

	if err := fn(share); err != nil {
		if isAuthError(err) {
			ClearCachedCredentials(s.host, s.share)
		}
		return err
	}
	return nil
}

func (s SMBFS) credentials() Credentials {
	if s.cred != nil {
		return *s.cred
	}
	return getCredentials(s.host, s.share)
}

// shareRelative normalizes a path relative to the share; go-smb2 forbids a
// leading separator. "" means the share root.
func shareRelative(p string) string {
	if p == "/" || p == "\\" {
		return ""
	}
	for len(p) > 0 && (p[0] == '/' || p[0] == '\\') {
		p = p[1:]
	}
	return p
}

func isAuthError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "logon") || strings.Contains(msg, "access denied") ||
		strings.Contains(msg, "authentication")
}

// smbDirEntry adapts os.FileInfo to os.DirEntry for listing.
type smbDirEntry struct{ fi os.FileInfo }

func (e smbDirEntry) Name() string               { return e.fi.Name() }
func (e smbDirEntry) IsDir() bool                { return e.fi.IsDir() }
func (e smbDirEntry) Type() os.FileMode          { return e.fi.Mode().Type() }
func (e smbDirEntry) Info() (os.FileInfo, error) { return e.fi, nil }
