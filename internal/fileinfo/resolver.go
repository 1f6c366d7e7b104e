package fileinfo

import (
	"bufio"
	"os"
	"path"
	"strings"
)

// Scheme represents a logical protocol for display/history normalization.
type Scheme string

const (
	SchemeFile Scheme = "file"
	SchemeSMB  Scheme = "smb"
)

// Parsed contains a normalized view of an input path.
// Display is a canonical string (smb://host/share/seg...),
// Native is the provider-native path used for I/O.
type Parsed struct {
	Scheme   Scheme
	Host     string
	Share    string
	Segments []string
	Raw      string
	Display  string
	Native   string
	Provider string // "local" | "smb"
	User     string
	Password string
	Domain   string
}

// ResolveRead maps an input path onto a VFS provider and a native path.
// Plain paths resolve to LocalFS. smb:// paths prefer an existing CIFS
// mount; without one, a direct SMB provider is returned.
func ResolveRead(input string) (VFS, Parsed, error) {
	raw := strings.TrimSpace(input)
	if !isSMBURL(raw) && !strings.HasPrefix(raw, "//") {
		return LocalFS{}, Parsed{Raw: input, Scheme: SchemeFile, Display: input, Native: input, Provider: "local"}, nil
	}

	host, share, segs, user, pass, domain := parseSMBURL(raw)
	if host == "" || share == "" {
		return nil, Parsed{Raw: input, Scheme: SchemeSMB, Display: canonicalizeSMB(raw), Provider: "smb"}, errInvalidSMB
	}
	disp := canonicalizeSMB("smb://" + path.Join(host, share))
	if len(segs) > 0 {
		disp += "/" + path.Join(segs...)
	}
	if mp, ok := findSMBMount(host, share); ok {
		native := mp
		if len(segs) > 0 {
			native = "/" + path.Join(strings.TrimPrefix(mp, "/"), path.Join(segs...))
		}
		return LocalFS{}, Parsed{
			Scheme:   SchemeSMB,
			Host:     host,
			Share:    share,
			Segments: segs,
			Raw:      input,
			Display:  disp,
			Native:   native,
			Provider: "local",
			User:     user,
			Password: pass,
			Domain:   domain,
		}, nil
	}
	native := "/"
	if len(segs) > 0 {
		native = "/" + path.Join(segs...)
	}
	var vfs VFS
	if user != "" || pass != "" || domain != "" {
		vfs = NewSMBFSWithCred(host, share, Credentials{Domain: domain, Username: user, Password: pass})
	} else {
		vfs = NewSMBFS(host, share)
	}
	return vfs, Parsed{
		Scheme:   SchemeSMB,
		Host:     host,
		Share:    share,
		Segments: segs,
		Raw:      input,
		Display:  disp,
		Native:   native,
		Provider: "smb",
		User:     user,
		Password: pass,
		Domain:   domain,
	}, nil
}

func isSMBURL(p string) bool {
	return strings.HasPrefix(strings.ToLower(p), "smb://")
}

func canonicalizeSMB(url string) string {
	s := strings.TrimSpace(url)
	s = strings.ReplaceAll(s, "\\", "/")
	if !strings.HasPrefix(strings.ToLower(s), "smb://") {
		s = "smb://" + strings.TrimPrefix(s, "//")
	}
	return s
}

// parseSMBURL extracts host, share, segments from an smb-like path.
// Accepts forms: smb://[domain;user[:pass]@]host/share/..., //host/share/...
func parseSMBURL(u string) (host, share string, segments []string, user, pass, domain string) {
	s := strings.TrimSpace(u)
	if strings.HasPrefix(s, "//") && !isSMBURL(s) {
		s = "smb:" + s
	}
	if !isSMBURL(s) {
		return "", "", nil, "", "", ""
	}
	t := s[len("smb://"):]
	if at := strings.Index(t, "@"); at >= 0 {
		cred := t[:at]
		t = t[at+1:]
		if colon := strings.Index(cred, ":"); colon >= 0 {
			pass = cred[colon+1:]
			cred = cred[:colon]
		}
		if semi := strings.Index(cred, ";"); semi >= 0 {
			domain = cred[:semi]
			user = cred[semi+1:]
		} else if bs := strings.Index(cred, "\\"); bs >= 0 {
			domain = cred[:bs]
			user = cred[bs+1:]
		} else {
			user = cred
		}
	}
	parts := strings.Split(t, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", nil, "", "", ""
	}
	host = parts[0]
	share = parts[1]
	if len(parts) > 2 {
		segments = parts[2:]
	}
	return
}

// findSMBMount attempts to find a mounted CIFS/SMB mount matching host/share.
// It scans /proc/self/mountinfo and matches either the mount source
// (//host/share) or unc=\\host\share in options. On systems without
// mountinfo it reports no match and the direct provider is used.
func findSMBMount(host, share string) (mountPoint string, ok bool) {
	f, err := os.Open("/proc/self/mountinfo")
	if err != nil {
		return "", false
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		fsType, src, mp, superOpts, opts, parsed := parseMountInfo(line)
		if !parsed {
			continue
		}
		lfs := strings.ToLower(fsType)
		if !(lfs == "cifs" || strings.Contains(lfs, "smb")) {
			continue
		}
		shost, sshare := parseSourceUNC(src)
		if shost != "" && strings.EqualFold(shost, host) && strings.EqualFold(sshare, share) {
			return mp, true
		}
		unc := findUNCOption(superOpts)
		if unc == "" {
			unc = findUNCOption(opts)
		}
		if unc != "" {
			shost, sshare = parseBackslashUNC(unc)
			if shost != "" && strings.EqualFold(shost, host) && strings.EqualFold(sshare, share) {
				return mp, true
			}
		}
	}
	return "", false
}

// parseMountInfo extracts minimal fields from a mountinfo line.
func parseMountInfo(line string) (fsType, source, mountPoint, superOpts, opts string, ok bool) {
	// split at " - " separator
	parts := strings.SplitN(line, " - ", 2)
	if len(parts) != 2 {
		return
	}
	left := strings.Fields(parts[0])
	right := strings.Fields(parts[1])
	// mountinfo may have zero optional fields; accept 6+ tokens on the left side.
	if len(left) < 6 || len(right) < 3 {
		return
	}
	mountPoint = decodeMountPoint(left[4])
	opts = strings.Join(left[5:], " ")
	fsType = right[0]
	source = right[1]
	superOpts = strings.Join(right[2:], " ")
	ok = true
	return
}

// decodeMountPoint converts mountinfo escape sequences (e.g., \040 -> space).
func decodeMountPoint(s string) string {
	s = strings.ReplaceAll(s, "\\040", " ")
	s = strings.ReplaceAll(s, "\\134", "\\")
	return s
}

func parseSourceUNC(src string) (host, share string) {
	if strings.HasPrefix(src, "//") {
		rest := strings.TrimPrefix(src, "//")
		parts := strings.Split(rest, "/")
		if len(parts) >= 2 {
			return parts[0], parts[1]
		}
	}
	return "", ""
}

func findUNCOption(opts string) string {
	for _, part := range strings.Split(opts, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) == 2 && strings.ToLower(kv[0]) == "unc" {
			return kv[1]
		}
	}
	return ""
}

func parseBackslashUNC(unc string) (host, share string) {
	s := strings.TrimPrefix(unc, `\\`)
	parts := strings.Split(s, "\\")
	if len(parts) >= 2 {
		return parts[0], parts[1]
	}
	return "", ""
}
