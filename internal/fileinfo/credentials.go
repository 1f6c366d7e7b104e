package fileinfo

import (
	"sync"

	"dpfm/internal/secret"
)

// Credentials represents SMB authentication parameters.
type Credentials struct {
	Domain   string
	Username string
	Password string
	Persist  bool
}

var (
	credMu    sync.RWMutex
	credCache = make(map[string]Credentials)

	secretStore secret.Store
)

// SetSecretStore sets the global secret store (OS keyring). If nil, only
// the in-memory cache is consulted.
func SetSecretStore(s secret.Store) { secretStore = s }

func credKey(host, share string) string { return host + "\x00" + share }

// getCredentials resolves credentials for host/share: the in-memory cache
// (seeded from smb:// URLs or previous keyring hits) wins, then the keyring.
// Anonymous credentials are returned when neither knows the share.
func getCredentials(host, share string) Credentials {
	if c, ok := GetCachedCredentials(host, share); ok {
		return c
	}
	if secretStore != nil {
		if d, u, p, found, _ := secretStore.Get(host, share); found {
			c := Credentials{Domain: d, Username: u, Password: p}
			PutCachedCredentials(host, share, c)
			return c
		}
	}
	return Credentials{}
}

// PutCachedCredentials seeds in-memory credentials for host/share.
func PutCachedCredentials(host, share string, c Credentials) {
	credMu.Lock()
	credCache[credKey(host, share)] = c
	credMu.Unlock()
}

// GetCachedCredentials returns cached credentials if present in memory.
// It does not consult the keyring.
func GetCachedCredentials(host, share string) (Credentials, bool) {
	credMu.RLock()
	defer credMu.RUnlock()
	c, ok := credCache[credKey(host, share)]
	if ok && (c.Username != "" || c.Password != "" || c.Domain != "") {
		return c, true
	}
	return Credentials{}, false
}

// ClearCachedCredentials removes cached credentials for host/share, used
// after an authentication failure so stale secrets are not retried forever.
func ClearCachedCredentials(host, share string) {
	credMu.Lock()
	delete(credCache, credKey(host, share))
	credMu.Unlock()
}
