package fileinfo

import (
	"testing"
)

// stub secret store for tests
type stubSecret struct {
	d, u, p string
	found   bool
}

func (s stubSecret) Get(host, share string) (string, string, string, bool, error) {
	return s.d, s.u, s.p, s.found, nil
}
func (s stubSecret) Set(host, share, d, u, p string) error { return nil }
func (s stubSecret) Delete(host, share string) error       { return nil }

func TestCredentialsPrecedenceMemoryFirst(t *testing.T) {
	t.Cleanup(func() {
		SetSecretStore(nil)
		ClearCachedCredentials("host", "share")
	})
	// keyring with different creds (should be ignored due to memory hit)
	SetSecretStore(stubSecret{d: "kd", u: "ku", p: "kp", found: true})

	// seed memory (e.g., from URL)
	PutCachedCredentials("host", "share", Credentials{Domain: "md", Username: "mu", Password: "mp"})

	got := getCredentials("host", "share")
	if got.Username != "mu" || got.Password != "mp" || got.Domain != "md" {
		t.Fatalf("memory creds not preferred: %+v", got)
	}
}

func TestCredentialsPrecedenceKeyringSecond(t *testing.T) {
	t.Cleanup(func() {
		SetSecretStore(nil)
		ClearCachedCredentials("h", "s")
	})
	SetSecretStore(stubSecret{d: "kd", u: "ku", p: "kp", found: true})

	// no memory seed
	got := getCredentials("h", "s")
	if got.Username != "ku" || got.Password != "kp" || got.Domain != "kd" {
		t.Fatalf("keyring creds not used: %+v", got)
	}
	// keyring hit should seed memory
	if c, ok := GetCachedCredentials("h", "s"); !ok || c.Username != "ku" {
		t.Fatalf("keyring hit did not seed memory cache: %+v ok=%v", c, ok)
	}
}

func TestCredentialsAnonymousFallback(t *testing.T) {
	t.Cleanup(func() { SetSecretStore(nil) })
	SetSecretStore(stubSecret{found: false})

	got := getCredentials("nohost", "noshare")
	if got.Username != "" || got.Password != "" || got.Domain != "" {
		t.Fatalf("expected anonymous credentials, got %+v", got)
	}
}

func TestClearCachedCredentials(t *testing.T) {
	PutCachedCredentials("x", "y", Credentials{Username: "u"})
	ClearCachedCredentials("x", "y")
	if _, ok := GetCachedCredentials("x", "y"); ok {
		t.Fatal("credentials survived clear")
	}
}
