package secret

import "sync"

// memoryStore is a process-lifetime Store used when the OS keyring is
// unavailable (headless sessions, locked keychains).
type memoryStore struct {
	mu    sync.RWMutex
	items map[string][3]string // key: host|share -> domain,user,pass
}

// NewMemoryStore returns an in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{items: make(map[string][3]string)}
}

func (s *memoryStore) Get(host, share string) (domain, user, pass string, found bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[host+"|"+share]
	if !ok {
		return "", "", "", false, nil
	}
	return v[0], v[1], v[2], true, nil
}

func (s *memoryStore) Set(host, share, domain, user, pass string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[host+"|"+share] = [3]string{domain, user, pass}
	return nil
}

func (s *memoryStore) Delete(host, share string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, host+"|"+share)
	return nil
}
