// Package session persists the authentication token and user identity for
// the lifetime of one client session. It is the only component touching the
// persistence boundary; everything else reads the session through Store.
package session

import "sync"

// KV is the persistence boundary for session state. Delete removes all given
// keys as one operation so callers never observe a half-cleared session.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(keys ...string)
}

// MemoryKV is a process-scoped KV. The client's session lives exactly as
// long as the process, mirroring browser session storage.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryKV) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *MemoryKV) Delete(keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
}
