// Package session holds the session token obtained at login. The storage
// mechanism is a capability injected into the components that need it,
// never a package-level global.
package session

// Store is the key/value capability the client core writes the token into.
// Get returns the empty string when no token is held.
type Store interface {
	Set(token string)
	Get() string
	Clear()
}

// MemoryStore keeps the token in memory for the lifetime of the process.
// All access happens on the single CLI event loop, so no locking is needed.
type MemoryStore struct {
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Set(token string) { s.token = token }

func (s *MemoryStore) Get() string { return s.token }

func (s *MemoryStore) Clear() { s.token = "" }
