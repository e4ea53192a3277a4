// Package directory holds the client-side state for the user collection:
// the in-memory cache mirroring the last successful fetch, the search
// projection derived from it, and the edit-session working copy.
package directory

import "github.com/Zeldris69240/reqres-app/internal/client/models"

// Cache is an ordered, in-memory mirror of the last successful list fetch.
// It is owned by the view that created it and is only mutated from the
// single CLI event loop, so it carries no locking.
//
// Invariant: at most one record per identifier.
type Cache struct {
	users []models.User
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Replace swaps the whole content for the given sequence, preserving its
// order. The previous content is discarded (last fetch wins); stale or
// partial responses are never merged.
func (c *Cache) Replace(users []models.User) {
	c.users = append(c.users[:0:0], users...)
}

// Apply replaces the record with the same identifier in place. Order is
// preserved; a record whose identifier is not present is ignored.
func (c *Cache) Apply(u models.User) {
	for i := range c.users {
		if c.users[i].ID == u.ID {
			c.users[i] = u
			return
		}
	}
}

// Remove deletes the record with the given identifier. Removing an absent
// identifier is a no-op.
func (c *Cache) Remove(id int) {
	for i := range c.users {
		if c.users[i].ID == id {
			c.users = append(c.users[:i], c.users[i+1:]...)
			return
		}
	}
}

// Get returns the record with the given identifier.
func (c *Cache) Get(id int) (models.User, bool) {
	for _, u := range c.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// Users returns a copy of the cached records in their fetch order.
func (c *Cache) Users() []models.User {
	return append([]models.User(nil), c.users...)
}

// Len reports the number of cached records.
func (c *Cache) Len() int {
	return len(c.users)
}
