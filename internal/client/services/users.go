package services

import (
	"context"
	"fmt"

	"github.com/Zeldris69240/reqres-app/internal/client/api"
	"github.com/Zeldris69240/reqres-app/internal/client/directory"
	"github.com/Zeldris69240/reqres-app/internal/client/models"
)

// UserService is the user-collection workflow: it owns the fetch, the
// search projection, and the edit/delete reconciliation against the local
// cache.
//
// Reconciliation policy: the cache is only mutated after the remote call
// has succeeded. A failed update leaves the edit session open and the
// cache untouched, so the cache never reflects an unconfirmed edit.
type UserService interface {
	// Load performs one remote list fetch and replaces the cache with the
	// result. On failure the cache keeps its prior state.
	Load(ctx context.Context) error

	// Users returns the cached records in fetch order.
	Users() []models.User

	// Search projects the cache through the case-insensitive substring
	// filter. An empty query returns the full cache.
	Search(query string) []models.User

	// Commit validates the working copy, sends the remote update, and on
	// success applies the committed fields to the cache in place. No remote
	// call is made when validation fails.
	Commit(ctx context.Context, s *directory.EditSession) error

	// Delete sends the remote delete and on success removes the record
	// from the cache. The remote call is issued even when the identifier is
	// not cached locally; the remote response governs.
	Delete(ctx context.Context, id int) error
}

type userService struct {
	client api.Client
	cache  *directory.Cache
}

// NewUserService constructs a UserService over the given API client and
// the cache owned by the calling view.
func NewUserService(client api.Client, cache *directory.Cache) UserService {
	return &userService{client: client, cache: cache}
}

func (s *userService) Load(ctx context.Context) error {
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	s.cache.Replace(users)
	return nil
}

func (s *userService) Users() []models.User {
	return s.cache.Users()
}

func (s *userService) Search(query string) []models.User {
	return directory.Filter(s.cache.Users(), query)
}

func (s *userService) Commit(ctx context.Context, es *directory.EditSession) error {
	if err := es.Validate(); err != nil {
		return err
	}
	if err := s.client.UpdateUser(ctx, es.ID(), es.FirstName, es.LastName, es.Email); err != nil {
		return fmt.Errorf("update user %d: %w", es.ID(), err)
	}
	s.cache.Apply(es.Record())
	return nil
}

func (s *userService) Delete(ctx context.Context, id int) error {
	if err := s.client.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	s.cache.Remove(id)
	return nil
}
