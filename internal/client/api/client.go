// Package api contains the client for the remote user-directory service.
// The Client interface mirrors the four operations of the service
// contract; httpClient is the production implementation.
package api

import (
	"context"

	"github.com/Zeldris69240/reqres-app/internal/client/models"
)

type Client interface {
	// Login exchanges credentials for a session token.
	Login(ctx context.Context, email, password string) (string, error)

	// ListUsers fetches the first page of the user collection.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser sends the editable fields for the given identifier.
	UpdateUser(ctx context.Context, id int, firstName, lastName, email string) error

	// DeleteUser removes the record with the given identifier.
	DeleteUser(ctx context.Context, id int) error

	Close() error
}
