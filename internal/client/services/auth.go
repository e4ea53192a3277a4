// Package services contains the application services for the directory
// client: authentication and the user-collection workflow sitting between
// the CLI and the remote API.
package services

import (
	"context"
	"fmt"

	"github.com/Zeldris69240/reqres-app/internal/client/api"
	"github.com/Zeldris69240/reqres-app/internal/client/session"
)

// AuthService defines the authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a token and capture it in the store.
//   - Logout: drop the stored token.
//   - Close: release underlying client resources.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context)
	Close(ctx context.Context) error
}

type authService struct {
	client api.Client
	tokens session.Store
}

// NewAuthService constructs an AuthService bound to the given API client
// and token store.
func NewAuthService(client api.Client, tokens session.Store) AuthService {
	return &authService{client: client, tokens: tokens}
}

// Login authenticates against the remote service. On success the token is
// stored for the lifetime of the process. On any failure — credential
// rejection and network failure alike — nothing is stored and the error
// wraps api.ErrAuthenticationFailed.
func (a *authService) Login(ctx context.Context, email, password string) error {
	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	a.tokens.Set(token)
	return nil
}

// Logout drops the stored token. There is no remote invalidation call in
// the service contract.
func (a *authService) Logout(ctx context.Context) {
	a.tokens.Clear()
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
