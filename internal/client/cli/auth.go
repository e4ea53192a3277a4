package cli

import (
	"context"
	"os"
)

// getSimpleText, getField and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getField = GetField
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the directory
// service. No distinction is made between credential rejection and a
// network failure; both surface as "Invalid email or password" and leave
// the user on the login prompt with no token stored.
//
// On success the collection view is activated: a single fetch populates
// the cache and the listing is printed.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.Login(ctx, email, password); err != nil {
		printlnFn("Invalid email or password")
		return err
	}

	a.userEmail = email
	printlnFn("Login successful")

	// View activation: exactly one fetch.
	return a.Load(ctx)
}

// Logout drops the session token and the local view state. A pending edit
// session is discarded with it.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	a.userEmail = ""
	a.editSession = nil
	a.cache.Replace(nil)
	return nil
}
