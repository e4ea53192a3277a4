package cli

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/Zeldris69240/reqres-app/internal/client/directory"
	"github.com/Zeldris69240/reqres-app/internal/client/models"
)

// Load refetches the collection. On failure the cache keeps whatever it
// held before and the user is told once; no retry is attempted.
func (a *App) Load(ctx context.Context) error {
	if err := a.userService.Load(ctx); err != nil {
		printlnFn("Failed to fetch users.")
		return err
	}
	return a.List(ctx)
}

// List prints the cached users in fetch order.
func (a *App) List(ctx context.Context) error {
	return a.printUsers(a.userService.Users())
}

// Search prints the users matching the query. When the query is empty the
// user is prompted for one; an empty answer lists everything.
func (a *App) Search(ctx context.Context, query string) error {
	if query == "" {
		q, err := getSimpleText(a.reader, "Search", os.Stdout)
		if err != nil {
			return err
		}
		query = q
	}
	return a.printUsers(a.userService.Search(query))
}

func (a *App) printUsers(users []models.User) error {
	if len(users) == 0 {
		printlnFn("No users found.")
		return nil
	}
	for _, u := range users {
		printlnFn(u.String())
	}
	return nil
}

// Edit opens an edit session for one cached record, collects the three
// editable fields (empty input keeps the current value), and offers to
// commit right away. Opening a session while another is pending replaces
// the pending one.
func (a *App) Edit(ctx context.Context) error {
	id, err := a.promptID("Enter user id to edit")
	if err != nil {
		return err
	}

	u, ok := a.cache.Get(id)
	if !ok {
		printlnFn("No cached user with that id.")
		return nil
	}

	es := directory.NewEditSession(u)

	es.FirstName, err = getField(a.reader, "First name", es.FirstName, os.Stdout)
	if err != nil {
		return err
	}
	es.LastName, err = getField(a.reader, "Last name", es.LastName, os.Stdout)
	if err != nil {
		return err
	}
	es.Email, err = getField(a.reader, "Email", es.Email, os.Stdout)
	if err != nil {
		return err
	}

	a.editSession = es

	answer, err := getSimpleText(a.reader, "Update now? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, "y") {
		return a.Commit(ctx)
	}
	printlnFn("Edit pending; use 'commit' to save or 'cancel' to discard.")
	return nil
}

// Commit sends the pending edit to the server. Validation happens before
// any remote call; a failed update leaves the session open and the cache
// untouched, so the user can retry or cancel.
func (a *App) Commit(ctx context.Context) error {
	if a.editSession == nil {
		printlnFn("Nothing to commit.")
		return nil
	}
	if err := a.userService.Commit(ctx, a.editSession); err != nil {
		switch {
		case errors.Is(err, directory.ErrFieldRequired), errors.Is(err, directory.ErrInvalidEmail):
			printlnFn(err.Error())
		default:
			printlnFn("Failed to update user.")
		}
		return err
	}
	a.editSession = nil
	printlnFn("User updated successfully!")
	return nil
}

// Cancel discards the pending edit without any remote call.
func (a *App) Cancel(ctx context.Context) error {
	if a.editSession == nil {
		printlnFn("Nothing to cancel.")
		return nil
	}
	a.editSession = nil
	printlnFn("Edit discarded.")
	return nil
}

// Delete removes one record. The remote call is issued regardless of
// local presence; the cache only changes when the server confirms.
func (a *App) Delete(ctx context.Context) error {
	id, err := a.promptID("Enter user id to delete")
	if err != nil {
		return err
	}

	if err := a.userService.Delete(ctx, id); err != nil {
		printlnFn("Failed to delete user.")
		return err
	}
	printlnFn("User deleted successfully!")
	return nil
}

func (a *App) promptID(prompt string) (int, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		printlnFn("Invalid id:", text)
		return 0, err
	}
	return id, nil
}
