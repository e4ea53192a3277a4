// Package models contains the data types exchanged with the user-directory
// service and shown in the CLI.
package models

import "fmt"

// User is a single directory record as returned by the remote service.
// ID is assigned by the server and never changes; Avatar is an opaque URI
// the client carries but does not edit.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
}

// String renders a one-line list row.
func (u User) String() string {
	return fmt.Sprintf("%4d  %s %s <%s>", u.ID, u.FirstName, u.LastName, u.Email)
}
