package directory

import (
	"errors"
	"strings"

	"github.com/Zeldris69240/reqres-app/internal/client/models"
)

// Validation errors returned by EditSession.Validate. Callers match them
// with errors.Is.
var (
	ErrFieldRequired = errors.New("all fields are required")
	ErrInvalidEmail  = errors.New("email must contain '@'")
)

// EditSession is a working copy of one record's editable fields. The
// identifier and avatar are carried along but cannot be changed. The copy
// is mutated freely until it is either committed through the user service
// or discarded; discarding has no side effects on the cache or the server.
//
// At most one session is active at a time; opening a new one simply
// replaces the previous working copy.
type EditSession struct {
	FirstName string
	LastName  string
	Email     string

	original models.User
}

// NewEditSession captures a working copy of the given record.
func NewEditSession(u models.User) *EditSession {
	return &EditSession{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		original:  u,
	}
}

// ID returns the identifier of the record being edited.
func (s *EditSession) ID() int {
	return s.original.ID
}

// Validate checks the working copy before any remote call is made: the
// three editable fields must be non-empty and the email must look like an
// address. Deeper format checks are left to the remote service.
func (s *EditSession) Validate() error {
	if strings.TrimSpace(s.FirstName) == "" ||
		strings.TrimSpace(s.LastName) == "" ||
		strings.TrimSpace(s.Email) == "" {
		return ErrFieldRequired
	}
	if !strings.Contains(s.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// Record merges the working copy back over the original record, keeping
// the identifier and avatar unchanged.
func (s *EditSession) Record() models.User {
	u := s.original
	u.FirstName = s.FirstName
	u.LastName = s.LastName
	u.Email = s.Email
	return u
}
