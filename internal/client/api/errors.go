package api

import "errors"

// Sentinel errors, one per remote operation. Any non-2xx response and any
// transport failure map uniformly onto the operation's sentinel; callers
// match with errors.Is and do not branch on response codes.
var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrFetchFailed          = errors.New("fetch failed")
	ErrUpdateFailed         = errors.New("update failed")
	ErrDeleteFailed         = errors.New("delete failed")
)
