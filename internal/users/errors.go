package users

import "errors"

var (
	// ErrNotFound indicates the requested user does not exist.
	ErrNotFound = errors.New("user not found")
	// ErrEmailExists indicates another record already holds the email.
	ErrEmailExists = errors.New("email already exists")
)

// ValidationError reports a caller-correctable problem with submitted
// fields. Its text is returned verbatim to the client.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
