package folio

import (
	"errors"
	"fmt"
)

// ErrNoToken indicates Okapi answered the login call without issuing a
// session token. The pipeline itself proceeds without credentials in that
// case; the test command surfaces it to the user.
var ErrNoToken = errors.New("no token in login response")

// ParseError marks a response body that could not be decoded. Resolvers
// consume it locally and fall back to an empty result, so it never crosses
// the Operations boundary.
type ParseError struct {
	Endpoint string
	Err      error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s response: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying decode error
func (e *ParseError) Unwrap() error {
	return e.Err
}
