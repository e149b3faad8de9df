package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAuthRejected       = errors.New("stats api: key rejected")
	ErrBlocked            = errors.New("stats api: request blocked")
	ErrNotFound           = errors.New("stats api: player not found")
	ErrUnreachable        = errors.New("stats api: unreachable")
	ErrMalformedResponse  = errors.New("stats api: malformed response")
	ErrNotLinked          = errors.New("no linked account")
	ErrStoreSchemaMissing = errors.New("link store schema missing")
	ErrUnknownPlatform    = errors.New("unknown platform")
)

// UnexpectedStatusError cubre cualquier status que no clasificamos.
type UnexpectedStatusError struct {
	Status int
	Body   string
}

func (e *UnexpectedStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("stats api status %d", e.Status)
	}
	return fmt.Sprintf("stats api status %d: %s", e.Status, e.Body)
}
