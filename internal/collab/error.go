// Package collab defines the tagged error type shared by external
// collaborator clients (weather, wiki, generative backend).
package collab

import (
	"errors"
	"fmt"
)

// Kind categorizes a collaborator failure. Handlers select user-facing
// messages by kind; the underlying error is kept only for logs.
type Kind string

const (
	KindTimeout         Kind = "timeout"
	KindUnauthorized    Kind = "unauthorized"
	KindRateLimited     Kind = "rate_limited"
	KindContentFiltered Kind = "content_filtered"
	KindUnreachable     Kind = "unreachable"
	KindUnknown         Kind = "unknown"
)

// Error wraps a collaborator failure with its classification.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from an error chain, defaulting to
// KindUnknown.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}
