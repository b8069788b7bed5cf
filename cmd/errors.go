package cmd

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Pipeline failure kinds. All of them abort the run.
var (
	// ErrConfig indicates missing or malformed configuration; no network call has been made
	ErrConfig = errors.New("configuration error")
	// ErrAuth indicates the app identity exchange or its verification failed
	ErrAuth = errors.New("authentication error")
	// ErrFetch indicates issues or pull requests could not be listed
	ErrFetch = errors.New("fetch error")
	// ErrPublish indicates the release could not be created or updated
	ErrPublish = errors.New("publish error")
)

// StageError ties a failure kind to the operation that produced it
type StageError struct {
	Kind error
	Op   string
	Err  error
}

func (e *StageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Op)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Op, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As
func (e *StageError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newStageError(kind error, op string, err error) error {
	return pkgerrors.WithStack(&StageError{Kind: kind, Op: op, Err: err})
}

// ConfigError wraps err as a configuration failure
func ConfigError(op string, err error) error {
	return newStageError(ErrConfig, op, err)
}

// AuthError wraps err as an authentication failure
func AuthError(op string, err error) error {
	return newStageError(ErrAuth, op, err)
}

// FetchError wraps err as a listing failure
func FetchError(op string, err error) error {
	return newStageError(ErrFetch, op, err)
}

// PublishError wraps err as a release create/update failure
func PublishError(op string, err error) error {
	return newStageError(ErrPublish, op, err)
}
