// Package common provides shared constants, types, and utilities
// used across the Messages desktop shell.
package common

import "errors"

// Sentinel errors for shell operations.
// These can be checked with errors.Is() for proper error handling.
var (
	// Setup errors. Any of these aborts startup.
	ErrMenuBuild        = errors.New("failed to build menu")
	ErrMenuAlreadyBuilt = errors.New("menu already built")
	ErrWindowCreate     = errors.New("failed to create window")
	ErrInvalidURL       = errors.New("invalid navigation URL")

	// Runtime errors. These are logged and discarded.
	ErrNoWindow        = errors.New("no application window")
	ErrWindowOperation = errors.New("window operation failed")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidAccel    = errors.New("invalid accelerator")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")

	// Connectivity errors.
	ErrUnreachable = errors.New("navigation target unreachable")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
