// Package errors is the error toolkit for infrastructure and transport code:
// stdlib matching plus pkg/errors wrapping, so callers need a single import.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap records a stack trace; it returns nil when err is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack marks errors that cross the HTTP boundary unchanged.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
