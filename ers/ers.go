// Package ers provides some very basic error handling tools: a
// string-typed constant error for declaring sentinels, and thin
// wrappers around the standard errors package so that ers can be
// used as a drop in replacement for it.
package ers

import (
	"errors"
	"fmt"
)

// Error is a string type for declaring sentinel errors as
// constants:
//
//	const ErrNotFound ers.Error = "not found"
//
// The empty Error matches a nil error in Is.
type Error string

// New returns str as an Error.
func New(str string) error { return Error(str) }

func (e Error) Error() string { return string(e) }

// Is reports whether err is the same constant.
func (e Error) Is(err error) bool {
	switch {
	case err == nil && e == "":
		return true
	case (err == nil) != (e == ""):
		return false
	default:
		x, ok := err.(Error)
		return ok && x == e
	}
}

func As(err error, target any) bool { return errors.As(err, target) }

func Unwrap(err error) error { return errors.Unwrap(err) }

func Join(errs ...error) error { return errors.Join(errs...) }

// Is reports whether errors.Is holds for err and any of the
// targets. Nil targets never match a nil err.
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if err == nil && target != nil {
			continue
		}
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func Ok(err error) bool { return err == nil }

// When returns err if cond holds, and nil otherwise.
func When(cond bool, err error) error {
	if !cond {
		return nil
	}

	return err
}

// Whenf is the formatting form of When.
func Whenf(cond bool, tmpl string, args ...any) error {
	if !cond {
		return nil
	}

	return fmt.Errorf(tmpl, args...)
}

// Wrap annotates an error with a message, preserving the error for
// errors.Is and errors.As. Wrap returns nil when the error is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf is the formatting form of Wrap.
func Wrapf(err error, tmpl string, args ...any) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", fmt.Sprintf(tmpl, args...), err)
}
