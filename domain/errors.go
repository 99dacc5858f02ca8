// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrAuthExpired = ErrorKind("auth_expired")
	ErrNotFound    = ErrorKind("not_found")
	ErrRateLimited = ErrorKind("rate_limited")
	ErrUnreachable = ErrorKind("unreachable")
	ErrUnsupported = ErrorKind("unsupported")
)

// ProviderError classifies a failed provider call so callers can route
// retries without knowing the transport.
type ProviderError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(kind ErrorKind, op string, err error) *ProviderError {
	return &ProviderError{Kind: kind, Op: op, Err: err}
}

// KindOf returns the taxonomy kind of err or the empty kind when err carries
// none.
func KindOf(err error) ErrorKind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ErrorKind("")
}

func IsAuthExpired(err error) bool { return KindOf(err) == ErrAuthExpired }
func IsNotFound(err error) bool    { return KindOf(err) == ErrNotFound }
func IsRateLimited(err error) bool { return KindOf(err) == ErrRateLimited }
func IsUnreachable(err error) bool { return KindOf(err) == ErrUnreachable }
func IsUnsupported(err error) bool { return KindOf(err) == ErrUnsupported }
