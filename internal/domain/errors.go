package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies business-rule failures so the transport layer can map
// them to status codes without string matching.
type ErrorKind string

const (
	KindValidation   ErrorKind = "VALIDATION"
	KindPrecondition ErrorKind = "PRECONDITION"
	KindConflict     ErrorKind = "CONFLICT"
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindInvalidState ErrorKind = "INVALID_STATE"
)

// Error is a caller-facing business failure. It aborts the enclosing
// transaction and is never retried internally.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) *Error {
	return newError(KindValidation, format, args...)
}

func Preconditionf(format string, args ...any) *Error {
	return newError(KindPrecondition, format, args...)
}

func Conflictf(format string, args ...any) *Error {
	return newError(KindConflict, format, args...)
}

func NotFoundf(format string, args ...any) *Error {
	return newError(KindNotFound, format, args...)
}

func InvalidStatef(format string, args ...any) *Error {
	return newError(KindInvalidState, format, args...)
}

// KindOf returns the error's kind, or "" for non-business errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsValidation(err error) bool   { return KindOf(err) == KindValidation }
func IsPrecondition(err error) bool { return KindOf(err) == KindPrecondition }
func IsConflict(err error) bool     { return KindOf(err) == KindConflict }
func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsInvalidState(err error) bool { return KindOf(err) == KindInvalidState }
