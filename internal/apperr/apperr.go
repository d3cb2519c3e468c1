// Package apperr defines the error taxonomy shared by services and the HTTP
// layer. Every service failure carries a Kind; the transport mapping lives in
// the respond package so services stay free of HTTP concerns.
package apperr

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuthentication
	KindForbidden
	KindNotFound
	// KindMisconfiguration marks a broken startup invariant, e.g. a missing
	// role seed row. It is fatal: nothing at request time can repair it.
	KindMisconfiguration
)

// Error is a kind-tagged error. Message is safe to show to the caller; the
// wrapped cause is for logs only.
type Error struct {
	Kind    Kind
	Message string
	// Fields carries per-field detail for validation failures.
	Fields map[string]string
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func Conflict(message string) *Error       { return New(KindConflict, message) }
func Authentication(message string) *Error { return New(KindAuthentication, message) }
func Forbidden(message string) *Error      { return New(KindForbidden, message) }
func NotFound(message string) *Error       { return New(KindNotFound, message) }

func Misconfiguration(message string) *Error {
	return New(KindMisconfiguration, message)
}

// KindOf extracts the Kind from err; unknown errors report KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
