// Package apierr defines the closed set of errors the API client returns.
//
// Every failure that leaves the transport is an *Error; callers switch on
// Kind (or use errors.Is with the sentinel values below) and never see raw
// net/http errors.
package apierr

import (
	"errors"
	"fmt"
	"time"
)

type Kind int

const (
	KindGeneric Kind = iota
	KindNetwork
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindRateLimited
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindRateLimited:
		return "rate_limited"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

const (
	MsgNetwork        = "Network connection failed. Please check your internet connection."
	MsgValidation     = "Validation failed. Please check your input."
	MsgAuthentication = "Authentication required. Please log in again."
	MsgAuthorization  = "You do not have permission to perform this action."
	MsgNotFound       = "The requested resource was not found."
	MsgRateLimited    = "Too many requests. Please try again later."
	MsgServer         = "Server error. Please try again later."
	MsgGeneric        = "An unexpected error occurred."
)

type Error struct {
	Kind    Kind
	Message string
	// Status is 0 when no HTTP response was received.
	Status int
	Code   string
	// Details holds field-level messages for KindValidation.
	Details map[string]string
	// RetryAfter is set for KindRateLimited when the server sent Retry-After.
	RetryAfter time.Duration

	cause    error
	sentinel bool
}

// Sentinels for errors.Is matching by kind.
var (
	ErrNetwork        = &Error{Kind: KindNetwork, sentinel: true}
	ErrValidation     = &Error{Kind: KindValidation, sentinel: true}
	ErrAuthentication = &Error{Kind: KindAuthentication, sentinel: true}
	ErrAuthorization  = &Error{Kind: KindAuthorization, sentinel: true}
	ErrNotFound       = &Error{Kind: KindNotFound, sentinel: true}
	ErrRateLimited    = &Error{Kind: KindRateLimited, sentinel: true}
	ErrServer         = &Error{Kind: KindServer, sentinel: true}
	ErrGeneric        = &Error{Kind: KindGeneric, sentinel: true}
)

func (e *Error) Error() string {
	if e.sentinel {
		return e.Kind.String() + " error"
	}
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.sentinel {
		return t.Kind == e.Kind
	}
	return t == e
}

// Retryable reports whether the retry policy may issue another attempt.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindNetwork, KindServer:
		return true
	case KindValidation, KindAuthentication, KindAuthorization,
		KindNotFound, KindRateLimited, KindGeneric:
		return false
	default:
		return false
	}
}

// Notifiable reports whether a terminal failure should be shown to the user.
// Authentication failures redirect to login instead.
func (e *Error) Notifiable() bool {
	return e.Kind != KindAuthentication
}

func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// KindOf returns KindGeneric for errors outside the taxonomy.
func KindOf(err error) Kind {
	if apiErr, ok := As(err); ok {
		return apiErr.Kind
	}
	return KindGeneric
}

func Network(cause error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: MsgNetwork,
		cause:   cause,
	}
}

// Wrap converts any error into the taxonomy; *Error values pass through.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	if apiErr, ok := As(err); ok {
		return apiErr
	}
	return &Error{
		Kind:    KindGeneric,
		Message: MsgGeneric,
		cause:   err,
	}
}
