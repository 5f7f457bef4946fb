// Package domain contains the error taxonomy shared by the museum proxy.
package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for broad classification.
var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("not found")
	ErrUpstream    = errors.New("upstream error")
	ErrTranslation = errors.New("translation error")
)

// Kind is a coarse-grained categorization for errors.
type Kind string

const (
	KindValidation  Kind = "validation"
	KindNotFound    Kind = "not_found"
	KindUpstream    Kind = "upstream"
	KindTranslation Kind = "translation"
)

// Error wraps an underlying error with operation context and a kind.
type Error struct {
	Op       string
	Kind     Kind
	Endpoint string // Optional: upstream URL involved
	Err      error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Endpoint != "" {
		base += fmt.Sprintf(" (endpoint=%s)", e.Endpoint)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is match an *Error against the sentinel of its kind.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	return sentinel(e.Kind) == target
}

func sentinel(kind Kind) error {
	switch kind {
	case KindValidation:
		return ErrValidation
	case KindNotFound:
		return ErrNotFound
	case KindUpstream:
		return ErrUpstream
	case KindTranslation:
		return ErrTranslation
	}
	return nil
}

// Validation builds a validation error for op.
func Validation(op, format string, args ...any) error {
	return &Error{Op: op, Kind: KindValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound builds a not-found error for op.
func NotFound(op, endpoint string, err error) error {
	return &Error{Op: op, Kind: KindNotFound, Endpoint: endpoint, Err: err}
}

// Upstream builds an upstream error for op.
func Upstream(op, endpoint string, err error) error {
	return &Error{Op: op, Kind: KindUpstream, Endpoint: endpoint, Err: err}
}

// Translation builds a translation error for op.
func Translation(op string, err error) error {
	return &Error{Op: op, Kind: KindTranslation, Err: err}
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind Kind) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

// HTTPStatus maps an error to the status code returned to browser clients.
// The outermost classified error decides, so an upstream batch failure caused
// by a missing object is still a server error.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	kind := Kind("")
	var de *Error
	if errors.As(err, &de) {
		kind = de.Kind
	}
	switch {
	case kind == KindValidation, kind == "" && errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case kind == KindNotFound, kind == "" && errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
