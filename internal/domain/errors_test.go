package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorMatchesSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		kind     Kind
	}{
		{"validation", Validation("search", "no search parameters supplied"), ErrValidation, KindValidation},
		{"not found", NotFound("object", "http://x/objects/1", nil), ErrNotFound, KindNotFound},
		{"upstream", Upstream("object", "http://x/objects/1", errors.New("boom")), ErrUpstream, KindUpstream},
		{"translation", Translation("translate", errors.New("boom")), ErrTranslation, KindTranslation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("handler: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", wrapped, tt.sentinel)
			}
			if !IsKind(wrapped, tt.kind) {
				t.Errorf("IsKind(%v, %q) = false", wrapped, tt.kind)
			}
		})
	}
}

func TestErrorMessageIncludesEndpoint(t *testing.T) {
	err := Upstream("fetch object", "http://upstream/objects/7", errors.New("status 503"))
	want := "fetch object: upstream (endpoint=http://upstream/objects/7): status 503"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Upstream("departments", "", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable through Unwrap")
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{Validation("search", "bad"), http.StatusBadRequest},
		{NotFound("search", "", nil), http.StatusNotFound},
		{Upstream("search", "", nil), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", ErrNotFound), http.StatusNotFound},
		{Upstream("fetch objects", "", NotFound("get object", "", nil)), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
