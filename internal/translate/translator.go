// Package translate machine-translates display text and enriches upstream
// records with the result.
package translate

import (
	"context"
	"fmt"
	"strings"
)

// Provider names accepted by New.
const (
	ProviderGoogle = "google"
	ProviderLambda = "lambda"
	ProviderNoop   = "noop"
)

// Translator translates a single text. The call blocks until the provider
// answers and returns either the translation or an error.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Func adapts a function to the Translator interface.
type Func func(ctx context.Context, text, source, target string) (string, error)

func (f Func) Translate(ctx context.Context, text, source, target string) (string, error) {
	return f(ctx, text, source, target)
}

// Noop returns every text unchanged.
type Noop struct{}

func (Noop) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}

// ParseProvider normalizes a provider name.
func ParseProvider(name string) (string, error) {
	switch p := strings.ToLower(strings.TrimSpace(name)); p {
	case ProviderGoogle, ProviderLambda, ProviderNoop:
		return p, nil
	default:
		return "", fmt.Errorf("unknown translation provider %q", name)
	}
}
