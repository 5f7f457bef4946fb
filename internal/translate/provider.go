package translate

import (
	"context"
	"fmt"
	"net/http"
)

// Options selects and configures translation providers.
type Options struct {
	Provider     string
	Fallback     string
	Endpoint     string
	HTTPClient   *http.Client
	LambdaPrefix string
	Environment  string
}

// New builds the configured provider, wrapped in a Cascade when a fallback
// provider is named.
func New(ctx context.Context, opts Options) (Translator, error) {
	primary, err := newProvider(ctx, opts.Provider, opts)
	if err != nil {
		return nil, err
	}
	if opts.Fallback == "" {
		return primary, nil
	}
	fallback, err := newProvider(ctx, opts.Fallback, opts)
	if err != nil {
		return nil, fmt.Errorf("fallback: %w", err)
	}
	return NewCascade(primary, fallback), nil
}

func newProvider(ctx context.Context, name string, opts Options) (Translator, error) {
	provider, err := ParseProvider(name)
	if err != nil {
		return nil, err
	}
	switch provider {
	case ProviderGoogle:
		return NewGoogle(opts.Endpoint, opts.HTTPClient), nil
	case ProviderLambda:
		return NewLambdaFromEnv(ctx, opts.LambdaPrefix, opts.Environment)
	default:
		return Noop{}, nil
	}
}
