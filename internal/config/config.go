// Package config loads the proxy configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/valenxo/Museo-MET/internal/fanout"
	"github.com/valenxo/Museo-MET/internal/logging"
	"github.com/valenxo/Museo-MET/internal/translate"
)

// Config is the explicit startup configuration of the server.
type Config struct {
	Port            int           `env:"MUSEO_PORT" envDefault:"3000"`
	UpstreamBaseURL string        `env:"MUSEO_UPSTREAM_BASE_URL" envDefault:"https://collectionapi.metmuseum.org/public/collection/v1"`
	UpstreamTimeout time.Duration `env:"MUSEO_UPSTREAM_TIMEOUT" envDefault:"30s"`
	FanoutWidth     int           `env:"MUSEO_FANOUT_WIDTH" envDefault:"8"`
	FetchPolicy     string        `env:"MUSEO_FETCH_POLICY" envDefault:"all-or-nothing"`
	SearchLimit     int           `env:"MUSEO_SEARCH_LIMIT" envDefault:"20"`

	Translation Translation `envPrefix:"MUSEO_TRANSLATION_"`

	LogLevel  string `env:"MUSEO_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"MUSEO_LOG_FORMAT" envDefault:"text"`

	OTelEnabled  bool   `env:"MUSEO_OTEL_ENABLED" envDefault:"true"`
	OTelEndpoint string `env:"MUSEO_OTEL_ENDPOINT"`
}

// Translation configures the translation provider.
type Translation struct {
	Provider       string   `env:"PROVIDER" envDefault:"google"`
	Fallback       string   `env:"FALLBACK"`
	SourceLang     string   `env:"SOURCE" envDefault:"en"`
	TargetLang     string   `env:"TARGET" envDefault:"es"`
	Endpoint       string   `env:"ENDPOINT" envDefault:"https://translate.googleapis.com/translate_a/single"`
	Fields         []string `env:"FIELDS" envDefault:"title" envSeparator:","`
	LambdaPrefix   string   `env:"LAMBDA_PREFIX" envDefault:"museo-translator"`
	Environment    string   `env:"ENV" envDefault:"dev"`
	DetectLanguage bool     `env:"DETECT_LANGUAGE" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr returns the listen address for Port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Policy returns the parsed fetch policy. Validate must have passed.
func (c Config) Policy() fanout.Policy {
	p, err := fanout.ParsePolicy(c.FetchPolicy)
	if err != nil {
		return fanout.AllOrNothing
	}
	return p
}

// Validate checks the configuration for values the server cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if u, err := url.Parse(c.UpstreamBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("upstream base url %q is not an absolute URL", c.UpstreamBaseURL))
	}
	if c.UpstreamTimeout < 0 {
		errs = append(errs, errors.New("upstream timeout must not be negative"))
	}
	if c.FanoutWidth < 1 {
		errs = append(errs, fmt.Errorf("fan-out width must be positive, got %d", c.FanoutWidth))
	}
	if c.SearchLimit < 1 {
		errs = append(errs, fmt.Errorf("search limit must be positive, got %d", c.SearchLimit))
	}
	if _, err := fanout.ParsePolicy(c.FetchPolicy); err != nil {
		errs = append(errs, err)
	}
	if err := c.Translation.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// Validate checks provider names and language tags.
func (t Translation) Validate() error {
	var errs []error

	if _, err := translate.ParseProvider(t.Provider); err != nil {
		errs = append(errs, err)
	}
	if t.Fallback != "" {
		if _, err := translate.ParseProvider(t.Fallback); err != nil {
			errs = append(errs, fmt.Errorf("fallback: %w", err))
		}
	}
	for name, tag := range map[string]string{"source": t.SourceLang, "target": t.TargetLang} {
		if _, err := language.Parse(tag); err != nil {
			errs = append(errs, fmt.Errorf("%s language %q: %w", name, tag, err))
		}
	}
	if t.SourceLang == t.TargetLang {
		errs = append(errs, errors.New("source and target language must be different"))
	}
	usesLambda := strings.EqualFold(strings.TrimSpace(t.Provider), translate.ProviderLambda) ||
		strings.EqualFold(strings.TrimSpace(t.Fallback), translate.ProviderLambda)
	if usesLambda && !translate.IsValidPair(t.SourceLang, t.TargetLang) {
		errs = append(errs, fmt.Errorf("no translator lambda for %s→%s (supported: %s)",
			t.SourceLang, t.TargetLang, strings.Join(translate.SupportedLanguages(), ", ")))
	}

	return errors.Join(errs...)
}
