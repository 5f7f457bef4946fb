// Package cli implements the museo command line.
package cli

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/valenxo/Museo-MET/internal/app"
	"github.com/valenxo/Museo-MET/internal/config"
	"github.com/valenxo/Museo-MET/internal/logging"
	"github.com/valenxo/Museo-MET/internal/telemetry"
)

// Execute runs the root command with ctx.
func Execute(ctx context.Context) {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		config.Exitf("museo: %v", err)
	}
}

// flags holds command-line overrides of the environment configuration.
type flags struct {
	port        int
	upstream    string
	width       int
	policy      string
	provider    string
	fallback    string
	target      string
	logLevel    string
	logFormat   string
	searchLimit int
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:          "museo",
		Short:        "Translating proxy for the Met Museum collection API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	fs := cmd.PersistentFlags()
	fs.IntVar(&f.port, "port", 3000, "listen port (MUSEO_PORT)")
	fs.StringVar(&f.upstream, "upstream", "", "collection API base URL (MUSEO_UPSTREAM_BASE_URL)")
	fs.IntVar(&f.width, "width", 8, "concurrent upstream calls per batch (MUSEO_FANOUT_WIDTH)")
	fs.StringVar(&f.policy, "policy", "", "fetch failure policy: all-or-nothing or isolate (MUSEO_FETCH_POLICY)")
	fs.IntVar(&f.searchLimit, "search-limit", 20, "objects returned per search page (MUSEO_SEARCH_LIMIT)")
	fs.StringVar(&f.provider, "provider", "", "translation provider: google, lambda or noop (MUSEO_TRANSLATION_PROVIDER)")
	fs.StringVar(&f.fallback, "fallback", "", "fallback translation provider (MUSEO_TRANSLATION_FALLBACK)")
	fs.StringVar(&f.target, "target", "", "target language (MUSEO_TRANSLATION_TARGET)")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error (MUSEO_LOG_LEVEL)")
	fs.StringVar(&f.logFormat, "log-format", "", "text or json (MUSEO_LOG_FORMAT)")

	cmd.AddCommand(validateCmd(&f))
	return cmd
}

// loadConfig reads the environment and applies only the flags set on cmd.
func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	var cfg config.Config
	if err := config.ParseEnv(&cfg); err != nil {
		return config.Config{}, err
	}
	applyFlags(cmd, f, &cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, f flags, cfg *config.Config) {
	changed := func(name string) bool { return cmd.Flags().Changed(name) }

	if changed("port") {
		cfg.Port = f.port
	}
	if changed("upstream") {
		cfg.UpstreamBaseURL = f.upstream
	}
	if changed("width") {
		cfg.FanoutWidth = f.width
	}
	if changed("policy") {
		cfg.FetchPolicy = f.policy
	}
	if changed("search-limit") {
		cfg.SearchLimit = f.searchLimit
	}
	if changed("provider") {
		cfg.Translation.Provider = f.provider
	}
	if changed("fallback") {
		cfg.Translation.Fallback = f.fallback
	}
	if changed("target") {
		cfg.Translation.TargetLang = f.target
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	logger, err := logging.Setup(os.Stderr, logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}

	shutdown, err := telemetry.Setup(ctx, app.ServiceName, telemetry.Config{
		Enabled:  cfg.OTelEnabled,
		Endpoint: cfg.OTelEndpoint,
	})
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("telemetry shutdown", "error", err)
		}
	}()

	h, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr(), err)
	}
	return app.Serve(ctx, ln, h, logger)
}
