// Package app assembles the proxy from its configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/valenxo/Museo-MET/internal/collection"
	"github.com/valenxo/Museo-MET/internal/config"
	"github.com/valenxo/Museo-MET/internal/fanout"
	"github.com/valenxo/Museo-MET/internal/handler"
	"github.com/valenxo/Museo-MET/internal/httpclient"
	"github.com/valenxo/Museo-MET/internal/timeouts"
	"github.com/valenxo/Museo-MET/internal/translate"
)

// ServiceName identifies the proxy in traces.
const ServiceName = "museo-met"

// New builds the routed HTTP handler described by cfg.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (http.Handler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	pool := fanout.New(cfg.FanoutWidth)
	httpClient := httpclient.New(httpclient.ForWidth(cfg.UpstreamTimeout, cfg.FanoutWidth))

	client := collection.New(cfg.UpstreamBaseURL,
		collection.WithHTTPClient(httpClient),
		collection.WithPool(pool),
		collection.WithLogger(logger),
	)

	tr, err := translate.New(ctx, translate.Options{
		Provider:     cfg.Translation.Provider,
		Fallback:     cfg.Translation.Fallback,
		Endpoint:     cfg.Translation.Endpoint,
		HTTPClient:   httpClient,
		LambdaPrefix: cfg.Translation.LambdaPrefix,
		Environment:  cfg.Translation.Environment,
	})
	if err != nil {
		return nil, fmt.Errorf("create translator: %w", err)
	}
	enricher := translate.NewEnricher(tr, cfg.Translation.SourceLang, cfg.Translation.TargetLang,
		translate.WithPool(pool),
		translate.WithLogger(logger),
		translate.WithObjectFields(cfg.Translation.Fields),
		translate.WithLanguageDetection(cfg.Translation.DetectLanguage),
	)

	h := handler.New(client, enricher, handler.Config{
		Policy:      cfg.Policy(),
		SearchLimit: cfg.SearchLimit,
		Lang:        cfg.Translation.TargetLang,
		Logger:      logger,
	})
	return h.Routes(), nil
}

// Serve runs h on ln until ctx is cancelled, then drains in-flight requests.
func Serve(ctx context.Context, ln net.Listener, h http.Handler, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: timeouts.ReadHeader,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server.started", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("server.stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
