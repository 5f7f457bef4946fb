// Package main is the entry point for running the museum proxy as a Lambda
// function behind an API Gateway HTTP API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/valenxo/Museo-MET/internal/app"
	"github.com/valenxo/Museo-MET/internal/config"
	"github.com/valenxo/Museo-MET/internal/lambdaproxy"
	"github.com/valenxo/Museo-MET/internal/logging"
	"github.com/valenxo/Museo-MET/internal/translate"
)

var (
	initOnce sync.Once
	adapter  *lambdaproxy.Adapter
	initErr  error
)

func main() {
	lambda.Start(handleRequest)
}

// setup builds the handler once per execution environment.
func setup(ctx context.Context) error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		logger, err := logging.Setup(os.Stdout, logging.Config{Level: cfg.LogLevel, Format: "json"})
		if err != nil {
			initErr = err
			return
		}
		h, err := app.New(ctx, cfg, logger)
		if err != nil {
			initErr = err
			return
		}
		adapter = lambdaproxy.New(h)
	})
	return initErr
}

func handleRequest(ctx context.Context, event json.RawMessage) (any, error) {
	// Warmup detection comes before any other processing.
	if warmup, ok := IsWarmupEvent(event); ok {
		var invoker translate.LambdaInvoker
		if warmup.Concurrency > 0 {
			invoker = newSelfInvoker(ctx)
		}
		return HandleWarmup(ctx, warmup, invoker)
	}

	if err := setup(ctx); err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}

	var req events.APIGatewayV2HTTPRequest
	if err := json.Unmarshal(event, &req); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	return adapter.Serve(ctx, req)
}

// newSelfInvoker returns a Lambda client for warmup fan-out, or nil when the
// AWS configuration cannot be loaded.
func newSelfInvoker(ctx context.Context) translate.LambdaInvoker {
	client, err := newLambdaClient(ctx)
	if err != nil {
		slog.WarnContext(ctx, "warmup: load AWS config", "error", err)
		return nil
	}
	return client
}
