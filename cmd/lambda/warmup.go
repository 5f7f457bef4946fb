package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"golang.org/x/sync/errgroup"

	"github.com/valenxo/Museo-MET/internal/timeouts"
	"github.com/valenxo/Museo-MET/internal/translate"
)

// WarmupSource identifies warmup events from the scheduler.
const WarmupSource = "warmup"

// warmupDelay keeps this instance busy long enough for siblings to overlap.
var warmupDelay = timeouts.Warmup

// WarmupEvent is the scheduled event payload that keeps instances warm.
type WarmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

// WarmupResponse is returned for warmup invocations.
type WarmupResponse struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
}

// IsWarmupEvent reports whether event is a warmup event.
func IsWarmupEvent(event json.RawMessage) (*WarmupEvent, bool) {
	var probe struct {
		Source      string   `json:"source"`
		Concurrency *float64 `json:"concurrency"`
	}
	if err := json.Unmarshal(event, &probe); err != nil {
		return nil, false
	}
	if probe.Source != WarmupSource {
		return nil, false
	}

	warmup := &WarmupEvent{Source: probe.Source}
	if probe.Concurrency != nil && *probe.Concurrency > 0 {
		warmup.Concurrency = int(*probe.Concurrency)
	}
	return warmup, true
}

// HandleWarmup answers a warmup event and, when asked for concurrency,
// invokes this function that many more times asynchronously.
func HandleWarmup(ctx context.Context, warmup *WarmupEvent, invoker translate.LambdaInvoker) (*WarmupResponse, error) {
	instancesWarmed := 1

	if warmup.Concurrency > 0 && invoker != nil {
		if err := selfInvoke(ctx, invoker, os.Getenv("AWS_LAMBDA_FUNCTION_NAME"), warmup.Concurrency); err == nil {
			instancesWarmed += warmup.Concurrency
		}
	}

	time.Sleep(warmupDelay)

	return &WarmupResponse{
		Status:          "warm",
		InstancesWarmed: instancesWarmed,
	}, nil
}

func newLambdaClient(ctx context.Context) (*lambdasdk.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return lambdasdk.NewFromConfig(cfg), nil
}

// selfInvoke sends count asynchronous warmup events to functionName.
func selfInvoke(ctx context.Context, invoker translate.LambdaInvoker, functionName string, count int) error {
	// Children get concurrency 0 so they do not invoke again.
	payload, err := json.Marshal(WarmupEvent{Source: WarmupSource})
	if err != nil {
		return err
	}

	var g errgroup.Group
	for i := 0; i < count; i++ {
		g.Go(func() error {
			_, err := invoker.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(functionName),
				InvocationType: types.InvocationTypeEvent,
				Payload:        payload,
			})
			return err
		})
	}
	return g.Wait()
}
