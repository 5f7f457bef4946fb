// Package fanout runs independent remote calls on a bounded worker pool and
// joins their results in input order.
package fanout

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// DefaultWidth is the pool width used when none is configured.
const DefaultWidth = 8

// Policy decides how a batch reacts to a failed item.
type Policy string

const (
	// AllOrNothing fails the whole batch on the first failed item.
	AllOrNothing Policy = "all-or-nothing"
	// Isolate lets every item finish and reports failures per item.
	Isolate Policy = "isolate"
)

// ParsePolicy converts a configuration value into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return AllOrNothing, nil
	case AllOrNothing, Isolate:
		return p, nil
	default:
		return "", fmt.Errorf("unknown fan-out policy %q", s)
	}
}

// Result is the outcome of a single item under the Isolate policy.
type Result[T any] struct {
	Value T
	Err   error
}

// Pool bounds how many calls of a batch run at once.
type Pool struct {
	width  int
	tracer trace.Tracer
}

// New creates a Pool. A non-positive width falls back to DefaultWidth.
func New(width int) *Pool {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Pool{
		width:  width,
		tracer: otel.Tracer("github.com/valenxo/Museo-MET/internal/fanout"),
	}
}

// Width returns the maximum number of concurrent calls.
func (p *Pool) Width() int {
	if p == nil || p.width <= 0 {
		return DefaultWidth
	}
	return p.width
}

func (p *Pool) start(ctx context.Context, name string, n int) (context.Context, trace.Span) {
	tracer := otel.Tracer("github.com/valenxo/Museo-MET/internal/fanout")
	if p != nil && p.tracer != nil {
		tracer = p.tracer
	}
	return tracer.Start(ctx, name, trace.WithAttributes(
		attribute.Int("fanout.items", n),
		attribute.Int("fanout.width", p.Width()),
	))
}

// All calls fn once per item and returns the outputs in input order.
// The first error cancels the remaining calls and no partial result is returned.
func All[In, Out any](ctx context.Context, p *Pool, items []In, fn func(context.Context, In) (Out, error)) ([]Out, error) {
	out := make([]Out, len(items))
	if len(items) == 0 {
		return out, nil
	}

	ctx, span := p.start(ctx, "fanout.All", len(items))
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Width())
	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := fn(gctx, item)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return out, nil
}

// Each calls fn once per item and always returns one Result per item, in
// input order. A failed item never cancels its siblings.
func Each[In, Out any](ctx context.Context, p *Pool, items []In, fn func(context.Context, In) (Out, error)) []Result[Out] {
	out := make([]Result[Out], len(items))
	if len(items) == 0 {
		return out
	}

	ctx, span := p.start(ctx, "fanout.Each", len(items))
	defer span.End()

	var g errgroup.Group
	g.SetLimit(p.Width())
	for i, item := range items {
		g.Go(func() error {
			v, err := fn(ctx, item)
			out[i] = Result[Out]{Value: v, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range out {
		if r.Err != nil {
			failed++
		}
	}
	span.SetAttributes(attribute.Int("fanout.failed", failed))
	return out
}
