// Package collection is the client for the upstream museum collection API.
package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/valenxo/Museo-MET/internal/domain"
	"github.com/valenxo/Museo-MET/internal/fanout"
	"github.com/valenxo/Museo-MET/internal/query"
)

// DefaultBaseURL is the public collection API root.
const DefaultBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"

// maxBodyBytes bounds how much of an upstream response is read.
const maxBodyBytes = 8 << 20

// Client calls the collection API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	pool       *fanout.Pool
	logger     *slog.Logger
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for upstream calls.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithPool sets the pool that bounds FetchAll and FetchEach.
func WithPool(p *fanout.Pool) Option {
	return func(cl *Client) { cl.pool = p }
}

// WithLogger sets the logger for upstream failures.
func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) { cl.logger = l }
}

// New creates a Client rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		pool:       fanout.New(fanout.DefaultWidth),
		logger:     slog.Default(),
		tracer:     otel.Tracer("github.com/valenxo/Museo-MET/internal/collection"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Departments lists the museum departments.
func (c *Client) Departments(ctx context.Context) ([]Department, error) {
	var resp struct {
		Departments []Department `json:"departments"`
	}
	if err := c.getJSON(ctx, "list departments", c.baseURL+"/departments", &resp); err != nil {
		return nil, err
	}
	if resp.Departments == nil {
		return []Department{}, nil
	}
	return resp.Departments, nil
}

// Search runs a search. An empty filter fails before any request is sent.
func (c *Client) Search(ctx context.Context, f query.Filter) (SearchResult, error) {
	endpoint, err := query.BuildSearchURL(c.baseURL, f)
	if err != nil {
		return SearchResult{}, err
	}
	var res SearchResult
	if err := c.getJSON(ctx, "search objects", endpoint, &res); err != nil {
		return SearchResult{}, err
	}
	if res.ObjectIDs == nil {
		res.ObjectIDs = []int{}
	}
	return res, nil
}

// Object fetches a single object record.
func (c *Client) Object(ctx context.Context, id int) (Object, error) {
	var obj Object
	endpoint := c.baseURL + "/objects/" + strconv.Itoa(id)
	if err := c.getJSON(ctx, "get object", endpoint, &obj); err != nil {
		return Object{}, err
	}
	return obj, nil
}

// FetchAll fetches every object concurrently on the client's pool. The
// result is in the order of ids. Any failed lookup fails the whole batch.
func (c *Client) FetchAll(ctx context.Context, ids []int) ([]Object, error) {
	objects, err := fanout.All(ctx, c.pool, ids, c.Object)
	if err != nil {
		return nil, domain.Upstream("fetch objects", "", err)
	}
	return objects, nil
}

// FetchEach fetches every object concurrently and reports failures per item.
func (c *Client) FetchEach(ctx context.Context, ids []int) []fanout.Result[Object] {
	return fanout.Each(ctx, c.pool, ids, c.Object)
}

// Fetch runs FetchAll or FetchEach depending on policy. Under AllOrNothing
// the results carry no errors.
func (c *Client) Fetch(ctx context.Context, policy fanout.Policy, ids []int) ([]fanout.Result[Object], error) {
	if policy == fanout.Isolate {
		return c.FetchEach(ctx, ids), nil
	}
	objects, err := c.FetchAll(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]fanout.Result[Object], len(objects))
	for i, obj := range objects {
		out[i] = fanout.Result[Object]{Value: obj}
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, op, endpoint string, target any) error {
	ctx, span := c.tracer.Start(ctx, "collection."+strings.ReplaceAll(op, " ", "_"),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.url", endpoint)),
	)
	defer span.End()

	err := c.doGetJSON(ctx, op, endpoint, target)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if !domain.IsKind(err, domain.KindNotFound) {
			c.logger.ErrorContext(ctx, "upstream request failed", "op", op, "endpoint", endpoint, "error", err)
		}
	}
	return err
}

func (c *Client) doGetJSON(ctx context.Context, op, endpoint string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Upstream(op, endpoint, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Upstream(op, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.Upstream(op, endpoint, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode == http.StatusNotFound {
		return domain.NotFound(op, endpoint, fmt.Errorf("upstream status: %s", resp.Status))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Upstream(op, endpoint, fmt.Errorf("upstream status: %s", resp.Status))
	}

	if err := json.Unmarshal(body, target); err != nil {
		return domain.Upstream(op, endpoint, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
