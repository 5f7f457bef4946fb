// Package lambdaproxy serves an http.Handler from API Gateway HTTP API events.
package lambdaproxy

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"

	"github.com/valenxo/Museo-MET/internal/httpx"
)

// Adapter converts API Gateway v2 events into requests for Handler.
type Adapter struct {
	Handler http.Handler
}

// New creates an Adapter for h.
func New(h http.Handler) *Adapter {
	return &Adapter{Handler: h}
}

// Serve runs one event through the handler and returns its response.
func (a *Adapter) Serve(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	req, err := NewRequest(ctx, event)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}

	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, req)
	return NewResponse(rec.Result())
}

// NewRequest builds the http.Request described by event.
func NewRequest(ctx context.Context, event events.APIGatewayV2HTTPRequest) (*http.Request, error) {
	method := event.RequestContext.HTTP.Method
	if method == "" {
		method = http.MethodGet
	}
	path := event.RawPath
	if path == "" {
		path = "/"
	}
	target := path
	if event.RawQueryString != "" {
		target += "?" + event.RawQueryString
	}

	var body io.Reader = http.NoBody
	if event.Body != "" {
		if event.IsBase64Encoded {
			decoded, err := base64.StdEncoding.DecodeString(event.Body)
			if err != nil {
				return nil, fmt.Errorf("decode event body: %w", err)
			}
			body = bytes.NewReader(decoded)
		} else {
			body = strings.NewReader(event.Body)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for name, value := range event.Headers {
		req.Header.Set(name, value)
	}
	if len(event.Cookies) > 0 {
		req.Header.Set("Cookie", strings.Join(event.Cookies, "; "))
	}
	if event.RequestContext.RequestID != "" && req.Header.Get(httpx.RequestIDHeader) == "" {
		req.Header.Set(httpx.RequestIDHeader, event.RequestContext.RequestID)
	}
	req.Host = event.RequestContext.DomainName
	if host := req.Header.Get("Host"); host != "" {
		req.Host = host
	}
	req.RemoteAddr = event.RequestContext.HTTP.SourceIP
	req.RequestURI = target
	return req, nil
}

// NewResponse converts a recorded response into an API Gateway v2 response.
// Bodies that are not valid UTF-8 are base64 encoded.
func NewResponse(res *http.Response) (events.APIGatewayV2HTTPResponse, error) {
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, fmt.Errorf("read response body: %w", err)
	}

	out := events.APIGatewayV2HTTPResponse{
		StatusCode: res.StatusCode,
		Headers:    make(map[string]string, len(res.Header)),
	}
	for name, values := range res.Header {
		if http.CanonicalHeaderKey(name) == "Set-Cookie" {
			out.Cookies = append(out.Cookies, values...)
			continue
		}
		out.Headers[name] = strings.Join(values, ",")
	}
	if utf8.Valid(data) {
		out.Body = string(data)
	} else {
		out.Body = base64.StdEncoding.EncodeToString(data)
		out.IsBase64Encoded = true
	}
	return out, nil
}
