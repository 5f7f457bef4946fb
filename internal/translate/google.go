package translate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

// DefaultGoogleEndpoint is the keyless web translation endpoint.
const DefaultGoogleEndpoint = "https://translate.googleapis.com/translate_a/single"

// Google calls the public Google translate endpoint used by browser widgets.
type Google struct {
	Endpoint   string
	HTTPClient *http.Client
}

// NewGoogle creates a Google translator. Empty endpoint uses the default.
func NewGoogle(endpoint string, client *http.Client) *Google {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultGoogleEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Google{Endpoint: endpoint, HTTPClient: client}
}

func (g *Google) Translate(ctx context.Context, text, source, target string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", source)
	params.Set("tl", target)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build translate request: %w", err)
	}

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("translate status: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read translate response: %w", err)
	}
	return parseGoogleResponse(body)
}

// parseGoogleResponse joins the translated segments of a gtx response:
// [[["Hola","Hello",...],["mundo","world",...]], null, "en", ...]
func parseGoogleResponse(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", errors.New("malformed translate response")
	}
	var b strings.Builder
	for _, segment := range gjson.GetBytes(body, "0.#.0").Array() {
		b.WriteString(segment.String())
	}
	if b.Len() == 0 {
		return "", errors.New("translate response has no translation")
	}
	return b.String(), nil
}
