package app

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/valenxo/Museo-MET/internal/config"
)

func testConfig(t *testing.T, upstreamURL string) config.Config {
	t.Helper()
	t.Setenv("MUSEO_UPSTREAM_BASE_URL", upstreamURL)
	t.Setenv("MUSEO_TRANSLATION_PROVIDER", "noop")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return cfg
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewServesSearch(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/search":
			_, _ = io.WriteString(w, `{"total":1,"objectIDs":[7]}`)
		case r.URL.Path == "/objects/7":
			_, _ = io.WriteString(w, `{"objectID":7,"title":"Vase"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(upstream.Close)

	h, err := New(context.Background(), testConfig(t, upstream.URL), discard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/search?keyword=vase", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"title":"Vase"`) {
		t.Fatalf("body = %s", rr.Body.String())
	}
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1")
	cfg.Translation.Provider = "babelfish"

	if _, err := New(context.Background(), cfg, discard()); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, ln, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}), discard())
	}()

	res, err := http.Get("http://" + ln.Addr().String() + "/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d", res.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
