package httpclient

import (
	"net/http"
	"testing"
	"time"
)

func TestForWidthGrowsIdlePool(t *testing.T) {
	cfg := ForWidth(5*time.Second, 64)
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.MaxIdleConnsPerHost != 64 {
		t.Fatalf("MaxIdleConnsPerHost = %d, want 64", cfg.MaxIdleConnsPerHost)
	}
	if cfg.MaxIdleConns < 64 {
		t.Fatalf("MaxIdleConns = %d, want >= 64", cfg.MaxIdleConns)
	}
}

func TestForWidthKeepsDefaults(t *testing.T) {
	cfg := ForWidth(0, 4)
	def := DefaultConfig()
	if cfg != def {
		t.Fatalf("ForWidth(0, 4) = %+v, want defaults %+v", cfg, def)
	}
}

func TestNewAppliesConfig(t *testing.T) {
	client := New(ForWidth(time.Second, 32))
	if client.Timeout != time.Second {
		t.Fatalf("client timeout = %v", client.Timeout)
	}
	tr, ok := client.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("transport = %T, want *http.Transport", client.Transport)
	}
	if tr.MaxIdleConnsPerHost != 32 {
		t.Fatalf("MaxIdleConnsPerHost = %d, want 32", tr.MaxIdleConnsPerHost)
	}
}
