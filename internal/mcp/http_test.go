package mcp

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomwassing/brane"
	"github.com/tomwassing/brane/internal/config"
	"github.com/tomwassing/brane/internal/runner"
)

func newTestHTTPServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{}
	r := &runner.Runner{
		Dir:       t.TempDir(),
		Timeout:   30 * time.Second,
		MaxOutput: cfg.MaxOutputBytes(),
	}
	ts := httptest.NewServer(NewHTTPHandler(NewServer(cfg, r)))
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	res, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return res.StatusCode, string(body)
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestHTTPServer(t)

	status, body := get(t, ts.URL+"/health")
	if status != http.StatusOK {
		t.Errorf("status = %d, want %d", status, http.StatusOK)
	}
	if body != "OK!\n" {
		t.Errorf("body = %q, want %q", body, "OK!\n")
	}
}

func TestVersionEndpoint(t *testing.T) {
	ts := newTestHTTPServer(t)

	status, body := get(t, ts.URL+"/version")
	if status != http.StatusOK {
		t.Errorf("status = %d, want %d", status, http.StatusOK)
	}
	if body != brane.Version {
		t.Errorf("body = %q, want %q", body, brane.Version)
	}
}

func TestHealthEndpoint_PostRejected(t *testing.T) {
	ts := newTestHTTPServer(t)

	res, err := http.Post(ts.URL+"/health", "text/plain", nil)
	if err != nil {
		t.Fatalf("POST /health: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", res.StatusCode, http.StatusMethodNotAllowed)
	}
}
