package smsspam

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Source fetches the raw archive bytes for a URL
type Source interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// DefaultTimeout bounds a whole download
const DefaultTimeout = 60 * time.Second

// HTTPSource downloads archives with a single GET request, without retries
type HTTPSource struct {
	client  *http.Client
	headers http.Header
}

// NewHTTPSource returns a source whose requests time out after timeout, or DefaultTimeout when zero
func NewHTTPSource(timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConnsPerHost: 2,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
	}
	return &HTTPSource{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		headers: http.Header{
			"User-Agent": []string{"smsspam/1.0"},
			"Accept":     []string{"application/zip,application/octet-stream;q=0.9,*/*;q=0.8"},
		},
	}
}

func (h *HTTPSource) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	for key, vals := range h.headers {
		for _, val := range vals {
			req.Header.Add(key, val)
		}
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("bad response status: %s", resp.Status)}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("reading body: %w", err)}
	}
	return data, nil
}

// FileSource reads the archive from a local path and ignores the URL
type FileSource struct {
	Path string
}

func (f FileSource) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &TransportError{URL: f.Path, Err: err}
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, &TransportError{URL: f.Path, Err: err}
	}
	return data, nil
}
