// Package describe loads the short text shown next to each photo.
package describe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	maxBodySize = 64 << 10
	userAgent   = "keepsake/1.0"
)

// Stem strips the final extension from a photo filename.
// "a.b.jpg" becomes "a.b"; names without an extension are returned as is.
func Stem(filename string) string {
	base := filepath.Base(filename)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// Fetcher retrieves the raw description text for a photo.
type Fetcher interface {
	Fetch(ctx context.Context, filename string) (string, error)
}

// DirFetcher reads <Dir>/<stem>.txt from the local filesystem.
type DirFetcher struct {
	Dir string
}

// Fetch reads the description file for filename.
func (f DirFetcher) Fetch(ctx context.Context, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(f.Dir, Stem(filename)+".txt"))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// HTTPFetcher requests <BaseURL>/<stem>.txt.
type HTTPFetcher struct {
	BaseURL string
	client  *http.Client
}

// NewHTTPFetcher creates a fetcher for descriptions served over HTTP.
func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch performs a single GET. Any non-2xx status is an error.
func (f *HTTPFetcher) Fetch(ctx context.Context, filename string) (string, error) {
	reqURL := f.BaseURL + "/" + url.PathEscape(Stem(filename)+".txt")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}
