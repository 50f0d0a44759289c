package util

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

const defaultFetchTimeout = 12 * time.Second

// ErrBadLocator is returned for locators that are neither http(s) nor file URLs.
var ErrBadLocator = errors.New("malformed locator")

// Fetcher retrieves the bytes behind a locator.
type Fetcher interface {
	Fetch(ctx context.Context, locator string) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, locator string) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, locator string) ([]byte, error) {
	return f(ctx, locator)
}

// ContentFetcher fetches http(s) URLs and file:// locators. No retries.
type ContentFetcher struct {
	client *http.Client
}

func NewContentFetcher(timeout time.Duration) *ContentFetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &ContentFetcher{client: &http.Client{Timeout: timeout}}
}

func (f *ContentFetcher) Fetch(ctx context.Context, locator string) ([]byte, error) {
	u, err := url.Parse(locator)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadLocator, locator, err)
	}
	switch u.Scheme {
	case "http", "https":
		return f.GetBytes(ctx, u.String())
	case "file":
		// file://resources/x.png is relative, file:///srv/x.png absolute.
		return os.ReadFile(filepath.FromSlash(u.Host + u.Path))
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadLocator, locator)
	}
}

// GetBytes performs a GET and fails on any non-2xx status.
func (f *ContentFetcher) GetBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
