package offline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// Fetcher fronts an origin with the network-first strategy. One Fetcher
// owns one cache generation named after the deploy version; bumping the
// version and activating invalidates every older generation.
type Fetcher struct {
	version  string
	origin   string
	client   *http.Client
	registry *Registry
	log      *slog.Logger
}

// NewFetcher builds a fetcher for the given origin host. Responses from
// other hosts pass through uncached, mirroring the same-origin ("basic")
// restriction on cache writes.
func NewFetcher(version, origin string, client *http.Client, registry *Registry, log *slog.Logger) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		version:  version,
		origin:   origin,
		client:   client,
		registry: registry,
		log:      log,
	}
}

func (f *Fetcher) Version() string { return f.version }

// Install pre-populates the current cache generation with the shell URLs.
// A failed shell fetch fails the install.
func (f *Fetcher) Install(ctx context.Context, shellURLs []string) error {
	cache, err := f.registry.Open(f.version)
	if err != nil {
		return fmt.Errorf("open cache %s: %w", f.version, err)
	}

	for _, u := range shellURLs {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return fmt.Errorf("build shell request %s: %w", u, err)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetch shell %s: %w", u, err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("read shell %s: %w", u, err)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("fetch shell %s: unexpected status %d", u, resp.StatusCode)
		}

		cache.Put(u, &Entry{
			Status: resp.StatusCode,
			Header: resp.Header.Clone(),
			Body:   body,
		})
	}

	return nil
}

// Activate deletes every cache generation whose name differs from the
// current version, so at most one generation survives an activation.
func (f *Fetcher) Activate() {
	for _, name := range f.registry.Names() {
		if name != f.version {
			f.registry.Delete(name)
			f.log.Info("offline cache generation removed", "cache", name)
		}
	}
}

// Do performs a network-first fetch. A successful origin response is
// written through to the cache without delaying the caller; on network
// failure the cache is consulted, and only a cache miss propagates the
// network error.
func (f *Fetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.client.Do(req)
	if err == nil {
		f.maybeStore(req, resp)
		return resp, nil
	}

	cache, cacheErr := f.registry.Open(f.version)
	if cacheErr != nil {
		return nil, err
	}

	if entry, ok := cache.Match(req.URL.String()); ok {
		f.log.Debug("offline cache hit", "url", req.URL.String())
		return entry.Response(req), nil
	}

	return nil, err
}

// Get is a convenience wrapper over Do.
func (f *Fetcher) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return f.Do(req)
}

// maybeStore clones a cacheable response into the current generation and
// hands the caller an identical replacement body. Cache failures are
// logged and swallowed, never failing the fetch.
func (f *Fetcher) maybeStore(req *http.Request, resp *http.Response) {
	if resp.StatusCode != http.StatusOK || req.Method != http.MethodGet {
		return
	}
	if f.origin != "" && req.URL.Host != f.origin {
		return
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		// hand back whatever was read so the caller still gets a body
		resp.Body = io.NopCloser(bytes.NewReader(body))
		return
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	entry := &Entry{
		Status: resp.StatusCode,
		Header: resp.Header.Clone(),
		Body:   body,
	}

	go func() {
		cache, err := f.registry.Open(f.version)
		if err != nil {
			f.log.Warn("offline cache write skipped", "error", err)
			return
		}
		cache.Put(req.URL.String(), entry)
	}()
}
