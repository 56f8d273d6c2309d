package offline

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("shell"))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	u, err := url.Parse(server.URL)
	require.NoError(t, err)

	return server, u.Host
}

func waitForCached(t *testing.T, registry *Registry, version, url string) {
	t.Helper()
	require.Eventually(t, func() bool {
		cache, err := registry.Open(version)
		if err != nil {
			return false
		}
		_, ok := cache.Match(url)
		return ok
	}, time.Second, 5*time.Millisecond, "response was not written through to the cache")
}

func TestFetcherNetworkFirst(t *testing.T) {
	server, host := newTestServer(t)
	registry := NewRegistry()
	fetcher := NewFetcher("portal-app-v1", host, server.Client(), registry, testLogger())

	resp, err := fetcher.Get(context.Background(), server.URL+"/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "shell", string(body))

	waitForCached(t, registry, "portal-app-v1", server.URL+"/")
}

func TestFetcherFallsBackToCacheWhenOffline(t *testing.T) {
	server, host := newTestServer(t)
	registry := NewRegistry()
	fetcher := NewFetcher("portal-app-v1", host, server.Client(), registry, testLogger())

	shellURL := server.URL + "/"
	resp, err := fetcher.Get(context.Background(), shellURL)
	require.NoError(t, err)
	resp.Body.Close()
	waitForCached(t, registry, "portal-app-v1", shellURL)

	// go offline
	server.Close()

	resp, err = fetcher.Get(context.Background(), shellURL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "shell", string(body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFetcherOfflineMissFailsOutward(t *testing.T) {
	server, host := newTestServer(t)
	registry := NewRegistry()
	fetcher := NewFetcher("portal-app-v1", host, server.Client(), registry, testLogger())

	uncached := server.URL + "/never-fetched"
	server.Close()

	_, err := fetcher.Get(context.Background(), uncached)
	assert.Error(t, err)
}

func TestFetcherDoesNotCacheErrorResponses(t *testing.T) {
	server, host := newTestServer(t)
	registry := NewRegistry()
	fetcher := NewFetcher("portal-app-v1", host, server.Client(), registry, testLogger())

	resp, err := fetcher.Get(context.Background(), server.URL+"/missing")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// give any (incorrect) async write a chance to land
	time.Sleep(20 * time.Millisecond)
	cache, err := registry.Open("portal-app-v1")
	require.NoError(t, err)
	_, ok := cache.Match(server.URL + "/missing")
	assert.False(t, ok)
}

func TestFetcherDoesNotCacheForeignOrigin(t *testing.T) {
	server, _ := newTestServer(t)
	registry := NewRegistry()
	fetcher := NewFetcher("portal-app-v1", "portal.example.org", server.Client(), registry, testLogger())

	resp, err := fetcher.Get(context.Background(), server.URL+"/")
	require.NoError(t, err)
	resp.Body.Close()

	time.Sleep(20 * time.Millisecond)
	cache, err := registry.Open("portal-app-v1")
	require.NoError(t, err)
	assert.Zero(t, cache.Len())
}

func TestInstallPrecachesShell(t *testing.T) {
	server, host := newTestServer(t)
	registry := NewRegistry()
	fetcher := NewFetcher("portal-app-v1", host, server.Client(), registry, testLogger())

	require.NoError(t, fetcher.Install(context.Background(), []string{server.URL + "/"}))

	cache, err := registry.Open("portal-app-v1")
	require.NoError(t, err)
	entry, ok := cache.Match(server.URL + "/")
	require.True(t, ok)
	assert.Equal(t, "shell", string(entry.Body))
}

func TestInstallFailsOnUnreachableShell(t *testing.T) {
	server, host := newTestServer(t)
	registry := NewRegistry()
	fetcher := NewFetcher("portal-app-v1", host, server.Client(), registry, testLogger())

	shellURL := server.URL + "/"
	server.Close()

	assert.Error(t, fetcher.Install(context.Background(), []string{shellURL}))
}

func TestActivateDeletesOldGenerations(t *testing.T) {
	registry := NewRegistry()

	v1, err := registry.Open("portal-app-v1")
	require.NoError(t, err)
	v1.Put("https://portal.example.org/", &Entry{Status: http.StatusOK, Body: []byte("old")})

	fetcher := NewFetcher("portal-app-v2", "portal.example.org", nil, registry, testLogger())
	_, err = registry.Open("portal-app-v2")
	require.NoError(t, err)

	fetcher.Activate()

	assert.ElementsMatch(t, []string{"portal-app-v2"}, registry.Names())
}
