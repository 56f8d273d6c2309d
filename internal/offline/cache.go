// Package offline implements the network-first fetch strategy: every
// request goes to the network and successful responses are written through
// to a named, versioned cache; the cache is consulted only when the
// network fails, so content is never staler than the last successful
// online fetch.
package offline

import (
	"bytes"
	"io"
	"net/http"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheCapacity bounds each cache generation. Oldest entries are evicted
// first; the shell URLs are re-added on every install.
const cacheCapacity = 512

// Entry is a cached response body with enough metadata to replay it.
type Entry struct {
	Status int
	Header http.Header
	Body   []byte
}

// Response rebuilds a replayable *http.Response from the stored entry.
func (e *Entry) Response(req *http.Request) *http.Response {
	return &http.Response{
		StatusCode:    e.Status,
		Status:        http.StatusText(e.Status),
		Header:        e.Header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(e.Body)),
		ContentLength: int64(len(e.Body)),
		Request:       req,
	}
}

// Cache is one generation of the offline cache, keyed by request URL.
type Cache struct {
	name  string
	store *lru.Cache[string, *Entry]
}

func newCache(name string) (*Cache, error) {
	store, err := lru.New[string, *Entry](cacheCapacity)
	if err != nil {
		return nil, err
	}
	return &Cache{name: name, store: store}, nil
}

func (c *Cache) Name() string { return c.name }

func (c *Cache) Put(url string, entry *Entry) {
	c.store.Add(url, entry)
}

func (c *Cache) Match(url string) (*Entry, bool) {
	return c.store.Get(url)
}

func (c *Cache) Len() int { return c.store.Len() }

// Registry holds all live cache generations for the process. Concurrent
// fetch-triggered writes to the same key are last-write-wins.
type Registry struct {
	mu     sync.Mutex
	caches map[string]*Cache
}

func NewRegistry() *Registry {
	return &Registry{caches: make(map[string]*Cache)}
}

// Open returns the cache with the given name, creating it when absent.
func (r *Registry) Open(name string) (*Cache, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.caches[name]; ok {
		return c, nil
	}

	c, err := newCache(name)
	if err != nil {
		return nil, err
	}
	r.caches[name] = c
	return c, nil
}

// Names lists all cache generations currently held.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.caches))
	for name := range r.caches {
		names = append(names, name)
	}
	return names
}

// Delete drops a cache generation.
func (r *Registry) Delete(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.caches, name)
}
