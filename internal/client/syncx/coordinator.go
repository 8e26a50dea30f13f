package syncx

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avetrov/qaboard/internal/logging"
)

// FetchOptions control a single FetchCollection call.
type FetchOptions struct {
	// Force bypasses the TTL check and cancels any in-flight fetch for the
	// same owner key before issuing a new one.
	Force bool
	// Silent swallows genuine failures and serves the last cached snapshot
	// instead; the failure is only logged.
	Silent bool
}

// FetchResult is what a FetchCollection caller gets back.
type FetchResult struct {
	Items     []Resource
	FromCache bool
}

// fetchToken identifies one in-flight request. Completion handlers compare
// the token by identity against the current one; a mismatch means the
// request was superseded and its result must be discarded.
type fetchToken struct {
	cancel context.CancelFunc
}

// Coordinator issues collection fetches against the remote store, keeping
// at most one request in flight per owner key. Concurrent callers are
// served from cache instead of doubling the network call; forced refreshes
// cancel and supersede the previous request.
type Coordinator struct {
	store RemoteStore
	cache *Cache
	ttl   time.Duration
	log   logging.Logger

	mu       sync.Mutex
	inflight map[OwnerKey]*fetchToken
}

func NewCoordinator(store RemoteStore, cache *Cache, ttl time.Duration, log logging.Logger) *Coordinator {
	return &Coordinator{
		store:    store,
		cache:    cache,
		ttl:      ttl,
		log:      log.With("module", "fetch_coordinator"),
		inflight: make(map[OwnerKey]*fetchToken),
	}
}

// FetchCollection returns the collection for the owner key, from cache when
// the snapshot is still valid or a fetch is already under way, otherwise
// from the remote store.
//
// Contract: at most one network fetch per owner key is outstanding at any
// time. A forced call cancels the superseded request before starting; a
// late response whose token no longer matches the current one is discarded,
// never applied. Cancellation is not a user-visible failure.
func (c *Coordinator) FetchCollection(ctx context.Context, key OwnerKey, opts FetchOptions) (FetchResult, error) {
	c.mu.Lock()

	if !opts.Force && c.cache.IsValid(c.ttl) {
		entry := c.cache.Read()
		c.mu.Unlock()
		return FetchResult{Items: entry.Items, FromCache: true}, nil
	}

	if prev := c.inflight[key]; prev != nil {
		if !opts.Force {
			// Someone is already fetching this key; hand back what we have.
			entry := c.cache.Read()
			c.mu.Unlock()
			return FetchResult{Items: entry.Items, FromCache: true}, nil
		}
		prev.cancel()
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	token := &fetchToken{cancel: cancel}
	c.inflight[key] = token
	c.mu.Unlock()

	items, err := c.store.Query(fetchCtx, key)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inflight[key] != token {
		// Superseded while we were waiting; the result (or error) belongs
		// to a request that no longer matters.
		entry := c.cache.Read()
		return FetchResult{Items: entry.Items, FromCache: true}, nil
	}
	delete(c.inflight, key)

	if err != nil {
		if errors.Is(err, context.Canceled) {
			entry := c.cache.Read()
			return FetchResult{Items: entry.Items, FromCache: true}, nil
		}
		classified := classify(err)
		if opts.Silent {
			c.log.Warn(ctx, "silent fetch failed, serving cached snapshot", "owner_key", string(key), "error", classified.Error())
			entry := c.cache.Read()
			return FetchResult{Items: entry.Items, FromCache: true}, nil
		}
		return FetchResult{}, classified
	}

	c.cache.Write(items)
	entry := c.cache.Read()
	return FetchResult{Items: entry.Items, FromCache: false}, nil
}

// CancelAll aborts any in-flight fetches. Used on teardown.
func (c *Coordinator) CancelAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, token := range c.inflight {
		token.cancel()
		delete(c.inflight, key)
	}
}
