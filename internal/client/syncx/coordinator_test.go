package syncx

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey OwnerKey = "individual/u1"

func newCoordinator(store *fakeStore) (*Coordinator, *Cache) {
	cache := NewCache()
	return NewCoordinator(store, cache, 5*time.Minute, discardLogger()), cache
}

func TestFetchCollection_ServesValidCacheWithoutNetwork(t *testing.T) {
	store := &fakeStore{}
	coord, cache := newCoordinator(store)
	cache.Write([]Resource{res("a", "alpha")})

	result, err := coord.FetchCollection(context.Background(), testKey, FetchOptions{})
	require.NoError(t, err)
	assert.True(t, result.FromCache)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "a", result.Items[0].ID)
	assert.Equal(t, 0, store.calls())
}

func TestFetchCollection_SuccessWritesCache(t *testing.T) {
	store := &fakeStore{
		queryFn: func(ctx context.Context, key OwnerKey) ([]Resource, error) {
			return []Resource{res("a", "alpha"), res("b", "beta")}, nil
		},
	}
	coord, cache := newCoordinator(store)

	result, err := coord.FetchCollection(context.Background(), testKey, FetchOptions{})
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(1), cache.Version())
}

func TestFetchCollection_DedupConcurrentCallers(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	store := &fakeStore{
		queryFn: func(ctx context.Context, key OwnerKey) ([]Resource, error) {
			close(started)
			<-release
			return []Resource{res("a", "alpha")}, nil
		},
	}
	coord, _ := newCoordinator(store)

	done := make(chan FetchResult, 1)
	go func() {
		r, err := coord.FetchCollection(context.Background(), testKey, FetchOptions{})
		require.NoError(t, err)
		done <- r
	}()
	<-started

	// Second caller while the first is in flight: no second query, cached
	// (still empty) snapshot comes back immediately.
	second, err := coord.FetchCollection(context.Background(), testKey, FetchOptions{})
	require.NoError(t, err)
	assert.True(t, second.FromCache)

	close(release)
	first := <-done
	assert.False(t, first.FromCache)
	assert.Equal(t, 1, store.calls(), "exactly one underlying query for concurrent callers")
}

func TestFetchCollection_ForceCancelsAndDiscardsLateResponse(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	store := &fakeStore{}
	store.queryFn = func(ctx context.Context, key OwnerKey) ([]Resource, error) {
		if store.calls() == 1 {
			close(firstStarted)
			// Ignore cancellation on purpose: simulate a response that
			// arrives after it was superseded.
			<-releaseFirst
			return []Resource{res("stale", "old snapshot")}, nil
		}
		return []Resource{res("fresh", "new snapshot")}, nil
	}
	coord, cache := newCoordinator(store)

	firstDone := make(chan FetchResult, 1)
	go func() {
		r, err := coord.FetchCollection(context.Background(), testKey, FetchOptions{})
		require.NoError(t, err)
		firstDone <- r
	}()
	<-firstStarted

	second, err := coord.FetchCollection(context.Background(), testKey, FetchOptions{Force: true})
	require.NoError(t, err)
	assert.False(t, second.FromCache)
	require.Len(t, second.Items, 1)
	assert.Equal(t, "fresh", second.Items[0].ID)

	close(releaseFirst)
	first := <-firstDone

	// The late first response must not overwrite the cache.
	assert.True(t, first.FromCache)
	entry := cache.Read()
	require.Len(t, entry.Items, 1)
	assert.Equal(t, "fresh", entry.Items[0].ID, "final state reflects only the superseding fetch")
}

func TestFetchCollection_CancellationIsNotAFailure(t *testing.T) {
	store := &fakeStore{
		queryFn: func(ctx context.Context, key OwnerKey) ([]Resource, error) {
			return nil, context.Canceled
		},
	}
	coord, cache := newCoordinator(store)
	cache.Write([]Resource{res("a", "alpha")})

	result, err := coord.FetchCollection(context.Background(), testKey, FetchOptions{Force: true})
	require.NoError(t, err, "cancellation must not surface as an error")
	assert.True(t, result.FromCache)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "a", result.Items[0].ID)
}

func TestFetchCollection_FailureKeepsCacheAndClassifies(t *testing.T) {
	store := &fakeStore{
		queryFn: func(ctx context.Context, key OwnerKey) ([]Resource, error) {
			return nil, errors.New("connection reset")
		},
	}
	coord, cache := newCoordinator(store)
	cache.Write([]Resource{res("a", "alpha")})
	before := cache.Version()

	_, err := coord.FetchCollection(context.Background(), testKey, FetchOptions{Force: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransient)
	assert.Equal(t, before, cache.Version(), "failed fetch leaves cache untouched")
}

func TestFetchCollection_SilentFailureServesStale(t *testing.T) {
	store := &fakeStore{
		queryFn: func(ctx context.Context, key OwnerKey) ([]Resource, error) {
			return nil, errors.New("connection reset")
		},
	}
	coord, cache := newCoordinator(store)
	cache.Write([]Resource{res("a", "alpha")})

	result, err := coord.FetchCollection(context.Background(), testKey, FetchOptions{Force: true, Silent: true})
	require.NoError(t, err, "silent mode swallows the failure")
	assert.True(t, result.FromCache)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "a", result.Items[0].ID)
}

func TestFetchCollection_PreClassifiedErrorPassesThrough(t *testing.T) {
	store := &fakeStore{
		queryFn: func(ctx context.Context, key OwnerKey) ([]Resource, error) {
			return nil, ErrPermission
		},
	}
	coord, _ := newCoordinator(store)

	_, err := coord.FetchCollection(context.Background(), testKey, FetchOptions{})
	assert.ErrorIs(t, err, ErrPermission)
	assert.NotErrorIs(t, err, ErrTransient)
}
