package syncx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(store *fakeStore, caps *fakeCaps, kv *memKV, sink *fakeSink) *ResourceContext {
	return NewResourceContext(ContextOptions{
		OwnerKey:      testKey,
		Store:         store,
		Capabilities:  caps,
		KV:            kv,
		Notifications: sink,
		Logger:        discardLogger(),
	})
}

func TestResourceContext_EndToEnd(t *testing.T) {
	store := &fakeStore{
		queryFn: func(ctx context.Context, key OwnerKey) ([]Resource, error) {
			return []Resource{res("a", "alpha"), res("b", "beta")}, nil
		},
	}
	kv := newMemKV()
	c := newTestContext(store, &fakeCaps{quota: Quota{MaxAllowed: -1}}, kv, &fakeSink{})
	defer c.Close()

	items, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, store.calls(), "initial load issues exactly one query")

	// No persisted selection: first item becomes active.
	active := c.ActiveItem()
	require.NotNil(t, active)
	assert.Equal(t, "a", active.ID)

	// A push snapshot drops "a": the selection falls back to the new head.
	store.push([]Resource{res("b", "beta"), res("c", "gamma")})

	snap := c.StateSnapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "b", snap.Items[0].ID)
	require.NotNil(t, snap.ActiveItem)
	assert.Equal(t, "b", snap.ActiveItem.ID, "selection must not dangle on a deleted resource")
	assert.Equal(t, StateReady, snap.State)
}

func TestResourceContext_PushBumpsVersion(t *testing.T) {
	store := &fakeStore{
		queryFn: func(ctx context.Context, key OwnerKey) ([]Resource, error) {
			return []Resource{res("a", "alpha")}, nil
		},
	}
	c := newTestContext(store, &fakeCaps{}, newMemKV(), &fakeSink{})
	defer c.Close()

	require.NoError(t, c.Start(context.Background()))
	v1 := c.cache.Version()

	store.push([]Resource{res("a", "alpha"), res("b", "beta")})
	assert.Greater(t, c.cache.Version(), v1, "push snapshots always overwrite")
}

func TestResourceContext_CreateOptimisticUpdate(t *testing.T) {
	blockRefresh := make(chan struct{})
	defer close(blockRefresh)

	store := &fakeStore{}
	store.queryFn = func(ctx context.Context, key OwnerKey) ([]Resource, error) {
		<-blockRefresh
		return []Resource{res("new", "Nightly"), res("a", "Alpha")}, nil
	}
	store.createFn = func(ctx context.Context, r Resource, key OwnerKey) (*Resource, error) {
		dup := r
		dup.ID = "new"
		return &dup, nil
	}

	kv := newMemKV()
	c := newTestContext(store, &fakeCaps{quota: Quota{MaxAllowed: -1}}, kv, &fakeSink{})
	defer c.Close()
	c.cache.Write([]Resource{res("a", "Alpha")})
	c.state = StateReady

	created, err := c.Create(context.Background(), Resource{Name: "Nightly"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "new", created.ID)

	// Before the background refresh completes, the cache already holds the
	// new item at the head and it is the active selection.
	snap := c.StateSnapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "new", snap.Items[0].ID)
	require.NotNil(t, snap.ActiveItem)
	assert.Equal(t, "new", snap.ActiveItem.ID)

	saved := c.selection.Load(context.Background())
	require.NotNil(t, saved)
	assert.Equal(t, "new", saved.ResourceID, "new selection is persisted")
}

func TestResourceContext_CreateValidation(t *testing.T) {
	c := newTestContext(&fakeStore{}, &fakeCaps{}, newMemKV(), &fakeSink{})
	defer c.Close()

	tests := []struct {
		name     string
		resource string
	}{
		{name: "too short", resource: "ab"},
		{name: "whitespace only", resource: "    "},
		{name: "empty", resource: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Create(context.Background(), Resource{Name: tt.resource})
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestResourceContext_CreateDuplicateNameBestEffort(t *testing.T) {
	c := newTestContext(&fakeStore{}, &fakeCaps{quota: Quota{MaxAllowed: -1}}, newMemKV(), &fakeSink{})
	defer c.Close()
	c.cache.Write([]Resource{res("a", "Alpha")})

	_, err := c.Create(context.Background(), Resource{Name: "alpha"})
	assert.ErrorIs(t, err, ErrDuplicateName, "pre-check against the cached snapshot")
}

func TestResourceContext_CreateDuplicateNameAuthoritative(t *testing.T) {
	store := &fakeStore{
		createFn: func(ctx context.Context, r Resource, key OwnerKey) (*Resource, error) {
			return nil, ErrDuplicateName
		},
	}
	c := newTestContext(store, &fakeCaps{quota: Quota{MaxAllowed: -1}}, newMemKV(), &fakeSink{})
	defer c.Close()

	// The cache knows nothing about the collision; the store rejects it.
	_, err := c.Create(context.Background(), Resource{Name: "Nightly"})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestResourceContext_CreateQuotaExceeded(t *testing.T) {
	c := newTestContext(&fakeStore{}, &fakeCaps{quota: Quota{MaxAllowed: 3, CurrentCount: 3}}, newMemKV(), &fakeSink{})
	defer c.Close()

	_, err := c.Create(context.Background(), Resource{Name: "Nightly"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	var quotaErr *QuotaExceededError
	require.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, 3, quotaErr.MaxAllowed)
}

func TestResourceContext_SwitchActive(t *testing.T) {
	kv := newMemKV()
	c := newTestContext(&fakeStore{}, &fakeCaps{}, kv, &fakeSink{})
	defer c.Close()
	c.cache.Write([]Resource{res("a", "Alpha"), res("b", "Beta")})

	require.NoError(t, c.SwitchActive(context.Background(), "b"))
	active := c.ActiveItem()
	require.NotNil(t, active)
	assert.Equal(t, "b", active.ID)

	saved := c.selection.Load(context.Background())
	require.NotNil(t, saved)
	assert.Equal(t, "b", saved.ResourceID)
}

func TestResourceContext_SwitchActiveUnknownID(t *testing.T) {
	c := newTestContext(&fakeStore{}, &fakeCaps{}, newMemKV(), &fakeSink{})
	defer c.Close()
	c.cache.Write([]Resource{res("a", "Alpha")})

	err := c.SwitchActive(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResourceContext_CheckNameExists(t *testing.T) {
	c := newTestContext(&fakeStore{}, &fakeCaps{}, newMemKV(), &fakeSink{})
	defer c.Close()
	c.cache.Write([]Resource{res("a", "Alpha"), res("b", "Beta Suite")})

	assert.True(t, c.CheckNameExists("alpha"))
	assert.True(t, c.CheckNameExists("  Beta Suite  "))
	assert.False(t, c.CheckNameExists("Gamma"))
}

func TestResourceContext_NonSilentFailureNotifiesOnce(t *testing.T) {
	store := &fakeStore{
		queryFn: func(ctx context.Context, key OwnerKey) ([]Resource, error) {
			return nil, errors.New("backend down")
		},
	}
	sink := &fakeSink{}
	c := newTestContext(store, &fakeCaps{}, newMemKV(), sink)
	defer c.Close()

	err := c.Refresh(context.Background(), FetchOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransient)

	snap := c.StateSnapshot()
	assert.Equal(t, StateError, snap.State)
	assert.Error(t, snap.Err)
	assert.Equal(t, 1, sink.count(), "exactly one notification per non-silent failure")

	// Error state is retryable: a later successful refresh recovers.
	store.mu.Lock()
	store.queryFn = func(ctx context.Context, key OwnerKey) ([]Resource, error) {
		return []Resource{res("a", "Alpha")}, nil
	}
	store.mu.Unlock()

	require.NoError(t, c.Refresh(context.Background(), FetchOptions{Force: true}))
	snap = c.StateSnapshot()
	assert.Equal(t, StateReady, snap.State)
	assert.NoError(t, snap.Err)
}

func TestResourceContext_SilentFailureStaysQuiet(t *testing.T) {
	store := &fakeStore{
		queryFn: func(ctx context.Context, key OwnerKey) ([]Resource, error) {
			return nil, errors.New("backend down")
		},
	}
	sink := &fakeSink{}
	c := newTestContext(store, &fakeCaps{}, newMemKV(), sink)
	defer c.Close()
	c.cache.Write([]Resource{res("a", "Alpha")})

	err := c.Refresh(context.Background(), FetchOptions{Force: true, Silent: true})
	require.NoError(t, err)
	assert.Equal(t, 0, sink.count(), "silent failures never reach the user")

	snap := c.StateSnapshot()
	require.Len(t, snap.Items, 1, "last good cache stays visible")
}

func TestResourceContext_SubscriptionErrorKeepsCache(t *testing.T) {
	store := &fakeStore{
		queryFn: func(ctx context.Context, key OwnerKey) ([]Resource, error) {
			return []Resource{res("a", "Alpha")}, nil
		},
	}
	sink := &fakeSink{}
	c := newTestContext(store, &fakeCaps{}, newMemKV(), sink)
	defer c.Close()

	require.NoError(t, c.Start(context.Background()))
	store.pushError(errors.New("stream reset"))

	snap := c.StateSnapshot()
	assert.Equal(t, StateError, snap.State)
	require.Len(t, snap.Items, 1, "fail-safe-stale: last good snapshot remains")
	assert.Equal(t, 1, sink.count())
}

func TestResourceContext_CloseIsIdempotent(t *testing.T) {
	store := &fakeStore{
		queryFn: func(ctx context.Context, key OwnerKey) ([]Resource, error) {
			return []Resource{res("a", "Alpha")}, nil
		},
	}
	c := newTestContext(store, &fakeCaps{}, newMemKV(), &fakeSink{})
	require.NoError(t, c.Start(context.Background()))

	c.Close()
	c.Close()
	assert.Equal(t, 1, store.unsubscribes())
}
