package syncx

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/avetrov/qaboard/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func res(id, name string) Resource {
	return Resource{ID: id, Name: name, Status: "active"}
}

// fakeStore is an in-memory RemoteStore. Behaviour is driven by the
// queryFn/createFn hooks; Subscribe captures the callbacks so tests can
// push snapshots by hand.
type fakeStore struct {
	mu           sync.Mutex
	queryCalls   int
	queryFn      func(ctx context.Context, key OwnerKey) ([]Resource, error)
	createFn     func(ctx context.Context, r Resource, key OwnerKey) (*Resource, error)
	subscribeErr error
	onSnapshot   func([]Resource)
	onError      func(error)
	unsubCalls   int
}

func (f *fakeStore) Query(ctx context.Context, key OwnerKey) ([]Resource, error) {
	f.mu.Lock()
	f.queryCalls++
	fn := f.queryFn
	f.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(ctx, key)
}

func (f *fakeStore) Create(ctx context.Context, r Resource, key OwnerKey) (*Resource, error) {
	f.mu.Lock()
	fn := f.createFn
	f.mu.Unlock()
	if fn == nil {
		dup := r
		dup.ID = "generated"
		return &dup, nil
	}
	return fn(ctx, r, key)
}

func (f *fakeStore) Subscribe(ctx context.Context, key OwnerKey, onSnapshot func([]Resource), onError func(error)) (func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subscribeErr != nil {
		return nil, f.subscribeErr
	}
	f.onSnapshot = onSnapshot
	f.onError = onError
	return func() {
		f.mu.Lock()
		f.unsubCalls++
		f.mu.Unlock()
	}, nil
}

func (f *fakeStore) push(items []Resource) {
	f.mu.Lock()
	fn := f.onSnapshot
	f.mu.Unlock()
	if fn != nil {
		fn(items)
	}
}

func (f *fakeStore) pushError(err error) {
	f.mu.Lock()
	fn := f.onError
	f.mu.Unlock()
	if fn != nil {
		fn(err)
	}
}

func (f *fakeStore) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queryCalls
}

func (f *fakeStore) unsubscribes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unsubCalls
}

type fakeCaps struct {
	quota Quota
	err   error
}

func (f *fakeCaps) GetQuota(ctx context.Context, key OwnerKey) (Quota, error) {
	if f.err != nil {
		return Quota{}, f.err
	}
	return f.quota, nil
}

type memKV struct {
	mu sync.Mutex
	m  map[string]string
}

func newMemKV() *memKV { return &memKV{m: map[string]string{}} }

func (kv *memKV) Get(ctx context.Context, key string) (string, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	v, ok := kv.m[key]
	return v, ok, nil
}

func (kv *memKV) Set(ctx context.Context, key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.m[key] = value
	return nil
}

func (kv *memKV) Remove(ctx context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.m, key)
	return nil
}

type fakeSink struct {
	mu    sync.Mutex
	notes []Notification
}

func (f *fakeSink) Notify(n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = append(f.notes, n)
}

func (f *fakeSink) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notes)
}
