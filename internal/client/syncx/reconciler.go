package syncx

import (
	"context"
	"fmt"
	"sync"

	"github.com/avetrov/qaboard/internal/logging"
)

// Reconciler owns the long-lived push channel for one owner key. Delivered
// snapshots are authoritative full replacements; they are handed to the
// apply callback unconditionally. On channel error the reconciler does not
// retry — it surfaces the error and leaves the last good cache in place.
type Reconciler struct {
	store RemoteStore
	log   logging.Logger

	mu          sync.Mutex
	unsubscribe func()
	closed      bool
}

func NewReconciler(store RemoteStore, log logging.Logger) *Reconciler {
	return &Reconciler{store: store, log: log.With("module", "subscription_reconciler")}
}

// Open establishes the push channel. onSnapshot runs for every delivered
// snapshot; onError for channel failures. Opening an already-open or closed
// reconciler is an error: there is exactly one channel per owner key.
func (r *Reconciler) Open(ctx context.Context, key OwnerKey, onSnapshot func([]Resource), onError func(error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return fmt.Errorf("reconciler is closed")
	}
	if r.unsubscribe != nil {
		return fmt.Errorf("subscription already open for %q", string(key))
	}

	unsubscribe, err := r.store.Subscribe(ctx, key,
		func(items []Resource) {
			r.log.Debug(ctx, "push snapshot received", "owner_key", string(key), "items", len(items))
			onSnapshot(items)
		},
		func(err error) {
			r.log.Warn(ctx, "subscription error, keeping last good snapshot", "owner_key", string(key), "error", err.Error())
			onError(classify(err))
		},
	)
	if err != nil {
		return classify(err)
	}

	r.unsubscribe = unsubscribe
	return nil
}

// Close tears the channel down exactly once. Safe to call repeatedly and
// safe to call on a reconciler that was never opened.
func (r *Reconciler) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}
