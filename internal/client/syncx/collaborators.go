package syncx

import "context"

// RemoteStore is the slice of the remote document store the sync layer
// consumes. Implementations are expected to honour context cancellation on
// every call.
type RemoteStore interface {
	// Query returns the full current collection for the owner key.
	Query(ctx context.Context, key OwnerKey) ([]Resource, error)

	// Create persists a new resource and returns it with server-assigned
	// fields (id, createdAt) filled in.
	Create(ctx context.Context, r Resource, key OwnerKey) (*Resource, error)

	// Subscribe opens a push channel for the owner key. Every delivered
	// snapshot is a full replacement set, never a delta. The returned
	// function tears the channel down; it must be safe to call more
	// than once.
	Subscribe(ctx context.Context, key OwnerKey, onSnapshot func([]Resource), onError func(error)) (func(), error)
}

// Quota is the raw capability data for an owner key.
type Quota struct {
	// MaxAllowed is the plan cap; -1 means unlimited.
	MaxAllowed   int
	CurrentCount int
}

// CapabilityProvider supplies account capability data used by the quota
// guard. Results are never cached across calls.
type CapabilityProvider interface {
	GetQuota(ctx context.Context, key OwnerKey) (Quota, error)
}

// DurableKeyValue is a small durable slot store surviving process restarts.
// Only the active-selection slot goes through it.
type DurableKeyValue interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Notification is a user-facing message emitted for non-silent failures.
type Notification struct {
	Type    string
	Title   string
	Message string
}

// NotificationSink delivers notifications; the sync layer never renders UI
// itself.
type NotificationSink interface {
	Notify(n Notification)
}
