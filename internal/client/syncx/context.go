package syncx

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/avetrov/qaboard/internal/logging"
)

// State is the per-owner-key lifecycle of a ResourceContext.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateReady         State = "ready"
	StateError         State = "error"
)

// Snapshot is the observable state handed to consumers. Consumers read it
// as an immutable value; they never mutate cached data in place.
type Snapshot struct {
	Items         []Resource
	ActiveItem    *Resource
	State         State
	IsLoading     bool
	IsFetching    bool
	Err           error
	LastFetchTime time.Time
}

// ResourceContext is the façade combining cache, fetch coordination, push
// reconciliation, durable selection and the quota guard for one owner key.
// It exclusively owns its Cache and SelectionStore; no other component
// mutates them.
type ResourceContext struct {
	key    OwnerKey
	store  RemoteStore
	notify NotificationSink
	log    logging.Logger

	cache     *Cache
	coord     *Coordinator
	recon     *Reconciler
	selection *SelectionStore
	quota     *QuotaGuard

	mu       sync.Mutex
	state    State
	active   *Resource
	lastErr  error
	fetching bool
}

// ContextOptions wires the collaborators for a ResourceContext.
type ContextOptions struct {
	OwnerKey      OwnerKey
	Store         RemoteStore
	Capabilities  CapabilityProvider
	KV            DurableKeyValue
	Notifications NotificationSink
	Logger        logging.Logger
	CacheTTL      time.Duration
	SelectionSlot string

	// SelectionMaxAge overrides DefaultSelectionMaxAge when positive.
	SelectionMaxAge time.Duration
}

// DefaultCacheTTL applies when ContextOptions.CacheTTL is zero.
const DefaultCacheTTL = 5 * time.Minute

func NewResourceContext(opts ContextOptions) *ResourceContext {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	slot := opts.SelectionSlot
	if slot == "" {
		slot = "active_selection/" + string(opts.OwnerKey)
	}
	log := opts.Logger.With("module", "resource_context", "owner_key", string(opts.OwnerKey))

	selection := NewSelectionStore(opts.KV, slot)
	if opts.SelectionMaxAge > 0 {
		selection.maxAge = opts.SelectionMaxAge
	}

	cache := NewCache()
	return &ResourceContext{
		key:       opts.OwnerKey,
		store:     opts.Store,
		notify:    opts.Notifications,
		log:       log,
		cache:     cache,
		coord:     NewCoordinator(opts.Store, cache, ttl, opts.Logger),
		recon:     NewReconciler(opts.Store, opts.Logger),
		selection: selection,
		quota:     NewQuotaGuard(opts.Capabilities, opts.Logger),
		state:     StateUninitialized,
	}
}

// Start performs the initial load and opens the push channel. Subsequent
// pushes update the cache directly.
func (c *ResourceContext) Start(ctx context.Context) error {
	if err := c.Refresh(ctx, FetchOptions{}); err != nil {
		return err
	}
	return c.recon.Open(ctx, c.key, func(items []Resource) {
		c.applySnapshot(ctx, items)
	}, func(err error) {
		c.setError(ctx, err, "live updates interrupted")
	})
}

// Refresh delegates to the fetch coordinator and then reconciles the
// active selection against whatever snapshot the cache now holds.
func (c *ResourceContext) Refresh(ctx context.Context, opts FetchOptions) error {
	c.beginFetch(opts.Force)

	if _, err := c.coord.FetchCollection(ctx, c.key, opts); err != nil {
		c.setError(ctx, err, "could not load collection")
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetching = false
	c.state = StateReady
	c.lastErr = nil
	c.reconcileSelectionLocked(ctx)
	return nil
}

// List returns the current collection. On first use it triggers the
// initial load and opens the subscription.
func (c *ResourceContext) List(ctx context.Context) ([]Resource, error) {
	c.mu.Lock()
	uninitialized := c.state == StateUninitialized
	c.mu.Unlock()

	if uninitialized {
		if err := c.Start(ctx); err != nil {
			return nil, err
		}
	}
	return c.cache.Read().Items, nil
}

// ActiveItem returns the currently selected resource, or nil.
func (c *ResourceContext) ActiveItem() *Resource {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return nil
	}
	dup := *c.active
	return &dup
}

// Create validates, quota-checks and persists a new resource, then applies
// an optimistic local update and schedules a silent background refresh to
// pick up server-assigned fields.
func (c *ResourceContext) Create(ctx context.Context, r Resource) (*Resource, error) {
	if err := ValidateName(r.Name); err != nil {
		return nil, err
	}
	r.Name = strings.TrimSpace(r.Name)

	if c.CheckNameExists(r.Name) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, r.Name)
	}

	decision := c.quota.CanCreate(ctx, c.key, len(c.cache.Read().Items))
	if !decision.CanCreate {
		return nil, &QuotaExceededError{MaxAllowed: decision.MaxAllowed, Message: decision.Message}
	}

	created, err := c.store.Create(ctx, r, c.key)
	if err != nil {
		// The store's own uniqueness check is the authoritative one; a
		// collision here surfaces as a second DuplicateNameError.
		return nil, classify(err)
	}

	c.mu.Lock()
	entry := c.cache.Read()
	items := append([]Resource{*created}, entry.Items...)
	c.cache.Write(items)
	c.active = created
	if err := c.selection.Save(ctx, created.ID); err != nil {
		c.log.Warn(ctx, "could not persist selection", "resource_id", created.ID, "error", err.Error())
	}
	c.mu.Unlock()

	go func() {
		bg, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = c.Refresh(bg, FetchOptions{Force: true, Silent: true})
	}()

	return created, nil
}

// SwitchActive makes the given resource the active selection and persists
// it. The id must be present in the current cache.
func (c *ResourceContext) SwitchActive(ctx context.Context, resourceID string) error {
	entry := c.cache.Read()

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range entry.Items {
		if entry.Items[i].ID == resourceID {
			c.active = &entry.Items[i]
			if err := c.selection.Save(ctx, resourceID); err != nil {
				return err
			}
			return nil
		}
	}
	return fmt.Errorf("%w: resource %q", ErrNotFound, resourceID)
}

// CheckNameExists reports whether a resource with the given name (case
// insensitive, trimmed) exists in the current cached snapshot. Best-effort:
// the store re-checks authoritatively at write time.
func (c *ResourceContext) CheckNameExists(name string) bool {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, item := range c.cache.Read().Items {
		if strings.ToLower(item.Name) == want {
			return true
		}
	}
	return false
}

// StateSnapshot returns the observable state for consumers.
func (c *ResourceContext) StateSnapshot() Snapshot {
	entry := c.cache.Read()
	c.mu.Lock()
	defer c.mu.Unlock()

	var active *Resource
	if c.active != nil {
		dup := *c.active
		active = &dup
	}
	return Snapshot{
		Items:         entry.Items,
		ActiveItem:    active,
		State:         c.state,
		IsLoading:     c.state == StateLoading && entry.Version == 0,
		IsFetching:    c.fetching,
		Err:           c.lastErr,
		LastFetchTime: entry.FetchedAt,
	}
}

// Invalidate clears the cached snapshot. The version counter survives so
// later writes remain ordered.
func (c *ResourceContext) Invalidate() {
	c.cache.Invalidate()
}

// Close tears the context down: the push channel is closed (idempotently)
// and in-flight fetches are cancelled. Terminal.
func (c *ResourceContext) Close() {
	c.recon.Close()
	c.coord.CancelAll()
}

// applySnapshot handles one push delivery: the snapshot is authoritative
// and replaces the cache unconditionally, then the selection is
// re-evaluated. Both run under the context mutex so a snapshot apply is
// never interleaved with another selection reconcile for this owner key.
func (c *ResourceContext) applySnapshot(ctx context.Context, items []Resource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Write(items)
	c.state = StateReady
	c.lastErr = nil
	c.reconcileSelectionLocked(ctx)
}

// reconcileSelectionLocked re-runs selection reconciliation against the
// cache's current snapshot. Callers must hold c.mu.
func (c *ResourceContext) reconcileSelectionLocked(ctx context.Context) {
	entry := c.cache.Read()
	active, err := c.selection.Reconcile(ctx, entry.Items)
	if err != nil {
		c.log.Warn(ctx, "could not persist reconciled selection", "error", err.Error())
	}
	c.active = active
}

func (c *ResourceContext) beginFetch(force bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetching = true
	if c.state == StateUninitialized || c.state == StateError || force {
		c.state = StateLoading
	}
}

// setError records a non-silent failure: the observable error field is
// populated and exactly one notification goes out.
func (c *ResourceContext) setError(ctx context.Context, err error, title string) {
	c.mu.Lock()
	c.fetching = false
	c.state = StateError
	c.lastErr = err
	c.mu.Unlock()

	c.log.Error(ctx, "operation failed", "owner_key", string(c.key), "error", err.Error())
	if c.notify != nil {
		kind := "error"
		if errors.Is(err, ErrTransient) {
			kind = "warning"
		}
		c.notify.Notify(Notification{Type: kind, Title: title, Message: err.Error()})
	}
}
