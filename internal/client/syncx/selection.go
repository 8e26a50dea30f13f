package syncx

import (
	"context"
	"encoding/json"
	"time"
)

// DefaultSelectionMaxAge is how long a persisted selection is trusted.
const DefaultSelectionMaxAge = 24 * time.Hour

// SavedSelection is the durable record of which item is active.
type SavedSelection struct {
	ResourceID string    `json:"resource_id"`
	SavedAt    time.Time `json:"saved_at"`
}

// SelectionStore persists the active selection in a single durable
// key/value slot and validates it against the current snapshot. A saved
// selection older than maxAge is not trusted and treated as absent.
type SelectionStore struct {
	kv     DurableKeyValue
	slot   string
	maxAge time.Duration
	now    func() time.Time
}

func NewSelectionStore(kv DurableKeyValue, slot string) *SelectionStore {
	return &SelectionStore{kv: kv, slot: slot, maxAge: DefaultSelectionMaxAge, now: time.Now}
}

// Load returns the saved selection, or nil when the slot is empty or holds
// something unreadable. Storage errors degrade to "no selection" — the
// slot is a convenience, not a source of truth.
func (s *SelectionStore) Load(ctx context.Context) *SavedSelection {
	raw, ok, err := s.kv.Get(ctx, s.slot)
	if err != nil || !ok {
		return nil
	}
	var saved SavedSelection
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		return nil
	}
	if saved.ResourceID == "" {
		return nil
	}
	return &saved
}

// Save writes the selection with a fresh timestamp. An empty id clears the
// stored value.
func (s *SelectionStore) Save(ctx context.Context, resourceID string) error {
	if resourceID == "" {
		return s.kv.Remove(ctx, s.slot)
	}
	raw, err := json.Marshal(SavedSelection{ResourceID: resourceID, SavedAt: s.now()})
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.slot, string(raw))
}

// Reconcile resolves the effective selection against the given snapshot:
// the saved item when it is fresh and still present, otherwise the first
// item of the collection (insertion order), otherwise nil. Whenever the
// effective selection differs from what was stored, it is re-saved so the
// timestamp is refreshed and the slot never dangles on a deleted resource.
func (s *SelectionStore) Reconcile(ctx context.Context, items []Resource) (*Resource, error) {
	saved := s.Load(ctx)

	var match *Resource
	if saved != nil && s.now().Sub(saved.SavedAt) <= s.maxAge {
		for i := range items {
			if items[i].ID == saved.ResourceID {
				match = &items[i]
				break
			}
		}
	}

	if match != nil {
		return match, nil
	}

	if len(items) == 0 {
		if saved != nil {
			if err := s.Save(ctx, ""); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	first := items[0]
	if err := s.Save(ctx, first.ID); err != nil {
		return &first, err
	}
	return &first, nil
}
