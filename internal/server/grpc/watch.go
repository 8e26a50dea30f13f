package grpc

import (
	"sync"

	pb "github.com/avetrov/qaboard/internal/proto"
)

// watchHub fans full replacement snapshots out to WatchResources streams.
// Subscriptions are keyed by "<kind>/<scopeKind>/<ownerID>". Each slice
// carries a monotonically increasing revision so clients can spot reordered
// deliveries.
type watchHub struct {
	mu        sync.Mutex
	subs      map[string]map[chan *pb.ResourceSnapshot]struct{}
	revisions map[string]int64
}

func newWatchHub() *watchHub {
	return &watchHub{
		subs:      make(map[string]map[chan *pb.ResourceSnapshot]struct{}),
		revisions: make(map[string]int64),
	}
}

func watchKey(kind, scopeKind, ownerID string) string {
	return kind + "/" + scopeKind + "/" + ownerID
}

// subscribe registers a snapshot channel for the key. The returned function
// removes the subscription and closes the channel; it is safe to call once.
func (h *watchHub) subscribe(key string) (<-chan *pb.ResourceSnapshot, func()) {
	ch := make(chan *pb.ResourceSnapshot, 8)

	h.mu.Lock()
	if h.subs[key] == nil {
		h.subs[key] = make(map[chan *pb.ResourceSnapshot]struct{})
	}
	h.subs[key][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[key][ch]; ok {
			delete(h.subs[key], ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// broadcast bumps the revision for the key and delivers the snapshot to all
// subscribers. Slow subscribers with a full buffer are skipped; they will
// catch up with the next snapshot.
func (h *watchHub) broadcast(key string, items []*pb.Resource) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.revisions[key]++
	snapshot := &pb.ResourceSnapshot{Items: items, Revision: h.revisions[key]}

	for ch := range h.subs[key] {
		select {
		case ch <- snapshot:
		default:
		}
	}
}
