package remote

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/avetrov/qaboard/internal/client/syncx"
	pb "github.com/avetrov/qaboard/internal/proto"
)

// Store is a kind-scoped view of the remote service. One Store serves one
// resource kind ("suite", "activity") and implements both the query/create
// side and the capability side consumed by the sync layer.
type Store struct {
	client *Client
	kind   string
}

// Store returns a view of the connection scoped to a single resource kind.
func (c *Client) Store(kind string) *Store {
	return &Store{client: c, kind: kind}
}

func (s *Store) Query(ctx context.Context, key syncx.OwnerKey) ([]syncx.Resource, error) {
	scope, err := syncx.ParseOwnerKey(key)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.api.ListResources(ctx, &pb.ListResourcesRequest{
		Kind:      s.kind,
		ScopeKind: string(scope.Kind),
		OwnerId:   scope.OwnerID,
	})
	if err != nil {
		return nil, mapError(err)
	}

	items := make([]syncx.Resource, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, fromProto(item))
	}
	return items, nil
}

func (s *Store) Create(ctx context.Context, r syncx.Resource, key syncx.OwnerKey) (*syncx.Resource, error) {
	scope, err := syncx.ParseOwnerKey(key)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.api.CreateResource(ctx, &pb.CreateResourceRequest{
		Resource: toProto(s.kind, scope, r),
	})
	if err != nil {
		return nil, mapError(err)
	}

	created := fromProto(resp.Resource)
	return &created, nil
}

// Subscribe opens a server-side snapshot stream and pumps it into the
// callbacks until the stream ends or the returned stop function runs. The
// stop function is idempotent.
func (s *Store) Subscribe(ctx context.Context, key syncx.OwnerKey, onSnapshot func([]syncx.Resource), onError func(error)) (func(), error) {
	scope, err := syncx.ParseOwnerKey(key)
	if err != nil {
		return nil, err
	}

	streamCtx, cancel := context.WithCancel(ctx)
	stream, err := s.client.api.WatchResources(streamCtx, &pb.WatchResourcesRequest{
		Kind:      s.kind,
		ScopeKind: string(scope.Kind),
		OwnerId:   scope.OwnerID,
	})
	if err != nil {
		cancel()
		return nil, mapError(err)
	}

	go func() {
		for {
			snapshot, err := stream.Recv()
			if err != nil {
				if streamCtx.Err() != nil || err == io.EOF {
					return
				}
				onError(mapError(err))
				return
			}

			items := make([]syncx.Resource, 0, len(snapshot.Items))
			for _, item := range snapshot.Items {
				items = append(items, fromProto(item))
			}
			onSnapshot(items)
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(cancel)
	}
	return stop, nil
}

func (s *Store) GetQuota(ctx context.Context, key syncx.OwnerKey) (syncx.Quota, error) {
	scope, err := syncx.ParseOwnerKey(key)
	if err != nil {
		return syncx.Quota{}, err
	}

	resp, err := s.client.api.GetQuota(ctx, &pb.GetQuotaRequest{
		Kind:      s.kind,
		ScopeKind: string(scope.Kind),
		OwnerId:   scope.OwnerID,
	})
	if err != nil {
		return syncx.Quota{}, mapError(err)
	}

	return syncx.Quota{
		MaxAllowed:   int(resp.MaxAllowed),
		CurrentCount: int(resp.CurrentCount),
	}, nil
}

func fromProto(r *pb.Resource) syncx.Resource {
	return syncx.Resource{
		ID: r.Id,
		Scope: syncx.OwnerScope{
			Kind:    syncx.ScopeKind(r.ScopeKind),
			OwnerID: r.OwnerId,
		},
		Name:        r.Name,
		Status:      r.Status,
		CreatedAt:   time.Unix(r.CreatedAtUnix, 0).UTC(),
		Payload:     r.Payload,
		Permissions: r.Permissions,
	}
}

func toProto(kind string, scope syncx.OwnerScope, r syncx.Resource) *pb.Resource {
	return &pb.Resource{
		Id:          r.ID,
		Kind:        kind,
		ScopeKind:   string(scope.Kind),
		OwnerId:     scope.OwnerID,
		Name:        r.Name,
		Status:      r.Status,
		Payload:     r.Payload,
		Permissions: r.Permissions,
	}
}
