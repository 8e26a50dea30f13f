// Package resources provides persistence for synchronized collections:
// test suites and activity entries, one table keyed by kind and owner.
package resources

import (
	"context"

	"github.com/avetrov/qaboard/internal/server/models"
)

type Repository interface {
	// SelectByOwner returns the full collection slice for a kind and owner,
	// newest first.
	SelectByOwner(ctx context.Context, kind, scopeKind, ownerID string) ([]*models.Resource, error)

	// Create inserts a resource and returns it with the server-assigned id
	// and creation time filled in. A name collision within the slice yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, r *models.Resource) (*models.Resource, error)

	// CountByOwner returns how many resources the owner currently holds in
	// the given collection slice.
	CountByOwner(ctx context.Context, kind, scopeKind, ownerID string) (int, error)

	// ExistsByName reports whether a resource with the given name (matched
	// case-insensitively) exists in the slice.
	ExistsByName(ctx context.Context, kind, scopeKind, ownerID, name string) (bool, error)
}
