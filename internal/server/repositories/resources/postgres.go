package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avetrov/qaboard/internal/common"
	"github.com/avetrov/qaboard/internal/dbx"
	"github.com/avetrov/qaboard/internal/server/models"
)

// PostgresRepository stores resources in a single table with a kind column;
// payload and permissions are JSONB.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) SelectByOwner(ctx context.Context, kind, scopeKind, ownerID string) ([]*models.Resource, error) {
	query := `
		SELECT id, kind, scope_kind, owner_id, name, status, payload, permissions, created_at
		FROM resources
		WHERE kind = $1 AND scope_kind = $2 AND owner_id = $3
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, kind, scopeKind, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var items []*models.Resource
	for rows.Next() {
		item := &models.Resource{}
		var payload, permissions []byte
		if err := rows.Scan(&item.ID, &item.Kind, &item.ScopeKind, &item.OwnerID,
			&item.Name, &item.Status, &payload, &permissions, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := unmarshalFields(item, payload, permissions); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) Create(ctx context.Context, res *models.Resource) (*models.Resource, error) {
	payload, err := marshalField(res.Payload)
	if err != nil {
		return nil, err
	}
	permissions, err := marshalField(res.Permissions)
	if err != nil {
		return nil, err
	}

	status := res.Status
	if status == "" {
		status = "active"
	}

	query := `
		INSERT INTO resources (kind, scope_kind, owner_id, name, status, payload, permissions)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err = r.db.QueryRowContext(ctx, query,
		res.Kind, res.ScopeKind, res.OwnerID, res.Name, status, payload, permissions).
		Scan(&res.ID, &res.CreatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	res.Status = status
	return res, nil
}

func (r *PostgresRepository) CountByOwner(ctx context.Context, kind, scopeKind, ownerID string) (int, error) {
	query := `
		SELECT count(*)
		FROM resources
		WHERE kind = $1 AND scope_kind = $2 AND owner_id = $3
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, kind, scopeKind, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) ExistsByName(ctx context.Context, kind, scopeKind, ownerID, name string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM resources
			WHERE kind = $1 AND scope_kind = $2 AND owner_id = $3 AND lower(name) = lower($4)
		)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, kind, scopeKind, ownerID, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func marshalField(m map[string]string) ([]byte, error) {
	if m == nil {
		m = map[string]string{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}
	return b, nil
}

func unmarshalFields(item *models.Resource, payload, permissions []byte) error {
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &item.Payload); err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}
	}
	if len(permissions) > 0 {
		if err := json.Unmarshal(permissions, &item.Permissions); err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}
	}
	return nil
}
