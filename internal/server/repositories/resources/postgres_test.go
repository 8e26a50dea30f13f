package resources

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avetrov/qaboard/internal/common"
	"github.com/avetrov/qaboard/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestSelectByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "kind", "scope_kind", "owner_id", "name", "status", "payload", "permissions", "created_at"}).
		AddRow("r-1", "suite", "individual", "u1", "Smoke", "active", []byte(`{"env":"ci"}`), []byte(`{}`), created)

	mock.ExpectQuery(`(?s)SELECT\s+id,\s*kind.*FROM\s+resources`).
		WithArgs("suite", "individual", "u1").
		WillReturnRows(rows)

	got, err := repo.SelectByOwner(context.Background(), "suite", "individual", "u1")
	if err != nil {
		t.Fatalf("SelectByOwner error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "r-1" || got[0].Payload["env"] != "ci" {
		t.Fatalf("unexpected resources: %+v", got)
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now()
	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+resources`).
		WithArgs("suite", "individual", "u1", "Smoke", "active", []byte(`{}`), []byte(`{}`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("r-9", created))

	got, err := repo.Create(context.Background(), &models.Resource{
		Kind: "suite", ScopeKind: "individual", OwnerID: "u1", Name: "Smoke",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "r-9" || got.Status != "active" {
		t.Fatalf("unexpected resource: %+v", got)
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)INSERT\s+INTO\s+resources`).
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "resources_owner_name_uq"`))

	_, err := repo.Create(context.Background(), &models.Resource{
		Kind: "suite", ScopeKind: "individual", OwnerID: "u1", Name: "Smoke",
	})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected ErrorAlreadyExists, got %v", err)
	}
}

func TestCountByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+count\(\*\)`).
		WithArgs("suite", "individual", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	got, err := repo.CountByOwner(context.Background(), "suite", "individual", "u1")
	if err != nil || got != 3 {
		t.Fatalf("got %d, err=%v", got, err)
	}
}

func TestExistsByName(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+EXISTS`).
		WithArgs("suite", "individual", "u1", "smoke").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	got, err := repo.ExistsByName(context.Background(), "suite", "individual", "u1", "smoke")
	if err != nil || !got {
		t.Fatalf("got %v, err=%v", got, err)
	}
}
