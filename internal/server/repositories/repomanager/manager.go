package repomanager

import (
	"context"
	"database/sql"

	"github.com/avetrov/qaboard/internal/dbx"
	"github.com/avetrov/qaboard/internal/server/repositories/refreshtokens"
	"github.com/avetrov/qaboard/internal/server/repositories/resources"
	"github.com/avetrov/qaboard/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a concrete DB handle,
// so services can run them either on *sql.DB or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Resources(db dbx.DBTX) resources.Repository
}
