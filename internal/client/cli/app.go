package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/avetrov/qaboard/internal/client/config"
	"github.com/avetrov/qaboard/internal/client/kv"
	"github.com/avetrov/qaboard/internal/client/notify"
	"github.com/avetrov/qaboard/internal/client/remote"
	"github.com/avetrov/qaboard/internal/client/syncx"
	"github.com/avetrov/qaboard/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the interactive CLI shell. It owns the gRPC connection, the local
// durable store and one synchronized context per resource kind.
type App struct {
	config *config.Config
	client *remote.Client
	db     *sql.DB
	slots  *kv.SQLiteStore
	log    logging.Logger

	suites     *syncx.ResourceContext
	activities *syncx.ResourceContext

	userName string
	userID   string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := kv.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient, err := remote.NewClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{
		config: c,
		client: apiClient,
		db:     db,
		slots:  kv.NewSQLiteStore(db),
		log:    logging.NewTextLogger(os.Stderr),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// startContexts builds the suite and activity contexts for the logged-in
// user and kicks off their initial load plus push subscriptions.
func (a *App) startContexts(ctx context.Context) error {
	key := syncx.OwnerScope{Kind: syncx.ScopeIndividual, OwnerID: a.userID}.Key()
	sink := notify.NewConsoleSink()

	suiteStore := a.client.Store("suite")
	a.suites = syncx.NewResourceContext(syncx.ContextOptions{
		OwnerKey:        key,
		Store:           suiteStore,
		Capabilities:    suiteStore,
		KV:              a.slots,
		Notifications:   sink,
		Logger:          a.log,
		CacheTTL:        a.config.CacheTTL,
		SelectionSlot:   "active_selection/suite/" + string(key),
		SelectionMaxAge: a.config.SelectionMaxAge,
	})

	activityStore := a.client.Store("activity")
	a.activities = syncx.NewResourceContext(syncx.ContextOptions{
		OwnerKey:        key,
		Store:           activityStore,
		Capabilities:    activityStore,
		KV:              a.slots,
		Notifications:   sink,
		Logger:          a.log,
		CacheTTL:        a.config.CacheTTL,
		SelectionSlot:   "active_selection/activity/" + string(key),
		SelectionMaxAge: a.config.SelectionMaxAge,
	})

	if err := a.suites.Start(ctx); err != nil {
		return err
	}
	return a.activities.Start(ctx)
}

func (a *App) stopContexts() {
	if a.suites != nil {
		a.suites.Close()
		a.suites = nil
	}
	if a.activities != nil {
		a.activities.Close()
		a.activities = nil
	}
}

func (a *App) isLoggedIn() bool {
	return a.userID != ""
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	ctx := context.Background()
	a.stopContexts()
	if err := a.client.Close(); err != nil {
		a.log.Warn(ctx, "closing connection", "error", err.Error())
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(ctx, "closing database", "error", err.Error())
	}
}
