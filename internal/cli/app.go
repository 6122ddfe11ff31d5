// Package cli implements the interactive terminal front end of the tracker.
// It is strictly a consumer: every piece of state lives behind the account
// directory, the session manager, and the application repository.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/accounts"
	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/applications"
	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/config"
	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/logging"
	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/session"
	"github.com/SandhraKrishnan10/ASCEND-Job-Application-Tracker-App/internal/storage"
)

// App wires the store-backed services to the REPL.
type App struct {
	config    *config.Config
	log       logging.Logger
	directory *accounts.Directory
	sessions  *session.Manager
	apps      *applications.Repository
	db        *sql.DB
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp opens the persistent store, builds the services, and hydrates the
// session from the ephemeral store. A fresh run starts logged out.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, db, err := storage.OpenSQLite(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "err", err)
		return nil, err
	}

	sessions := session.NewManager(storage.NewMemoryStore())
	if _, err := sessions.Restore(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:    cfg,
		log:       log,
		directory: accounts.NewDirectory(store),
		sessions:  sessions,
		apps:      applications.NewRepository(store),
		db:        db,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.root(ctx)
}

// Close releases the underlying database handle.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
