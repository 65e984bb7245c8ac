package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/tutorbook/internal/catalog"
	"github.com/dmitrijs2005/tutorbook/internal/config"
	"github.com/dmitrijs2005/tutorbook/internal/flow"
	"github.com/dmitrijs2005/tutorbook/internal/logging"
	"github.com/dmitrijs2005/tutorbook/internal/reservations"
	"github.com/dmitrijs2005/tutorbook/internal/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	flush  func()
	flow   *flow.Flow
}

// NewApp builds the application for cfg. Answers are read from in, prompts
// and results go to out and logs go to errOut.
//
// Problems loading persisted users or the catalog file are logged and the app
// starts anyway, with no users or with the built-in sessions respectively.
// Only an unusable logging configuration is an error.
func NewApp(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) (*App, error) {
	logger, flush, err := logging.New(logging.Options{
		Backend: cfg.LogBackend,
		Level:   cfg.LogLevel,
		Output:  errOut,
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing logger: %w", err)
	}

	sessions := catalog.Seed()
	if cfg.CatalogFile != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			logger.Error(ctx, "using built-in catalog", "catalog_file", cfg.CatalogFile, "error", err)
		} else {
			sessions = loaded
		}
	}
	cat := catalog.New(sessions)

	store, err := users.NewStore(ctx, users.NewFileRepository(cfg.UsersFile), logger)
	if err != nil {
		logger.Error(ctx, "starting without persisted users", "users_file", cfg.UsersFile, "error", err)
	}

	bookings := reservations.NewFileLog(cfg.ReservationsFile, logger)

	logger.Info(ctx, "tutorbook started",
		"users_file", cfg.UsersFile,
		"reservations_file", cfg.ReservationsFile,
		"users", store.Len(),
		"sessions", cat.Len(),
	)

	console := NewConsole(in, out, fdOf(in))

	return &App{
		config: cfg,
		logger: logger,
		flush:  flush,
		flow:   flow.New(store, cat, bookings, console, out, logger),
	}, nil
}

// Run blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.flush()

	if err := a.flow.Run(ctx); err != nil {
		a.logger.Error(ctx, "input failed", "error", err)
		return err
	}

	a.logger.Info(ctx, "tutorbook stopped")
	return nil
}

func fdOf(r io.Reader) int {
	if f, ok := r.(*os.File); ok {
		return int(f.Fd())
	}
	return -1
}
