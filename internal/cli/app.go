package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/hotelres/internal/config"
	"github.com/dmitrijs2005/hotelres/internal/cryptox"
	"github.com/dmitrijs2005/hotelres/internal/filex"
	"github.com/dmitrijs2005/hotelres/internal/logging"
	"github.com/dmitrijs2005/hotelres/internal/repositories/repomanager"
	"github.com/dmitrijs2005/hotelres/internal/services"
	"github.com/dmitrijs2005/hotelres/internal/session"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	authService services.AuthService
	session     *session.Manager
	screen      Screen
	reader      *bufio.Reader
	out         io.Writer
}

// openDatabase is a seam for repomanager.Open.
var openDatabase = repomanager.Open

// NewApp opens the credential database, applies migrations, seeds the admin
// account when configured and returns an App on the login screen reading
// from stdin.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	dsn := c.DatabaseDSN
	if c.DatabaseDriver == config.DriverSQLite && dsn == "" {
		dir, err := filex.EnsureSubdDir(c.DataDir)
		if err != nil {
			return nil, fmt.Errorf("data dir: %w", err)
		}
		dsn = c.ResolveDSN(dir)
	}

	openCtx := ctx
	if c.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		openCtx, cancel = context.WithTimeout(ctx, c.ConnectTimeout)
		defer cancel()
	}

	db, rm, err := openDatabase(openCtx, c.DatabaseDriver, dsn, logger)
	if err != nil {
		logger.Error(ctx, "error initializing database", "driver", c.DatabaseDriver, "error", err)
		return nil, err
	}

	hasher := cryptox.NewPasswordHasher(c.HashParams())
	as := services.NewAuthService(db, rm, hasher, logger)

	a := &App{
		config:      c,
		logger:      logger,
		db:          db,
		authService: as,
		session:     session.NewManager(),
		screen:      ScreenLogin,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}

	if err := a.seedAdmin(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return a, nil
}

func (a *App) seedAdmin(ctx context.Context) error {
	if a.config.AdminEmail == "" {
		return nil
	}
	password, err := a.authService.SeedAdmin(ctx, a.config.AdminEmail)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if password != "" {
		fmt.Fprintf(a.out, "Administrator account %s created with password: %s\n", a.config.AdminEmail, password)
		fmt.Fprintln(a.out, "This password is shown only once.")
	}
	return nil
}

func (a *App) currentScreen() Screen {
	return a.screen
}

func (a *App) getStatus() string {
	switch a.screen {
	case ScreenHome:
		if id, ok := a.session.GetUser(); ok {
			return fmt.Sprintf("(%s) ", id.DisplayName())
		}
		return "(home) "
	case ScreenAdminDashboard:
		return "(admin) "
	default:
		return ""
	}
}

// Run blocks in the REPL until the user exits or ctx is cancelled, then
// closes the database.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to the hotel reservation console (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
