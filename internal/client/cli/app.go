package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/Zeldris69240/reqres-app/internal/client/api"
	"github.com/Zeldris69240/reqres-app/internal/client/config"
	"github.com/Zeldris69240/reqres-app/internal/client/directory"
	"github.com/Zeldris69240/reqres-app/internal/client/services"
	"github.com/Zeldris69240/reqres-app/internal/client/session"
	"github.com/Zeldris69240/reqres-app/internal/logging"
)

// App wires the CLI together. It owns the collection cache and the
// at-most-one active edit session; both live for the duration of the
// process and are only touched from the command loop.
type App struct {
	config      *config.Config
	authService services.AuthService
	userService services.UserService
	cache       *directory.Cache
	editSession *directory.EditSession
	userEmail   string
	reader      *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewTextLogger(os.Stderr, level)

	tokens := session.NewMemoryStore()
	apiClient := api.NewHTTPClient(c.BaseURL, tokens, logger)

	cache := directory.NewCache()

	as := services.NewAuthService(apiClient, tokens)
	us := services.NewUserService(apiClient, cache)

	return &App{
		config:      c,
		authService: as,
		userService: us,
		cache:       cache,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userEmail != ""
}

func (a *App) isEditing() bool {
	return a.editSession != nil
}
