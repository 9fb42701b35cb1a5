// Package cli implements the interactive terminal client. Commands are thin
// wrappers over the service modules; who-is-logged-in questions go through
// the session manager, never around it.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/epicrobotics/academy-cli/internal/client/api"
	"github.com/epicrobotics/academy-cli/internal/client/config"
	"github.com/epicrobotics/academy-cli/internal/client/models"
	"github.com/epicrobotics/academy-cli/internal/client/repositories/token"
	"github.com/epicrobotics/academy-cli/internal/client/services"
	"github.com/epicrobotics/academy-cli/internal/client/session"
	"github.com/epicrobotics/academy-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// Mode is the last known reachability of the backend, shown in the prompt.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
	ModeUnknown Mode = "unknown"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Manager
	tokens  token.Store

	auth         services.AuthService
	courses      *services.CourseService
	learning     *services.LearningService
	payments     *services.PaymentService
	certificates *services.CertificateService
	paths        *services.LearningPathService
	products     *services.ProductService
	contact      *services.ContactService
	mentoring    *services.MentoringService
	links        *services.AccessLinkService

	apiClient *api.Client
	reader    *bufio.Reader

	// mode is written by the reachability watcher goroutine and read by
	// the REPL, so access goes through modeMu.
	modeMu sync.RWMutex
	mode   Mode
}

// NewApp wires the full client: session database, token store, API client,
// service modules, and the session manager.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop{}
	}

	db, err := token.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, err
	}
	tokens := token.NewSQLiteStore(db)

	apiClient := api.New(api.Config{
		BaseURL:  cfg.APIURL,
		BasePath: cfg.APIBasePath,
		Timeout:  cfg.RequestTimeout,
		Tokens:   tokens,
		Logger:   log,
	})

	auth := services.NewAuthService(apiClient, tokens)

	return &App{
		config:       cfg,
		log:          log,
		db:           db,
		tokens:       tokens,
		apiClient:    apiClient,
		auth:         auth,
		session:      session.NewManager(auth, tokens, log),
		courses:      services.NewCourseService(apiClient),
		learning:     services.NewLearningService(apiClient),
		payments:     services.NewPaymentService(apiClient),
		certificates: services.NewCertificateService(apiClient),
		paths:        services.NewLearningPathService(apiClient),
		products:     services.NewProductService(apiClient),
		contact:      services.NewContactService(apiClient),
		mentoring:    services.NewMentoringService(apiClient),
		links:        services.NewAccessLinkService(apiClient),
		reader:       bufio.NewReader(os.Stdin),
		mode:         ModeUnknown,
	}, nil
}

// Run hydrates the session, starts the reachability watcher, and hands
// control to the REPL until EOF or exit.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.session.Hydrate(ctx); err != nil {
		a.log.Warn(ctx, "session hydration failed", "error", err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.statusLine, scanner)
	return nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) hasAnyRole(roles ...models.UserRole) bool {
	return a.session.HasAnyRole(roles...)
}

func (a *App) statusLine() string {
	who := "anonymous"
	if user := a.session.CurrentUser(); user != nil {
		who = user.Email
	}
	return who + " | " + string(a.currentMode())
}

func (a *App) currentMode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()
	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

// probeBackend asks the backend for a cheap public resource. Any HTTP
// response at all counts as reachable; only connectivity-class failures
// mean offline.
func (a *App) probeBackend(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := a.apiClient.Get(ctx, "/products", nil)
	if err != nil && api.IsConnectivity(err) {
		return err
	}
	return nil
}

// StartOnlineStatusWatcher periodically probes the backend and flips the
// connectivity mode.
// Each probe is retried with a short fibonacci backoff before the backend
// is declared offline, so a single dropped packet does not flap the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			backoff := retry.WithMaxRetries(2, retry.NewFibonacci(500*time.Millisecond))
			err := retry.Do(ctx, backoff, func(ctx context.Context) error {
				if perr := a.probeBackend(ctx); perr != nil {
					return retry.RetryableError(perr)
				}
				return nil
			})

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
