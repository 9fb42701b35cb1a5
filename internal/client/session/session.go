// Package session holds the process-wide source of truth for "who is logged
// in": a state machine going hydrating → anonymous | authenticated, driven
// by the auth service and the persisted token store.
package session

import (
	"context"
	"sync"

	"github.com/epicrobotics/academy-cli/internal/client/api"
	"github.com/epicrobotics/academy-cli/internal/client/models"
	"github.com/epicrobotics/academy-cli/internal/client/repositories/token"
	"github.com/epicrobotics/academy-cli/internal/client/services"
	"github.com/epicrobotics/academy-cli/internal/logging"
)

// Manager owns the in-memory identity. No other component mutates it.
//
// Session-mutating operations (Hydrate, Login, Register, Logout, Refresh)
// are serialized through a single mutex, so overlapping calls from
// different goroutines see a defined order instead of an arbitrary
// interleaving. Snapshot accessors never block behind a network call.
type Manager struct {
	auth   services.AuthService
	tokens token.Store
	log    logging.Logger

	// opMu serializes mutating operations end to end, including their
	// secondary profile fetch.
	opMu sync.Mutex

	mu       sync.RWMutex
	user     *models.User
	loading  bool
	hydrated bool
}

// NewManager builds a Manager in the hydrating state. Call Hydrate before
// relying on IsAuthenticated.
func NewManager(auth services.AuthService, tokens token.Store, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop{}
	}
	return &Manager{auth: auth, tokens: tokens, log: log, loading: true}
}

// Hydrate reconstructs session state from the persisted token. It runs at
// most once per process; later calls are no-ops.
//
// A present-but-rejected token is a normal anonymous condition: the token is
// cleared and no error is returned. Only token-store failures surface.
func (m *Manager) Hydrate(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.RLock()
	done := m.hydrated
	m.mu.RUnlock()
	if done {
		return nil
	}
	defer m.finishHydration()

	tok, err := m.tokens.Token(ctx)
	if err != nil {
		return err
	}
	if tok == "" {
		return nil
	}

	user, err := m.auth.Profile(ctx)
	if err != nil {
		m.log.Warn(ctx, "session hydration failed, clearing stored token", "error", err)
		return m.tokens.Clear(ctx)
	}
	m.setUser(user)
	return nil
}

// Login authenticates and transitions to authenticated. After the token is
// persisted a fresh profile is fetched; if that secondary fetch fails the
// identity embedded in the auth response is used instead, so a successful
// login never leaves an empty identity. Credential failures propagate
// unchanged and leave the state untouched.
func (m *Manager) Login(ctx context.Context, creds services.Credentials) (*models.AuthResponse, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	resp, err := m.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	m.adoptIdentity(ctx, &resp.User)
	return resp, nil
}

// Register creates an account; otherwise identical in shape to Login.
func (m *Manager) Register(ctx context.Context, data services.Registration) (*models.AuthResponse, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	resp, err := m.auth.Register(ctx, data)
	if err != nil {
		return nil, err
	}
	m.adoptIdentity(ctx, &resp.User)
	return resp, nil
}

// adoptIdentity prefers a fresh profile fetch and falls back to the identity
// embedded in the auth response. The fallback is copied before it is stored:
// the auth response belongs to the caller, and the held identity must never
// be reachable from outside the manager.
func (m *Manager) adoptIdentity(ctx context.Context, fallback *models.User) {
	user, err := m.auth.Profile(ctx)
	if err != nil {
		m.log.Warn(ctx, "profile fetch after auth failed, using embedded identity", "error", err)
		u := *fallback
		user = &u
	}
	m.setUser(user)
}

// Logout ends the session. The server call is best-effort: the token and
// identity are cleared locally even when it fails, and calling Logout while
// already anonymous is a harmless no-op.
func (m *Manager) Logout(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	err := m.auth.Logout(ctx)
	m.setUser(nil)
	if err != nil {
		if _, ok := api.AsError(err); ok {
			m.log.Warn(ctx, "server-side logout failed, session cleared locally", "error", err)
			return nil
		}
		// token store failure, the caller should know
		return err
	}
	return nil
}

// Refresh reconciles the local identity with the server. On failure the
// session is treated as invalid: identity and token are cleared and the
// error is returned.
func (m *Manager) Refresh(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	user, err := m.auth.Profile(ctx)
	if err != nil {
		m.setUser(nil)
		if cerr := m.tokens.Clear(ctx); cerr != nil {
			m.log.Error(ctx, "failed to clear token after refresh failure", "error", cerr)
		}
		return err
	}
	m.setUser(user)
	return nil
}

// CurrentUser returns a copy of the identity, or nil when anonymous.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// IsAuthenticated is exactly "an identity is present".
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

// IsLoading reports whether startup hydration has not finished yet.
func (m *Manager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// HasRole reports whether the identity is present and carries exactly the
// given role. There is no permission model beyond this equality check.
func (m *Manager) HasRole(role models.UserRole) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.user.Role == role
}

// HasAnyRole is HasRole over an allowed set.
func (m *Manager) HasAnyRole(roles ...models.UserRole) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return false
	}
	for _, role := range roles {
		if m.user.Role == role {
			return true
		}
	}
	return false
}

func (m *Manager) setUser(user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
}

func (m *Manager) finishHydration() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	m.hydrated = true
}
