// Package session owns the authenticated identity for the running client:
// the token, the current-user record, and their persisted snapshots. Every
// persistence-affecting operation writes or clears the in-memory user and
// the stored snapshot together, so no reader ever observes one without the
// other.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/lexmentor/lexclient/pkg/api"
	"github.com/lexmentor/lexclient/pkg/model"
	"github.com/lexmentor/lexclient/pkg/storage"
)

// Navigator moves the UI to a destination path. The CLI prints the
// destination; a richer frontend would route to it.
type Navigator interface {
	Navigate(path string)
}

// NopNavigator discards navigation, for tests and headless use.
type NopNavigator struct{}

func (NopNavigator) Navigate(string) {}

// StoreTokenSource adapts a storage.Store into an api.TokenSource. It reads
// the persisted token on every request so the funnel always sees live
// session state, including a logout that happened after the client was
// built.
type StoreTokenSource struct {
	Store storage.Store
}

func (s StoreTokenSource) Token() string {
	token, err := s.Store.Get(storage.KeyAuthToken)
	if err != nil {
		slog.Warn("read persisted token", "err", err)
		return ""
	}
	return token
}

// LoginResult is the outcome of a credential submission.
type LoginResult struct {
	Success           bool
	Error             string
	RequiresTwoFactor bool
}

// RegisterResult is the outcome of a signup submission.
type RegisterResult struct {
	Success bool
	Error   string
}

// Manager maintains the single authenticated identity for this client
// instance. Its state-mutating operations are serialised by a mutex, but
// they are not designed to race each other; the target environment is one
// interactive user, and a race resolves to last-write-wins in the store.
type Manager struct {
	mu    sync.RWMutex
	api   *api.Client
	store storage.Store
	nav   Navigator
	user  *model.User
	now   func() time.Time
}

// NewManager builds a Manager over the given API client, state store, and
// navigator. A nil navigator disables navigation side effects.
func NewManager(apiClient *api.Client, store storage.Store, nav Navigator) *Manager {
	if nav == nil {
		nav = NopNavigator{}
	}
	return &Manager{
		api:   apiClient,
		store: store,
		nav:   nav,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// CurrentUser returns a snapshot of the authenticated user, or nil when
// logged out. Callers get a copy; only the Manager mutates the record.
func (m *Manager) CurrentUser() *model.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	snapshot := *m.user
	return &snapshot
}

// IsAuthenticated reports whether a validated user is in memory.
func (m *Manager) IsAuthenticated() bool {
	return m.CurrentUser() != nil
}

// Initialize restores a persisted session on startup. No persisted token is
// the normal unauthenticated state, not an error. A persisted token is
// revalidated against the identity endpoint; on success the freshly fetched
// user replaces the stale snapshot, on any failure the whole session is
// cleared. Either way exactly one of {validated, fully logged out} holds
// when this returns.
func (m *Manager) Initialize(ctx context.Context) error {
	token, err := m.store.Get(storage.KeyAuthToken)
	if err != nil {
		return err
	}
	snapshot, err := m.store.Get(storage.KeyCurrentUser)
	if err != nil {
		return err
	}
	if token == "" || snapshot == "" {
		return nil
	}

	wire, err := m.api.Me(ctx)
	if err != nil {
		slog.Warn("session revalidation failed, logging out", "err", err)
		m.clearSession()
		return nil
	}

	user := wire.Canonical(m.now(), true)
	return m.setSession(token, user)
}

// Login submits credentials. On success the normalized user and token are
// stored together; on failure session state is untouched and the result
// carries a human-readable reason. rememberMe only records an extra flag,
// it does not change token lifetime.
func (m *Manager) Login(ctx context.Context, email, password string, rememberMe bool) LoginResult {
	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		return LoginResult{Error: loginFailureReason(err)}
	}

	user := resp.User.Canonical(m.now(), true)
	if err := m.setSession(resp.AccessToken, user); err != nil {
		slog.Error("persist session", "err", err)
		return LoginResult{Error: "Could not save session"}
	}
	if rememberMe {
		if err := m.store.Set(storage.KeyRememberMe, "true"); err != nil {
			slog.Warn("persist remember-me flag", "err", err)
		}
	}
	return LoginResult{Success: true}
}

// Register signs up a new account. On success the session is stored exactly
// as for login, and the caller is navigated to the role-specific landing
// destination. The redirect belongs to registration alone; login never
// navigates.
func (m *Manager) Register(ctx context.Context, data model.RegisterData) RegisterResult {
	resp, err := m.api.Signup(ctx, data)
	if err != nil {
		return RegisterResult{Error: registerFailureReason(err)}
	}

	user := resp.User.Canonical(m.now(), false)
	if err := m.setSession(resp.AccessToken, user); err != nil {
		slog.Error("persist session", "err", err)
		return RegisterResult{Error: "Could not save session"}
	}

	// The redirect switches on the raw backend role so an unrecognised one
	// goes home instead of to the normalized fallback's surface.
	m.nav.Navigate(model.AccountType(resp.User.RawAccountType()).LandingPath())
	return RegisterResult{Success: true}
}

// Logout clears memory and persisted state unconditionally and navigates
// home. It never fails; storage errors are logged and swallowed because a
// logout must always complete.
func (m *Manager) Logout() {
	m.clearSession()
	m.nav.Navigate("/")
}

// UpdateUser sends changed profile fields to the backend. On success the
// accepted fields are merged into the in-memory and persisted user and true
// is returned; on any failure state is left unchanged and false is
// returned. All-or-nothing: partial acceptance is not distinguished.
func (m *Manager) UpdateUser(ctx context.Context, updates model.ProfileUpdate) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return false
	}

	if _, err := m.api.UpdateUserProfile(ctx, updates); err != nil {
		slog.Warn("profile update rejected", "err", err)
		return false
	}

	merged := *m.user
	if updates.Name != "" {
		merged.Name = updates.Name
	}
	if updates.Email != "" {
		merged.Email = updates.Email
	}
	if updates.Phone != "" {
		merged.Phone = updates.Phone
	}
	if updates.Address != "" {
		merged.Address = updates.Address
	}
	if updates.Specialization != "" {
		merged.Specialization = updates.Specialization
	}
	if updates.BarNumber != "" {
		merged.BarNumber = updates.BarNumber
	}
	if updates.YearsOfExperience != 0 {
		merged.YearsOfExperience = updates.YearsOfExperience
	}
	merged.UpdatedAt = m.now().Format(time.RFC3339)

	if err := m.persistUser(merged); err != nil {
		slog.Error("persist updated user", "err", err)
		return false
	}
	m.user = &merged
	return true
}

// ResetPassword asks the backend to start a password reset for email.
func (m *Manager) ResetPassword(ctx context.Context, email string) bool {
	if err := m.api.ForgotPassword(ctx, email); err != nil {
		slog.Warn("password reset request failed", "err", err)
		return false
	}
	return true
}

// ChangePassword always reports success. The backend endpoint is not live
// yet; this is a documented stub, not silent failure.
func (m *Manager) ChangePassword(ctx context.Context, current, updated string) bool {
	_ = current
	_ = updated
	return true
}

// VerifyEmail marks the current user's address verified locally and
// persists the change. Token verification is backend-side work the client
// only reflects.
func (m *Manager) VerifyEmail(ctx context.Context, token string) bool {
	_ = token
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return true
	}
	merged := *m.user
	merged.IsEmailVerified = true
	if err := m.persistUser(merged); err != nil {
		slog.Error("persist verified user", "err", err)
		return false
	}
	m.user = &merged
	return true
}

// RefreshSession always reports success; token refresh is pending backend
// support.
func (m *Manager) RefreshSession(ctx context.Context) bool {
	return true
}

// setSession writes the token and user snapshot to the store and memory as
// one observable step.
func (m *Manager) setSession(token string, user model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Set(storage.KeyAuthToken, token); err != nil {
		return err
	}
	if err := m.persistUser(user); err != nil {
		// Half-written sessions are worse than none.
		_ = m.store.Delete(storage.KeyAuthToken)
		return err
	}
	m.user = &user
	return nil
}

// persistUser serialises user under the snapshot key. Callers hold the lock.
func (m *Manager) persistUser(user model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return m.store.Set(storage.KeyCurrentUser, string(data))
}

func (m *Manager) clearSession() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	for _, key := range []string{storage.KeyAuthToken, storage.KeyCurrentUser, storage.KeyRememberMe} {
		if err := m.store.Delete(key); err != nil {
			slog.Warn("clear session key", "key", key, "err", err)
		}
	}
}

func loginFailureReason(err error) string {
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		return "Network error"
	}
	if apiErr.IsValidation() {
		return "Invalid credentials"
	}
	return apiErr.Message
}

func registerFailureReason(err error) string {
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		return "Network error"
	}
	if apiErr.IsValidation() {
		return "Registration failed"
	}
	return apiErr.Message
}
