// Package session owns the local credential store and the single
// active session of the running client.
package session

import (
	"github.com/rs/zerolog"
)

// Manager validates signup and login against the stored account
// collection and tracks the current session. It is a plain service
// object meant to be constructed once and injected into whatever
// consumes it; there is no ambient global state.
//
// All access happens on the single foreground flow in response to
// discrete user actions, so the manager takes no locks.
type Manager struct {
	store   *Store
	current *Session
	logger  zerolog.Logger
}

// NewManager creates a session manager backed by the given store
func NewManager(store *Store, logger zerolog.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
	}
}

// Register creates a new account and establishes a session for it
// (auto-login). Validation order is fixed and the first failure wins:
// password mismatch, then password length, then duplicate email.
func (m *Manager) Register(email, password, confirmPassword string) (Session, error) {
	if password != confirmPassword {
		return Session{}, ErrPasswordMismatch
	}

	if len(password) < MinPasswordLength {
		return Session{}, ErrPasswordTooShort
	}

	accounts, err := m.store.LoadAccounts()
	if err != nil {
		return Session{}, err
	}

	for _, account := range accounts {
		if account.Email == email {
			return Session{}, ErrEmailTaken
		}
	}

	accounts = append(accounts, Account{Email: email, Password: password})
	if err := m.store.SaveAccounts(accounts); err != nil {
		return Session{}, err
	}

	m.logger.Info().Str("email", email).Msg("Account registered")
	return m.establish(email)
}

// Login authenticates against the stored accounts. Matching is exact
// string equality on both fields: no trimming, no case folding. Any
// non-match yields ErrInvalidCredentials.
func (m *Manager) Login(email, password string) (Session, error) {
	accounts, err := m.store.LoadAccounts()
	if err != nil {
		return Session{}, err
	}

	for _, account := range accounts {
		if account.Email == email && account.Password == password {
			return m.establish(email)
		}
	}

	return Session{}, ErrInvalidCredentials
}

// Restore loads a previously persisted session at startup. The session
// is returned as-is without re-validating against the account set.
func (m *Manager) Restore() (Session, bool, error) {
	sess, ok, err := m.store.LoadSession()
	if err != nil {
		return Session{}, false, err
	}
	if !ok {
		return Session{}, false, nil
	}

	m.current = &sess
	m.logger.Debug().Str("email", sess.Email).Msg("Session restored")
	return sess, true, nil
}

// Logout clears the in-memory and persisted session. Idempotent.
func (m *Manager) Logout() error {
	m.current = nil
	return m.store.ClearSession()
}

// Current returns the active session, if any
func (m *Manager) Current() (Session, bool) {
	if m.current == nil {
		return Session{}, false
	}
	return *m.current, true
}

// IsAuthenticated reports whether a session is active
func (m *Manager) IsAuthenticated() bool {
	return m.current != nil
}

// establish records and persists a session for email
func (m *Manager) establish(email string) (Session, error) {
	sess := Session{Email: email}
	if err := m.store.SaveSession(sess); err != nil {
		return Session{}, err
	}

	m.current = &sess
	m.logger.Debug().Str("email", email).Msg("Session established")
	return sess, nil
}
