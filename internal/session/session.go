// Package session holds the transient UI session state: the admin flag, the
// edit-mode flag, and the login-dialog state. Nothing here is ever persisted;
// a fresh process starts as a guest in viewing mode.
package session

import (
	"sync"
)

// ErrInvalidPassword indicates the submitted password did not match the
// configured admin secret.
type ErrInvalidPassword struct{}

func (e *ErrInvalidPassword) Error() string {
	return "incorrect password"
}

// Verifier checks a submitted password against the configured admin secret.
// config.Config implements it.
type Verifier interface {
	VerifyAdminPassword(password string) bool
}

// State is a snapshot of the session flags.
type State struct {
	IsAdmin   bool `json:"isAdmin"`
	IsEditing bool `json:"isEditing"`
	ShowLogin bool `json:"showLogin"`
}

// Manager owns the session state machine. Two orthogonal axes: guest/admin
// (crossed only by a correct password) and viewing/editing (toggled freely by
// the admin, forced back to viewing on logout). The login dialog is reachable
// only from guest.
type Manager struct {
	mu            sync.Mutex
	verifier      Verifier
	isAdmin       bool
	isEditing     bool
	showLogin     bool
	passwordInput string
}

// NewManager creates a session manager starting as a guest in viewing mode.
func NewManager(verifier Verifier) *Manager {
	return &Manager{verifier: verifier}
}

// State returns a snapshot of the current flags.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return State{
		IsAdmin:   m.isAdmin,
		IsEditing: m.isEditing,
		ShowLogin: m.showLogin,
	}
}

// RequestLogin shows the login dialog. Guest-only; a no-op for an admin.
func (m *Manager) RequestLogin() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.isAdmin {
		return
	}
	m.showLogin = true
}

// CancelLogin hides the login dialog without changing the admin axis.
func (m *Manager) CancelLogin() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.showLogin = false
	m.passwordInput = ""
}

// SubmitLogin compares the password against the admin secret. On a match the
// session becomes admin with editing enabled and the dialog closes. On a
// mismatch the state is left unchanged: the dialog stays open and the entered
// password is kept for manual re-entry.
func (m *Manager) SubmitLogin(password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.passwordInput = password
	if !m.verifier.VerifyAdminPassword(password) {
		return &ErrInvalidPassword{}
	}

	m.isAdmin = true
	m.isEditing = true
	m.showLogin = false
	m.passwordInput = ""
	return nil
}

// ToggleEditing flips the editing flag. Admin-only; a no-op for a guest.
// It reports whether editing is enabled after the call.
func (m *Manager) ToggleEditing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.isAdmin {
		return false
	}
	m.isEditing = !m.isEditing
	return m.isEditing
}

// Logout clears the admin and editing flags and any entered password. The
// dialog stays hidden.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isAdmin = false
	m.isEditing = false
	m.passwordInput = ""
}

// PasswordInput returns the retained login input. Exposed so the login form
// can re-render the previous entry after a failed attempt.
func (m *Manager) PasswordInput() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.passwordInput
}
