package server

import (
	"encoding/json"
	"net/http"
)

// LoginRequest is the login dialog submission.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session token and resulting session state.
type LoginResponse struct {
	Token   string `json:"token"`
	Session any    `json:"session"`
}

// handleRequestLogin shows the login dialog. Guest-only; a no-op for an
// admin session.
func (s *Server) handleRequestLogin(w http.ResponseWriter, _ *http.Request) {
	s.sessions.RequestLogin()
	s.jsonResponse(w, http.StatusOK, s.sessions.State())
}

// handleCancelLogin hides the login dialog without logging in.
func (s *Server) handleCancelLogin(w http.ResponseWriter, _ *http.Request) {
	s.sessions.CancelLogin()
	s.jsonResponse(w, http.StatusOK, s.sessions.State())
}

// handleLogin submits the dialog password. On a match the response carries a
// bearer token for the mutation routes; on a mismatch the dialog stays open
// and the 401 body tells the owner to re-enter the password.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Password is required")
		return
	}

	if err := s.sessions.SubmitLogin(req.Password); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Incorrect password.")
		return
	}

	token, err := s.jwtService.GenerateToken()
	if err != nil {
		// Token generation failed after a correct password; do not leave the
		// session half logged in.
		s.sessions.Logout()
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusOK, LoginResponse{
		Token:   token,
		Session: s.sessions.State(),
	})
}

// handleLogout drops the admin and editing flags; outstanding tokens stop
// working immediately.
func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	s.sessions.Logout()
	s.jsonResponse(w, http.StatusOK, s.sessions.State())
}

// handleToggleEditing flips the editing flag for the admin session.
func (s *Server) handleToggleEditing(w http.ResponseWriter, _ *http.Request) {
	s.sessions.ToggleEditing()
	s.jsonResponse(w, http.StatusOK, s.sessions.State())
}

// handleGetSession returns the current session flags.
func (s *Server) handleGetSession(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.sessions.State())
}
