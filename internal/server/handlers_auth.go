package server

import (
	"net/http"

	"github.com/jonathan/devfolio/internal/types"
)

// LoginPageResponse is what the login form needs to render.
type LoginPageResponse struct {
	Authenticated    bool   `json:"authenticated"`
	SecurityQuestion string `json:"security_question"`
}

// handleLoginPage returns the gate state and the recovery question.
func (s *Server) handleLoginPage(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, LoginPageResponse{
		Authenticated:    s.auth.Authenticated(),
		SecurityQuestion: s.auth.SecurityQuestion(),
	})
}

// handleLogin opens the admin gate when the password matches.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := s.auth.Login(persistCtx(r), req.Password); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"authenticated": true, "redirect": "/admin"})
}

// handleRecover resets the admin password via the security question. The
// caller still has to log in afterwards.
func (s *Server) handleRecover(w http.ResponseWriter, r *http.Request) {
	var req types.RecoveryRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := s.auth.Recover(persistCtx(r), req.Answer, req.NewPassword); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Password reset successfully. Please login with your new password.",
	})
}

// handleLogout closes the admin gate.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.Logout(persistCtx(r))
	s.jsonResponse(w, http.StatusOK, map[string]any{"authenticated": false, "redirect": "/"})
}

// handleChangePassword sets a new admin password from the dashboard.
func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req types.ChangePasswordRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := s.auth.ChangePassword(persistCtx(r), req.NewPassword); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Password updated"})
}

// handleUpdateSecurity replaces the recovery question and answer.
func (s *Server) handleUpdateSecurity(w http.ResponseWriter, r *http.Request) {
	var req types.SecuritySettingsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := s.auth.UpdateSecuritySettings(persistCtx(r), req.Question, req.Answer); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Security settings updated"})
}
