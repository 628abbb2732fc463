package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andrisk/realhub/internal/common"
	"github.com/andrisk/realhub/internal/server/models"
)

type errorResponse struct {
	Message string `json:"message"`
}

type accountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string `json:"token"`
}

type oauthURLResponse struct {
	URL string `json:"url"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrSessionExpired):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, common.ErrorEmailTaken):
		writeError(w, http.StatusConflict, common.ErrorEmailTaken.Error())
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, common.ErrorNotFound.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func toAccountResponse(a *models.Account) accountResponse {
	return accountResponse{ID: a.ID, Name: a.Name, Email: a.Email, Phone: a.Phone}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	account, err := s.accountService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponse(account))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := s.accountService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Token: token})
}

func (s *Server) handleCurrentAccount(w http.ResponseWriter, r *http.Request) {
	account, err := s.accountService.CurrentAccount(r.Context(), tokenFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.accountService.Logout(r.Context(), tokenFromContext(r.Context())); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGoogleOAuthURL(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, oauthURLResponse{URL: s.accountService.GoogleOAuthURL()})
}
