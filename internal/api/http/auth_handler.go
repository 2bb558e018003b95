package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"fastlane-backend/internal/apperrors"
	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/service"
)

type AuthHandler struct {
	auth         service.AuthService
	registration service.RegistrationService
}

func NewAuthHandler(auth service.AuthService, registration service.RegistrationService) *AuthHandler {
	return &AuthHandler{auth: auth, registration: registration}
}

type authResponse struct {
	AccountID   int64              `json:"accountId"`
	Email       string             `json:"email"`
	AccountType domain.AccountType `json:"accountType"`
	AccessToken string             `json:"accessToken"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.New(apperrors.AccessDenied))
		return
	}
	var email, password string
	if req.Email != nil {
		email = *req.Email
	}
	if req.Password != nil {
		password = *req.Password
	}
	account, token, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{
		AccountID:   account.ID,
		Email:       account.Email,
		AccountType: account.AccountType,
		AccessToken: token,
	})
}

func (h *AuthHandler) RegisterMember(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, true)
}

// RegisterEmployee mints staff accounts, which is why only admins may call it.
func (h *AuthHandler) RegisterEmployee(w http.ResponseWriter, r *http.Request) {
	if !callerFromContext(r.Context()).IsAdmin() {
		writeError(w, apperrors.New(apperrors.AccessDenied))
		return
	}
	h.register(w, r, false)
}

// Logout revokes the presented bearer token. The authenticate middleware has
// already vouched for its presence and validity.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := h.auth.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request, isMember bool) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.New(apperrors.BadRequest))
		return
	}
	account, token, err := h.registration.Register(r.Context(), &req, isMember)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{
		AccountID:   account.ID,
		Email:       account.Email,
		AccountType: account.AccountType,
		AccessToken: token,
	})
}
