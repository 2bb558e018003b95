package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"fastlane-backend/internal/apperrors"
	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/service"
)

type AccountHandler struct {
	accounts service.AccountService
}

func NewAccountHandler(accounts service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	if !staffOnly(w, r) {
		return
	}
	accounts, err := h.accounts.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

// GetByID lets staff read any account; members only reach their own.
func (h *AccountHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	account, err := h.accounts.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	caller := callerFromContext(r.Context())
	if caller.IsMember() && account.UserID != caller.UserID {
		writeError(w, apperrors.New(apperrors.AccessDenied))
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	if !staffOnly(w, r) {
		return
	}
	account, err := h.accounts.FindByEmail(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// Exists reports whether an email is free to register. It answers 200 with a
// conflict error body when taken, so signup forms can check without auth.
func (h *AccountHandler) Exists(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	_, err := h.accounts.FindByEmail(r.Context(), email)
	if err == nil {
		writeError(w, apperrors.New(apperrors.EmailInUse, email))
		return
	}
	if !apperrors.IsKind(err, apperrors.AccountNotFound) {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

type updateAccountResponse struct {
	*domain.Account
	AccessToken string `json:"accessToken,omitempty"`
}

func (h *AccountHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req service.AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.New(apperrors.BadRequest))
		return
	}
	account, token, err := h.accounts.Update(r.Context(), callerFromContext(r.Context()), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updateAccountResponse{Account: account, AccessToken: token})
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.accounts.Delete(r.Context(), callerFromContext(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
