package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"fastlane-backend/internal/apperrors"
	"fastlane-backend/internal/service"
)

type DriverHandler struct {
	drivers service.DriverService
}

func NewDriverHandler(drivers service.DriverService) *DriverHandler {
	return &DriverHandler{drivers: drivers}
}

func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.drivers.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, drivers)
}

func (h *DriverHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	driver, err := h.drivers.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, driver)
}

func (h *DriverHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	caller := callerFromContext(r.Context())
	if caller.IsMember() && caller.UserID != userID {
		writeError(w, apperrors.New(apperrors.AccessDenied))
		return
	}
	driver, err := h.drivers.FindByUserID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, driver)
}

// Exists lets signup forms check whether a license id is already registered
// without authenticating.
func (h *DriverHandler) Exists(w http.ResponseWriter, r *http.Request) {
	if err := h.drivers.EnsureLicenseFree(r.Context(), mux.Vars(r)["licenseId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *DriverHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req service.DriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.New(apperrors.BadRequest))
		return
	}
	driver, err := h.drivers.Update(r.Context(), callerFromContext(r.Context()), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, driver)
}
