package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"fastlane-backend/internal/service"
)

type FareTypeHandler struct {
	fareTypes service.FareTypeService
	states    service.ReservationStateService
}

func NewFareTypeHandler(fareTypes service.FareTypeService, states service.ReservationStateService) *FareTypeHandler {
	return &FareTypeHandler{fareTypes: fareTypes, states: states}
}

func (h *FareTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	fareTypes, err := h.fareTypes.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fareTypes)
}

func (h *FareTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	fareType, err := h.fareTypes.FindByName(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fareType)
}

func (h *FareTypeHandler) ListStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.states.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, states)
}
