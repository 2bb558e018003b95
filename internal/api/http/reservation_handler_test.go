package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fastlane-backend/internal/apperrors"
	"fastlane-backend/internal/domain"
	"fastlane-backend/internal/security"
)

func newReservationRouter(svc *MockReservationService) *mux.Router {
	handler := NewReservationHandler(svc)
	router := mux.NewRouter()
	router.HandleFunc("/reservation", handler.Create).Methods(http.MethodPost)
	router.HandleFunc("/reservation/{id:[0-9]+}", handler.Get).Methods(http.MethodGet)
	router.HandleFunc("/reservation/{id:[0-9]+}", handler.Cancel).Methods(http.MethodDelete)
	return router
}

func TestReservationHandler_Create(t *testing.T) {
	body := `{
		"vehicleId": 4,
		"driverId": 7,
		"price": 30,
		"currencyCode": "EUR",
		"startDateTime": "2026-09-01T10:00:00",
		"endDateTime": "2026-09-01T12:00:00",
		"reservationState": "UNPAID"
	}`

	t.Run("Success", func(t *testing.T) {
		svc := new(MockReservationService)
		router := newReservationRouter(svc)

		created := &domain.Reservation{
			ID:            42,
			VehicleID:     4,
			DriverID:      7,
			Price:         30,
			CurrencyCode:  "EUR",
			StartDateTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			EndDateTime:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
			State:         domain.ReservationState{ID: 1, Name: domain.StateUnpaid},
		}
		svc.On("Create", mock.Anything, security.Caller{}, mock.Anything).Return(created, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/reservation", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got domain.Reservation
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, int64(42), got.ID)
		svc.AssertExpectations(t)
	})

	t.Run("ConflictBodyCarriesTheErrorCode", func(t *testing.T) {
		svc := new(MockReservationService)
		router := newReservationRouter(svc)

		svc.On("Create", mock.Anything, security.Caller{}, mock.Anything).
			Return(nil, apperrors.New(apperrors.VehicleAlreadyReserved, int64(4), "2026-09-01T10:00:00", "2026-09-01T12:00:00")).Once()

		req := httptest.NewRequest(http.MethodPost, "/reservation", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		var errBody struct {
			Code        int    `json:"code"`
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&errBody))
		assert.Equal(t, 9007, errBody.Code)
		assert.Equal(t, "VEHICLE_ALREADY_RESERVED", errBody.Name)
		assert.Contains(t, errBody.Description, "4")
		svc.AssertExpectations(t)
	})

	t.Run("MalformedBodyIsABadRequest", func(t *testing.T) {
		svc := new(MockReservationService)
		router := newReservationRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/reservation", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReservationHandler_Get(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockReservationService)
		router := newReservationRouter(svc)

		svc.On("FindByID", mock.Anything, int64(9)).
			Return(nil, apperrors.New(apperrors.ReservationNotFound, int64(9))).Once()

		req := httptest.NewRequest(http.MethodGet, "/reservation/9", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		svc.AssertExpectations(t)
	})
}

func TestReservationHandler_Cancel(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockReservationService)
		router := newReservationRouter(svc)

		svc.On("Cancel", mock.Anything, security.Caller{}, int64(9)).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/reservation/9", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		svc.AssertExpectations(t)
	})
}
