package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fastlane-backend/internal/apperrors"
	"fastlane-backend/internal/domain"
)

func newAccountRouter(svc *MockAccountService) *mux.Router {
	handler := NewAccountHandler(svc)
	router := mux.NewRouter()
	router.HandleFunc("/account", handler.List).Methods(http.MethodGet)
	router.HandleFunc("/account/id/{id:[0-9]+}", handler.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/account/email/{email}", handler.GetByEmail).Methods(http.MethodGet)
	router.HandleFunc("/account/{id:[0-9]+}", handler.Delete).Methods(http.MethodDelete)
	return router
}

func TestAccountHandler_List(t *testing.T) {
	t.Run("StaffSeesAllAccounts", func(t *testing.T) {
		svc := new(MockAccountService)
		router := newAccountRouter(svc)
		svc.On("FindAll", mock.Anything).Return([]domain.Account{{ID: 5}}, nil).Once()

		req := withCaller(httptest.NewRequest(http.MethodGet, "/account", nil), employeeCaller)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("MemberCannotEnumerateAccounts", func(t *testing.T) {
		svc := new(MockAccountService)
		router := newAccountRouter(svc)

		req := withCaller(httptest.NewRequest(http.MethodGet, "/account", nil), memberCaller)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "FindAll", mock.Anything)
	})
}

func TestAccountHandler_GetByID(t *testing.T) {
	t.Run("MemberReadsOwnAccount", func(t *testing.T) {
		svc := new(MockAccountService)
		router := newAccountRouter(svc)
		svc.On("FindByID", mock.Anything, int64(5)).
			Return(&domain.Account{ID: 5, UserID: 3}, nil).Once()

		req := withCaller(httptest.NewRequest(http.MethodGet, "/account/id/5", nil), memberCaller)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("MemberCannotReadForeignAccount", func(t *testing.T) {
		svc := new(MockAccountService)
		router := newAccountRouter(svc)
		svc.On("FindByID", mock.Anything, int64(9)).
			Return(&domain.Account{ID: 9, UserID: 42}, nil).Once()

		req := withCaller(httptest.NewRequest(http.MethodGet, "/account/id/9", nil), memberCaller)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertExpectations(t)
	})
}

func TestAccountHandler_GetByEmail(t *testing.T) {
	t.Run("MemberCannotLookUpByEmail", func(t *testing.T) {
		svc := new(MockAccountService)
		router := newAccountRouter(svc)

		req := withCaller(httptest.NewRequest(http.MethodGet, "/account/email/jane@example.com", nil), memberCaller)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}

func TestAccountHandler_Delete(t *testing.T) {
	t.Run("CallerIsForwardedToTheService", func(t *testing.T) {
		svc := new(MockAccountService)
		router := newAccountRouter(svc)
		svc.On("Delete", mock.Anything, memberCaller, int64(5)).Return(nil).Once()

		req := withCaller(httptest.NewRequest(http.MethodDelete, "/account/5", nil), memberCaller)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("ServiceDenialPassesThrough", func(t *testing.T) {
		svc := new(MockAccountService)
		router := newAccountRouter(svc)
		svc.On("Delete", mock.Anything, memberCaller, int64(9)).
			Return(apperrors.New(apperrors.AccessDenied)).Once()

		req := withCaller(httptest.NewRequest(http.MethodDelete, "/account/9", nil), memberCaller)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertExpectations(t)
	})
}
