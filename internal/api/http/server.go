package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fastlane-backend/internal/repository"
	"fastlane-backend/internal/security"
	"fastlane-backend/internal/service"
)

// Server is the HTTP front of the rental back office. Public routes cover
// login, member signup, vehicle browsing and reservation reads; everything
// else requires a bearer token.
type Server struct {
	httpServer *http.Server
}

type Services struct {
	Auth         service.AuthService
	Registration service.RegistrationService
	Accounts     service.AccountService
	Drivers      service.DriverService
	Vehicles     service.VehicleService
	FareTypes    service.FareTypeService
	States       service.ReservationStateService
	Reservations service.ReservationService
}

func NewServer(addr string, db *sql.DB, tokens security.TokenManager, sessions repository.TokenRepository, svcs Services) *Server {
	router := mux.NewRouter()
	router.Use(recoverPanics, requestLogging)

	authHandler := NewAuthHandler(svcs.Auth, svcs.Registration)
	accountHandler := NewAccountHandler(svcs.Accounts)
	driverHandler := NewDriverHandler(svcs.Drivers)
	vehicleHandler := NewVehicleHandler(svcs.Vehicles)
	fareTypeHandler := NewFareTypeHandler(svcs.FareTypes, svcs.States)
	reservationHandler := NewReservationHandler(svcs.Reservations)
	healthHandler := NewHealthHandler(db)

	// Routes open to anonymous callers.
	router.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	router.HandleFunc("/register/member", authHandler.RegisterMember).Methods(http.MethodPost)
	router.HandleFunc("/health/ping", healthHandler.Ping).Methods(http.MethodGet)
	router.HandleFunc("/health/database", healthHandler.Database).Methods(http.MethodGet)
	router.HandleFunc("/vehicle", vehicleHandler.List).Methods(http.MethodGet)
	router.HandleFunc("/vehicle/{id:[0-9]+}", vehicleHandler.Get).Methods(http.MethodGet)
	router.HandleFunc("/reservation", reservationHandler.List).Methods(http.MethodGet)
	router.HandleFunc("/reservation/{id:[0-9]+}", reservationHandler.Get).Methods(http.MethodGet)
	router.HandleFunc("/reservation/driver/{driverId:[0-9]+}", reservationHandler.ListByDriver).Methods(http.MethodGet)
	router.HandleFunc("/reservation/vehicle/{vehicleId:[0-9]+}", reservationHandler.ListByVehicle).Methods(http.MethodGet)
	router.HandleFunc("/driver/exist/{licenseId}", driverHandler.Exists).Methods(http.MethodGet)
	router.HandleFunc("/account/exist/{email}", accountHandler.Exists).Methods(http.MethodGet)
	router.HandleFunc("/faretype", fareTypeHandler.List).Methods(http.MethodGet)
	router.HandleFunc("/faretype/{name}", fareTypeHandler.Get).Methods(http.MethodGet)
	router.HandleFunc("/reservationstate", fareTypeHandler.ListStates).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Everything below carries a bearer token. Role narrowing happens in the
	// handlers and services: fleet and account administration is staff-only,
	// employee registration admin-only, and members are pinned to their own
	// records.
	protected := router.NewRoute().Subrouter()
	protected.Use(authenticate(tokens, sessions))
	protected.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/register/employee", authHandler.RegisterEmployee).Methods(http.MethodPost)
	protected.HandleFunc("/account", accountHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/account/id/{id:[0-9]+}", accountHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/account/email/{email}", accountHandler.GetByEmail).Methods(http.MethodGet)
	protected.HandleFunc("/account/{id:[0-9]+}", accountHandler.Patch).Methods(http.MethodPatch)
	protected.HandleFunc("/account/{id:[0-9]+}", accountHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/driver", driverHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/driver/{id:[0-9]+}", driverHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/driver/user/{userId:[0-9]+}", driverHandler.GetByUser).Methods(http.MethodGet)
	protected.HandleFunc("/driver/{id:[0-9]+}", driverHandler.Patch).Methods(http.MethodPatch)
	protected.HandleFunc("/vehicle", vehicleHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/vehicle/{id:[0-9]+}", vehicleHandler.Patch).Methods(http.MethodPatch)
	protected.HandleFunc("/vehicle/{id:[0-9]+}", vehicleHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/reservation", reservationHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/reservation/{id:[0-9]+}", reservationHandler.Patch).Methods(http.MethodPatch)
	protected.HandleFunc("/reservation/{id:[0-9]+}", reservationHandler.Cancel).Methods(http.MethodDelete)

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
