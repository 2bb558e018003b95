package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind identifies a class of domain error with a stable numeric code, a
// symbolic name and a templated description. Every validation, lookup and
// authorization failure in the system maps onto exactly one Kind.
type Kind struct {
	Code       int
	Name       string
	HTTPStatus int
	template   string
}

var (
	AccountNotFound          = Kind{1001, "ACCOUNT_NOT_FOUND", http.StatusNotFound, "No account found for id/email: %v"}
	UserNotFound             = Kind{1002, "USER_NOT_FOUND", http.StatusNotFound, "No user found for id: %v"}
	DriverNotFound           = Kind{1003, "DRIVER_NOT_FOUND", http.StatusNotFound, "No driver found for id: %v"}
	EmployeeNotFound         = Kind{1004, "EMPLOYEE_NOT_FOUND", http.StatusNotFound, "No employee found for id: %v"}
	ReservationNotFound      = Kind{1005, "RESERVATION_NOT_FOUND", http.StatusNotFound, "No reservation found for id: %v"}
	ReservationStateNotFound = Kind{1006, "RESERVATION_STATE_NOT_FOUND", http.StatusNotFound, "No reservation state found for name: %v"}
	VehicleNotFound          = Kind{1007, "VEHICLE_NOT_FOUND", http.StatusNotFound, "No vehicle found for id: %v"}
	AccountTypeNotFound      = Kind{1014, "ACCOUNT_TYPE_NOT_FOUND", http.StatusNotFound, "No account type found for account type name: %v"}
	FareTypeNotFound         = Kind{1015, "FARE_TYPE_NOT_FOUND", http.StatusNotFound, "No fare type found for fare type name: %v"}

	Unauthorized       = Kind{7001, "UNAUTHORIZED", http.StatusUnauthorized, "Invalid credentials"}
	PasswordInadequate = Kind{7002, "PASSWORD_INADEQUATE", http.StatusBadRequest, "Password does not meet the requirements"}
	// AccessDenied is deliberately opaque: it never carries resource details so
	// an authorization failure cannot be told apart from absence by probing.
	AccessDenied = Kind{7003, "ACCESS_DENIED", http.StatusUnauthorized, "Access denied"}

	DriverLicenseInUse      = Kind{9001, "DRIVER_LICENSE_ALREADY_IN_USE", http.StatusConflict, "Provided drivers license id is already in use: %v"}
	EmailInUse              = Kind{9002, "EMAIL_ADDRESS_ALREADY_IN_USE", http.StatusConflict, "Provided email address is already in use: %v"}
	AccountTypeUsedTwice    = Kind{9003, "ACCOUNT_TYPE_USED_TWICE", http.StatusConflict, "Account type '%v' already exists for user with id: %v"}
	AccountTypeConflict     = Kind{9004, "ACCOUNT_TYPE_CONFLICT", http.StatusConflict, "User with id: %v cannot have both an Employee and Admin account concurrently"}
	EmployeeAlreadyExists   = Kind{9005, "EMPLOYEE_ALREADY_EXIST", http.StatusConflict, "Employee with id: '%v' already exists"}
	NumberPlateAlreadyUsed  = Kind{9006, "VEHICLE_NUMBER_PLATE_ALREADY_EXIST", http.StatusConflict, "Vehicle with number plate: %v already exists"}
	VehicleAlreadyReserved  = Kind{9007, "VEHICLE_ALREADY_RESERVED", http.StatusConflict, "Vehicle with id: %v has already been reserved between: %v and: %v"}
	InvalidPeriod           = Kind{9008, "INVALID_PERIOD", http.StatusConflict, "Provided dates are not a proper period! start: %v, end: %v"}
	UnsetField              = Kind{9009, "UNSET_FIELD", http.StatusBadRequest, "Field '%v' must be set"}
	BlankField              = Kind{9010, "BLANK_FIELD", http.StatusBadRequest, "Field '%v' is blank"}
	PatchDriverForbidden    = Kind{9011, "PATCHING_DRIVER_IN_RESERVATION_FORBIDDEN", http.StatusForbidden, "Not allowed to patch driver of reservation"}
	PatchVehicleForbidden   = Kind{9012, "PATCHING_VEHICLE_IN_RESERVATION_FORBIDDEN", http.StatusForbidden, "Not allowed to patch vehicle of reservation"}
	PatchPriceForbidden     = Kind{9013, "PATCHING_PRICE_IN_RESERVATION_FORBIDDEN", http.StatusForbidden, "Not allowed to patch price of reservation"}
	PatchDatesForbidden     = Kind{9014, "PATCHING_DATES_IN_RESERVATION_FORBIDDEN", http.StatusForbidden, "Not allowed to patch dates of reservation"}
	PatchCurrencyForbidden  = Kind{9015, "PATCHING_CURRENCY_IN_RESERVATION_FORBIDDEN", http.StatusForbidden, "Not allowed to patch currency of reservation"}
	ReservationNotPaid      = Kind{9016, "RESERVATION_NOT_PAID", http.StatusForbidden, "Cannot delete account due to unpaid reservation with id: %v"}

	BadRequest = Kind{10001, "BAD_REQUEST", http.StatusBadRequest, "Bad request"}

	PriceMismatch = Kind{11001, "RESERVATION_PRICE_DOES_NOT_MATCH", http.StatusForbidden, "Given price: '%v' does not match the calculated price"}

	Unexpected = Kind{3676, "UNEXPECTED_ERROR", http.StatusInternalServerError, "Oops! Our system took an unscheduled coffee break..."}
)

// Error is a domain error instance: a Kind plus the interpolated description
// and the moment it was raised. All domain errors are caller-input problems
// and are never retried.
type Error struct {
	Kind        Kind
	Description string
	Timestamp   time.Time
	cause       error
}

// New builds an Error of the given Kind, interpolating args into the Kind's
// description template.
func New(kind Kind, args ...any) *Error {
	desc := kind.template
	if len(args) > 0 {
		desc = fmt.Sprintf(kind.template, args...)
	}
	return &Error{Kind: kind, Description: desc, Timestamp: time.Now()}
}

// Wrap is New with an underlying cause attached, used when a storage-layer
// failure surfaces as a domain error.
func Wrap(kind Kind, cause error, args ...any) *Error {
	e := New(kind, args...)
	e.cause = cause
	return e
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Kind.Name, e.Kind.Code, e.Description)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is makes errors.Is match two Errors of the same Kind regardless of the
// interpolated description.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind.Code == other.Kind.Code
}

// MarshalJSON renders the wire shape of a domain error: stable code, symbolic
// name, interpolated description and timestamp.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code        int       `json:"code"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Timestamp   time.Time `json:"timestamp"`
	}{e.Kind.Code, e.Kind.Name, e.Description, e.Timestamp})
}

// IsKind reports whether err is a domain error of the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind.Code == kind.Code
}

// From extracts the domain error from err, wrapping anything that is not one
// into the single generic Unexpected kind so callers always receive a
// uniformly shaped error body.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(Unexpected, err)
}
