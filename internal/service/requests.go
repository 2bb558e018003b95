package service

import (
	"strings"
	"unicode"

	"fastlane-backend/internal/apperrors"
	"fastlane-backend/internal/domain"
)

// requestField is one validatable field of an inbound request. Each request
// type lists its fields in declaration order so that validation errors always
// name the first offending field.
type requestField struct {
	name     string
	set      bool
	str      string
	isStr    bool
	password bool
}

func stringField(name string, v *string) requestField {
	f := requestField{name: name, isStr: true}
	if v != nil {
		f.set = true
		f.str = *v
	}
	return f
}

func passwordField(name string, v *string) requestField {
	f := stringField(name, v)
	f.password = true
	return f
}

func int64Field(name string, v *int64) requestField {
	return requestField{name: name, set: v != nil}
}

func intField(name string, v *int) requestField {
	return requestField{name: name, set: v != nil}
}

func float64Field(name string, v *float64) requestField {
	return requestField{name: name, set: v != nil}
}

func dateTimeField(name string, v *domain.LocalDateTime) requestField {
	return requestField{name: name, set: v != nil}
}

// validateFieldsNotBlank rejects provided-but-blank string values. Absent
// fields pass, which makes it the check for partial updates.
func validateFieldsNotBlank(fields []requestField) error {
	for _, f := range fields {
		if f.set && f.isStr && strings.TrimSpace(f.str) == "" {
			return apperrors.New(apperrors.BlankField, f.name)
		}
	}
	return nil
}

// validateFieldsNotNullOrBlank requires every field to be present and
// non-blank. Password fields additionally have to satisfy the password
// policy.
func validateFieldsNotNullOrBlank(fields []requestField) error {
	for _, f := range fields {
		if !f.set {
			if f.password {
				return apperrors.New(apperrors.PasswordInadequate)
			}
			return apperrors.New(apperrors.UnsetField, f.name)
		}
		if f.isStr && strings.TrimSpace(f.str) == "" {
			return apperrors.New(apperrors.BlankField, f.name)
		}
		if f.password && !passwordMeetsPolicy(f.str) {
			return apperrors.New(apperrors.PasswordInadequate)
		}
	}
	return nil
}

// passwordMeetsPolicy requires at least 8 characters with a lowercase letter,
// an uppercase letter, a digit and a symbol.
func passwordMeetsPolicy(password string) bool {
	if len(password) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

type ReservationRequest struct {
	VehicleID        *int64                `json:"vehicleId"`
	DriverID         *int64                `json:"driverId"`
	Price            *float64              `json:"price"`
	CurrencyCode     *string               `json:"currencyCode"`
	StartDateTime    *domain.LocalDateTime `json:"startDateTime"`
	EndDateTime      *domain.LocalDateTime `json:"endDateTime"`
	ReservationState *string               `json:"reservationState"`
}

func (r *ReservationRequest) fields() []requestField {
	return []requestField{
		int64Field("vehicleId", r.VehicleID),
		int64Field("driverId", r.DriverID),
		float64Field("price", r.Price),
		stringField("currencyCode", r.CurrencyCode),
		dateTimeField("startDateTime", r.StartDateTime),
		dateTimeField("endDateTime", r.EndDateTime),
		stringField("reservationState", r.ReservationState),
	}
}

type AccountRequest struct {
	AccountType *string `json:"accountType"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	Phone       *string `json:"phone"`
}

func (r *AccountRequest) fields() []requestField {
	return []requestField{
		stringField("accountType", r.AccountType),
		stringField("email", r.Email),
		passwordField("password", r.Password),
		stringField("phone", r.Phone),
	}
}

type DriverRequest struct {
	LicenseID    *string `json:"licenseId"`
	UserID       *int64  `json:"userId"`
	FareTypeName *string `json:"fareTypeName"`
}

func (r *DriverRequest) fields() []requestField {
	return []requestField{
		stringField("licenseId", r.LicenseID),
		int64Field("userId", r.UserID),
		stringField("fareTypeName", r.FareTypeName),
	}
}

type VehicleRequest struct {
	NumberPlate      *string `json:"numberPlate"`
	Brand            *string `json:"brand"`
	Model            *string `json:"model"`
	Category         *string `json:"category"`
	Transmission     *string `json:"transmission"`
	Fuel             *string `json:"fuel"`
	ConstructionYear *int    `json:"constructionYear"`
	Mileage          *int64  `json:"mileage"`
}

func (r *VehicleRequest) fields() []requestField {
	return []requestField{
		stringField("numberPlate", r.NumberPlate),
		stringField("brand", r.Brand),
		stringField("model", r.Model),
		stringField("category", r.Category),
		stringField("transmission", r.Transmission),
		stringField("fuel", r.Fuel),
		intField("constructionYear", r.ConstructionYear),
		int64Field("mileage", r.Mileage),
	}
}

type RegisterRequest struct {
	ID           *string `json:"id"`
	TypeName     *string `json:"typeName"`
	Email        *string `json:"email"`
	Password     *string `json:"password"`
	Phone        *string `json:"phone"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	DateOfBirth  *string `json:"dateOfBirth"`
	PlaceOfBirth *string `json:"placeOfBirth"`
	Street       *string `json:"street"`
	PostalCode   *string `json:"postalCode"`
	City         *string `json:"city"`
	CountryCode  *string `json:"countryCode"`
}

func (r *RegisterRequest) fields() []requestField {
	return []requestField{
		stringField("id", r.ID),
		stringField("typeName", r.TypeName),
		stringField("email", r.Email),
		passwordField("password", r.Password),
		stringField("phone", r.Phone),
		stringField("firstName", r.FirstName),
		stringField("lastName", r.LastName),
		stringField("dateOfBirth", r.DateOfBirth),
		stringField("placeOfBirth", r.PlaceOfBirth),
		stringField("street", r.Street),
		stringField("postalCode", r.PostalCode),
		stringField("city", r.City),
		stringField("countryCode", r.CountryCode),
	}
}

type LoginRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Validate deliberately collapses every shortcoming of a login request into
// an opaque access-denied error so the endpoint leaks nothing about accounts
// or password rules.
func (r *LoginRequest) Validate() error {
	for _, f := range []requestField{
		stringField("email", r.Email),
		passwordField("password", r.Password),
	} {
		if !f.set || strings.TrimSpace(f.str) == "" {
			return apperrors.New(apperrors.AccessDenied)
		}
		if f.password && !passwordMeetsPolicy(f.str) {
			return apperrors.New(apperrors.AccessDenied)
		}
	}
	return nil
}
