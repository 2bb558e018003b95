package domain

import "time"

// User is the person record behind accounts, drivers and employees. One user
// may hold several accounts (e.g. a member who is also an employee), but at
// most one driver record and one employee record.
type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	DateOfBirth  time.Time `json:"dateOfBirth"`
	PlaceOfBirth string    `json:"placeOfBirth"`
	Street       string    `json:"street"`
	PostalCode   string    `json:"postalCode"`
	City         string    `json:"city"`
	CountryCode  string    `json:"countryCode"`
}

type Employee struct {
	ID     string `json:"id"`
	UserID int64  `json:"userId"`
}
