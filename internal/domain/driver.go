package domain

// Driver links a person to a billing rate. The license id is globally unique.
type Driver struct {
	ID        int64  `json:"id"`
	LicenseID string `json:"licenseId"`
	UserID    int64  `json:"userId"`
	FareType  string `json:"fareType"`
}

// FareType is a billing tier: a flat price per started hour.
type FareType struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
