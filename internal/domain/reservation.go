package domain

import "time"

// Reservation states the engine treats specially. States are open-ended named
// tags resolved from the reservation_states table, never invented inline;
// these three names carry meaning for cancellation and account deletion.
const (
	StateCanceled = "CANCELED"
	StatePaid     = "PAID"
	StateUnpaid   = "UNPAID"
)

type ReservationState struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// IsSettled reports whether a reservation in this state stops blocking
// deletion of its driver's account.
func (s ReservationState) IsSettled() bool {
	return s.Name == StatePaid || s.Name == StateCanceled
}

// Reservation binds a driver to a vehicle for a [start, end) interval at a
// fixed price. Vehicle, driver, price, currency and the interval are immutable
// after creation; only the state may be reassigned.
type Reservation struct {
	ID            int64            `json:"id"`
	VehicleID     int64            `json:"vehicleId"`
	DriverID      int64            `json:"driverId"`
	Price         float64          `json:"price"`
	CurrencyCode  string           `json:"currencyCode"`
	StartDateTime time.Time        `json:"startDateTime"`
	EndDateTime   time.Time        `json:"endDateTime"`
	State         ReservationState `json:"reservationState"`
}
