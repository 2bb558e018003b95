package utils

import "time"

// CalculateReservationPrice implements the ceiling-to-the-hour billing rule
// with a one-hour minimum: a reservation of sixty minutes or less costs the
// flat fare rate; anything longer is billed per started hour.
//
// The caller guarantees start < end; the result is compared against the
// client-supplied price using exact equality, so the arithmetic here must
// stay in whole-hour multiples of the rate.
func CalculateReservationPrice(ratePerHour float64, start, end time.Time) float64 {
	minutes := int64(end.Sub(start) / time.Minute)
	if minutes <= 60 {
		return ratePerHour
	}
	wholeHours := minutes / 60
	if minutes%60 != 0 {
		return float64(wholeHours+1) * ratePerHour
	}
	return float64(wholeHours) * ratePerHour
}

// PadReservationWindow widens a [start, end) interval by the guard band used
// for conflict detection, giving staff time to return, clean and hand over a
// vehicle between rentals.
const GuardBand = 30 * time.Minute

func PadReservationWindow(start, end time.Time) (time.Time, time.Time) {
	return start.Add(-GuardBand), end.Add(GuardBand)
}
