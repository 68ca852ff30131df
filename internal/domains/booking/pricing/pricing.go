// Package pricing quotes a stay from the nightly rate and the date range.
package pricing

import (
	"math"
	"time"

	"riviera/shared/failure"
)

// TaxRate is the flat tax applied on the room subtotal.
const TaxRate = 0.12

type Quote struct {
	Nights   int     `json:"nights"`
	Rate     float64 `json:"rate"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Compute derives the quote for a stay. Nights are counted as calendar
// nights, rounding a partial last day up, so checking out later in the day
// never shortens the stay.
func Compute(rate float64, checkIn, checkOut time.Time) (Quote, error) {
	if !checkOut.After(checkIn) {
		return Quote{}, failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	if rate < 0 {
		return Quote{}, failure.BadRequestFromString("rate must not be negative") // nolint:wrapcheck
	}

	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	subtotal := rate * float64(nights)
	tax := math.Round(TaxRate * subtotal)

	return Quote{
		Nights:   nights,
		Rate:     rate,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}, nil
}
