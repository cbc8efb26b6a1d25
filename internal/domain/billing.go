package domain

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidInterval is returned when the end of a billing interval precedes its start
var ErrInvalidInterval = errors.New("domain: end time precedes start time")

// ErrNegativeRate is returned when the hourly rate is negative
var ErrNegativeRate = errors.New("domain: hourly rate must be non-negative")

// CalculateAmount computes the charge for parking between start and end at
// the given hourly rate. Fractional hours are billed proportionally, not
// rounded up to whole hours; the result is rounded to 2 decimal places.
// A zero-length interval yields a zero charge, there is no minimum fee.
//
// An interval with end before start is rejected with ErrInvalidInterval
// rather than clamped to zero, so caller bugs surface instead of producing
// silent zero charges.
func CalculateAmount(start, end time.Time, hourlyRate float64) (float64, error) {
	if end.Before(start) {
		return 0, ErrInvalidInterval
	}
	if hourlyRate < 0 {
		return 0, ErrNegativeRate
	}

	elapsedHours := end.Sub(start).Hours()
	return RoundMoney(elapsedHours * hourlyRate), nil
}

// RoundMoney rounds a monetary amount to 2 decimal places (currency precision)
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
