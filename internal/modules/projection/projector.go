// Package projection provides the compound-growth projection calculator.
package projection

import (
	"errors"
	"fmt"
	"math"
)

// DefaultAnnualRatePct is the assumed annual return, the historical market
// average used by the simulator for display purposes.
const DefaultAnnualRatePct = 8.0

// ErrInvalidInput marks rejected projection parameters.
var ErrInvalidInput = errors.New("invalid input")

// Result is a computed projection.
type Result struct {
	ProjectedValue float64 `json:"projected_value"`
	GrowthAmount   float64 `json:"growth_amount"`
	GrowthPercent  float64 `json:"growth_percent"`
}

// Project computes the projected value of totalValue after horizonDays of
// daily compounding at the given nominal annual rate. Pure function.
func Project(totalValue float64, horizonDays int, annualRatePct float64) (Result, error) {
	if horizonDays < 0 {
		return Result{}, fmt.Errorf("%w: horizon must not be negative, got %d", ErrInvalidInput, horizonDays)
	}

	annualRate := annualRatePct / 100
	dailyRate := math.Pow(1+annualRate, 1.0/365) - 1
	projected := totalValue * math.Pow(1+dailyRate, float64(horizonDays))

	growth := projected - totalValue
	growthPct := 0.0
	if totalValue != 0 {
		growthPct = growth / totalValue * 100
	}

	return Result{
		ProjectedValue: projected,
		GrowthAmount:   growth,
		GrowthPercent:  growthPct,
	}, nil
}

// HorizonDays converts a horizon in the given unit to days. Weeks are 7
// days; months are approximated as 30 days, not calendar-accurate.
func HorizonDays(value int, unit string) (int, error) {
	switch unit {
	case "", "days":
		return value, nil
	case "weeks":
		return value * 7, nil
	case "months":
		return value * 30, nil
	default:
		return 0, fmt.Errorf("%w: unknown time unit %q", ErrInvalidInput, unit)
	}
}
