// Package fuelmarket implements the daily stochastic fuel-price model: a
// clamped random walk (no pull back toward baseline) with a slow-moving trend, a seasonal
// multiplier, and occasional shocks. It takes its RNG as a parameter rather
// than owning one, so the caller controls determinism.
package fuelmarket

import (
	"math/rand"

	"airlinetycoon/internal/models"
)

// New returns a freshly initialized fuel market at baseline price.
func New() models.FuelMarketState {
	return models.FuelMarketState{
		Price:          models.FuelBaseline,
		EMA:            models.FuelBaseline,
		Trend:          0,
		DaysSinceTrend: 0,
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// seasonalMultiplier returns the day-of-year seasonal factor.
func seasonalMultiplier(currentDay int) float64 {
	d := currentDay % 365
	if d < 0 {
		d += 365
	}
	switch {
	case d < 60 || d >= 335:
		return 1.08 // winter
	case d < 152:
		return 1.02 // spring
	case d < 244:
		return 1.12 // summer
	default:
		return 0.95 // fall
	}
}

// Update advances the fuel market by one day.
func Update(fm *models.FuelMarketState, currentDay int, rng *rand.Rand) {
	fm.DaysSinceTrend++
	if fm.DaysSinceTrend >= 30 {
		fm.Trend = clamp(fm.Trend+uniform(rng, -0.05, 0.05), -0.2, 0.2)
		fm.DaysSinceTrend = 0
	}

	u := rng.Float64()
	var dailyPct float64
	switch {
	case u < 0.70:
		dailyPct = uniform(rng, -0.02, 0.02)
	case u < 0.90:
		dailyPct = uniform(rng, -0.05, 0.05)
	default:
		dailyPct = uniform(rng, -0.10, 0.10)
	}

	dailyChange := fm.Price * dailyPct
	seasonal := seasonalMultiplier(currentDay)
	newPrice := (fm.Price + dailyChange + models.FuelBaseline*fm.Trend) * seasonal
	newPrice = clamp(newPrice, models.FuelMin, models.FuelMax)

	fm.Price = newPrice
	fm.EMA = (fm.EMA*29 + newPrice) / 30
}

// ApplyShock multiplies the current price by magnitude and clamps it back
// into bounds. duration is accepted for signature parity but not tracked:
// fuel shocks never decay on their own; preserved as-is rather than
// inventing decay behavior.
func ApplyShock(fm *models.FuelMarketState, magnitude float64, duration int) {
	_ = duration
	fm.Price = clamp(fm.Price*magnitude, models.FuelMin, models.FuelMax)
}
