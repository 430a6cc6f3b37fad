// Package eventengine rolls random GameEvents and expires them once their
// active window closes. No cooldown is tracked: every template stays
// eligible on every day's roll. The package does not write to an
// airline's RecentEvents log.
package eventengine

import (
	"math/rand"
	"strconv"

	"airlinetycoon/internal/models"
)

// DailyFireProbability is the chance an airline rolls a new event on any
// given day, before weighted template selection. Chosen so a carrier sees
// roughly one event every five or six days.
const DailyFireProbability = 0.18

// RollResult is what Roll returns when an event fires.
type RollResult struct {
	Event              *models.GameEvent
	FuelShockMagnitude float64 // 0 if this event doesn't shock fuel
	FuelShockDuration  int
}

// Roll decides whether a new event fires today for one airline and, if so,
// instantiates it with concrete duration/impact values drawn from its
// template's ranges.
func Roll(rng *rand.Rand, currentDay int, idPrefix string, seq int) *RollResult {
	if rng.Float64() > DailyFireProbability {
		return nil
	}

	totalWeight := 0.0
	for _, tpl := range templates {
		totalWeight += tpl.Weight
	}
	pick := rng.Float64() * totalWeight
	var chosen template
	acc := 0.0
	for _, tpl := range templates {
		acc += tpl.Weight
		if pick <= acc {
			chosen = tpl
			break
		}
	}
	if chosen.Title == "" {
		chosen = templates[len(templates)-1]
	}

	duration := chosen.DurationMin
	if chosen.DurationMax > chosen.DurationMin {
		duration += rng.Intn(chosen.DurationMax - chosen.DurationMin + 1)
	}
	fin := uniform(rng, chosen.FinMin, chosen.FinMax)
	rep := uniform(rng, chosen.RepMin, chosen.RepMax)
	demandMod := uniform(rng, chosen.DemandModMin, chosen.DemandModMax)
	costMod := uniform(rng, chosen.CostModMin, chosen.CostModMax)

	ev := &models.GameEvent{
		ID:               idPrefix + "-ev-" + strconv.Itoa(currentDay) + "-" + strconv.Itoa(seq),
		Kind:             chosen.Kind,
		Severity:         chosen.Severity,
		Title:            chosen.Title,
		Description:      chosen.Description,
		DayOccurred:      currentDay,
		DurationDays:     duration,
		FinancialImpact:  fin,
		ReputationImpact: rep,
		DemandModifier:   demandMod,
		CostModifier:     costMod,
		AllRoutes:        true,
	}

	result := &RollResult{Event: ev}
	if chosen.FuelShock {
		result.FuelShockMagnitude = uniform(rng, chosen.FuelShockMagMin, chosen.FuelShockMagMax)
		result.FuelShockDuration = chosen.FuelShockDurMin
		if chosen.FuelShockDurMax > chosen.FuelShockDurMin {
			result.FuelShockDuration += rng.Intn(chosen.FuelShockDurMax - chosen.FuelShockDurMin + 1)
		}
	}
	return result
}

// ExpireEvents drops events whose active predicate is false for
// currentDay, returning the events that remain.
func ExpireEvents(events []*models.GameEvent, currentDay int) []*models.GameEvent {
	kept := events[:0:0]
	for _, e := range events {
		if e.ActiveOn(currentDay) {
			kept = append(kept, e)
		}
	}
	return kept
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
