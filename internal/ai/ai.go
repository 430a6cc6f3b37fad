// Package ai runs a competitor's daily decision step: close unprofitable
// routes, maybe open a new one, adjust prices, maybe expand the fleet.
// Candidate routes are scored and the best-scoring one is acted on; actual
// mutations go through internal/airline, reusing its structured errors
// instead of inventing a parallel failure path.
package ai

import (
	"math/rand"

	"airlinetycoon/internal/airline"
	"airlinetycoon/internal/catalog"
	"airlinetycoon/internal/models"
)

// Personalities holds the four preset trait bundles.
var Personalities = map[string]models.AIPersonality{
	"Aggressive":   {Name: "Aggressive", ExpansionRate: 0.9, PricingModifier: 0.85, RiskTolerance: 0.8, CompetitiveAggression: 0.95, ServiceQuality: 0.5},
	"Conservative": {Name: "Conservative", ExpansionRate: 0.3, PricingModifier: 1.15, RiskTolerance: 0.2, CompetitiveAggression: 0.3, ServiceQuality: 0.85},
	"Budget":       {Name: "Budget", ExpansionRate: 0.6, PricingModifier: 0.70, RiskTolerance: 0.5, CompetitiveAggression: 0.6, ServiceQuality: 0.3},
	"Balanced":     {Name: "Balanced", ExpansionRate: 0.5, PricingModifier: 1.00, RiskTolerance: 0.5, CompetitiveAggression: 0.5, ServiceQuality: 0.6},
}

// PersonalityByName looks up a preset by name.
func PersonalityByName(name string) (models.AIPersonality, bool) {
	p, ok := Personalities[name]
	return p, ok
}

// MinPriceFloor is the lowest a price-adjustment step will ever push a fare.
const MinPriceFloor = 50.0

// Step runs one competitor's full daily decision: close unprofitable routes,
// maybe open a new one, adjust prices, maybe expand the fleet. allAirlines
// must include every carrier in the world, the competitor's own airline
// included, so city-pair carrier counts are accurate.
func Step(comp *models.CompetitorAirline, allAirlines []*models.Airline, currentDay int, rng *rand.Rand) error {
	closeUnprofitableRoutes(comp, currentDay)
	if err := maybeOpenRoute(comp, allAirlines, currentDay, rng); err != nil {
		return err
	}
	adjustPrices(comp)
	return maybeExpandFleet(comp, currentDay, rng)
}

func closeUnprofitableRoutes(comp *models.CompetitorAirline, currentDay int) {
	daysTolerance := int(30 * comp.Personality.RiskTolerance)
	for _, r := range comp.Airline.ActiveRoutes() {
		daysOperating := currentDay - r.DayOpened
		if r.DailyProfit < 0 && daysOperating > daysTolerance {
			_ = airline.CloseRoute(comp.Airline, r.ID)
		}
	}
}

func maybeOpenRoute(comp *models.CompetitorAirline, allAirlines []*models.Airline, currentDay int, rng *rand.Rand) error {
	u := rng.Float64()
	if u > comp.Personality.ExpansionRate*0.20 {
		return nil
	}
	if comp.Airline.Cash < 500_000/comp.Personality.RiskTolerance {
		return nil
	}

	hub, ok := catalog.AirportByCode(comp.Airline.HomeHub)
	if !ok {
		return nil
	}

	var best models.Airport
	bestScore := -1.0
	for _, dest := range catalog.Airports {
		if dest.Code == hub.Code || comp.Airline.ServesFromHub(dest.Code) {
			continue
		}
		dist := catalog.DistanceNM(hub.Code, dest.Code)
		pairKey := models.CityPairKey(hub.Code, dest.Code)
		carriers := countCarriersOnPair(pairKey, allAirlines)
		score := ScoreRoute(hub, dest, dist, comp.Personality, carriers)
		if score > bestScore {
			bestScore = score
			best = dest
		}
	}
	if bestScore <= 0.5 {
		return nil
	}

	dist := catalog.DistanceNM(hub.Code, best.Code)
	price := dist * 0.13 * comp.Personality.PricingModifier
	route, err := airline.OpenRoute(comp.Airline, hub.Code, best.Code, price, currentDay, rng)
	if err != nil {
		return err
	}
	if unassigned := comp.Airline.UnassignedAircraft(); len(unassigned) > 0 {
		return airline.Assign(comp.Airline, route.ID, unassigned[0].ID)
	}
	return nil
}

// ScoreRoute scores a candidate destination from hub for a given
// personality, weighing market size, distance, and competition already on
// the pair. Returns a value clamped to [0,1].
func ScoreRoute(origin, dest models.Airport, distanceNM float64, p models.AIPersonality, existingCarriers int) float64 {
	marketScore := float64(origin.Market.Rank()+dest.Market.Rank()) / 8.0

	var distanceScore float64
	switch {
	case distanceNM < 500:
		distanceScore = 0.6
	case distanceNM < 1500:
		distanceScore = 1.0
	case distanceNM < 2500:
		distanceScore = 0.8
	default:
		distanceScore = 0.5
	}

	var competitionBase float64
	switch {
	case existingCarriers == 0:
		competitionBase = 1.0
	case existingCarriers == 1:
		competitionBase = 0.7
	case existingCarriers == 2:
		competitionBase = 0.4
	default:
		competitionBase = 0.2
	}
	competitionScore := competitionBase * (1 - 0.5*p.CompetitiveAggression)

	total := 0.4*marketScore + 0.3*distanceScore + 0.3*competitionScore
	if total < 0 {
		total = 0
	}
	if total > 1 {
		total = 1
	}
	return total
}

func countCarriersOnPair(pairKey string, allAirlines []*models.Airline) int {
	count := 0
	for _, al := range allAirlines {
		for _, r := range al.Routes {
			if r.Active && r.CityPairKey() == pairKey {
				count++
				break
			}
		}
	}
	return count
}

func adjustPrices(comp *models.CompetitorAirline) {
	for _, r := range comp.Airline.ActiveRoutes() {
		switch {
		case r.LoadFactor > 0.85:
			r.Price += r.Price * 0.05 * comp.Personality.ServiceQuality
		case r.LoadFactor < 0.60:
			newPrice := r.Price - r.Price*0.10*(1-comp.Personality.PricingModifier)
			if newPrice < MinPriceFloor {
				newPrice = MinPriceFloor
			}
			r.Price = newPrice
		}
	}
}

func maybeExpandFleet(comp *models.CompetitorAirline, currentDay int, rng *rand.Rand) error {
	unassignedRoutes := 0
	for _, r := range comp.Airline.ActiveRoutes() {
		if r.AssignedAircraft == "" {
			unassignedRoutes++
		}
	}
	if unassignedRoutes == 0 {
		return nil
	}

	refType, ok := catalog.AircraftTypeByName(catalog.DefaultFleetReference)
	if !ok {
		return nil
	}
	threshold := refType.PurchasePrice * comp.Personality.RiskTolerance
	if comp.Airline.Cash < threshold {
		return nil
	}

	var ac *models.Aircraft
	var err error
	attemptPurchase := comp.Personality.Name == "Conservative" || comp.Airline.Cash >= 2*refType.PurchasePrice
	if attemptPurchase {
		ac, err = airline.PurchaseAircraft(comp.Airline, refType.Name, currentDay, rng)
		if se, ok := err.(*models.SimError); ok && se.Kind == models.ErrInsufficientFunds {
			ac, err = airline.LeaseAircraft(comp.Airline, refType.Name, currentDay, rng)
		}
	} else {
		ac, err = airline.LeaseAircraft(comp.Airline, refType.Name, currentDay, rng)
	}
	if err != nil {
		return err
	}

	for _, r := range comp.Airline.ActiveRoutes() {
		if r.AssignedAircraft == "" {
			return airline.Assign(comp.Airline, r.ID, ac.ID)
		}
	}
	return nil
}
