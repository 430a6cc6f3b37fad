// Package routesim computes one day's revenue/cost/passengers/load-factor
// for a single active route, generalized from a haversine/elasticity model
// to fixed arithmetic — including two quirks preserved rather than fixed:
// fuel cost scales with flight count, not flight-hours, and base demand is
// tiny relative to aircraft capacity.
package routesim

import (
	"math"

	"airlinetycoon/internal/catalog"
	"airlinetycoon/internal/models"
)

// CrewCostPerHour is the flat crew cost rate.
const CrewCostPerHour = 500.0

// MaintenanceFactor scales the operating-cost-per-hour maintenance proxy.
const MaintenanceFactor = 0.15

// HoursDegradationDivisor: condition degrades by added_hours / this value.
const HoursDegradationDivisor = 10_000.0

// Result is one day's simulated outcome for a single route.
type Result struct {
	Revenue    float64
	Cost       float64
	Profit     float64
	Passengers int64
	LoadFactor float64
}

// Simulate computes Result for one active route with an assigned aircraft.
// Callers that pass a route with no assigned aircraft, or an
// aircraft/airport/aircraft-type that cannot be resolved, get a
// zero-contribution Result rather than an error — anomalies here are silent.
//
// demandMod and costMod are the product of every currently-active event's
// DemandModifier/CostModifier affecting this route. marketShare is this
// carrier's CompetitionSolver share for the route's city pair (1.0 with no
// competition).
func Simulate(route *models.Route, ac *models.Aircraft, reputation, fuelPrice, demandMod, costMod, marketShare float64) Result {
	if route == nil || ac == nil || !route.Active || route.AssignedAircraft != ac.ID {
		return Result{}
	}
	t, ok := catalog.AircraftTypeByName(ac.TypeName)
	if !ok {
		return Result{}
	}
	origin, ok := catalog.AirportByCode(route.Origin)
	if !ok {
		return Result{}
	}
	dest, ok := catalog.AirportByCode(route.Destination)
	if !ok {
		return Result{}
	}

	// Base demand is computed from the 1-4 market-size rank, not the
	// {100,300,600,1000} magnitude the catalog otherwise carries per market
	// size. The source does this too, and it produces a demand figure tiny
	// next to any aircraft's capacity; preserved rather than rescaled.
	baseDemand := float64(origin.Market.Rank()+dest.Market.Rank()) / 2.0
	reputationMod := 0.5 + reputation/100.0
	adjustedDemand := math.Round(baseDemand * reputationMod * demandMod)
	adjustedDemand *= marketShare

	capacity := float64(t.Capacity * route.DailyFlights)
	loadFactor := 0.0
	if capacity > 0 {
		loadFactor = adjustedDemand / capacity
	}
	if loadFactor > 0.95 {
		loadFactor = 0.95
	}
	if loadFactor < 0 {
		loadFactor = 0
	}

	passengers := int64(math.Floor(capacity * loadFactor))
	revenue := float64(passengers) * route.Price

	flightHours := route.FlightTimeHours()
	freq := float64(route.DailyFlights)

	// Fuel cost intentionally ignores flight-hours: gallons-per-hour is
	// multiplied by flight count only, under-billing long-haul routes.
	fuelCost := t.FuelGalPerHr * freq * fuelPrice
	crewCost := flightHours * freq * CrewCostPerHour
	airportFees := (origin.LandingFee + dest.LandingFee) * freq
	maintenanceCost := t.OperatingCostPerHr * flightHours * freq * MaintenanceFactor

	cost := (fuelCost + crewCost + airportFees + maintenanceCost) * costMod
	profit := revenue - cost

	addedHours := flightHours * freq
	ac.FlightHours += addedHours
	ac.Condition -= addedHours / HoursDegradationDivisor
	if ac.Condition < 0 {
		ac.Condition = 0
	}

	route.LoadFactor = loadFactor
	route.DailyProfit = profit
	route.CumulativePassengers += passengers

	return Result{
		Revenue:    revenue,
		Cost:       cost,
		Profit:     profit,
		Passengers: passengers,
		LoadFactor: loadFactor,
	}
}
