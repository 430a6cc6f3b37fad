// Package simulation owns the World aggregate and its single mutation entry
// point, AdvanceDay, which runs the eight-step daily transition in a fixed
// order: a single mutex-guarded struct with one RNG and one authoritative
// tick function, generalized to run a fixed multi-subsystem pipeline rather
// than ticking a flat list of owned objects.
package simulation

import (
	"hash/fnv"
	"math/rand"
	"strconv"
	"sync"

	"airlinetycoon/internal/ai"
	"airlinetycoon/internal/catalog"
	"airlinetycoon/internal/competition"
	"airlinetycoon/internal/eventengine"
	"airlinetycoon/internal/fuelmarket"
	"airlinetycoon/internal/models"
	"airlinetycoon/internal/routesim"
)

// SchemaVersion tags the World shape SaveCodec serializes.
const SchemaVersion = 1

// World is the simulation's mutable root: one player airline, zero or more
// AI competitors, a shared fuel market, and the RNG seed everything derives
// from. The zero value is not usable; build one with NewWorld or Load.
type World struct {
	mu sync.Mutex

	Seed          int64
	SchemaVersion int

	Player      *models.Airline
	Competitors []*models.CompetitorAirline

	Fuel       models.FuelMarketState
	CurrentDay int

	// ActionSeq counts player-initiated mutator calls (it is never reset
	// between days), so each one draws from a distinct deterministic RNG stream
	// without needing to persist *rand.Rand state.
	ActionSeq int

	rng *rand.Rand
}

// nextActionRNG derives a fresh deterministic stream for one player-initiated
// mutator call (OpenRoute, PurchaseAircraft, ...), which happen outside the
// fixed AdvanceDay pipeline and so need their own RNG derivation label.
func (w *World) nextActionRNG() *rand.Rand {
	w.ActionSeq++
	return deriveRNG(w.Seed, "player-action", w.CurrentDay*1_000_000+w.ActionSeq)
}

// CompetitorSeed pairs a competitor's identity with its AIPersonality, the
// input NewWorld needs to stand up the competitor roster.
type CompetitorSeed struct {
	Name           string
	HomeHub        string
	PersonalityTag string
}

// NewWorld constructs a fresh World. Competitor personalities are looked up
// by tag in ai.Personalities; an unknown tag falls back to Balanced rather
// than failing world construction.
func NewWorld(seed int64, playerName, hubCode string, competitors []CompetitorSeed) *World {
	rng := rand.New(rand.NewSource(seed))
	w := &World{
		Seed:          seed,
		SchemaVersion: SchemaVersion,
		Player: &models.Airline{
			ID:         "player",
			Name:       playerName,
			Cash:       10_000_000,
			HomeHub:    hubCode,
			Reputation: 50,
		},
		Fuel: fuelmarket.New(),
		rng:  rng,
	}
	for i, cs := range competitors {
		personality, ok := ai.PersonalityByName(cs.PersonalityTag)
		if !ok {
			personality = ai.Personalities["Balanced"]
		}
		w.Competitors = append(w.Competitors, &models.CompetitorAirline{
			Airline: &models.Airline{
				ID:         "competitor-" + strconv.Itoa(i+1),
				Name:       cs.Name,
				Cash:       10_000_000,
				HomeHub:    cs.HomeHub,
				Reputation: 50,
			},
			Personality: personality,
		})
	}
	return w
}

// deriveRNG builds a child stream for a subsystem, seeded deterministically
// from the world seed, a stable label, and the current day. math/rand.Rand does not expose its internal state for
// serialization, so rather than persist it across a save/load boundary,
// every subsystem's draws are a pure function of (Seed, label, CurrentDay):
// replay from a seed is bit-identical without ever touching *rand.Rand
// internals (see DESIGN.md OQ-1).
func deriveRNG(seed int64, label string, currentDay int) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(label))
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(currentDay >> (8 * i))
	}
	h.Write(buf[:])
	var sb [8]byte
	for i := 0; i < 8; i++ {
		sb[i] = byte(seed >> (8 * i))
	}
	h.Write(sb[:])
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

func (w *World) allAirlines() []*models.Airline {
	out := make([]*models.Airline, 0, len(w.Competitors)+1)
	out = append(out, w.Player)
	for _, c := range w.Competitors {
		out = append(out, c.Airline)
	}
	return out
}

// AdvanceDay runs the atomic per-day transition, the only
// mutation entry point on World. Reentry from inside AdvanceDay is
// forbidden; the mutex only guards against concurrent callers,
// it does not make reentrant calls safe.
func (w *World) AdvanceDay() models.DailyReport {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.CurrentDay++
	day := w.CurrentDay

	// Step 2: expire events on every airline.
	for _, al := range w.allAirlines() {
		al.Events = eventengine.ExpireEvents(al.Events, day)
	}

	// Step 3: fuel market update.
	fuelRNG := deriveRNG(w.Seed, "fuelmarket", day)
	fuelmarket.Update(&w.Fuel, day, fuelRNG)

	// Step 4: roll new events. Player always; competitors too, for parity.
	var newEvents []*models.GameEvent
	for i, al := range w.allAirlines() {
		evRNG := deriveRNG(w.Seed, "eventengine-"+al.ID, day)
		if result := eventengine.Roll(evRNG, day, al.ID, i); result != nil {
			al.Events = append(al.Events, result.Event)
			newEvents = append(newEvents, result.Event)
			if result.FuelShockMagnitude != 0 {
				fuelmarket.ApplyShock(&w.Fuel, result.FuelShockMagnitude, result.FuelShockDuration)
			}
		}
	}

	// Step 5: AI runs in fixed construction order.
	allAirlines := w.allAirlines()
	for _, comp := range w.Competitors {
		aiRNG := deriveRNG(w.Seed, "ai-"+comp.Airline.ID, day)
		_ = ai.Step(comp, allAirlines, day, aiRNG)
	}

	// Step 6: simulate each carrier's routes, consulting CompetitionSolver
	// where a city pair is served by more than one carrier.
	serviceQuality := make(map[string]float64, len(allAirlines))
	serviceQuality[w.Player.ID] = competition.PlayerServiceQuality
	for _, comp := range w.Competitors {
		serviceQuality[comp.Airline.ID] = comp.Personality.ServiceQuality
	}

	report := models.DailyReport{Day: day}
	for _, al := range allAirlines {
		revenue, cost, passengers := simulateAirlineRoutes(al, allAirlines, serviceQuality, w.Fuel.Price, day)
		if al == w.Player {
			report.Revenue = revenue
			report.Costs = cost
			report.Passengers = passengers
		}
		// Step 7 (partial): lease costs, fold into costs before commit.
		leaseCost := dailyLeaseCost(al)
		cost += leaseCost
		if al == w.Player {
			report.Costs += leaseCost
		}

		profit := revenue - cost
		al.Cash += profit
		al.CumulativeRevenue += revenue
		al.CumulativeCosts += cost
		al.CumulativePassengers += passengers

		applyOneShotImpacts(al, day)
		applyReputationDrift(al, passengers)

		if al == w.Player {
			report.Profit = report.Revenue - report.Costs
			report.Cash = al.Cash
			report.Reputation = al.Reputation
		}
	}

	report.NewEvents = newEvents
	report.Bankrupt = w.Player.Cash < 0 && (report.Costs > 0)
	return report
}

func simulateAirlineRoutes(al *models.Airline, allAirlines []*models.Airline, serviceQuality map[string]float64, fuelPrice float64, day int) (revenue, cost float64, passengers int64) {
	demandMod, costMod := aggregateEventModifiers(al, day)
	for _, r := range al.ActiveRoutes() {
		if r.AssignedAircraft == "" {
			continue
		}
		ac := al.AircraftByID(r.AssignedAircraft)
		if ac == nil {
			continue
		}
		share := marketShareFor(r, al, allAirlines, serviceQuality)
		result := routesim.Simulate(r, ac, al.Reputation, fuelPrice, demandMod, costMod, share)
		revenue += result.Revenue
		cost += result.Cost
		passengers += result.Passengers
	}
	return revenue, cost, passengers
}

func marketShareFor(r *models.Route, owner *models.Airline, allAirlines []*models.Airline, serviceQuality map[string]float64) float64 {
	pairKey := r.CityPairKey()
	var carriers []competition.Carrier
	for _, al := range allAirlines {
		for _, rr := range al.Routes {
			if rr.Active && rr.CityPairKey() == pairKey {
				carriers = append(carriers, competition.Carrier{ID: al.ID + "|" + rr.ID, Price: rr.Price, Reputation: al.Reputation, ServiceQuality: serviceQuality[al.ID]})
				break
			}
		}
	}
	if len(carriers) == 0 {
		return 1.0
	}
	shares := competition.Solve(carriers)
	return shares[owner.ID+"|"+r.ID]
}

func aggregateEventModifiers(al *models.Airline, day int) (demandMod, costMod float64) {
	demandMod, costMod = 1.0, 1.0
	for _, e := range al.Events {
		if !e.ActiveOn(day) {
			continue
		}
		if e.DemandModifier > 0 {
			demandMod *= e.DemandModifier
		}
		if e.CostModifier > 0 {
			costMod *= e.CostModifier
		}
	}
	return demandMod, costMod
}

func dailyLeaseCost(al *models.Airline) float64 {
	var total float64
	for _, ac := range al.Fleet {
		if ac.Leased {
			total += ac.MonthlyLease / 30.0
		}
	}
	return total
}

func applyOneShotImpacts(al *models.Airline, day int) {
	for _, e := range al.Events {
		if e.DayOccurred == day {
			al.Cash += e.FinancialImpact
			al.Reputation += e.ReputationImpact
			if al.Reputation < 0 {
				al.Reputation = 0
			}
			if al.Reputation > 100 {
				al.Reputation = 100
			}
		}
	}
}

// applyReputationDrift moves reputation 10% toward a passenger-keyed target.
func applyReputationDrift(al *models.Airline, passengers int64) {
	var target float64
	switch {
	case passengers > 1000:
		target = 70
	case passengers > 500:
		target = 60
	default:
		target = 40
	}
	al.Reputation += (target - al.Reputation) * 0.10
	if al.Reputation < 0 {
		al.Reputation = 0
	}
	if al.Reputation > 100 {
		al.Reputation = 100
	}
}

// Snapshot returns the current player airline state for read-only consumers.
func (w *World) Snapshot() models.Airline {
	w.mu.Lock()
	defer w.mu.Unlock()
	return *w.Player
}

// AllAirports exposes the compiled-in airport catalog.
func AllAirports() []models.Airport { return catalog.Airports }

// AllAircraftTypes exposes the compiled-in aircraft catalog.
func AllAircraftTypes() []models.AircraftType { return catalog.AircraftTypes }
