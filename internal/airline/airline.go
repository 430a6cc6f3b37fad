// Package airline implements the pure mutators exposed on an Airline:
// opening/closing routes, purchasing/leasing/selling/returning aircraft,
// and assigning/unassigning aircraft to routes. Mutators return structured
// *models.SimError values instead of ad-hoc fmt.Errorf strings, and operate
// on an Airline value the caller owns rather than a process-wide engine.
package airline

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"airlinetycoon/internal/catalog"
	"airlinetycoon/internal/models"
)

// OpenRoute creates a new active route between origin and dest at the given
// ticket price. Distance is derived from the
// catalog's distance table, falling back to 1000 NM for unmapped pairs.
func OpenRoute(al *models.Airline, origin, dest string, price float64, currentDay int, rng *rand.Rand) (*models.Route, error) {
	origin = strings.ToUpper(strings.TrimSpace(origin))
	dest = strings.ToUpper(strings.TrimSpace(dest))
	if _, ok := catalog.AirportByCode(origin); !ok {
		return nil, models.NewError("OpenRoute", models.ErrUnknownAirport)
	}
	if _, ok := catalog.AirportByCode(dest); !ok {
		return nil, models.NewError("OpenRoute", models.ErrUnknownAirport)
	}
	for _, r := range al.Routes {
		if r.Origin == origin && r.Destination == dest {
			return nil, models.NewError("OpenRoute", models.ErrRouteExists)
		}
	}
	id, err := newID(rng)
	if err != nil {
		return nil, err
	}
	route := &models.Route{
		ID:           id,
		Origin:       origin,
		Destination:  dest,
		DistanceNM:   catalog.DistanceNM(origin, dest),
		Price:        price,
		DailyFlights: 1,
		Active:       true,
		DayOpened:    currentDay,
	}
	al.Routes = append(al.Routes, route)
	al.LogEvent(fmt.Sprintf("Route %s-%s opened", origin, dest))
	return route, nil
}

// CloseRoute deactivates a route, first unassigning any aircraft on it.
func CloseRoute(al *models.Airline, routeID string) error {
	r := al.RouteByID(routeID)
	if r == nil {
		return models.NewError("CloseRoute", models.ErrUnknownID)
	}
	if r.AssignedAircraft != "" {
		if err := Unassign(al, routeID); err != nil {
			return err
		}
	}
	r.Active = false
	al.LogEvent(fmt.Sprintf("Route %s-%s closed", r.Origin, r.Destination))
	return nil
}

// Assign attaches an aircraft to a route. It fails if the aircraft is
// already assigned elsewhere.
func Assign(al *models.Airline, routeID, aircraftID string) error {
	r := al.RouteByID(routeID)
	if r == nil {
		return models.NewError("Assign", models.ErrUnknownID)
	}
	ac := al.AircraftByID(aircraftID)
	if ac == nil {
		return models.NewError("Assign", models.ErrUnknownID)
	}
	if ac.AssignedRoute != "" && ac.AssignedRoute != routeID {
		return models.NewError("Assign", models.ErrAircraftAlreadyAssigned)
	}
	if r.AssignedAircraft != "" && r.AssignedAircraft != aircraftID {
		// bump the previous occupant off this route first
		if prev := al.AircraftByID(r.AssignedAircraft); prev != nil {
			prev.AssignedRoute = ""
		}
	}
	r.AssignedAircraft = aircraftID
	ac.AssignedRoute = routeID
	return nil
}

// Unassign detaches whatever aircraft is assigned to a route, if any.
func Unassign(al *models.Airline, routeID string) error {
	r := al.RouteByID(routeID)
	if r == nil {
		return models.NewError("Unassign", models.ErrUnknownID)
	}
	if r.AssignedAircraft != "" {
		if ac := al.AircraftByID(r.AssignedAircraft); ac != nil {
			ac.AssignedRoute = ""
		}
		r.AssignedAircraft = ""
	}
	return nil
}

// SetPrice updates a route's ticket price.
func SetPrice(al *models.Airline, routeID string, price float64) error {
	r := al.RouteByID(routeID)
	if r == nil {
		return models.NewError("SetPrice", models.ErrUnknownID)
	}
	r.Price = price
	return nil
}

// SetDailyFlights updates a route's daily-flight frequency (: core
// accepts any positive int; the UI-level cap of 10 is not enforced here).
func SetDailyFlights(al *models.Airline, routeID string, freq int) error {
	r := al.RouteByID(routeID)
	if r == nil {
		return models.NewError("SetDailyFlights", models.ErrUnknownID)
	}
	if freq < 1 {
		freq = 1
	}
	r.DailyFlights = freq
	return nil
}

// PurchaseAircraft buys an aircraft outright, debiting cash in full
// (: fails InsufficientFunds if cash < purchase price).
func PurchaseAircraft(al *models.Airline, typeName string, currentDay int, rng *rand.Rand) (*models.Aircraft, error) {
	t, ok := catalog.AircraftTypeByName(typeName)
	if !ok {
		return nil, models.NewError("PurchaseAircraft", models.ErrUnknownAircraftType)
	}
	if al.Cash < t.PurchasePrice {
		return nil, models.NewError("PurchaseAircraft", models.ErrInsufficientFunds)
	}
	ac, err := newAircraft(al, t, false, 0, currentDay, rng)
	if err != nil {
		return nil, err
	}
	al.Cash -= t.PurchasePrice
	al.LogEvent(fmt.Sprintf("Purchased %s (%s)", t.Name, ac.Registration))
	return ac, nil
}

// LeaseAircraft leases an aircraft. Leasing never fails on cash: it
// creates a recurring obligation instead of an upfront debit.
func LeaseAircraft(al *models.Airline, typeName string, currentDay int, rng *rand.Rand) (*models.Aircraft, error) {
	t, ok := catalog.AircraftTypeByName(typeName)
	if !ok {
		return nil, models.NewError("LeaseAircraft", models.ErrUnknownAircraftType)
	}
	ac, err := newAircraft(al, t, true, t.MonthlyLease(), currentDay, rng)
	if err != nil {
		return nil, err
	}
	al.LogEvent(fmt.Sprintf("Leased %s (%s)", t.Name, ac.Registration))
	return ac, nil
}

// SellAircraft sells an owned, unassigned aircraft for 70% of its
// purchase price. Fails if the aircraft is leased rather than owned, or
// still assigned to a route.
func SellAircraft(al *models.Airline, aircraftID string) error {
	ac := al.AircraftByID(aircraftID)
	if ac == nil {
		return models.NewError("SellAircraft", models.ErrUnknownID)
	}
	if ac.Leased {
		return models.NewError("SellAircraft", models.ErrNotOwned)
	}
	if ac.AssignedRoute != "" {
		return models.NewError("SellAircraft", models.ErrAircraftAssigned)
	}
	t, ok := catalog.AircraftTypeByName(ac.TypeName)
	if !ok {
		return models.NewError("SellAircraft", models.ErrUnknownAircraftType)
	}
	al.Cash += t.SaleValue()
	al.Fleet = removeAircraft(al.Fleet, aircraftID)
	al.LogEvent(fmt.Sprintf("Sold %s (%s)", t.Name, ac.Registration))
	return nil
}

// ReturnLeased returns a leased, unassigned aircraft, paying a 2x-monthly
// early-termination penalty. Fails if the aircraft is owned rather than
// leased, still assigned to a route, or cash can't cover the penalty.
func ReturnLeased(al *models.Airline, aircraftID string) error {
	ac := al.AircraftByID(aircraftID)
	if ac == nil {
		return models.NewError("ReturnLeased", models.ErrUnknownID)
	}
	if !ac.Leased {
		return models.NewError("ReturnLeased", models.ErrNotLeased)
	}
	if ac.AssignedRoute != "" {
		return models.NewError("ReturnLeased", models.ErrAircraftAssigned)
	}
	t, ok := catalog.AircraftTypeByName(ac.TypeName)
	if !ok {
		return models.NewError("ReturnLeased", models.ErrUnknownAircraftType)
	}
	penalty := t.LeaseTerminationPenalty()
	if al.Cash < penalty {
		return models.NewError("ReturnLeased", models.ErrInsufficientFunds)
	}
	al.Cash -= penalty
	al.Fleet = removeAircraft(al.Fleet, aircraftID)
	al.LogEvent(fmt.Sprintf("Returned leased %s (%s)", t.Name, ac.Registration))
	return nil
}

func newAircraft(al *models.Airline, t models.AircraftType, leased bool, monthlyLease float64, currentDay int, rng *rand.Rand) (*models.Aircraft, error) {
	id, err := newID(rng)
	if err != nil {
		return nil, err
	}
	reg, err := newRegistration(al, rng)
	if err != nil {
		return nil, err
	}
	ac := &models.Aircraft{
		ID:           id,
		Registration: reg,
		TypeName:     t.Name,
		Leased:       leased,
		MonthlyLease: monthlyLease,
		Condition:    1.0,
		DayAcquired:  currentDay,
	}
	al.Fleet = append(al.Fleet, ac)
	return ac, nil
}

// newRegistration draws "N" + 5 digits from the world RNG, retrying on
// collision within the airline's own fleet.
func newRegistration(al *models.Airline, rng *rand.Rand) (string, error) {
	existing := make(map[string]bool, len(al.Fleet))
	for _, a := range al.Fleet {
		existing[a.Registration] = true
	}
	for attempt := 0; attempt < 1000; attempt++ {
		reg := fmt.Sprintf("N%05d", rng.Intn(100000))
		if !existing[reg] {
			return reg, nil
		}
	}
	return "", models.NewError("newRegistration", models.ErrUnknownID)
}

func newID(rng *rand.Rand) (string, error) {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return "", models.NewError("newID", models.ErrUnknownID)
	}
	return id.String(), nil
}

func removeAircraft(fleet []*models.Aircraft, id string) []*models.Aircraft {
	out := fleet[:0:0]
	for _, a := range fleet {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}
