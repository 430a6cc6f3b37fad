package simulation

import (
	"airlinetycoon/internal/airline"
	"airlinetycoon/internal/models"
)

// OpenRoute opens a new route for the player airline.
func (w *World) OpenRoute(origin, dest string, price float64) (*models.Route, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return airline.OpenRoute(w.Player, origin, dest, price, w.CurrentDay, w.nextActionRNG())
}

// CloseRoute closes a player route, unassigning any aircraft first.
func (w *World) CloseRoute(routeID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return airline.CloseRoute(w.Player, routeID)
}

// Assign attaches a player aircraft to a player route.
func (w *World) Assign(routeID, aircraftID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return airline.Assign(w.Player, routeID, aircraftID)
}

// Unassign detaches whatever aircraft is on a player route.
func (w *World) Unassign(routeID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return airline.Unassign(w.Player, routeID)
}

// SetPrice updates a player route's ticket price.
func (w *World) SetPrice(routeID string, price float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return airline.SetPrice(w.Player, routeID, price)
}

// SetDailyFlights updates a player route's daily-flight frequency.
func (w *World) SetDailyFlights(routeID string, freq int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return airline.SetDailyFlights(w.Player, routeID, freq)
}

// PurchaseAircraft buys an aircraft outright for the player airline.
func (w *World) PurchaseAircraft(typeName string) (*models.Aircraft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return airline.PurchaseAircraft(w.Player, typeName, w.CurrentDay, w.nextActionRNG())
}

// LeaseAircraft leases an aircraft for the player airline.
func (w *World) LeaseAircraft(typeName string) (*models.Aircraft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return airline.LeaseAircraft(w.Player, typeName, w.CurrentDay, w.nextActionRNG())
}

// SellAircraft sells a player-owned, unassigned aircraft.
func (w *World) SellAircraft(aircraftID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return airline.SellAircraft(w.Player, aircraftID)
}

// ReturnLeased returns a leased, unassigned player aircraft.
func (w *World) ReturnLeased(aircraftID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return airline.ReturnLeased(w.Player, aircraftID)
}
