package airline

import (
	"errors"
	"math/rand"
	"testing"

	"airlinetycoon/internal/models"
)

func newTestAirline(cash float64) *models.Airline {
	return &models.Airline{ID: "a1", Name: "Test Air", Cash: cash, HomeHub: "JFK", Reputation: 50}
}

func TestOpenRouteRejectsUnknownAirport(t *testing.T) {
	al := newTestAirline(1_000_000)
	rng := rand.New(rand.NewSource(1))
	_, err := OpenRoute(al, "JFK", "ZZZ", 300, 1, rng)
	var se *models.SimError
	if !errors.As(err, &se) || se.Kind != models.ErrUnknownAirport {
		t.Fatalf("expected ErrUnknownAirport, got %v", err)
	}
}

func TestOpenRouteRejectsDuplicate(t *testing.T) {
	al := newTestAirline(1_000_000)
	rng := rand.New(rand.NewSource(1))
	if _, err := OpenRoute(al, "JFK", "LAX", 300, 1, rng); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := OpenRoute(al, "JFK", "LAX", 320, 1, rng)
	var se *models.SimError
	if !errors.As(err, &se) || se.Kind != models.ErrRouteExists {
		t.Fatalf("expected ErrRouteExists, got %v", err)
	}
}

// TestPurchaseBoundary locks the purchase boundary: cash == price succeeds, cash == price-1 fails.
func TestPurchaseBoundary(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	al := newTestAirline(90_000_000)
	if _, err := PurchaseAircraft(al, "Boeing 737-800", 1, rng); err != nil {
		t.Fatalf("expected success at cash==price, got %v", err)
	}

	al2 := newTestAirline(90_000_000 - 1)
	_, err := PurchaseAircraft(al2, "Boeing 737-800", 1, rng)
	var se *models.SimError
	if !errors.As(err, &se) || se.Kind != models.ErrInsufficientFunds {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
}

// TestSaleOfAssignedAircraftFailsWithoutMutating locks the sale-while-assigned rejection case.
func TestSaleOfAssignedAircraftFailsWithoutMutating(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	al := newTestAirline(200_000_000)
	ac, err := PurchaseAircraft(al, "Boeing 737-800", 1, rng)
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	route, err := OpenRoute(al, "JFK", "LAX", 300, 1, rng)
	if err != nil {
		t.Fatalf("open route failed: %v", err)
	}
	if err := Assign(al, route.ID, ac.ID); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	cashBefore := al.Cash

	err = SellAircraft(al, ac.ID)
	var se *models.SimError
	if !errors.As(err, &se) || se.Kind != models.ErrAircraftAssigned {
		t.Fatalf("expected ErrAircraftAssigned, got %v", err)
	}
	if al.Cash != cashBefore {
		t.Fatalf("cash changed on failed sale: before=%v after=%v", cashBefore, al.Cash)
	}
}

// TestSellReturns70Percent locks the 70% sale-value payout.
func TestSellReturns70Percent(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	al := newTestAirline(90_000_000)
	ac, err := PurchaseAircraft(al, "Boeing 737-800", 1, rng)
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	if err := SellAircraft(al, ac.ID); err != nil {
		t.Fatalf("sell failed: %v", err)
	}
	if got, want := al.Cash, 63_000_000.0; got != want {
		t.Fatalf("cash after sale = %v, want %v", got, want)
	}
}

// TestLeaseReturnPenalty locks the lease-termination penalty.
func TestLeaseReturnPenalty(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	al := newTestAirline(1_000_000)
	ac, err := LeaseAircraft(al, "Airbus A320", 1, rng)
	if err != nil {
		t.Fatalf("lease failed: %v", err)
	}
	al.Cash = 50_000
	err = ReturnLeased(al, ac.ID)
	var se *models.SimError
	if !errors.As(err, &se) || se.Kind != models.ErrInsufficientFunds {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
}

func TestAssignFailsWhenAircraftAlreadyAssignedElsewhere(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	al := newTestAirline(300_000_000)
	ac, _ := PurchaseAircraft(al, "Boeing 737-800", 1, rng)
	r1, _ := OpenRoute(al, "JFK", "LAX", 300, 1, rng)
	r2, _ := OpenRoute(al, "JFK", "ORD", 200, 1, rng)
	if err := Assign(al, r1.ID, ac.ID); err != nil {
		t.Fatalf("first assign failed: %v", err)
	}
	err := Assign(al, r2.ID, ac.ID)
	var se *models.SimError
	if !errors.As(err, &se) || se.Kind != models.ErrAircraftAlreadyAssigned {
		t.Fatalf("expected ErrAircraftAlreadyAssigned, got %v", err)
	}
}

func TestCloseRouteUnassignsAircraft(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	al := newTestAirline(300_000_000)
	ac, _ := PurchaseAircraft(al, "Boeing 737-800", 1, rng)
	r, _ := OpenRoute(al, "JFK", "LAX", 300, 1, rng)
	_ = Assign(al, r.ID, ac.ID)
	if err := CloseRoute(al, r.ID); err != nil {
		t.Fatalf("close route failed: %v", err)
	}
	if ac.AssignedRoute != "" {
		t.Fatalf("expected aircraft unassigned after route close, got %q", ac.AssignedRoute)
	}
	if r.Active {
		t.Fatal("expected route inactive after close")
	}
}
