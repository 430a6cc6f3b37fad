package ai

import (
	"math/rand"
	"testing"

	"airlinetycoon/internal/airline"
	"airlinetycoon/internal/catalog"
	"airlinetycoon/internal/models"
)

func TestPersonalityConstantsExact(t *testing.T) {
	cases := []struct {
		name                                                                             string
		expansion, pricing, risk, aggression, service float64
	}{
		{"Aggressive", 0.9, 0.85, 0.8, 0.95, 0.5},
		{"Conservative", 0.3, 1.15, 0.2, 0.3, 0.85},
		{"Budget", 0.6, 0.70, 0.5, 0.6, 0.3},
		{"Balanced", 0.5, 1.00, 0.5, 0.5, 0.6},
	}
	for _, c := range cases {
		p, ok := PersonalityByName(c.name)
		if !ok {
			t.Fatalf("missing personality %q", c.name)
		}
		if p.ExpansionRate != c.expansion || p.PricingModifier != c.pricing || p.RiskTolerance != c.risk ||
			p.CompetitiveAggression != c.aggression || p.ServiceQuality != c.service {
			t.Errorf("%s: got %+v, want %+v", c.name, p, c)
		}
	}
}

func TestScoreRouteNoCompetitionBeatsHeavyCompetition(t *testing.T) {
	jfk, _ := catalog.AirportByCode("JFK")
	lax, _ := catalog.AirportByCode("LAX")
	p := Personalities["Balanced"]
	dist := catalog.DistanceNM("JFK", "LAX")

	clear := ScoreRoute(jfk, lax, dist, p, 0)
	crowded := ScoreRoute(jfk, lax, dist, p, 3)
	if clear <= crowded {
		t.Fatalf("expected uncontested route to score higher: clear=%v crowded=%v", clear, crowded)
	}
}

func TestScoreRouteClampedToUnitInterval(t *testing.T) {
	jfk, _ := catalog.AirportByCode("JFK")
	lax, _ := catalog.AirportByCode("LAX")
	for _, p := range Personalities {
		for _, carriers := range []int{0, 1, 2, 5} {
			s := ScoreRoute(jfk, lax, 2145, p, carriers)
			if s < 0 || s > 1 {
				t.Fatalf("score %v out of [0,1] for personality %s carriers %d", s, p.Name, carriers)
			}
		}
	}
}

func TestCloseUnprofitableRouteAfterToleranceWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	al := &models.Airline{ID: "c1", Name: "Comp", Cash: 10_000_000, HomeHub: "JFK", Reputation: 50}
	r, err := airline.OpenRoute(al, "JFK", "LAX", 300, 1, rng)
	if err != nil {
		t.Fatalf("open route failed: %v", err)
	}
	r.DailyProfit = -1000

	comp := &models.CompetitorAirline{Airline: al, Personality: Personalities["Balanced"]}
	// days_tolerance = floor(30*0.5) = 15
	closeUnprofitableRoutes(comp, 1+20)
	if r.Active {
		t.Fatal("expected unprofitable route to close after tolerance window")
	}
}

func TestCloseSkipsRouteStillWithinTolerance(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	al := &models.Airline{ID: "c1", Name: "Comp", Cash: 10_000_000, HomeHub: "JFK", Reputation: 50}
	r, _ := airline.OpenRoute(al, "JFK", "LAX", 300, 1, rng)
	r.DailyProfit = -1000
	r.DayOpened = 10

	comp := &models.CompetitorAirline{Airline: al, Personality: Personalities["Balanced"]}
	closeUnprofitableRoutes(comp, 12) // daysOperating=2, tolerance=15
	if !r.Active {
		t.Fatal("expected route still within tolerance window to stay open")
	}
}

func TestAdjustPricesRaisesOnHighLoadFactor(t *testing.T) {
	al := &models.Airline{ID: "c1", Name: "Comp", HomeHub: "JFK"}
	r := &models.Route{ID: "r1", Price: 300, Active: true, LoadFactor: 0.9}
	al.Routes = []*models.Route{r}
	comp := &models.CompetitorAirline{Airline: al, Personality: Personalities["Balanced"]}
	adjustPrices(comp)
	want := 300 + 300*0.05*0.6
	if r.Price != want {
		t.Fatalf("price = %v, want %v", r.Price, want)
	}
}

func TestAdjustPricesNeverDropsBelowFloor(t *testing.T) {
	al := &models.Airline{ID: "c1", Name: "Comp", HomeHub: "JFK"}
	r := &models.Route{ID: "r1", Price: 55, Active: true, LoadFactor: 0.1}
	al.Routes = []*models.Route{r}
	comp := &models.CompetitorAirline{Airline: al, Personality: Personalities["Budget"]}
	adjustPrices(comp)
	if r.Price < MinPriceFloor {
		t.Fatalf("price %v fell below floor %v", r.Price, MinPriceFloor)
	}
}
