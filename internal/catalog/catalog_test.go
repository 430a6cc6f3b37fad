package catalog

import (
	"os"
	"testing"

	"airlinetycoon/internal/models"
	"gopkg.in/yaml.v3"
)

type yamlAirport struct {
	Code       string  `yaml:"code"`
	Market     string  `yaml:"market"`
	LandingFee float64 `yaml:"landing_fee"`
	Hub        bool    `yaml:"hub"`
}

func marketFromString(s string) models.MarketSize {
	switch s {
	case "Small":
		return models.Small
	case "Medium":
		return models.Medium
	case "Large":
		return models.Large
	case "VeryLarge":
		return models.VeryLarge
	}
	return -1
}

// TestAirportsMatchYAMLFixture cross-checks the compiled Go literals against
// the checked-in YAML source of truth, catching drift between the two.
func TestAirportsMatchYAMLFixture(t *testing.T) {
	data, err := os.ReadFile("testdata/airports.yaml")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	var fixture []yamlAirport
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	if len(fixture) != len(Airports) {
		t.Fatalf("fixture has %d airports, catalog has %d", len(fixture), len(Airports))
	}
	for _, f := range fixture {
		got, ok := AirportByCode(f.Code)
		if !ok {
			t.Fatalf("catalog missing airport %s present in fixture", f.Code)
		}
		if got.Market != marketFromString(f.Market) {
			t.Errorf("%s: market = %v, fixture wants %s", f.Code, got.Market, f.Market)
		}
		if got.LandingFee != f.LandingFee {
			t.Errorf("%s: landing fee = %v, fixture wants %v", f.Code, got.LandingFee, f.LandingFee)
		}
		if got.Hub != f.Hub {
			t.Errorf("%s: hub = %v, fixture wants %v", f.Code, got.Hub, f.Hub)
		}
	}
}

func TestAirportCatalogSize(t *testing.T) {
	if len(Airports) != 15 {
		t.Fatalf("expected 15 airports, got %d", len(Airports))
	}
}

func TestAircraftTypeCatalogSize(t *testing.T) {
	if len(AircraftTypes) != 5 {
		t.Fatalf("expected 5 aircraft types, got %d", len(AircraftTypes))
	}
}

func TestDistanceNMBothOrderingsAndFallback(t *testing.T) {
	if d := DistanceNM("JFK", "LAX"); d != 2475 {
		t.Errorf("JFK->LAX = %v, want 2475", d)
	}
	if d := DistanceNM("LAX", "JFK"); d != 2475 {
		t.Errorf("LAX->JFK = %v, want 2475", d)
	}
	if d := DistanceNM("JFK", "SEA"); d != 2420 {
		t.Errorf("JFK->SEA = %v, want 2420", d)
	}
	if d := DistanceNM("BOS", "DEN"); d != DefaultDistanceNM {
		t.Errorf("unmapped pair = %v, want %v", d, DefaultDistanceNM)
	}
}

func TestAircraftTypeDerivedValues(t *testing.T) {
	b738, ok := AircraftTypeByName("Boeing 737-800")
	if !ok {
		t.Fatal("expected Boeing 737-800 in catalog")
	}
	if got, want := b738.MonthlyLease(), 90_000_000*0.012; got != want {
		t.Errorf("MonthlyLease() = %v, want %v", got, want)
	}
	if got, want := b738.SaleValue(), 90_000_000*0.70; got != want {
		t.Errorf("SaleValue() = %v, want %v", got, want)
	}
	if got, want := b738.LeaseTerminationPenalty(), 2*90_000_000*0.012; got != want {
		t.Errorf("LeaseTerminationPenalty() = %v, want %v", got, want)
	}
}
