package catalog

import "airlinetycoon/internal/models"

// AircraftTypes is the fixed 5-model catalog.
var AircraftTypes = []models.AircraftType{
	{Name: "Embraer E175", Category: models.Regional, Capacity: 76, RangeMiles: 2200, PurchasePrice: 30_000_000, OperatingCostPerHr: 2_500, FuelGalPerHr: 450},
	{Name: "Boeing 737-800", Category: models.NarrowBody, Capacity: 162, RangeMiles: 3000, PurchasePrice: 90_000_000, OperatingCostPerHr: 4_500, FuelGalPerHr: 850},
	{Name: "Airbus A320", Category: models.NarrowBody, Capacity: 150, RangeMiles: 3300, PurchasePrice: 85_000_000, OperatingCostPerHr: 4_200, FuelGalPerHr: 820},
	{Name: "Boeing 787-9", Category: models.WideBody, Capacity: 280, RangeMiles: 7635, PurchasePrice: 250_000_000, OperatingCostPerHr: 8_500, FuelGalPerHr: 1_650},
	{Name: "Airbus A380", Category: models.Jumbo, Capacity: 525, RangeMiles: 8000, PurchasePrice: 445_000_000, OperatingCostPerHr: 15_000, FuelGalPerHr: 3_100},
}

// DefaultFleetReference is the model the AI engine's fleet-expansion step
// benchmarks cash thresholds against.
const DefaultFleetReference = "Boeing 737-800"

var aircraftByName map[string]models.AircraftType

func init() {
	aircraftByName = make(map[string]models.AircraftType, len(AircraftTypes))
	for _, t := range AircraftTypes {
		aircraftByName[t.Name] = t
	}
}

// AircraftTypeByName looks up an aircraft type by exact catalog name.
func AircraftTypeByName(name string) (models.AircraftType, bool) {
	t, ok := aircraftByName[name]
	return t, ok
}
