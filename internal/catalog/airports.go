// Package catalog holds the compiled-in reference data the simulation core
// consults but never mutates: airports, aircraft types, and the distance
// table. These tables are Go literals rather than data loaded at runtime,
// keeping an uppercase-then-lookup convention for ident keys.
package catalog

import (
	"strings"

	"airlinetycoon/internal/models"
)

// Airports is the fixed 15-airport catalog.
var Airports = []models.Airport{
	{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Market: models.VeryLarge, LandingFee: 2500, Hub: true},
	{Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", Market: models.Large, LandingFee: 2200, Hub: true},
	{Code: "ORD", Name: "O'Hare International", City: "Chicago", Market: models.VeryLarge, LandingFee: 2000, Hub: true},
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International", City: "Atlanta", Market: models.VeryLarge, LandingFee: 1800, Hub: true},
	{Code: "DFW", Name: "Dallas/Fort Worth International", City: "Dallas", Market: models.VeryLarge, LandingFee: 1900, Hub: true},
	{Code: "MIA", Name: "Miami International", City: "Miami", Market: models.Large, LandingFee: 1700, Hub: false},
	{Code: "SEA", Name: "Seattle-Tacoma International", City: "Seattle", Market: models.Large, LandingFee: 1600, Hub: false},
	{Code: "LAS", Name: "Harry Reid International", City: "Las Vegas", Market: models.Large, LandingFee: 1500, Hub: false},
	{Code: "BOS", Name: "Logan International", City: "Boston", Market: models.Large, LandingFee: 1800, Hub: false},
	{Code: "SFO", Name: "San Francisco International", City: "San Francisco", Market: models.Large, LandingFee: 2100, Hub: false},
	{Code: "DEN", Name: "Denver International", City: "Denver", Market: models.Medium, LandingFee: 1400, Hub: false},
	{Code: "PHX", Name: "Phoenix Sky Harbor International", City: "Phoenix", Market: models.Medium, LandingFee: 1300, Hub: false},
	{Code: "MSP", Name: "Minneapolis-Saint Paul International", City: "Minneapolis", Market: models.Medium, LandingFee: 1200, Hub: false},
	{Code: "DTW", Name: "Detroit Metropolitan Wayne County", City: "Detroit", Market: models.Medium, LandingFee: 1100, Hub: false},
	{Code: "PHL", Name: "Philadelphia International", City: "Philadelphia", Market: models.Medium, LandingFee: 1300, Hub: false},
}

var airportByCode map[string]models.Airport

func init() {
	airportByCode = make(map[string]models.Airport, len(Airports))
	for _, a := range Airports {
		airportByCode[strings.ToUpper(a.Code)] = a
	}
}

// AirportByCode looks up an airport by its (case-insensitive) code.
func AirportByCode(code string) (models.Airport, bool) {
	a, ok := airportByCode[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}
