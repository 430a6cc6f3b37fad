package catalog

import "strings"

// DefaultDistanceNM is returned for any airport pair absent from the table:
// lookup tries both orderings; a miss returns 1000.
const DefaultDistanceNM = 1000.0

// distances is a sparse, symmetric mapping from unordered airport-code pairs
// to nautical miles: hand-listed approximate great-circle distances between
// the 15 catalog airports (see DESIGN.md OQ-3). Any pair not listed here
// falls back to DefaultDistanceNM.
var distances = map[[2]string]float64{
	{"JFK", "LAX"}: 2475, {"JFK", "ORD"}: 740, {"JFK", "ATL"}: 760,
	{"JFK", "DFW"}: 1390, {"JFK", "MIA"}: 1090, {"JFK", "SEA"}: 2420,
	{"JFK", "LAS"}: 2248, {"JFK", "BOS"}: 187, {"JFK", "SFO"}: 2586,
	{"JFK", "DEN"}: 1626, {"JFK", "PHX"}: 2145, {"JFK", "MSP"}: 1028,
	{"JFK", "DTW"}: 508, {"JFK", "PHL"}: 83,

	{"LAX", "ORD"}: 1745, {"LAX", "ATL"}: 1946, {"LAX", "DFW"}: 1235,
	{"LAX", "MIA"}: 2342, {"LAX", "SEA"}: 954, {"LAX", "LAS"}: 236,
	{"LAX", "SFO"}: 337, {"LAX", "DEN"}: 860, {"LAX", "PHX"}: 370,

	{"ORD", "ATL"}: 606, {"ORD", "DFW"}: 802, {"ORD", "DEN"}: 888,
	{"ORD", "MSP"}: 334, {"ORD", "DTW"}: 235, {"ORD", "PHL"}: 668,

	{"ATL", "DFW"}: 731, {"ATL", "MIA"}: 594, {"ATL", "PHX"}: 1587,
	{"ATL", "DEN"}: 1199, {"ATL", "BOS"}: 942,

	{"DFW", "DEN"}: 641, {"DFW", "PHX"}: 868, {"DFW", "MSP"}: 853,

	{"MIA", "BOS"}: 1258,
	{"SEA", "DEN"}: 1021, {"SEA", "SFO"}: 679,
	{"LAS", "PHX"}: 256,
	{"BOS", "PHL"}: 280,
	{"DEN", "PHX"}: 586,
	{"MSP", "DTW"}: 528,
	{"DTW", "PHL"}: 453,
}

// DistanceNM returns the distance in nautical miles between two airport
// codes, trying both orderings, falling back to DefaultDistanceNM on a miss.
func DistanceNM(a, b string) float64 {
	a = strings.ToUpper(strings.TrimSpace(a))
	b = strings.ToUpper(strings.TrimSpace(b))
	if d, ok := distances[[2]string{a, b}]; ok {
		return d
	}
	if d, ok := distances[[2]string{b, a}]; ok {
		return d
	}
	return DefaultDistanceNM
}
