// Package competition splits a city pair's demand across every carrier
// serving it, generalizing the score-and-normalize shape used by the AI's
// ScoreRoute route-opening heuristic from "score one candidate" to "score
// and normalize every incumbent."
package competition

import "airlinetycoon/internal/models"

// Weights for the composite score.
const (
	priceWeight      = 0.40
	reputationWeight = 0.35
	serviceWeight    = 0.25
)

// PlayerServiceQuality is the player's assumed service score, since the
// player has no personality-driven service_quality trait.
const PlayerServiceQuality = 0.6

// Carrier is one competitor-on-a-city-pair input to Solve.
type Carrier struct {
	ID             string
	Price          float64
	Reputation     float64 // 0..100
	ServiceQuality float64 // 0..1
}

// Solve returns each carrier's market share, keyed by ID, for a single city
// pair. Shares always sum to 1.0 (within float rounding) when len(carriers)
// >= 1. A single carrier always gets a share of 1.0, skipping the scoring
// math entirely.
func Solve(carriers []Carrier) map[string]float64 {
	shares := make(map[string]float64, len(carriers))
	if len(carriers) == 0 {
		return shares
	}
	if len(carriers) == 1 {
		shares[carriers[0].ID] = 1.0
		return shares
	}

	minPrice, maxPrice := carriers[0].Price, carriers[0].Price
	for _, c := range carriers[1:] {
		if c.Price < minPrice {
			minPrice = c.Price
		}
		if c.Price > maxPrice {
			maxPrice = c.Price
		}
	}

	scores := make(map[string]float64, len(carriers))
	total := 0.0
	for _, c := range carriers {
		priceScore := 1.0
		if maxPrice > minPrice {
			priceScore = 0.3 + 0.7*(maxPrice-c.Price)/(maxPrice-minPrice)
		}
		reputationScore := c.Reputation / 100.0
		serviceScore := c.ServiceQuality
		score := priceWeight*priceScore + reputationWeight*reputationScore + serviceWeight*serviceScore
		scores[c.ID] = score
		total += score
	}

	for id, score := range scores {
		if total <= 0 {
			shares[id] = 1.0 / float64(len(carriers))
			continue
		}
		shares[id] = score / total
	}
	return shares
}

// CityPairCarriers collects every Carrier serving the given city pair across
// the player airline and its competitors, keyed for Solve. The player's
// service quality is the fixed PlayerServiceQuality; competitors
// use their AIPersonality's ServiceQuality.
func CityPairCarriers(pairKey string, player *models.Airline, competitors []*models.CompetitorAirline) []Carrier {
	var out []Carrier
	if player != nil {
		if r := routeOnPair(player, pairKey); r != nil {
			out = append(out, Carrier{ID: player.ID, Price: r.Price, Reputation: player.Reputation, ServiceQuality: PlayerServiceQuality})
		}
	}
	for _, comp := range competitors {
		if comp == nil || comp.Airline == nil {
			continue
		}
		if r := routeOnPair(comp.Airline, pairKey); r != nil {
			out = append(out, Carrier{ID: comp.Airline.ID, Price: r.Price, Reputation: comp.Airline.Reputation, ServiceQuality: comp.Personality.ServiceQuality})
		}
	}
	return out
}

func routeOnPair(al *models.Airline, pairKey string) *models.Route {
	for _, r := range al.Routes {
		if r.Active && r.CityPairKey() == pairKey {
			return r
		}
	}
	return nil
}
