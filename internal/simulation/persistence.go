package simulation

import (
	"math/rand"

	"airlinetycoon/internal/models"
	"airlinetycoon/internal/savecodec"
)

func toAirlineDocument(al *models.Airline) savecodec.AirlineDocument {
	return savecodec.AirlineDocument{
		ID:                   al.ID,
		AirlineName:          al.Name,
		Cash:                 al.Cash,
		HomeHub:              al.HomeHub,
		Reputation:           al.Reputation,
		Routes:               al.Routes,
		Fleet:                al.Fleet,
		Events:               al.Events,
		CumulativePassengers: al.CumulativePassengers,
		CumulativeRevenue:    al.CumulativeRevenue,
		CumulativeCosts:      al.CumulativeCosts,
		RecentEvents:         al.RecentEvents,
	}
}

func fromAirlineDocument(doc savecodec.AirlineDocument) *models.Airline {
	return &models.Airline{
		ID:                   doc.ID,
		Name:                 doc.AirlineName,
		Cash:                 doc.Cash,
		HomeHub:              doc.HomeHub,
		Reputation:           doc.Reputation,
		Routes:               doc.Routes,
		Fleet:                doc.Fleet,
		Events:               doc.Events,
		CumulativePassengers: doc.CumulativePassengers,
		CumulativeRevenue:    doc.CumulativeRevenue,
		CumulativeCosts:      doc.CumulativeCosts,
		RecentEvents:         doc.RecentEvents,
	}
}

// ToDocument converts this World to its portable save representation.
// Callers must hold no expectation of round-tripping the RNG cursor
// itself: every subsystem re-derives its stream from (Seed, label,
// CurrentDay), so CurrentDay and Seed alone are sufficient for replay.
func (w *World) ToDocument() savecodec.Document {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc := savecodec.Document{
		Seed:       w.Seed,
		CurrentDay: w.CurrentDay,
		ActionSeq:  w.ActionSeq,
		Player:     toAirlineDocument(w.Player),
		Fuel:       w.Fuel,
	}
	for _, comp := range w.Competitors {
		doc.Competitors = append(doc.Competitors, savecodec.CompetitorDocument{
			Airline:     toAirlineDocument(comp.Airline),
			Personality: comp.Personality,
		})
	}
	return doc
}

// FromDocument rebuilds a World from a save document.
func FromDocument(doc savecodec.Document) *World {
	w := &World{
		Seed:          doc.Seed,
		SchemaVersion: SchemaVersion,
		CurrentDay:    doc.CurrentDay,
		ActionSeq:     doc.ActionSeq,
		Player:        fromAirlineDocument(doc.Player),
		Fuel:          doc.Fuel,
		rng:           rand.New(rand.NewSource(doc.Seed)),
	}
	for _, cd := range doc.Competitors {
		w.Competitors = append(w.Competitors, &models.CompetitorAirline{
			Airline:     fromAirlineDocument(cd.Airline),
			Personality: cd.Personality,
		})
	}
	return w
}

// Save serializes the World to its portable byte form.
func (w *World) Save() ([]byte, error) {
	return savecodec.Encode(w.ToDocument())
}

// Load deserializes a World from its portable byte form.
func Load(data []byte) (*World, error) {
	doc, err := savecodec.Decode(data)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc), nil
}

// SaveToDir writes the World to dir/name (name should end in ".json"),
// using savecodec's atomic write.
func (w *World) SaveToDir(dir, name string) error {
	data, err := w.Save()
	if err != nil {
		return err
	}
	return savecodec.WriteFile(dir, name, data)
}

// LoadFromDir reads and decodes a World previously written by SaveToDir.
func LoadFromDir(dir, name string) (*World, error) {
	data, err := savecodec.ReadFile(dir, name)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// ReplaceWith overwrites w's fields with other's, in place, so existing
// pointers to w observe the loaded state. It copies field-by-field rather
// than `*w = *other` so it never copies w's mutex.
func (w *World) ReplaceWith(other *World) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Seed = other.Seed
	w.SchemaVersion = other.SchemaVersion
	w.Player = other.Player
	w.Competitors = other.Competitors
	w.Fuel = other.Fuel
	w.CurrentDay = other.CurrentDay
	w.ActionSeq = other.ActionSeq
	w.rng = other.rng
}

// ListSaves enumerates save files in dir.
func ListSaves(dir string) ([]savecodec.Summary, error) {
	return savecodec.ListSaves(dir)
}
