package savecodec

import (
	"os"
	"path/filepath"
	"testing"

	"airlinetycoon/internal/models"
)

func sampleDocument() Document {
	return Document{
		Seed:       42,
		CurrentDay: 7,
		Player: AirlineDocument{
			ID:          "player",
			AirlineName: "Test Air",
			Cash:        1_000_000,
			HomeHub:     "JFK",
			Reputation:  55,
			Routes: []*models.Route{
				{ID: "r1", Origin: "JFK", Destination: "LAX", Price: 300, Active: true, DailyFlights: 1},
			},
		},
		Fuel: models.FuelMarketState{Price: 3.25, EMA: 3.1, Trend: 0.01, DaysSinceTrend: 5},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := sampleDocument()
	data, err := Encode(doc)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.Seed != doc.Seed || got.CurrentDay != doc.CurrentDay {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", got, doc)
	}
	if got.Player.AirlineName != doc.Player.AirlineName || got.Player.Cash != doc.Player.Cash {
		t.Fatalf("player round-trip mismatch: got %+v, want %+v", got.Player, doc.Player)
	}
	if len(got.Player.Routes) != 1 || got.Player.Routes[0].ID != "r1" {
		t.Fatalf("route round-trip mismatch: %+v", got.Player.Routes)
	}
}

func TestEncodeSetsVersion(t *testing.T) {
	data, err := Encode(Document{})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.Version != CurrentVersion {
		t.Fatalf("version = %d, want %d", got.Version, CurrentVersion)
	}
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	raw := []byte(`{"Version":1,"Seed":9,"CurrentDay":3,"TotallyUnknownField":"surprise","Player":{"AirlineName":"X"}}`)
	doc, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode should tolerate unknown fields, got error: %v", err)
	}
	if doc.Seed != 9 || doc.Player.AirlineName != "X" {
		t.Fatalf("unexpected decode result: %+v", doc)
	}
}

func TestWriteFileThenReadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	data, _ := Encode(sampleDocument())
	if err := WriteFile(dir, "save1.json", data); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := ReadFile(dir, "save1.json")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(got) != string(data) {
		t.Fatal("round-tripped bytes do not match")
	}
	if _, err := os.Stat(filepath.Join(dir, "save1.json.tmp")); !os.IsNotExist(err) {
		t.Fatal("tmp file left behind after atomic write")
	}
}

func TestListSavesReturnsSummaryPerFile(t *testing.T) {
	dir := t.TempDir()
	for i, name := range []string{"a.json", "b.json"} {
		doc := sampleDocument()
		doc.CurrentDay = i + 1
		data, _ := Encode(doc)
		if err := WriteFile(dir, name, data); err != nil {
			t.Fatalf("write %s failed: %v", name, err)
		}
	}
	summaries, err := ListSaves(dir)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
}

func TestListSavesOnMissingDirReturnsEmpty(t *testing.T) {
	summaries, err := ListSaves(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("expected no error for missing dir, got %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("expected empty summaries, got %v", summaries)
	}
}
