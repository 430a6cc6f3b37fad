package eventengine

import (
	"math/rand"
	"testing"

	"airlinetycoon/internal/models"
)

func TestTemplatePoolHasAtLeast60Entries(t *testing.T) {
	if len(templates) < 60 {
		t.Fatalf("expected >=60 templates, got %d", len(templates))
	}
	kinds := map[models.EventKind]bool{}
	severities := map[models.EventSeverity]bool{}
	for _, tpl := range templates {
		kinds[tpl.Kind] = true
		severities[tpl.Severity] = true
	}
	if len(kinds) != 6 {
		t.Errorf("expected 6 distinct kinds, got %d", len(kinds))
	}
	if len(severities) != 4 {
		t.Errorf("expected 4 distinct severities, got %d", len(severities))
	}
}

func TestRollProducesSomeEventsOverManyDays(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	fired := 0
	for day := 1; day <= 500; day++ {
		if r := Roll(rng, day, "air1", 0); r != nil {
			fired++
			if r.Event.DayOccurred != day {
				t.Errorf("day occurred = %d, want %d", r.Event.DayOccurred, day)
			}
		}
	}
	if fired == 0 {
		t.Fatal("expected at least one event to fire over 500 days")
	}
}

func TestExpireEventsDropsExpiredKeepsActive(t *testing.T) {
	events := []*models.GameEvent{
		{ID: "a", DayOccurred: 1, DurationDays: 3},  // active 1,2,3 -> expired by day 5
		{ID: "b", DayOccurred: 4, DurationDays: 5},  // active 4..8
		{ID: "c", DayOccurred: 5, DurationDays: 0},  // instantaneous, never active
	}
	kept := ExpireEvents(events, 5)
	ids := map[string]bool{}
	for _, e := range kept {
		ids[e.ID] = true
	}
	if ids["a"] {
		t.Error("expected event a to have expired by day 5")
	}
	if !ids["b"] {
		t.Error("expected event b to still be active on day 5")
	}
	if ids["c"] {
		t.Error("expected instantaneous event c to never be active")
	}
}

func TestInstantaneousEventNeverActiveAfterOccurrence(t *testing.T) {
	e := &models.GameEvent{DayOccurred: 10, DurationDays: 0}
	if e.ActiveOn(10) || e.ActiveOn(11) {
		t.Fatal("instantaneous event should never be active")
	}
}
