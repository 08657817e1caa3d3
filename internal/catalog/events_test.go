package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/erazemk/kultur/internal/model"
)

func eventIDs(events []model.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func TestUpcomingSortedByStartDate(t *testing.T) {
	e := NewEvents([]model.Event{
		{ID: "march", StartDate: "2025-03-01", PlaceID: "p1"},
		{ID: "xmas", StartDate: "2024-12-25", PlaceID: "p2"},
	})

	got := e.Upcoming()
	if got[0].ID != "xmas" {
		t.Errorf("expected 2024-12-25 event first, got %q", got[0].ID)
	}
}

func TestUpcomingStable(t *testing.T) {
	e := NewEvents([]model.Event{
		{ID: "b", StartDate: "2025-01-01"},
		{ID: "a", StartDate: "2025-01-01"},
		{ID: "c", StartDate: "2024-01-01"},
	})
	if diff := cmp.Diff([]string{"c", "b", "a"}, eventIDs(e.Upcoming())); diff != "" {
		t.Errorf("Upcoming() mismatch (-want +got):\n%s", diff)
	}
}

func TestUpcomingDoesNotMutateInput(t *testing.T) {
	src := []model.Event{{ID: "late", StartDate: "2026"}, {ID: "early", StartDate: "2020"}}
	NewEvents(src)
	if src[0].ID != "late" {
		t.Error("NewEvents must not reorder the caller's slice")
	}
}

func TestEventsByIDAndPlace(t *testing.T) {
	e := NewEvents([]model.Event{
		{ID: "e1", StartDate: "2025-05-17", PlaceID: "p1"},
		{ID: "e2", StartDate: "2024-12-25", PlaceID: "p2"},
		{ID: "e3", StartDate: "2025-01-10", PlaceID: "p1"},
	})

	if got, ok := e.ByID("e2"); !ok || got.PlaceID != "p2" {
		t.Errorf("ByID(e2) = %+v, %v", got, ok)
	}
	if _, ok := e.ByID("missing"); ok {
		t.Error("expected not found")
	}

	if diff := cmp.Diff([]string{"e3", "e1"}, eventIDs(e.AtPlace("p1"))); diff != "" {
		t.Errorf("AtPlace(p1) mismatch (-want +got):\n%s", diff)
	}
	if got := e.AtPlace("none"); len(got) != 0 {
		t.Errorf("expected no events, got %v", eventIDs(got))
	}
}

func TestUpcomingCallerCannotReorder(t *testing.T) {
	e := NewEvents([]model.Event{
		{ID: "a", StartDate: "2025-01-01"},
		{ID: "b", StartDate: "2025-02-01"},
	})

	got := e.Upcoming()
	got[0], got[1] = got[1], got[0]
	got[0].Title = "hijacked"

	if diff := cmp.Diff([]string{"a", "b"}, eventIDs(e.Upcoming())); diff != "" {
		t.Errorf("catalog order changed (-want +got):\n%s", diff)
	}
	if ev, _ := e.ByID("b"); ev.Title != "" {
		t.Errorf("catalog event mutated: %q", ev.Title)
	}
}
