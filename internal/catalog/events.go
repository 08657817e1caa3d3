package catalog

import (
	"slices"
	"strings"

	"github.com/erazemk/kultur/internal/model"
)

// Events holds the bundled events, kept sorted by start date.
type Events struct {
	upcoming []model.Event
}

// NewEvents returns a catalog over events. Start dates are compared as
// strings, which is chronological only for ISO-8601 dates.
func NewEvents(events []model.Event) *Events {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b model.Event) int {
		return strings.Compare(a.StartDate, b.StartDate)
	})
	return &Events{upcoming: sorted}
}

// Upcoming returns a copy of all events ordered by ascending start date.
func (e *Events) Upcoming() []model.Event {
	return slices.Clone(e.upcoming)
}

// ByID returns the first event with the given id.
func (e *Events) ByID(id string) (model.Event, bool) {
	for _, ev := range e.upcoming {
		if ev.ID == id {
			return ev, true
		}
	}
	return model.Event{}, false
}

// AtPlace returns the events held at placeID, ordered by start date.
func (e *Events) AtPlace(placeID string) []model.Event {
	var out []model.Event
	for _, ev := range e.upcoming {
		if ev.PlaceID == placeID {
			out = append(out, ev)
		}
	}
	return out
}
