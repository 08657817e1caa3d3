package catalog

import (
	"slices"
	"strings"

	"github.com/erazemk/kultur/internal/model"
)

// Places holds the bundled places in source order.
type Places struct {
	places []model.Place
}

// NewPlaces returns a catalog over places.
func NewPlaces(places []model.Place) *Places {
	return &Places{places: slices.Clone(places)}
}

// All returns a copy of the places in source order.
func (p *Places) All() []model.Place {
	return slices.Clone(p.places)
}

// ByID returns the first place with the given id.
func (p *Places) ByID(id string) (model.Place, bool) {
	for _, place := range p.places {
		if place.ID == id {
			return place, true
		}
	}
	return model.Place{}, false
}

// Search returns places whose name or type contains query, case-insensitively.
// A blank query returns all places.
func (p *Places) Search(query string) []model.Place {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return p.All()
	}
	var out []model.Place
	for _, place := range p.places {
		if strings.Contains(strings.ToLower(place.Name), q) ||
			strings.Contains(strings.ToLower(place.Type), q) {
			out = append(out, place)
		}
	}
	return out
}
