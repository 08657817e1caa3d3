package asset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/erazemk/kultur/assets"
	"github.com/erazemk/kultur/internal/model"
)

// Loader reads bundled JSON resources from a file system.
type Loader struct {
	fsys fs.FS
}

// NewLoader returns a loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Embedded returns a loader over the resources compiled into the binary.
func Embedded() *Loader {
	return NewLoader(assets.FS())
}

// Dir returns a loader over an asset directory on disk.
func Dir(path string) *Loader {
	return NewLoader(os.DirFS(path))
}

// ReadText returns the raw content of a resource.
func (l *Loader) ReadText(name string) (string, error) {
	data, err := l.read(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (l *Loader) read(name string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, &DecodeError{Resource: name, Index: -1, Err: err}
	}
	return data, nil
}

// decode unmarshals a resource into target. Unknown fields are ignored;
// anything after the top-level value is an error.
func (l *Loader) decode(name string, target any) error {
	data, err := l.read(name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, target); err != nil {
		derr := &DecodeError{Resource: name, Index: -1, Err: err}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			derr.Field = typeErr.Field
		}
		return derr
	}
	return nil
}

type cultureItemsFile struct {
	CultureItems *[]cultureItemRecord `json:"cultureItems"`
}

type cultureItemRecord struct {
	ID                    *string  `json:"id"`
	Title                 *string  `json:"title"`
	Category              *string  `json:"category"`
	Summary               *string  `json:"summary"`
	Content               *string  `json:"content"`
	CoverImageDrawable    string   `json:"coverImageDrawable"`
	GalleryImageDrawables []string `json:"galleryImageDrawables"`
	Tags                  []string `json:"tags"`
	PlaceID               *string  `json:"placeId"`
	CreatedAt             int64    `json:"createdAt"`
}

// LoadCultureItems decodes the culture items resource, an object holding a
// "cultureItems" list.
func (l *Loader) LoadCultureItems(name string) ([]model.CultureItem, error) {
	var file cultureItemsFile
	if err := l.decode(name, &file); err != nil {
		return nil, err
	}
	if file.CultureItems == nil {
		return nil, &DecodeError{Resource: name, Index: -1, Field: "cultureItems", Err: ErrMissingField}
	}

	items := make([]model.CultureItem, 0, len(*file.CultureItems))
	for i, r := range *file.CultureItems {
		err := requireFields(
			field{"id", r.ID},
			field{"title", r.Title},
			field{"category", r.Category},
			field{"summary", r.Summary},
			field{"content", r.Content},
		)
		if err != nil {
			err.Resource, err.Index = name, i
			return nil, err
		}

		items = append(items, model.CultureItem{
			ID:             *r.ID,
			Title:          *r.Title,
			Category:       *r.Category,
			Summary:        *r.Summary,
			Content:        *r.Content,
			CoverImage:     r.CoverImageDrawable,
			GalleryImages:  nonNil(r.GalleryImageDrawables),
			Tags:           nonNil(r.Tags),
			PlaceID:        r.PlaceID,
			CreatedAtMilli: r.CreatedAt,
		})
	}
	return items, nil
}

type placeRecord struct {
	ID          *string  `json:"id"`
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Address     *string  `json:"address"`
	Description *string  `json:"description"`
	ImageURL    string   `json:"imageUrl"`
}

// LoadPlaces decodes the places resource, a top-level array.
func (l *Loader) LoadPlaces(name string) ([]model.Place, error) {
	var records []placeRecord
	if err := l.decode(name, &records); err != nil {
		return nil, err
	}

	places := make([]model.Place, 0, len(records))
	for i, r := range records {
		err := requireFields(
			field{"id", r.ID},
			field{"name", r.Name},
			field{"type", r.Type},
			field{"lat", r.Lat},
			field{"lng", r.Lng},
			field{"address", r.Address},
			field{"description", r.Description},
		)
		if err != nil {
			err.Resource, err.Index = name, i
			return nil, err
		}

		places = append(places, model.Place{
			ID:          *r.ID,
			Name:        *r.Name,
			Type:        *r.Type,
			Lat:         *r.Lat,
			Lng:         *r.Lng,
			Address:     *r.Address,
			Description: *r.Description,
			ImageURL:    r.ImageURL,
		})
	}
	return places, nil
}

type eventRecord struct {
	ID          *string `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	PlaceID     *string `json:"placeId"`
	ImageURL    string  `json:"imageUrl"`
}

// LoadEvents decodes the events resource, a top-level array.
func (l *Loader) LoadEvents(name string) ([]model.Event, error) {
	var records []eventRecord
	if err := l.decode(name, &records); err != nil {
		return nil, err
	}

	events := make([]model.Event, 0, len(records))
	for i, r := range records {
		err := requireFields(
			field{"id", r.ID},
			field{"title", r.Title},
			field{"description", r.Description},
			field{"startDate", r.StartDate},
			field{"endDate", r.EndDate},
			field{"placeId", r.PlaceID},
		)
		if err != nil {
			err.Resource, err.Index = name, i
			return nil, err
		}

		events = append(events, model.Event{
			ID:          *r.ID,
			Title:       *r.Title,
			Description: *r.Description,
			StartDate:   *r.StartDate,
			EndDate:     *r.EndDate,
			PlaceID:     *r.PlaceID,
			ImageURL:    r.ImageURL,
		})
	}
	return events, nil
}

type field struct {
	name  string
	value any
}

// requireFields returns a DecodeError for the first field whose value is a nil pointer.
func requireFields(fields ...field) *DecodeError {
	for _, f := range fields {
		missing := false
		switch v := f.value.(type) {
		case *string:
			missing = v == nil
		case *float64:
			missing = v == nil
		default:
			panic(fmt.Sprintf("asset: unsupported required field type %T", v))
		}
		if missing {
			return &DecodeError{Field: f.name, Err: ErrMissingField}
		}
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
