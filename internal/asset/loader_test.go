package asset

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/kultur/assets"
)

func mapLoader(files map[string]string) *Loader {
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return NewLoader(fsys)
}

func TestLoadCultureItemsDefaults(t *testing.T) {
	l := mapLoader(map[string]string{
		"culture.json": `{
			"version": 3,
			"cultureItems": [
				{"id": "a", "title": "A", "category": "Music", "summary": "s", "content": "c", "unknown": true},
				{"id": "b", "title": "B", "category": "Food", "summary": "s", "content": "c",
				 "coverImageDrawable": "cover", "galleryImageDrawables": ["g1", "g2"],
				 "tags": ["t"], "placeId": "p1", "createdAt": 42}
			]
		}`,
	})

	items, err := l.LoadCultureItems("culture.json")
	require.NoError(t, err)
	require.Len(t, items, 2)

	a := items[0]
	assert.Equal(t, "a", a.ID)
	assert.Equal(t, "", a.CoverImage)
	assert.Equal(t, []string{}, a.GalleryImages)
	assert.Equal(t, []string{}, a.Tags)
	assert.Nil(t, a.PlaceID)
	assert.Equal(t, int64(0), a.CreatedAtMilli)

	b := items[1]
	assert.Equal(t, "cover", b.CoverImage)
	assert.Equal(t, []string{"g1", "g2"}, b.GalleryImages)
	assert.Equal(t, []string{"t"}, b.Tags)
	require.NotNil(t, b.PlaceID)
	assert.Equal(t, "p1", *b.PlaceID)
	assert.Equal(t, int64(42), b.CreatedAtMilli)
}

func TestLoadCultureItemsMissingField(t *testing.T) {
	l := mapLoader(map[string]string{
		"culture.json": `{"cultureItems": [
			{"id": "a", "title": "A", "category": "Music", "summary": "s", "content": "c"},
			{"id": "b", "category": "Music", "summary": "s", "content": "c"}
		]}`,
	})

	_, err := l.LoadCultureItems("culture.json")
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "culture.json", derr.Resource)
	assert.Equal(t, 1, derr.Index)
	assert.Equal(t, "title", derr.Field)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestLoadCultureItemsMissingList(t *testing.T) {
	l := mapLoader(map[string]string{"culture.json": `{"items": []}`})

	_, err := l.LoadCultureItems("culture.json")
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "cultureItems", derr.Field)
}

func TestLoadWrongType(t *testing.T) {
	l := mapLoader(map[string]string{
		"places.json": `[{"id": "p", "name": "n", "type": "t", "lat": "north", "lng": 1,
			"address": "a", "description": "d"}]`,
	})

	_, err := l.LoadPlaces("places.json")
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Contains(t, derr.Field, "lat")
}

func TestLoadMalformed(t *testing.T) {
	l := mapLoader(map[string]string{"events.json": `[{"id": `})

	_, err := l.LoadEvents("events.json")
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, -1, derr.Index)
}

func TestLoadTrailingData(t *testing.T) {
	l := mapLoader(map[string]string{
		"places.json": `[{"id": "p", "name": "n", "type": "t", "lat": 13.4, "lng": -16.5,
			"address": "a", "description": "d"}] }}} not json`,
	})

	places, err := l.LoadPlaces("places.json")
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "places.json", derr.Resource)
	assert.Nil(t, places)
}

func TestLoadMissingResource(t *testing.T) {
	l := mapLoader(nil)

	_, err := l.LoadEvents("events.json")
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = l.ReadText("events.json")
	assert.Error(t, err)
}

func TestLoadPlacesAndEvents(t *testing.T) {
	l := mapLoader(map[string]string{
		"places.json": `[{"id": "p", "name": "n", "type": "t", "lat": 13.4, "lng": -16.5,
			"address": "a", "description": "d"}]`,
		"events.json": `[{"id": "e", "title": "t", "description": "d", "startDate": "2025-01-01",
			"endDate": "2025-01-02", "placeId": "p", "extra": [1, 2]}]`,
	})

	places, err := l.LoadPlaces("places.json")
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, 13.4, places[0].Lat)
	assert.Equal(t, "", places[0].ImageURL)

	events, err := l.LoadEvents("events.json")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "p", events[0].PlaceID)
	assert.Equal(t, "", events[0].ImageURL)
}

func TestLoadEventsMissingPlace(t *testing.T) {
	l := mapLoader(map[string]string{
		"events.json": `[{"id": "e", "title": "t", "description": "d", "startDate": "2025-01-01",
			"endDate": "2025-01-02", "placeId": null}]`,
	})

	_, err := l.LoadEvents("events.json")
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "placeId", derr.Field)
}

func TestEmbeddedBundle(t *testing.T) {
	l := Embedded()

	items, err := l.LoadCultureItems(assets.CultureItems)
	require.NoError(t, err)
	assert.NotEmpty(t, items)

	places, err := l.LoadPlaces(assets.Places)
	require.NoError(t, err)
	assert.NotEmpty(t, places)

	events, err := l.LoadEvents(assets.Events)
	require.NoError(t, err)
	assert.NotEmpty(t, events)
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &DecodeError{Resource: "places.json", Index: 2, Field: "name", Err: ErrMissingField}
	assert.Equal(t, `decoding places.json: item 2: field "name": missing required field`, err.Error())
}
