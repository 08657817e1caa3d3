package app

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/kultur/assets"
	"github.com/erazemk/kultur/internal/asset"
	"github.com/erazemk/kultur/internal/catalog"
	"github.com/erazemk/kultur/internal/config"
	"github.com/erazemk/kultur/internal/db"
)

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.DBPath = db.TestDBPath(t)
	return cfg
}

func TestNewWithEmbeddedAssets(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	// One catalog entry per entry in the bundled resources.
	assert.Len(t, a.Culture.All(), countEntries(t, assets.CultureItems))
	assert.Len(t, a.Places.All(), countEntries(t, assets.Places))
	assert.Len(t, a.Events.Upcoming(), countEntries(t, assets.Events))
	assert.Len(t, a.TokenSecret, 64)
}

// countEntries counts the raw records in an embedded resource without the
// loader's validation.
func countEntries(t *testing.T, name string) int {
	t.Helper()
	text, err := asset.Embedded().ReadText(name)
	require.NoError(t, err)

	if name == assets.CultureItems {
		var file struct {
			CultureItems []json.RawMessage `json:"cultureItems"`
		}
		require.NoError(t, json.Unmarshal([]byte(text), &file))
		return len(file.CultureItems)
	}
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(text), &list))
	return len(list)
}

func TestLoadCatalogsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadCatalogs(ctx, asset.Embedded())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewUsesConfiguredSecret(t *testing.T) {
	cfg := testConfig(t)
	cfg.Token.Secret = "configured"

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	assert.Equal(t, "configured", a.TokenSecret)
}

func TestNewFailsOnBrokenAssets(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("culture_items.json", `{"cultureItems": []}`)
	write("places.json", `[]`)
	write("events.json", `[{"id": "e1"}]`)

	cfg := testConfig(t)
	cfg.AssetDir = dir

	_, err := New(context.Background(), cfg)
	var derr *asset.DecodeError
	require.True(t, errors.As(err, &derr), "expected DecodeError, got %v", err)
	assert.Equal(t, "events.json", derr.Resource)
}

func TestSavedItems(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	first := a.Culture.All()[0]
	require.NoError(t, a.Favorites.Add(ctx, first.ID))
	require.NoError(t, a.Favorites.Add(ctx, "stale-id"))

	saved, err := a.SavedItems(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, first.ID, saved[0].ID)
}

func TestFavoritesSurviveRestart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	a, err := New(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, a.Favorites.Add(ctx, "c_kora"))
	_, err = a.Culture.AddPost(postInput())
	require.NoError(t, err)
	require.NoError(t, a.Close())

	b, err := New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })

	fav, err := b.Favorites.IsFavorite(ctx, "c_kora")
	require.NoError(t, err)
	assert.True(t, fav)
	// Submitted stories are held in memory only.
	assert.Empty(t, b.Culture.Posts())
}

func postInput() catalog.PostInput {
	return catalog.PostInput{Title: "t", Category: "Food", Summary: "s", Content: "c"}
}
