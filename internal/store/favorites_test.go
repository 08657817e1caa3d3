package store

import (
	"context"
	"slices"
	"testing"

	"github.com/erazemk/kultur/internal/db"
)

func TestFavoritesRoundTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := AddFavorite(ctx, database, "x"); err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	fav, err := IsFavorite(ctx, database, "x")
	if err != nil {
		t.Fatalf("IsFavorite: %v", err)
	}
	if !fav {
		t.Error("expected x to be favorite after add")
	}

	if err := RemoveFavorite(ctx, database, "x"); err != nil {
		t.Fatalf("RemoveFavorite: %v", err)
	}
	fav, _ = IsFavorite(ctx, database, "x")
	if fav {
		t.Error("expected x not to be favorite after remove")
	}
}

func TestFavoritesIdempotent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	for range 2 {
		if err := AddFavorite(ctx, database, "a"); err != nil {
			t.Fatalf("AddFavorite: %v", err)
		}
	}
	ids, _ := ListFavoriteIDs(ctx, database)
	if len(ids) != 1 {
		t.Errorf("expected 1 favorite after double add, got %v", ids)
	}

	for range 2 {
		if err := RemoveFavorite(ctx, database, "missing"); err != nil {
			t.Fatalf("RemoveFavorite of absent id: %v", err)
		}
	}
}

func TestListFavoriteIDs(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddFavorite(ctx, database, "b")
	AddFavorite(ctx, database, "a")

	ids, err := ListFavoriteIDs(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(ids, []string{"a", "b"}) {
		t.Errorf("expected [a b], got %v", ids)
	}
}

func TestToggleFavorite(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	on, err := ToggleFavorite(ctx, database, "k")
	if err != nil || !on {
		t.Fatalf("first toggle = %v, %v; want true", on, err)
	}
	on, err = ToggleFavorite(ctx, database, "k")
	if err != nil || on {
		t.Fatalf("second toggle = %v, %v; want false", on, err)
	}
	if fav, _ := IsFavorite(ctx, database, "k"); fav {
		t.Error("expected k not to be favorite after two toggles")
	}
}

func TestFavoritesPersistAcrossReopen(t *testing.T) {
	path := db.TestDBPath(t)
	ctx := context.Background()

	first := db.OpenTestDB(t, path)
	if err := AddFavorite(ctx, first, "kept"); err != nil {
		t.Fatal(err)
	}
	first.Close()

	second := db.OpenTestDB(t, path)
	fav, err := IsFavorite(ctx, second, "kept")
	if err != nil {
		t.Fatal(err)
	}
	if !fav {
		t.Error("expected favorite to survive reopen")
	}
}
