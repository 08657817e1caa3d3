// Package app wires the catalogs and the favorites store into the single
// object graph a process runs with.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/erazemk/kultur/assets"
	"github.com/erazemk/kultur/internal/asset"
	"github.com/erazemk/kultur/internal/catalog"
	"github.com/erazemk/kultur/internal/config"
	"github.com/erazemk/kultur/internal/db"
	"github.com/erazemk/kultur/internal/favorites"
	"github.com/erazemk/kultur/internal/model"
	"github.com/erazemk/kultur/internal/store"
)

// App holds the long-lived components. Build it once with New.
type App struct {
	Culture   *catalog.Culture
	Places    *catalog.Places
	Events    *catalog.Events
	Covers    *catalog.Covers
	Favorites favorites.Store

	// DB is the SQLite database holding settings and token revocations. It
	// also backs favorites when the sqlite backend is selected.
	DB          *sql.DB
	TokenSecret string
	Config      *config.Config
}

// Catalogs holds the three catalogs loaded from the asset bundle.
type Catalogs struct {
	Culture *catalog.Culture
	Places  *catalog.Places
	Events  *catalog.Events
}

// LoadCatalogs decodes the three bundled resources concurrently and returns
// the first DecodeError encountered. A cancelled ctx stops loads that have
// not started yet.
func LoadCatalogs(ctx context.Context, loader *asset.Loader) (*Catalogs, error) {
	var (
		items  []model.CultureItem
		places []model.Place
		events []model.Event
	)

	g, gctx := errgroup.WithContext(ctx)
	load := func(f func() error) {
		g.Go(func() error {
			// Skip the work once ctx is cancelled or another load failed.
			if err := gctx.Err(); err != nil {
				return err
			}
			return f()
		})
	}
	load(func() (err error) {
		items, err = loader.LoadCultureItems(assets.CultureItems)
		return err
	})
	load(func() (err error) {
		places, err = loader.LoadPlaces(assets.Places)
		return err
	})
	load(func() (err error) {
		events, err = loader.LoadEvents(assets.Events)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Catalogs{
		Culture: catalog.NewCulture(items),
		Places:  catalog.NewPlaces(places),
		Events:  catalog.NewEvents(events),
	}, nil
}

// NewLoader returns the asset loader selected by cfg.
func NewLoader(cfg *config.Config) *asset.Loader {
	if cfg.AssetDir != "" {
		return asset.Dir(cfg.AssetDir)
	}
	return asset.Embedded()
}

// New loads every catalog, opens the SQLite database and the configured
// favorites backend. Any failure aborts startup.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	cats, err := LoadCatalogs(ctx, NewLoader(cfg))
	if err != nil {
		return nil, fmt.Errorf("loading catalogs: %w", err)
	}
	slog.Info("catalogs loaded",
		"culture_items", len(cats.Culture.All()),
		"places", len(cats.Places.All()),
		"events", len(cats.Events.Upcoming()),
	)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(database); err != nil {
		database.Close()
		return nil, err
	}

	fav, err := openFavorites(ctx, cfg, database)
	if err != nil {
		database.Close()
		return nil, err
	}

	secret := cfg.Token.Secret
	if secret == "" {
		secret, err = store.GetTokenSecret(ctx, database)
		if err != nil {
			fav.Close()
			database.Close()
			return nil, err
		}
	}

	slog.Info("favorites store ready", "backend", cfg.Favorites.Backend)

	return &App{
		Culture:     cats.Culture,
		Places:      cats.Places,
		Events:      cats.Events,
		Covers:      catalog.NewCovers(),
		Favorites:   fav,
		DB:          database,
		TokenSecret: secret,
		Config:      cfg,
	}, nil
}

func openFavorites(ctx context.Context, cfg *config.Config, database *sql.DB) (favorites.Store, error) {
	switch cfg.Favorites.Backend {
	case config.BackendRedis:
		r := cfg.Favorites.Redis
		return favorites.OpenRedis(ctx, r.Addr, r.Password, r.DB, r.Key)
	case config.BackendPostgres:
		return favorites.OpenPostgres(ctx, cfg.Favorites.PostgresURL)
	default:
		return favorites.NewSQLStore(database), nil
	}
}

// SavedItems resolves the favorites set into culture items, newest first.
// Favorited ids that no longer resolve are skipped.
func (a *App) SavedItems(ctx context.Context) ([]model.CultureItem, error) {
	ids, err := a.Favorites.AllIDs(ctx)
	if err != nil {
		return nil, err
	}
	return a.Culture.ByIDs(ids), nil
}

// Close releases the favorites store and the database.
func (a *App) Close() error {
	ferr := a.Favorites.Close()
	derr := a.DB.Close()
	if ferr != nil {
		return ferr
	}
	return derr
}
