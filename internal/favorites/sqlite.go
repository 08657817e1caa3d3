package favorites

import (
	"context"
	"database/sql"

	"github.com/erazemk/kultur/internal/db"
	"github.com/erazemk/kultur/internal/store"
)

// SQLStore keeps favorites in the embedded SQLite database.
type SQLStore struct {
	DB *sql.DB
}

var _ Store = (*SQLStore)(nil)

// NewSQLStore returns a store over an already opened database.
func NewSQLStore(database *sql.DB) *SQLStore {
	return &SQLStore{DB: database}
}

// OpenSQLite opens (creating if needed) the database at path and ensures the schema.
func OpenSQLite(path string) (*SQLStore, error) {
	database, err := db.Open(path)
	if err != nil {
		return nil, wrap("open", "", err)
	}
	if err := db.EnsureSchema(database); err != nil {
		database.Close()
		return nil, wrap("open", "", err)
	}
	return NewSQLStore(database), nil
}

func (s *SQLStore) AllIDs(ctx context.Context) ([]string, error) {
	ids, err := store.ListFavoriteIDs(ctx, s.DB)
	if err != nil {
		return nil, wrap("list", "", err)
	}
	return sortedIDs(ids), nil
}

func (s *SQLStore) IsFavorite(ctx context.Context, id string) (bool, error) {
	ok, err := store.IsFavorite(ctx, s.DB, id)
	return ok, wrap("check", id, err)
}

func (s *SQLStore) Add(ctx context.Context, id string) error {
	return wrap("add", id, store.AddFavorite(ctx, s.DB, id))
}

func (s *SQLStore) Remove(ctx context.Context, id string) error {
	return wrap("remove", id, store.RemoveFavorite(ctx, s.DB, id))
}

func (s *SQLStore) Toggle(ctx context.Context, id string) (bool, error) {
	on, err := store.ToggleFavorite(ctx, s.DB, id)
	return on, wrap("toggle", id, err)
}

func (s *SQLStore) Close() error {
	return s.DB.Close()
}
