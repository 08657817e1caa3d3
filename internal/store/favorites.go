package store

import (
	"context"
	"database/sql"
	"fmt"
)

// ListFavoriteIDs returns every favorited culture item id.
func ListFavoriteIDs(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT cultureId FROM favorites ORDER BY cultureId`)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// IsFavorite reports whether id is favorited.
func IsFavorite(ctx context.Context, db *sql.DB, id string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorites WHERE cultureId = ?)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking favorite: %w", err)
	}
	return exists, nil
}

// AddFavorite marks id as favorited. Adding an existing id is a no-op.
func AddFavorite(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO favorites (cultureId) VALUES (?)`, id,
	)
	if err != nil {
		return fmt.Errorf("adding favorite: %w", err)
	}
	return nil
}

// RemoveFavorite unmarks id. Removing an absent id is a no-op.
func RemoveFavorite(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM favorites WHERE cultureId = ?`, id)
	if err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}
	return nil
}

// ToggleFavorite flips the favorite state of id in one transaction and
// returns the new state.
func ToggleFavorite(ctx context.Context, db *sql.DB, id string) (bool, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM favorites WHERE cultureId = ?`, id)
	if err != nil {
		return false, fmt.Errorf("toggling favorite: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("toggling favorite: %w", err)
	}

	if removed == 0 {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO favorites (cultureId) VALUES (?)`, id,
		); err != nil {
			return false, fmt.Errorf("toggling favorite: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing transaction: %w", err)
	}
	return removed == 0, nil
}
