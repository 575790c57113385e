// Package bookmarks provides the PostgreSQL-backed repository for per-user
// ordered bookmark lists.
package bookmarks

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/homeboard/internal/common"
	"github.com/dmitrijs2005/homeboard/internal/dbx"
	"github.com/dmitrijs2005/homeboard/internal/server/models"
)

// PostgresRepository implements bookmark storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert stores a bookmark with an explicit position. Used when seeding the
// default set, where positions 0..5 are fixed.
func (r *PostgresRepository) Insert(ctx context.Context, bookmark *models.Bookmark) error {
	query := `
		INSERT INTO bookmarks (id, user_id, title, url, icon, category, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		bookmark.ID, bookmark.UserID, bookmark.Title, bookmark.URL,
		bookmark.Icon, bookmark.Category, bookmark.Position, bookmark.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// InsertNext stores a bookmark at the end of the owner's list. The position
// is computed inside the statement (max existing + 1, or 0 for an empty
// list), so two concurrent appends cannot read the same max from separate
// round trips.
func (r *PostgresRepository) InsertNext(ctx context.Context, bookmark *models.Bookmark) (*models.Bookmark, error) {
	query := `
		INSERT INTO bookmarks (id, user_id, title, url, icon, category, position, created_at)
		SELECT $1, $2, $3, $4, $5, $6, COALESCE(MAX(position) + 1, 0), $7
		FROM bookmarks WHERE user_id = $2
		RETURNING position
	`
	err := r.db.QueryRowContext(ctx, query,
		bookmark.ID, bookmark.UserID, bookmark.Title, bookmark.URL,
		bookmark.Icon, bookmark.Category, bookmark.CreatedAt).Scan(&bookmark.Position)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return bookmark, nil
}

// ListByUser returns the owner's bookmarks sorted ascending by position,
// capped at limit rows.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Bookmark, error) {
	query := `
		SELECT id, user_id, title, url, icon, category, position, created_at FROM bookmarks
		WHERE user_id = $1
		ORDER BY position ASC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Bookmark
	for rows.Next() {
		var item models.Bookmark
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.URL,
			&item.Icon, &item.Category, &item.Position, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the bookmark iff it belongs to userID. A missing row and a
// row owned by someone else are both reported as common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, userID, bookmarkID string) error {
	query := `
		DELETE FROM bookmarks
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, bookmarkID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
