// Package users provides the PostgreSQL-backed repository for account
// persistence.
package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/homeboard/internal/common"
	"github.com/dmitrijs2005/homeboard/internal/dbx"
	"github.com/dmitrijs2005/homeboard/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for unique-constraint breaks.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	prefs, err := json.Marshal(user.Preferences)
	if err != nil {
		return nil, fmt.Errorf("marshal preferences: %w", err)
	}

	query :=
		`INSERT INTO users (id, email, name, password_hash, preferences, created_at, last_login)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	_, err = r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash, prefs, user.CreatedAt, user.LastLogin)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorEmailTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, email, name, password_hash, preferences, created_at, last_login FROM users
		 WHERE email = $1
		 `

	user := &models.User{}
	var prefs []byte
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash, &prefs, &user.CreatedAt, &user.LastLogin)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(prefs, &user.Preferences); err != nil {
		return nil, fmt.Errorf("unmarshal preferences: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) UpdateLastLogin(ctx context.Context, email string, at time.Time) error {
	query :=
		`UPDATE users SET last_login = $2
		 WHERE email = $1
		 `

	res, err := r.db.ExecContext(ctx, query, email, at)
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

func (r *PostgresRepository) UpdatePreferences(ctx context.Context, userID string, prefs models.Preferences) error {

	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	query :=
		`UPDATE users SET preferences = $2
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, userID, data)
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
