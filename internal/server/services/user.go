// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, bearer-token
// authentication, and preference updates.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/homeboard/internal/common"
	"github.com/dmitrijs2005/homeboard/internal/dbx"
	"github.com/dmitrijs2005/homeboard/internal/server/auth"
	"github.com/dmitrijs2005/homeboard/internal/server/config"
	"github.com/dmitrijs2005/homeboard/internal/server/models"
	"github.com/dmitrijs2005/homeboard/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// UserService provides account-related operations:
// - Register: create users along with their default bookmark set
// - Login: verify credentials and mint a session token
// - Authenticate: resolve a bearer token to a user
// - UpdatePreferences: replace the stored preferences document
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BcryptCost,
	}
}

// Register creates a new user with default preferences and the default
// bookmark set, and returns the user together with a session token. The user
// row and the seeded bookmarks are written in one transaction, so a failure
// in either leaves no trace of the account. A duplicate email yields
// common.ErrorEmailTaken.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*models.User, string, error) {

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("error hashing password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Preferences:  models.DefaultPreferences(),
		CreatedAt:    now,
		LastLogin:    now,
	}

	if err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Users(tx).Create(ctx, user); err != nil {
			return err
		}
		return seedDefaultBookmarks(ctx, s.repomanager.Bookmarks(tx), user.ID, now)
	}); err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			return nil, "", common.ErrorEmailTaken
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.generateAccessToken(user.Email)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Login verifies the password for the given email and, on success, updates
// last_login and returns a fresh session token. Unknown email and wrong
// password are both reported as common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	if err := repo.UpdateLastLogin(ctx, email, time.Now().UTC()); err != nil {
		return "", common.ErrorInternal
	}

	return s.generateAccessToken(user.Email)
}

// Authenticate validates a bearer token and returns the user it belongs to.
// Token errors (common.ErrTokenExpired, common.ErrInvalidToken) pass through;
// a token whose subject no longer exists yields common.ErrorUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	email, err := auth.GetSubjectFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// UpdatePreferences replaces the user's preferences document with the given
// one. This is a full replace, not a merge.
func (s *UserService) UpdatePreferences(ctx context.Context, userID string, prefs models.Preferences) error {
	if err := s.repomanager.Users(s.db).UpdatePreferences(ctx, userID, prefs); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}

func (s *UserService) generateAccessToken(email string) (string, error) {
	return auth.GenerateToken(email, s.jwtSecret, s.accessTokenValidityDuration)
}
