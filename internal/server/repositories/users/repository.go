package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/homeboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, email string, at time.Time) error
	UpdatePreferences(ctx context.Context, userID string, prefs models.Preferences) error
}
