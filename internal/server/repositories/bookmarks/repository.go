package bookmarks

import (
	"context"

	"github.com/dmitrijs2005/homeboard/internal/server/models"
)

type Repository interface {
	Insert(ctx context.Context, bookmark *models.Bookmark) error
	InsertNext(ctx context.Context, bookmark *models.Bookmark) (*models.Bookmark, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.Bookmark, error)
	Delete(ctx context.Context, userID, bookmarkID string) error
}
