package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/homeboard/internal/common"
	"github.com/dmitrijs2005/homeboard/internal/server/models"
	"github.com/dmitrijs2005/homeboard/internal/server/repositories/bookmarks"
	"github.com/dmitrijs2005/homeboard/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// listLimit bounds a single bookmark listing.
const listLimit = 100

const (
	defaultIcon     = "🔗"
	defaultCategory = "general"
)

// defaultBookmarks is the fixed seed set every new account starts with,
// in display order.
var defaultBookmarks = []models.Bookmark{
	{Title: "Google", URL: "https://www.google.com", Icon: "🔍", Category: "search"},
	{Title: "YouTube", URL: "https://www.youtube.com", Icon: "▶️", Category: "entertainment"},
	{Title: "Gmail", URL: "https://mail.google.com", Icon: "📧", Category: "email"},
	{Title: "Wikipedia", URL: "https://en.wikipedia.org", Icon: "📚", Category: "education"},
	{Title: "Translate", URL: "https://translate.google.com", Icon: "🌐", Category: "tools"},
	{Title: "Facebook", URL: "https://www.facebook.com", Icon: "📘", Category: "social"},
}

// seedDefaultBookmarks inserts the default set for a fresh user with
// positions 0..5. Runs against whatever handle it is given, so registration
// can call it inside its transaction.
func seedDefaultBookmarks(ctx context.Context, repo bookmarks.Repository, userID string, now time.Time) error {
	for i, b := range defaultBookmarks {
		bookmark := b
		bookmark.ID = uuid.NewString()
		bookmark.UserID = userID
		bookmark.Position = i
		bookmark.CreatedAt = now
		if err := repo.Insert(ctx, &bookmark); err != nil {
			return err
		}
	}
	return nil
}

// BookmarkService owns each user's ordered bookmark list.
type BookmarkService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewBookmarkService constructs a BookmarkService.
func NewBookmarkService(db *sql.DB, m repomanager.RepositoryManager) *BookmarkService {
	return &BookmarkService{db: db, repomanager: m}
}

// List returns the user's bookmarks sorted ascending by position, capped at
// 100 entries.
func (s *BookmarkService) List(ctx context.Context, userID string) ([]*models.Bookmark, error) {
	result, err := s.repomanager.Bookmarks(s.db).ListByUser(ctx, userID, listLimit)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if result == nil {
		result = []*models.Bookmark{}
	}
	return result, nil
}

// Create appends a bookmark to the end of the user's list. Empty icon and
// category fall back to the defaults. The position is assigned by the store
// as max existing + 1, or 0 for a first bookmark.
func (s *BookmarkService) Create(ctx context.Context, userID, title, url, icon, category string) (*models.Bookmark, error) {
	if icon == "" {
		icon = defaultIcon
	}
	if category == "" {
		category = defaultCategory
	}

	bookmark := &models.Bookmark{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		URL:       url,
		Icon:      icon,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repomanager.Bookmarks(s.db).InsertNext(ctx, bookmark)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return created, nil
}

// Delete removes the bookmark iff it belongs to userID. Absence and foreign
// ownership are both reported as common.ErrorNotFound; remaining positions
// are left untouched.
func (s *BookmarkService) Delete(ctx context.Context, userID, bookmarkID string) error {
	if err := s.repomanager.Bookmarks(s.db).Delete(ctx, userID, bookmarkID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}
