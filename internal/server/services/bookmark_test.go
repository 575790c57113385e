package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/homeboard/internal/common"
	"github.com/dmitrijs2005/homeboard/internal/server/models"
)

func TestBookmarkList_ReturnsRows(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeBookmarksRepo{listOut: []*models.Bookmark{
		{ID: "b-1", UserID: "u-1", Title: "Google", Position: 0},
		{ID: "b-2", UserID: "u-1", Title: "YouTube", Position: 1},
	}}
	s := NewBookmarkService(db, &fakeRepoManager{u: &fakeUsersRepo{}, b: repo})

	got, err := s.List(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].Position != 0 || got[1].Position != 1 {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestBookmarkList_EmptyIsNotNil(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewBookmarkService(db, &fakeRepoManager{u: &fakeUsersRepo{}, b: &fakeBookmarksRepo{}})

	got, err := s.List(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no bookmarks, got %d", len(got))
	}
}

func TestBookmarkCreate_DefaultsApplied(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeBookmarksRepo{nextPosition: 6}
	s := NewBookmarkService(db, &fakeRepoManager{u: &fakeUsersRepo{}, b: repo})

	got, err := s.Create(context.Background(), "u-1", "Blog", "https://blog.example", "", "")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.Icon != "🔗" || got.Category != "general" {
		t.Fatalf("defaults not applied: icon=%q category=%q", got.Icon, got.Category)
	}
	if got.Position != 6 {
		t.Fatalf("expected position 6, got %d", got.Position)
	}
	if got.ID == "" {
		t.Fatal("expected generated bookmark id")
	}
}

func TestBookmarkCreate_ExplicitFieldsKept(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewBookmarkService(db, &fakeRepoManager{u: &fakeUsersRepo{}, b: &fakeBookmarksRepo{}})

	got, err := s.Create(context.Background(), "u-1", "Blog", "https://blog.example", "📝", "reading")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.Icon != "📝" || got.Category != "reading" {
		t.Fatalf("explicit fields overridden: icon=%q category=%q", got.Icon, got.Category)
	}
}

func TestBookmarkDelete_NotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewBookmarkService(db, &fakeRepoManager{u: &fakeUsersRepo{}, b: &fakeBookmarksRepo{delErr: common.ErrorNotFound}})

	err := s.Delete(context.Background(), "u-2", "b-1")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestBookmarkDelete_InfrastructureError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewBookmarkService(db, &fakeRepoManager{u: &fakeUsersRepo{}, b: &fakeBookmarksRepo{delErr: errors.New("db down")}})

	err := s.Delete(context.Background(), "u-1", "b-1")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected common.ErrorInternal, got %v", err)
	}
}
