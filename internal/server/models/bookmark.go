package models

import (
	"time"

	shared "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

type Bookmark struct {
	ID          int64
	UserID      int64
	Title       string
	Description *string
	Link        *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NewBookmark struct {
	UserID      int64
	Title       string
	Description *string
	Link        *string
}

type BookmarkPatch struct {
	Title       *string
	Description *string
	Link        *string
}

func (p BookmarkPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Link == nil
}

func (b *Bookmark) ToAPI() shared.Bookmark {
	return shared.Bookmark{
		ID:          b.ID,
		UserID:      b.UserID,
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// BookmarksToAPI всегда возвращает не-nil срез, чтобы в JSON был [] а не null.
func BookmarksToAPI(items []Bookmark) []shared.Bookmark {
	out := make([]shared.Bookmark, 0, len(items))
	for i := range items {
		out = append(out, items[i].ToAPI())
	}
	return out
}
