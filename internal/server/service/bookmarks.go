package service

import (
	"context"
	"errors"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
)

// BookmarksService реализует CRUD закладок в рамках одного пользователя.
// userID всегда приходит из middleware, сервис сам никого не аутентифицирует.
type BookmarksService struct {
	repo BookmarksRepo
}

func NewBookmarksService(repo BookmarksRepo) *BookmarksService {
	return &BookmarksService{repo: repo}
}

// CreateInput — поля новой закладки.
type CreateInput struct {
	Title       string
	Description *string
	Link        *string
}

func (s *BookmarksService) Create(ctx context.Context, userID int64, in CreateInput) (*models.Bookmark, error) {
	return s.repo.Create(ctx, models.NewBookmark{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
	})
}

// List возвращает все закладки пользователя, порядок как в хранилище.
func (s *BookmarksService) List(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// GetByID возвращает (nil, nil), если закладки нет или она чужая.
// На чтение это не ошибка, в отличие от Edit/Delete.
func (s *BookmarksService) GetByID(ctx context.Context, userID, id int64) (*models.Bookmark, error) {
	b, err := s.repo.GetByIDAndOwner(ctx, id, userID)
	if errors.Is(err, serr.ErrNotFound) {
		return nil, nil
	}
	return b, err
}

// EditByID меняет только переданные поля своей закладки.
// Пустой patch ничего не пишет и возвращает текущую запись.
func (s *BookmarksService) EditByID(ctx context.Context, userID, id int64, p models.BookmarkPatch) (*models.Bookmark, error) {
	b, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if p.Empty() {
		return b, nil
	}

	updated, err := s.repo.Update(ctx, id, p)
	if errors.Is(err, serr.ErrNotFound) {
		// удалили между проверкой и апдейтом
		return nil, serr.ErrForbidden
	}
	return updated, err
}

func (s *BookmarksService) DeleteByID(ctx context.Context, userID, id int64) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}

	err := s.repo.Delete(ctx, id)
	if errors.Is(err, serr.ErrNotFound) {
		return serr.ErrForbidden
	}
	return err
}

// owned достаёт закладку без учёта владельца и проверяет его.
func (s *BookmarksService) owned(ctx context.Context, userID, id int64) (*models.Bookmark, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, serr.ErrNotFound) {
		return nil, err
	}
	if err := assertOwned(b, userID); err != nil {
		return nil, err
	}
	return b, nil
}

// assertOwned — единственная проверка владельца для всех изменяющих операций.
// Отсутствующая и чужая закладка дают одну и ту же ErrForbidden.
func assertOwned(b *models.Bookmark, userID int64) error {
	if b == nil || b.UserID != userID {
		return serr.ErrForbidden
	}
	return nil
}
