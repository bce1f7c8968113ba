// Package service содержит бизнес-логику сервиса закладок.
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/config"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users     UsersRepo
	Bookmarks BookmarksRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth      *AuthService
	Users     *UsersService
	Bookmarks *BookmarksService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хэширования пароля и выдачи токенов).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:      NewAuthService(repos.Users, crypto.NewArgon2Hasher(cfg.Argon2Params()), cfg.JWTConfig()),
		Users:     NewUsersService(repos.Users),
		Bookmarks: NewBookmarksService(repos.Bookmarks),
	}
}

// UsersRepo — хранилище пользователей.
// Create возвращает ErrAlreadyExists при занятом email, Get* — ErrNotFound.
type UsersRepo interface {
	Create(ctx context.Context, u models.NewUser) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, p models.UserPatch) (*models.User, error)
}

// BookmarksRepo — хранилище закладок, владельца не проверяет.
type BookmarksRepo interface {
	Create(ctx context.Context, b models.NewBookmark) (*models.Bookmark, error)
	ListByOwner(ctx context.Context, userID int64) ([]models.Bookmark, error)
	GetByID(ctx context.Context, id int64) (*models.Bookmark, error)
	GetByIDAndOwner(ctx context.Context, id, userID int64) (*models.Bookmark, error)
	Update(ctx context.Context, id int64, p models.BookmarkPatch) (*models.Bookmark, error)
	Delete(ctx context.Context, id int64) error
}

// PasswordHasher — хэширование паролей.
// Verify возвращает false без ошибки, если пароль просто не совпал.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(encoded, password string) (bool, error)
}
