package service

import (
	"context"
	"errors"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
)

// UsersService — профиль текущего пользователя.
type UsersService struct {
	users UsersRepo
}

func NewUsersService(users UsersRepo) *UsersService {
	return &UsersService{users: users}
}

// GetMe возвращает пользователя из токена.
// Если строки уже нет (токен пережил пользователя) — ErrUnauthorized.
func (s *UsersService) GetMe(ctx context.Context, userID int64) (*models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, serr.ErrNotFound) {
		return nil, serr.ErrUnauthorized
	}
	return u, err
}

// EditMe меняет только переданные поля. Занятый email -> ErrAlreadyExists.
func (s *UsersService) EditMe(ctx context.Context, userID int64, p models.UserPatch) (*models.User, error) {
	if p.Empty() {
		return s.GetMe(ctx, userID)
	}
	u, err := s.users.Update(ctx, userID, p)
	if errors.Is(err, serr.ErrNotFound) {
		return nil, serr.ErrUnauthorized
	}
	return u, err
}
