package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
)

// AuthService реализует регистрацию и вход.
// Своего состояния не хранит: одна запись или чтение в БД и выдача токена.
type AuthService struct {
	users  UsersRepo
	hasher PasswordHasher
	jwt    crypto.JWTConfig
}

func NewAuthService(users UsersRepo, hasher PasswordHasher, jwt crypto.JWTConfig) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		jwt:    jwt,
	}
}

// SignupInput — данные регистрации, уже прошедшие валидацию DTO.
type SignupInput struct {
	Email     string
	Password  string
	FirstName *string
	LastName  *string
}

// Signup регистрирует пользователя и сразу выдаёт ему access-токен.
//
// Ошибки:
//   - ErrAlreadyExists — email уже занят
//   - всё прочее пробрасывается как есть (500)
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (string, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, models.NewUser{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	})
	if err != nil {
		return "", err
	}

	return s.issue(user)
}

// Signin проверяет пароль и выдаёт новый access-токен.
//
// Ошибки:
//   - ErrUserNotFound — email не зарегистрирован
//   - ErrInvalidCredentials — пароль не подошёл
func (s *AuthService) Signin(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return "", serr.ErrUserNotFound
		}
		return "", err
	}

	ok, err := s.hasher.Verify(user.PasswordHash, password)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", serr.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (string, error) {
	token, err := crypto.NewAccessToken(user.ID, user.Email, s.jwt)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
