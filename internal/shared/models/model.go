// Package models содержит JSON-модели HTTP API, общие для сервера и CLI.
//
// Теги validate используются сервером (go-playground/validator), клиент их игнорирует.
// Необязательные поля описаны указателями: nil означает «поле не передано».
package models

import (
	"strings"
	"time"
)

// AuthRequest — тело запросов регистрации и входа.
//
// Используется в:
//
//	POST /auth/signup
//	POST /auth/signin
//
// FirstName/LastName учитываются только при регистрации, при входе игнорируются.
type AuthRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// Normalize обрезает пробелы вокруг email.
func (r *AuthRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

// TokenResponse — ответ на успешные signup/signin.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// User — пользователь в том виде, как его видит клиент. Хэша пароля здесь нет и быть не должно.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EditUserRequest — частичное обновление профиля.
//
// Используется в:
//
//	PATCH /users
type EditUserRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitnil,email"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// Bookmark — закладка пользователя.
//
// Поля:
//   - ID: идентификатор закладки
//   - UserID: владелец, не меняется после создания
//   - Title: обязательный заголовок
//   - Description/Link: необязательные поля
type Bookmark struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Link        *string   `json:"link,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Normalize обрезает пробелы вокруг email, если он передан.
func (r *EditUserRequest) Normalize() {
	if r.Email != nil {
		e := strings.TrimSpace(*r.Email)
		r.Email = &e
	}
}

// CreateBookmarkRequest — запрос на создание закладки.
//
// Используется в:
//
//	POST /bookmarks
type CreateBookmarkRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty"`
}

// EditBookmarkRequest — частичное обновление закладки по ID.
//
// Используется в:
//
//	PATCH /bookmarks/{id}
//
// Переданные поля заменяют старые значения, остальные остаются как есть.
// Если title передан, он не может быть пустым.
type EditBookmarkRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitnil,min=1"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty"`
}

// ErrorResponse — стандартный формат ошибки API.
type ErrorResponse struct {
	Error string `json:"error"`
}
