// Серверные модели пользователя и закладки
package models

import (
	"time"

	shared "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    *string
	LastName     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser — данные для вставки нового пользователя.
type NewUser struct {
	Email        string
	PasswordHash string
	FirstName    *string
	LastName     *string
}

// UserPatch — частичное обновление, nil означает «не трогать».
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

func (p UserPatch) Empty() bool {
	return p.Email == nil && p.FirstName == nil && p.LastName == nil
}

// ToAPI убирает хэш пароля.
func (u *User) ToAPI() shared.User {
	return shared.User{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
