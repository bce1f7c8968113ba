package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/utils"
)

var userCols = []string{"id", "email", "hash", "first_name", "last_name", "created_at", "updated_at"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

// Успех
func TestUsersRepository_Create_OK(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("test@mail.com", "hash", "Ivan", nil).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(1, "test@mail.com", "hash", "Ivan", nil, now, now))

	u, err := repo.Create(context.Background(), models.NewUser{
		Email:        "test@mail.com",
		PasswordHash: "hash",
		FirstName:    utils.Ptr("Ivan"),
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, "Ivan", *u.FirstName)
	require.Nil(t, u.LastName)
}

// Такой пользователь уже есть
func TestUsersRepository_Create_AlreadyExists(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), models.NewUser{Email: "test@mail.com", PasswordHash: "hash"})
	require.ErrorIs(t, err, serr.ErrAlreadyExists)
}

// Прочие ошибки не подменяются
func TestUsersRepository_Create_OtherErrorPropagates(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)

	dbErr := errors.New("connection reset")
	mock.ExpectQuery(`INSERT INTO users`).WillReturnError(dbErr)

	_, err := repo.Create(context.Background(), models.NewUser{Email: "a@b.c", PasswordHash: "h"})
	require.ErrorIs(t, err, dbErr)
	require.NotErrorIs(t, err, serr.ErrAlreadyExists)
}

func TestUsersRepository_GetByEmail(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email`).
		WithArgs("a@b.c").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(3, "a@b.c", "h", nil, nil, now, now))

	u, err := repo.GetByEmail(context.Background(), "a@b.c")
	require.NoError(t, err)
	require.Equal(t, int64(3), u.ID)
	require.Equal(t, "h", u.PasswordHash)
}

func TestUsersRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE email`).
		WithArgs("nobody@b.c").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@b.c")
	require.ErrorIs(t, err, serr.ErrNotFound)
}

func TestUsersRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE id`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(userCols))

	_, err := repo.GetByID(context.Background(), 9)
	require.ErrorIs(t, err, serr.ErrNotFound)
}

func TestUsersRepository_Update(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)
	now := time.Now()

	mock.ExpectQuery(`UPDATE users SET`).
		WithArgs(int64(3), "new@b.c", nil, nil).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(3, "new@b.c", "h", nil, nil, now, now))

	u, err := repo.Update(context.Background(), 3, models.UserPatch{Email: utils.Ptr("new@b.c")})
	require.NoError(t, err)
	require.Equal(t, "new@b.c", u.Email)
}

func TestUsersRepository_Update_EmailTaken(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`UPDATE users SET`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Update(context.Background(), 3, models.UserPatch{Email: utils.Ptr("taken@b.c")})
	require.ErrorIs(t, err, serr.ErrAlreadyExists)
}
