package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/utils"
)

var bookmarkCols = []string{"id", "user_id", "title", "description", "link", "created_at", "updated_at"}

func TestBookmarksRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewBookmarksRepository(db)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO bookmarks`).
		WithArgs(int64(1), "Test bookmark", nil, "http://test.bookmark.co").
		WillReturnRows(sqlmock.NewRows(bookmarkCols).
			AddRow(10, 1, "Test bookmark", nil, "http://test.bookmark.co", now, now))

	bm, err := repo.Create(context.Background(), models.NewBookmark{
		UserID: 1,
		Title:  "Test bookmark",
		Link:   utils.Ptr("http://test.bookmark.co"),
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), bm.ID)
	require.Equal(t, int64(1), bm.UserID)
	require.Nil(t, bm.Description)
}

// Пустой список — не ошибка и не nil
func TestBookmarksRepository_ListByOwner_Empty(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewBookmarksRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM bookmarks WHERE user_id`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(bookmarkCols))

	list, err := repo.ListByOwner(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestBookmarksRepository_ListByOwner(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewBookmarksRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM bookmarks WHERE user_id`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(bookmarkCols).
			AddRow(1, 1, "a", nil, nil, now, now).
			AddRow(2, 1, "b", "desc", nil, now, now))

	list, err := repo.ListByOwner(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "desc", *list[1].Description)
}

func TestBookmarksRepository_GetByIDAndOwner_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewBookmarksRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM bookmarks WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(5), int64(2)).
		WillReturnRows(sqlmock.NewRows(bookmarkCols))

	_, err := repo.GetByIDAndOwner(context.Background(), 5, 2)
	require.ErrorIs(t, err, serr.ErrNotFound)
}

func TestBookmarksRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewBookmarksRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM bookmarks WHERE id = \$1$`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(bookmarkCols).AddRow(5, 7, "t", nil, nil, now, now))

	bm, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, int64(7), bm.UserID)
}

// nil в патче уходит в COALESCE как NULL: старое значение link остаётся
func TestBookmarksRepository_Update(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewBookmarksRepository(db)
	now := time.Now()

	mock.ExpectQuery(`UPDATE bookmarks SET`).
		WithArgs(int64(5), "Updated", nil, nil).
		WillReturnRows(sqlmock.NewRows(bookmarkCols).AddRow(5, 7, "Updated", nil, "http://x", now, now))

	bm, err := repo.Update(context.Background(), 5, models.BookmarkPatch{Title: utils.Ptr("Updated")})
	require.NoError(t, err)
	require.Equal(t, "Updated", bm.Title)
	require.Equal(t, "http://x", *bm.Link)
}

func TestBookmarksRepository_Delete(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewBookmarksRepository(db)

	mock.ExpectExec(`DELETE FROM bookmarks`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 5))
}

func TestBookmarksRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewBookmarksRepository(db)

	mock.ExpectExec(`DELETE FROM bookmarks`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.Delete(context.Background(), 5), serr.ErrNotFound)
}

func TestBookmarksRepository_Delete_DBError(t *testing.T) {
	db, mock := newMock(t)
	repo := repository.NewBookmarksRepository(db)

	dbErr := errors.New("boom")
	mock.ExpectExec(`DELETE FROM bookmarks`).WillReturnError(dbErr)

	require.ErrorIs(t, repo.Delete(context.Background(), 5), dbErr)
}
