package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
)

const bookmarkColumns = `id, user_id, title, description, link, created_at, updated_at`

// BookmarksRepository реализует доступ к закладкам (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных, проверка владельца живёт в сервисе.
type BookmarksRepository struct {
	db *sql.DB
}

func NewBookmarksRepository(db *sql.DB) *BookmarksRepository {
	return &BookmarksRepository{db: db}
}

// Create сохраняет новую закладку и возвращает её вместе с id и датами.
func (r *BookmarksRepository) Create(ctx context.Context, b models.NewBookmark) (*models.Bookmark, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO bookmarks (user_id, title, description, link)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+bookmarkColumns,
		b.UserID, b.Title, b.Description, b.Link,
	)

	bm, err := scanBookmark(row)
	if err != nil {
		return nil, fmt.Errorf("insert bookmark: %w", err)
	}
	return bm, nil
}

// ListByOwner возвращает все закладки пользователя. Пустой результат — пустой срез, не ошибка.
func (r *BookmarksRepository) ListByOwner(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bookmarkColumns+` FROM bookmarks WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select bookmarks: %w", err)
	}
	defer rows.Close()

	out := make([]models.Bookmark, 0)
	for rows.Next() {
		var b models.Bookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.Link, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookmarks: %w", err)
	}
	return out, nil
}

// GetByID ищет закладку без учёта владельца. Нет строки -> ErrNotFound.
func (r *BookmarksRepository) GetByID(ctx context.Context, id int64) (*models.Bookmark, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+bookmarkColumns+` FROM bookmarks WHERE id = $1`,
		id,
	)

	bm, err := scanBookmark(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serr.ErrNotFound
		}
		return nil, fmt.Errorf("select bookmark: %w", err)
	}
	return bm, nil
}

// GetByIDAndOwner ищет закладку конкретного пользователя. Чужая закладка неотличима от отсутствующей.
func (r *BookmarksRepository) GetByIDAndOwner(ctx context.Context, id, userID int64) (*models.Bookmark, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+bookmarkColumns+` FROM bookmarks WHERE id = $1 AND user_id = $2`,
		id, userID,
	)

	bm, err := scanBookmark(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serr.ErrNotFound
		}
		return nil, fmt.Errorf("select bookmark: %w", err)
	}
	return bm, nil
}

// Update применяет только переданные поля.
func (r *BookmarksRepository) Update(ctx context.Context, id int64, p models.BookmarkPatch) (*models.Bookmark, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE bookmarks SET
			title       = COALESCE($2, title),
			description = COALESCE($3, description),
			link        = COALESCE($4, link),
			updated_at  = now()
		 WHERE id = $1
		 RETURNING `+bookmarkColumns,
		id, p.Title, p.Description, p.Link,
	)

	bm, err := scanBookmark(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serr.ErrNotFound
		}
		return nil, fmt.Errorf("update bookmark: %w", err)
	}
	return bm, nil
}

// Delete удаляет закладку. 0 затронутых строк -> ErrNotFound.
func (r *BookmarksRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}

func scanBookmark(row *sql.Row) (*models.Bookmark, error) {
	var b models.Bookmark
	err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Description, &b.Link, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
