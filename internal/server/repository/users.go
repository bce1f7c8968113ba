package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
)

// SQLSTATE unique_violation
const pgUniqueViolation = "23505"

const userColumns = `id, email, hash, first_name, last_name, created_at, updated_at`

// UsersRepository — хранилище пользователей (PostgreSQL).
type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create вставляет пользователя.
// Занятый email -> ErrAlreadyExists, прочие ошибки оборачиваются как есть.
func (r *UsersRepository) Create(ctx context.Context, u models.NewUser) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, hash, first_name, last_name)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		u.Email, u.PasswordHash, u.FirstName, u.LastName,
	)

	user, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, serr.ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// GetByEmail возвращает ErrNotFound, если пользователя нет.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	return r.one(row, "select user by email")
}

func (r *UsersRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	)
	return r.one(row, "select user by id")
}

// Update применяет только переданные поля (COALESCE оставляет старые значения для NULL).
func (r *UsersRepository) Update(ctx context.Context, id int64, p models.UserPatch) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE users SET
			email      = COALESCE($2, email),
			first_name = COALESCE($3, first_name),
			last_name  = COALESCE($4, last_name),
			updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, p.Email, p.FirstName, p.LastName,
	)

	user, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, serr.ErrAlreadyExists
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serr.ErrNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (r *UsersRepository) one(row *sql.Row, op string) (*models.User, error) {
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serr.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
