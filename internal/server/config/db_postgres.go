// Подключение к PostgreSQL и миграции.
//
// OpenDB:
//   - открывает пул соединений через драйвер pgx (database/sql);
//   - применяет настройки пула из DBConfig;
//   - проверяет доступность базы (Ping с таймаутом);
//   - при включённых миграциях накатывает их через golang-migrate.
//
// Глобального *sql.DB нет: пул возвращается вызывающему и передаётся
// в репозитории явно.
package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/logger"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
)

// OpenDB открывает подключение к базе данных, проверяет его и применяет миграции.
//
// Если миграции уже применены, migrate.ErrNoChange не считается ошибкой.
// При любой ошибке пул закрывается и возвращается nil.
func OpenDB(ctx context.Context, cfg *Config, log *logger.HTTPLogger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	applyPool(db, cfg.DB)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DB.PingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if cfg.Migrations.Enabled {
		if err := runMigrations(db, cfg.Migrations.Path); err != nil {
			db.Close()
			return nil, err
		}
		log.Info("migrations applied successfully", zap.String("path", cfg.Migrations.Path))
	}

	return db, nil
}

// applyPool переносит настройки пула, нулевые значения оставляют дефолты database/sql.
func applyPool(db *sql.DB, c DBConfig) {
	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(c.ConnMaxLifetime)
	}
	if c.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(c.ConnMaxIdleTime)
	}
}

// runMigrations накатывает миграции из sourceURL (например file://migrations/postgres).
func runMigrations(db *sql.DB, sourceURL string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrations: %w", err)
	}

	// m.Close() не зовём: он закроет и переданный *sql.DB
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
