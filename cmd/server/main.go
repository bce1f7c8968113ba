// @title           Bookmarks API
// @version         1.0
// @description     Multi-tenant bookmark service.
// @description     Provides signup/signin with bearer tokens and per-user bookmark CRUD.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:3333
// @BasePath  /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
// Package main содержит точку входа сервера закладок.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - подключение к базе данных и миграции;
//   - создание репозиториев, сервисов, middleware и HTTP-обработчиков;
//   - запуск сервера и graceful shutdown по SIGINT, SIGTERM, SIGQUIT.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/api"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/config"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/middleware"
	h "github.com/IvanChernomyrdin/go-bookmarks/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/repository"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/service"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/go-bookmarks/swagger/docs"
)

const configPath = "./configs/server.yaml"

func main() {
	// до чтения конфига пишем в лог с дефолтными настройками
	sugar := logger.NewHTTPLogger(logger.Options{}).Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("no .env file loaded, error: %v", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		sugar.Fatal(err)
	}

	httpLogger := logger.NewHTTPLogger(cfg.Log.LoggerOptions())
	defer httpLogger.Sync()
	sugar = httpLogger.Sugar()

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	// подключаем базу данных и накатываем миграции
	db, err := config.OpenDB(ctx, cfg, httpLogger)
	if err != nil {
		sugar.Fatal(err)
	}
	defer db.Close()

	// создаём репы
	repos := service.Repositories{
		Users:     repository.NewUsersRepository(db),
		Bookmarks: repository.NewBookmarksRepository(db),
	}
	svc := service.NewServices(repos, cfg)
	verifier := middleware.NewJWTVerifier(cfg.JWTConfig())
	handler := api.NewHandler(svc, httpLogger, verifier, cfg.Server.MaxBodyBytes)
	router := h.NewRouter(handler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		var err error
		if cfg.TLS.Enabled {
			sugar.Infof("server started on https://%s", addr)
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			sugar.Infof("server started on http://%s", addr)
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единая обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Errorf("server stopped with error: %v", err)
		return
	}
	sugar.Info("server gracefully stopped")
}
