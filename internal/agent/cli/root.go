// Package cli реализует командный интерфейс (CLI) клиента сервиса закладок.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку и сохранение access-токена в локальном файле;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/agent/config"
)

const defaultServerURL = "http://127.0.0.1:3333"

// ErrNotLoggedIn — в локальном файле нет токена.
var ErrNotLoggedIn = errors.New("no access_token, run: bookmarks signin")

// App содержит состояние CLI-приложения, разделяемое между командами.
type App struct {
	// ServerURL — базовый URL сервера (например, "http://127.0.0.1:3333").
	ServerURL string
	// CredsPath — путь к файлу с сохранённым access-токеном.
	CredsPath string
	// Creds — загруженные учётные данные. Может быть nil, если загрузка не выполнялась.
	Creds *config.Credentials
}

// token возвращает сохранённый access-токен или ErrNotLoggedIn.
func (a *App) token() (string, error) {
	if a.Creds == nil || a.Creds.AccessToken == "" {
		return "", ErrNotLoggedIn
	}
	return a.Creds.AccessToken, nil
}

// saveToken запоминает токен и пишет его на диск.
func (a *App) saveToken(token, email string) error {
	if a.Creds == nil {
		a.Creds = &config.Credentials{}
	}
	a.Creds.AccessToken = token
	a.Creds.Email = email
	return config.Save(a.CredsPath, a.Creds)
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются командой version.
// В PersistentPreRunE определяется путь к файлу учётных данных и загружается токен.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "bookmarks",
		Short: "Bookmarks CLI — клиент сервиса закладок",
		Long: `Bookmarks CLI.

Команды:
  signup    Регистрация нового пользователя (сразу сохраняет токен)
  signin    Вход (получить access токен)
  me        Профиль текущего пользователя
  bookmark  Закладки: list, get, create, edit, delete
  version   Версия и дата сборки

Примеры:
  bookmarks signup --email test@gmail.com --password 123
  bookmarks signin --email test@gmail.com --password-stdin < pass.txt
  bookmarks bookmark create --title "Test bookmark" --link http://test.bookmark.co
  bookmarks bookmark list
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.CredsPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				app.CredsPath = p
			}

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", envOr("BOOKMARKS_SERVER", defaultServerURL), "server base URL")
	cmd.PersistentFlags().StringVar(&app.CredsPath, "creds", "", "credentials file (default ~/.bookmarks/credentials.json)")

	cmd.AddCommand(NewSignupCmd(app))
	cmd.AddCommand(NewSigninCmd(app))
	cmd.AddCommand(NewMeCmd(app))
	cmd.AddCommand(NewBookmarkCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке сообщение выводится в stderr, процесс завершается с кодом 1.
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
