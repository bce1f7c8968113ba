package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

// NewSignupCmd создаёт команду регистрации.
//
// Сервер сразу выдаёт токен, поэтому после signup отдельный signin не нужен.
//
//	bookmarks signup --email test@gmail.com --password 123 --first-name Ivan
func NewSignupCmd(app *App) *cobra.Command {
	var (
		email               string
		firstName, lastName string
		pw                  passwordFlags
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Регистрация нового пользователя",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := pw.resolve(cmd)
			if err != nil {
				return err
			}

			req := models.AuthRequest{Email: strings.TrimSpace(email), Password: password}
			if cmd.Flags().Changed("first-name") {
				req.FirstName = &firstName
			}
			if cmd.Flags().Changed("last-name") {
				req.LastName = &lastName
			}

			resp, err := NewAPIClient(app.ServerURL).Signup(req)
			if err != nil {
				return err
			}
			if err := app.saveToken(resp.AccessToken, req.Email); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "signup ok (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	pw.register(cmd)
	cmd.MarkFlagRequired("email")

	return cmd
}

// NewSigninCmd создаёт команду входа: получает access-токен и сохраняет его локально.
//
//	bookmarks signin --email test@gmail.com --password 123
func NewSigninCmd(app *App) *cobra.Command {
	var (
		email string
		pw    passwordFlags
	)

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Вход (получить access токен)",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := pw.resolve(cmd)
			if err != nil {
				return err
			}

			email = strings.TrimSpace(email)
			resp, err := NewAPIClient(app.ServerURL).Signin(email, password)
			if err != nil {
				return err
			}
			if err := app.saveToken(resp.AccessToken, email); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "signin ok (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email")
	pw.register(cmd)
	cmd.MarkFlagRequired("email")

	return cmd
}
