package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

// NewMeCmd создаёт команду просмотра профиля и подкоманду его редактирования.
//
//	bookmarks me
//	bookmarks me edit --first-name Ivan
func NewMeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "me",
		Short: "Профиль текущего пользователя",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			u, err := NewAPIClient(app.ServerURL).Me(token)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), u)
		},
	}

	cmd.AddCommand(newMeEditCmd(app))
	return cmd
}

func newMeEditCmd(app *App) *cobra.Command {
	var email, firstName, lastName string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Изменить email, имя или фамилию",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}

			var req models.EditUserRequest
			if cmd.Flags().Changed("email") {
				e := strings.TrimSpace(email)
				req.Email = &e
			}
			if cmd.Flags().Changed("first-name") {
				req.FirstName = &firstName
			}
			if cmd.Flags().Changed("last-name") {
				req.LastName = &lastName
			}
			if req.Email == nil && req.FirstName == nil && req.LastName == nil {
				return errors.New("nothing to edit: pass --email, --first-name or --last-name")
			}

			u, err := NewAPIClient(app.ServerURL).EditMe(token, req)
			if err != nil {
				return err
			}

			// email в файле используется только для вывода, но держим его актуальным
			if req.Email != nil && u.Email != "" {
				if err := app.saveToken(token, u.Email); err != nil {
					return err
				}
			}
			return printJSON(cmd.OutOrStdout(), u)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&firstName, "first-name", "", "new first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "new last name")
	return cmd
}
