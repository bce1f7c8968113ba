package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

// NewBookmarkCmd создаёт группу команд для работы с закладками.
//
//	bookmarks bookmark list
//	bookmarks bookmark get 1
//	bookmarks bookmark create --title "Test bookmark" --link http://test.bookmark.co
//	bookmarks bookmark edit 1 --title "New title"
//	bookmarks bookmark delete 1
func NewBookmarkCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookmark",
		Aliases: []string{"bm"},
		Short:   "Закладки: list, get, create, edit, delete",
	}

	cmd.AddCommand(
		newBookmarkListCmd(app),
		newBookmarkGetCmd(app),
		newBookmarkCreateCmd(app),
		newBookmarkEditCmd(app),
		newBookmarkDeleteCmd(app),
	)
	return cmd
}

func newBookmarkListCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Список своих закладок",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			list, err := NewAPIClient(app.ServerURL).ListBookmarks(token)
			if err != nil {
				return err
			}
			if asJSON {
				if list == nil {
					list = []models.Bookmark{}
				}
				return printJSON(cmd.OutOrStdout(), list)
			}
			return printBookmarks(cmd.OutOrStdout(), list)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")
	return cmd
}

func newBookmarkGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Показать закладку по ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			token, err := app.token()
			if err != nil {
				return err
			}
			b, err := NewAPIClient(app.ServerURL).GetBookmark(token, id)
			if err != nil {
				return err
			}
			// сервер отвечает 200 с пустым телом, если закладки нет или она чужая
			if b == nil {
				return fmt.Errorf("bookmark %d not found", id)
			}
			return printJSON(cmd.OutOrStdout(), b)
		},
	}
}

func newBookmarkCreateCmd(app *App) *cobra.Command {
	var title, description, link string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать закладку",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}

			req := models.CreateBookmarkRequest{Title: title}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			if cmd.Flags().Changed("link") {
				req.Link = &link
			}

			b, err := NewAPIClient(app.ServerURL).CreateBookmark(token, req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), b)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "title")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringVar(&link, "link", "", "link")
	cmd.MarkFlagRequired("title")
	return cmd
}

func newBookmarkEditCmd(app *App) *cobra.Command {
	var title, description, link string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Изменить закладку",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			token, err := app.token()
			if err != nil {
				return err
			}

			var req models.EditBookmarkRequest
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			if cmd.Flags().Changed("link") {
				req.Link = &link
			}
			if req.Title == nil && req.Description == nil && req.Link == nil {
				return errors.New("nothing to edit: pass --title, --description or --link")
			}

			b, err := NewAPIClient(app.ServerURL).EditBookmark(token, id, req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), b)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&link, "link", "", "new link")
	return cmd
}

func newBookmarkDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Удалить закладку",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			token, err := app.token()
			if err != nil {
				return err
			}
			if err := NewAPIClient(app.ServerURL).DeleteBookmark(token, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "bookmark %d deleted\n", id)
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid bookmark id %q", s)
	}
	return id, nil
}
