// Методы клиента для закладок.
package api

import (
	"fmt"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

func (c *Client) ListBookmarks(accessToken string) ([]models.Bookmark, error) {
	resp := make([]models.Bookmark, 0)
	err := c.GetJSON("/bookmarks", &resp, accessToken)
	return resp, err
}

// GetBookmark возвращает nil без ошибки, если закладки нет или она чужая:
// сервер в этом случае отвечает 200 с пустым телом.
func (c *Client) GetBookmark(accessToken string, id int64) (*models.Bookmark, error) {
	var resp *models.Bookmark
	if err := c.GetJSON(fmt.Sprintf("/bookmarks/%d", id), &resp, accessToken); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) CreateBookmark(accessToken string, req models.CreateBookmarkRequest) (models.Bookmark, error) {
	var resp models.Bookmark
	err := c.PostJSON("/bookmarks", req, &resp, accessToken)
	return resp, err
}

func (c *Client) EditBookmark(accessToken string, id int64, req models.EditBookmarkRequest) (models.Bookmark, error) {
	var resp models.Bookmark
	err := c.PatchJSON(fmt.Sprintf("/bookmarks/%d", id), req, &resp, accessToken)
	return resp, err
}

func (c *Client) DeleteBookmark(accessToken string, id int64) error {
	return c.DeleteJSON(fmt.Sprintf("/bookmarks/%d", id), nil, accessToken)
}
