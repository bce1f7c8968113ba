// Методы клиента для регистрации, входа и профиля текущего пользователя.
package api

import "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"

// Signup регистрирует пользователя, сервер сразу возвращает access-токен.
func (c *Client) Signup(req models.AuthRequest) (models.TokenResponse, error) {
	var resp models.TokenResponse
	err := c.PostJSON("/auth/signup", req, &resp, "")
	return resp, err
}

// Signin выполняет вход и получает новый access-токен.
func (c *Client) Signin(email, password string) (models.TokenResponse, error) {
	var resp models.TokenResponse
	err := c.PostJSON("/auth/signin", models.AuthRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}

// Me запрашивает профиль пользователя, которому принадлежит токен.
func (c *Client) Me(accessToken string) (models.User, error) {
	var resp models.User
	err := c.GetJSON("/users/me", &resp, accessToken)
	return resp, err
}

// EditMe меняет только переданные (не nil) поля профиля.
func (c *Client) EditMe(accessToken string, req models.EditUserRequest) (models.User, error) {
	var resp models.User
	err := c.PatchJSON("/users", req, &resp, accessToken)
	return resp, err
}
