// HTTP-хендлеры регистрации и входа
package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/service"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

// Signup регистрирует пользователя и сразу выдаёт access-токен.
//
// @Summary      Sign up
// @Description  Creates a user and returns an access token. A taken email answers 403.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body models.AuthRequest true "Signup request"
// @Success      201 {object} models.TokenResponse
// @Failure      400 {object} models.ErrorResponse "Invalid input or bad JSON"
// @Failure      403 {object} models.ErrorResponse "User already exists"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /auth/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err)
		return
	}

	token, err := h.Svc.Auth.Signup(r.Context(), service.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.fail(w, r, "signup", err)
		return
	}

	writeJSON(w, http.StatusCreated, models.TokenResponse{AccessToken: token})
}

// Signin проверяет пароль и выдаёт новый access-токен.
// Отвечает 202, как и исходный сервис.
//
// @Summary      Sign in
// @Description  Verifies credentials and returns a fresh access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body models.AuthRequest true "Signin request"
// @Success      202 {object} models.TokenResponse
// @Failure      400 {object} models.ErrorResponse "Invalid input or bad JSON"
// @Failure      403 {object} models.ErrorResponse "User does not exist or password incorrect"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /auth/signin [post]
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err)
		return
	}

	token, err := h.Svc.Auth.Signin(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, r, "signin", err)
		return
	}

	writeJSON(w, http.StatusAccepted, models.TokenResponse{AccessToken: token})
}
