package api

import (
	"net/http"

	servermodels "github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

// GetMe
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.User
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /users/me [get]
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	u, err := h.Svc.Users.GetMe(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "get me", err)
		return
	}

	writeJSON(w, http.StatusOK, u.ToAPI())
}

// EditMe меняет только переданные поля профиля.
//
// @Summary      Edit current user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.EditUserRequest true "Fields to change"
// @Success      200 {object} models.User
// @Failure      400 {object} models.ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      403 {object} models.ErrorResponse "Email already taken"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /users [patch]
func (h *Handler) EditMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.EditUserRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err)
		return
	}

	u, err := h.Svc.Users.EditMe(r.Context(), userID, servermodels.UserPatch{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.fail(w, r, "edit me", err)
		return
	}

	writeJSON(w, http.StatusOK, u.ToAPI())
}
