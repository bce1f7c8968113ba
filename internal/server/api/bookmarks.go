package api

import (
	"net/http"

	"go.uber.org/zap"

	servermodels "github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/service"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

// CreateBookmark создаёт закладку текущего пользователя.
//
// @Summary      Create bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.CreateBookmarkRequest true "Bookmark"
// @Success      201 {object} models.Bookmark
// @Failure      400 {object} models.ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /bookmarks [post]
func (h *Handler) CreateBookmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req models.CreateBookmarkRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err)
		return
	}

	b, err := h.Svc.Bookmarks.Create(r.Context(), userID, service.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		h.fail(w, r, "create bookmark", err)
		return
	}

	writeJSON(w, http.StatusCreated, b.ToAPI())
}

// ListBookmarks возвращает все закладки пользователя, пустой список — [].
//
// @Summary      List bookmarks
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Bookmark
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /bookmarks [get]
func (h *Handler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	list, err := h.Svc.Bookmarks.List(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "list bookmarks", err)
		return
	}

	writeJSON(w, http.StatusOK, servermodels.BookmarksToAPI(list))
}

// GetBookmark отдаёт свою закладку.
// Отсутствующая или чужая — 200 с пустым телом.
//
// @Summary      Get bookmark
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Bookmark ID"
// @Success      200 {object} models.Bookmark "Empty body when the bookmark is absent"
// @Failure      400 {object} models.ErrorResponse "Invalid id"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /bookmarks/{id} [get]
func (h *Handler) GetBookmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err)
		return
	}

	b, err := h.Svc.Bookmarks.GetByID(r.Context(), userID, id)
	if err != nil {
		h.fail(w, r, "get bookmark", err, zap.Int64("bookmark_id", id))
		return
	}
	if b == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	writeJSON(w, http.StatusOK, b.ToAPI())
}

// EditBookmark меняет только переданные поля своей закладки.
//
// @Summary      Edit bookmark
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Bookmark ID"
// @Param        request body models.EditBookmarkRequest true "Fields to change"
// @Success      200 {object} models.Bookmark
// @Failure      400 {object} models.ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      403 {object} models.ErrorResponse "Bookmark does not exist or does not belong to the user"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /bookmarks/{id} [patch]
func (h *Handler) EditBookmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err)
		return
	}

	var req models.EditBookmarkRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err)
		return
	}

	b, err := h.Svc.Bookmarks.EditByID(r.Context(), userID, id, servermodels.BookmarkPatch{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		h.fail(w, r, "edit bookmark", err, zap.Int64("bookmark_id", id))
		return
	}

	writeJSON(w, http.StatusOK, b.ToAPI())
}

// DeleteBookmark
//
// @Summary      Delete bookmark
// @Tags         bookmarks
// @Security     BearerAuth
// @Param        id path int true "Bookmark ID"
// @Success      204
// @Failure      400 {object} models.ErrorResponse "Invalid id"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      403 {object} models.ErrorResponse "Bookmark does not exist or does not belong to the user"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /bookmarks/{id} [delete]
func (h *Handler) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Bookmarks.DeleteByID(r.Context(), userID, id); err != nil {
		h.fail(w, r, "delete bookmark", err, zap.Int64("bookmark_id", id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
