package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/api"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/service"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/logger"
)

var testJWT = crypto.JWTConfig{
	Issuer:     "bookmarks",
	SigningKey: "supersecretkeysupersecretkey123456",
	AccessTTL:  15 * time.Minute,
}

type deps struct {
	users     *mocks.MockUsersRepo
	bookmarks *mocks.MockBookmarksRepo
	hasher    *mocks.MockPasswordHasher
}

// собираем настоящие сервисы поверх мок-репозиториев
func newHandler(t *testing.T) (*api.Handler, deps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := deps{
		users:     mocks.NewMockUsersRepo(ctrl),
		bookmarks: mocks.NewMockBookmarksRepo(ctrl),
		hasher:    mocks.NewMockPasswordHasher(ctrl),
	}
	svc := &service.Services{
		Auth:      service.NewAuthService(d.users, d.hasher, testJWT),
		Users:     service.NewUsersService(d.users),
		Bookmarks: service.NewBookmarksService(d.bookmarks),
	}

	return api.NewHandler(svc, logger.NewNop(), middleware.NewJWTVerifier(testJWT), 1024), d
}

// запрос от имени пользователя userID, id попадает в chi URL-параметр
func authedRequest(method, target, body string, userID int64, id string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	ctx := middleware.ContextWithUserID(req.Context(), userID, "a@b.c")
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}
