package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/api"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/models"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/utils"
)

// 500: клиенту общий текст, в лог — подробности с пользователем из токена
func TestFail_InternalErrorLogsUser(t *testing.T) {
	h, d := newHandler(t)

	core, logs := observer.New(zapcore.InfoLevel)
	h = api.NewHandler(h.Svc, &logger.HTTPLogger{Logger: zap.New(core)}, h.Verifier, h.MaxBodyBytes)

	d.bookmarks.EXPECT().ListByOwner(gomock.Any(), int64(7)).Return(nil, errors.New("pq: connection refused"))

	rr := httptest.NewRecorder()
	req := authedRequest(http.MethodGet, "/bookmarks", "", 7, "")
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), 7, "owner@b.c"))
	h.ListBookmarks(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.JSONEq(t, `{"error":"internal error"}`, rr.Body.String())

	entries := logs.FilterMessage("request failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, int64(7), fields["user_id"])
	require.Equal(t, "owner@b.c", fields["email"])
	require.Contains(t, fields["error"], "connection refused")
}

// Пробелы вокруг email убираются до валидации
func TestSignup_TrimsEmail(t *testing.T) {
	h, d := newHandler(t)

	d.hasher.EXPECT().Hash("123").Return("hash", nil)
	d.users.EXPECT().
		Create(gomock.Any(), models.NewUser{Email: "test@gmail.com", PasswordHash: "hash"}).
		Return(&models.User{ID: 1, Email: "test@gmail.com"}, nil)

	rr := httptest.NewRecorder()
	h.Signup(rr, httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(`{"email":"  test@gmail.com ","password":"123"}`)))

	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestSignin_TrimsEmail(t *testing.T) {
	h, d := newHandler(t)

	d.users.EXPECT().GetByEmail(gomock.Any(), "test@gmail.com").Return(&models.User{ID: 1, Email: "test@gmail.com", PasswordHash: "hash"}, nil)
	d.hasher.EXPECT().Verify("hash", "123").Return(true, nil)

	rr := httptest.NewRecorder()
	h.Signin(rr, httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{"email":" test@gmail.com","password":"123"}`)))

	require.Equal(t, http.StatusAccepted, rr.Code)
}

func TestEditMe_TrimsEmail(t *testing.T) {
	h, d := newHandler(t)
	d.users.EXPECT().
		Update(gomock.Any(), int64(1), models.UserPatch{Email: utils.Ptr("new@b.c")}).
		Return(&models.User{ID: 1, Email: "new@b.c"}, nil)

	rr := httptest.NewRecorder()
	h.EditMe(rr, authedRequest(http.MethodPatch, "/users", `{"email":" new@b.c "}`, 1, ""))

	require.Equal(t, http.StatusOK, rr.Code)
}
