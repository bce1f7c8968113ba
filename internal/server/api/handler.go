// Package api реализует HTTP-слой сервера закладок.
//
// Пакет отвечает за:
//   - разбор и валидацию тел запросов (validator);
//   - вызов сервисов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-bookmarks/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// лимит тела запроса, если в конфиге не задан
const defaultMaxBodyBytes int64 = 1 << 20

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи неожиданных ошибок;
//   - Verifier: проверка JWT и middleware авторизации.
type Handler struct {
	Svc          *service.Services
	Log          *logger.HTTPLogger
	Verifier     *middleware.JWTVerifier
	MaxBodyBytes int64

	validate *validator.Validate
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier, maxBodyBytes int64) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &Handler{
		Svc:          svc,
		Log:          log,
		Verifier:     verifier,
		MaxBodyBytes: maxBodyBytes,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, models.ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// StatusFor переводит доменную ошибку в HTTP-статус.
//
// 403 для ErrAlreadyExists, а не 409, так задумано.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, serr.ErrBadJSON), errors.Is(err, serr.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, serr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serr.ErrAlreadyExists),
		errors.Is(err, serr.ErrUserNotFound),
		errors.Is(err, serr.ErrInvalidCredentials),
		errors.Is(err, serr.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// fail отвечает ошибкой. Текст 5xx наружу не отдаётся, только в лог.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error, fields ...zap.Field) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		fields = append(fields,
			zap.String("op", op),
			zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
		if id, ok := middleware.UserIDFromContext(r.Context()); ok {
			fields = append(fields,
				zap.Int64("user_id", id),
				zap.String("email", middleware.EmailFromContext(r.Context())),
			)
		}
		h.Log.Error("request failed", fields...)
		WriteError(w, status, serr.ErrInternal)
		return
	}
	WriteError(w, status, err)
}

// userID достаёт пользователя из контекста; без него защищённый хендлер отвечает 401.
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
	}
	return id, ok
}
