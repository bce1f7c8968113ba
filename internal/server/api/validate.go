package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/multierr"

	serr "github.com/IvanChernomyrdin/go-bookmarks/internal/shared/errors"
)

// normalizer приводит поля запроса к каноничному виду до валидации.
type normalizer interface {
	Normalize()
}

// decodeAndValidate читает JSON-тело в dst и проверяет теги validate.
//
// Неизвестные поля игнорируются, пустое тело считается пустым объектом.
// Перед проверкой тегов вызывается Normalize, если тип его реализует.
// Битый JSON -> ErrBadJSON, нарушение правил -> ErrInvalidInput с деталями.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, h.MaxBodyBytes)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return multierr.Append(serr.ErrBadJSON, err)
	}

	if n, ok := dst.(normalizer); ok {
		n.Normalize()
	}

	if err := h.validate.Struct(dst); err != nil {
		return multierr.Append(serr.ErrInvalidInput, err)
	}
	return nil
}

// pathID разбирает {id} из URL, допустимы только положительные числа.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, serr.ErrInvalidInput
	}
	return id, nil
}
