package service_test

import "errors"

// ожидаемая ошибка зависимостей, проверяем что сервис её пробрасывает
var errExpected = errors.New("expected error")
