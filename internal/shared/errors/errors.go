// Package errors содержит общие доменные ошибки сервиса закладок.
//
// Текст каждой ошибки — это сообщение, которое видит пользователь.
// Для управления потоком используется errors.Is, а не сравнение строк.
// Ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Нет токена или токен невалиден
	ErrUnauthorized = errors.New("unauthorized")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Запись не найдена в хранилище
	ErrNotFound = errors.New("not found")
)

// ошибки аутентификации, все отдаются как 403
var (
	// email уже занят
	ErrAlreadyExists = errors.New("user already exists")
	// при входе пользователь с таким email не найден
	ErrUserNotFound = errors.New("user does not exist, please sign up first")
	// пароль не совпал с хэшем
	ErrInvalidCredentials = errors.New("password incorrect")
)

// только для закладок
var (
	// закладки нет или она чужая, эти случаи намеренно не различаются
	ErrForbidden = errors.New("bookmark does not exist or does not belong to the user")
)
