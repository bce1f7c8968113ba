// Утилитарные функции общего назначения
package utils

// Ptr возвращает указатель на копию значения. Удобно для partial update.
func Ptr[T any](v T) *T {
	return &v
}

// Deref возвращает значение по указателю или fallback, если указатель nil.
func Deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
