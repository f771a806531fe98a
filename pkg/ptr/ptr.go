package ptr

// Ptr возвращает указатель на переданное значение
// Удобно для передачи опциональных параметров (например, *int64)
func Ptr[T any](v T) *T {
	return &v
}
