package util

// Ptr returns a pointer to the given value.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the value pointed to by p, or the zero value if p is nil.
func Deref[T any](p *T) T {
	var zero T
	return DerefOr(p, zero)
}

// Coalesce returns the first of values that is not the zero value of T.
// With no non-zero value it returns the zero value.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// DerefOr returns the value pointed to by p, or fallback if p is nil.
// Unlike Coalesce, a non-nil pointer to the zero value wins over fallback.
func DerefOr[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}
