package patch

// Field carries a value together with whether the caller supplied it, so a
// partial update can distinguish "not provided" from a zero value.
type Field[T any] struct {
	value T
	set   bool
}

func Set[T any](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

// FromPtr treats a nil pointer as absent. Useful at JSON boundaries where
// optional fields arrive as pointers.
func FromPtr[T any](p *T) Field[T] {
	if p == nil {
		return Field[T]{}
	}
	return Field[T]{value: *p, set: true}
}

func (f Field[T]) IsSet() bool {
	return f.set
}

func (f Field[T]) Get() (T, bool) {
	return f.value, f.set
}

// Or returns the field's value when set, otherwise fallback.
func (f Field[T]) Or(fallback T) T {
	if f.set {
		return f.value
	}
	return fallback
}

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
