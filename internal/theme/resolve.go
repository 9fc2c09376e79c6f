// Package theme resolves presentational settings through an ordered fallback:
// an explicit override wins over the ambient theme, which wins over the
// built-in default.
package theme

// Setting is an optional value. The zero Setting is unset.
type Setting[T any] struct {
	Value T
	Set   bool
}

// Some returns a set Setting holding v.
func Some[T any](v T) Setting[T] {
	return Setting[T]{Value: v, Set: true}
}

// None returns an unset Setting.
func None[T any]() Setting[T] {
	return Setting[T]{}
}

// Or returns the setting's value or fallback when unset.
func (s Setting[T]) Or(fallback T) T {
	if s.Set {
		return s.Value
	}
	return fallback
}

// Map projects a set Setting through fn and keeps unset Settings unset.
func Map[T, U any](s Setting[T], fn func(T) U) Setting[U] {
	if !s.Set {
		return None[U]()
	}
	return Some(fn(s.Value))
}

// Resolve picks explicit, then ambient, then builtin.
func Resolve[T any](explicit, ambient Setting[T], builtin T) T {
	return Chain(builtin, explicit, ambient)
}

// Chain returns the first set layer, or builtin when none is set.
func Chain[T any](builtin T, layers ...Setting[T]) T {
	for _, layer := range layers {
		if layer.Set {
			return layer.Value
		}
	}
	return builtin
}

// First returns the first non-zero value, treating the zero value as unset.
func First[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
