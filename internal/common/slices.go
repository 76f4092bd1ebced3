package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Pluck returns the value get extracts from each element, in order.
func Pluck[S ~[]E, E any, T any](s S, get func(*E) T) []T {
	out := make([]T, len(s))
	for i := range s {
		out[i] = get(&s[i])
	}

	return out
}

// PluckNonNil is Pluck for pointer fields; elements whose field is nil are
// skipped.
func PluckNonNil[S ~[]E, E any, T any](s S, get func(*E) *T) []T {
	out := make([]T, 0, len(s))
	for i := range s {
		if v := get(&s[i]); v != nil {
			out = append(out, *v)
		}
	}

	return out
}
