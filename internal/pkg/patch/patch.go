package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr keeps the existing pointer when no replacement is given.
func CoalescePtr[T any](ptr *T, existing *T) *T {
	if ptr != nil {
		return ptr
	}
	return existing
}

// Merge returns a copy of base with every key of overlay set on top of it.
// Keys absent from overlay are left untouched.
func Merge[K comparable, V any](base, overlay map[K]V) map[K]V {
	out := make(map[K]V, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}
