package ds

// ShallowCopy copies the elements of ts into a new slice.
// A nil input gives an empty, non-nil slice.
func ShallowCopy[T any](ts []T) []T {
	tsCopy := make([]T, len(ts))
	copy(tsCopy, ts)
	return tsCopy
}
