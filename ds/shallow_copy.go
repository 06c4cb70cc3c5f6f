package ds

// ShallowCopy returns nil for a nil slice.
func ShallowCopy[T any](ts []T) []T {
	if ts == nil {
		return nil
	}
	tsCopy := make([]T, len(ts))
	copy(tsCopy, ts)
	return tsCopy
}
