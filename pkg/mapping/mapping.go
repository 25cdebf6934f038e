package mapping

// MapViewModels converts a slice of domain entities into view models.
func MapViewModels[T, V any](items []T, mapFunc func(T) V) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		out = append(out, mapFunc(item))
	}
	return out
}
