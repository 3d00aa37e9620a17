package responses

// Record is one raw feed entry as the backend sent it. The feed mixes
// heterogeneous shapes (catalog items and leaked user rows), so nothing is
// projected here; classification happens in the mapper.
type Record struct {
	Raw map[string]any
}
