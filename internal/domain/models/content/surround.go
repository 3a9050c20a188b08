package content

// SurroundOptions controls the prev/next window around a page
type SurroundOptions struct {
	Before int      `json:"before"`
	After  int      `json:"after"`
	Fields []string `json:"fields,omitempty"`
}

// DefaultSurroundOptions returns one entry on each side and no extra fields
func DefaultSurroundOptions() SurroundOptions {
	return SurroundOptions{Before: 1, After: 1}
}
