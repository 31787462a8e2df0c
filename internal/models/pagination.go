package models

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ListParams carries pagination for list endpoints. Results are ordered by
// creation order (created_at, id); the ordering is stable but otherwise
// carries no semantic guarantee.
type ListParams struct {
	Limit  int
	Offset int
}

// DefaultListParams is what a request without limit/offset query
// parameters resolves to.
func DefaultListParams() ListParams {
	return ListParams{Limit: DefaultListLimit, Offset: 0}
}
