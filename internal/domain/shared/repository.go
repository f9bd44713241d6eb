package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the tenant-scoped persistence contract shared by every
// aggregate. Every read and write carries the tenant predicate, and every
// write is guarded by an optimistic version check.
type Repository[T any] interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*T, error)
	FindByNaturalKey(ctx context.Context, tenantID uuid.UUID, key string, scope Scope) (*T, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter Filter) ([]T, error)
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter Filter) (int64, error)
	ExistsByNaturalKey(ctx context.Context, tenantID uuid.UUID, key string, scope Scope) (bool, error)
	Create(ctx context.Context, entity *T) error
	// Update persists the entity only if the stored version still equals
	// expectedVersion. NotFound and version conflicts are reported as
	// distinct errors; a failed write leaves the row untouched.
	Update(ctx context.Context, entity *T, expectedVersion int) error
	// UpdateStatus flips only the lifecycle status, under the same version
	// discipline as Update.
	UpdateStatus(ctx context.Context, entity *T, expectedVersion int) error
}

// Filter represents query filter options for list operations.
// The tenant predicate is never part of the filter; it is threaded
// explicitly through every store call.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 50,
		OrderDir: "asc",
		Filters:  make(map[string]interface{}),
	}
}

// Scope parameterizes extra equality predicates on natural-key lookups,
// e.g. restricting a branch code search to one bank.
type Scope map[string]interface{}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
