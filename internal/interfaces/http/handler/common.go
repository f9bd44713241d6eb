package handler

import (
	"context"

	masterdataapp "github.com/mdm/backend/internal/application/masterdata"

	"github.com/google/uuid"
)

// StatusChangeRequest carries the expected version for activate and
// deactivate endpoints
type StatusChangeRequest struct {
	Version int `json:"version" binding:"required,min=1"`
}

// statusChangeFunc is the shared signature of service activate and
// deactivate operations
type statusChangeFunc func(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error

// applyFilterDefaults fills in pagination defaults on a list filter
func applyFilterDefaults(f *masterdataapp.ListFilter) {
	if f.Page == 0 {
		f.Page = 1
	}
	if f.PageSize == 0 {
		f.PageSize = 20
	}
}
