package persistence

import (
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/mdm/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProjectRepository implements ProjectRepository on the generic tenant store
type GormProjectRepository struct {
	*TenantStore[masterdata.Project, *masterdata.Project]
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{
		TenantStore: NewTenantStore[masterdata.Project](db, StoreConfig{
			NotFoundErr:      shared.NewDomainError("PROJECT_NOT_FOUND", "Project not found"),
			NaturalKeyColumn: "code",
			SortFields:       CodeNameSortFields,
			DefaultOrderBy:   "code",
			SearchColumns:    []string{"code", "name"},
			FilterColumns:    map[string]bool{"status": true},
		}),
	}
}

// Ensure GormProjectRepository implements ProjectRepository
var _ masterdata.ProjectRepository = (*GormProjectRepository)(nil)
