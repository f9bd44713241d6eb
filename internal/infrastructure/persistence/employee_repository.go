package persistence

import (
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/mdm/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormEmployeeRepository implements EmployeeRepository on the generic tenant store
type GormEmployeeRepository struct {
	*TenantStore[masterdata.Employee, *masterdata.Employee]
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{
		TenantStore: NewTenantStore[masterdata.Employee](db, StoreConfig{
			NotFoundErr:      shared.NewDomainError("EMPLOYEE_NOT_FOUND", "Employee not found"),
			NaturalKeyColumn: "code",
			SortFields:       CodeNameSortFields,
			DefaultOrderBy:   "code",
			SearchColumns:    []string{"code", "name", "email"},
			FilterColumns:    map[string]bool{"status": true},
		}),
	}
}

// Ensure GormEmployeeRepository implements EmployeeRepository
var _ masterdata.EmployeeRepository = (*GormEmployeeRepository)(nil)
