package persistence

import (
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/mdm/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormTaxCodeRepository implements TaxCodeRepository on the generic tenant store
type GormTaxCodeRepository struct {
	*TenantStore[masterdata.TaxCode, *masterdata.TaxCode]
}

// NewGormTaxCodeRepository creates a new GormTaxCodeRepository
func NewGormTaxCodeRepository(db *gorm.DB) *GormTaxCodeRepository {
	return &GormTaxCodeRepository{
		TenantStore: NewTenantStore[masterdata.TaxCode](db, StoreConfig{
			NotFoundErr:      shared.NewDomainError("TAX_CODE_NOT_FOUND", "Tax code not found"),
			NaturalKeyColumn: "code",
			SortFields:       CodeNameSortFields,
			DefaultOrderBy:   "code",
			SearchColumns:    []string{"code", "name"},
			FilterColumns:    map[string]bool{"status": true},
		}),
	}
}

// Ensure GormTaxCodeRepository implements TaxCodeRepository
var _ masterdata.TaxCodeRepository = (*GormTaxCodeRepository)(nil)
