package persistence

import (
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/mdm/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormBankRepository implements BankRepository on the generic tenant store
type GormBankRepository struct {
	*TenantStore[masterdata.Bank, *masterdata.Bank]
}

// NewGormBankRepository creates a new GormBankRepository
func NewGormBankRepository(db *gorm.DB) *GormBankRepository {
	return &GormBankRepository{
		TenantStore: NewTenantStore[masterdata.Bank](db, StoreConfig{
			NotFoundErr:      shared.NewDomainError("BANK_NOT_FOUND", "Bank not found"),
			NaturalKeyColumn: "code",
			SortFields:       CodeNameSortFields,
			DefaultOrderBy:   "code",
			SearchColumns:    []string{"code", "name"},
			FilterColumns:    map[string]bool{"status": true},
		}),
	}
}

// Ensure GormBankRepository implements BankRepository
var _ masterdata.BankRepository = (*GormBankRepository)(nil)
