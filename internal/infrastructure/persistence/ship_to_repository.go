package persistence

import (
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/mdm/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormShipToRepository implements ShipToRepository on the generic tenant store
type GormShipToRepository struct {
	*TenantStore[masterdata.ShipTo, *masterdata.ShipTo]
}

// NewGormShipToRepository creates a new GormShipToRepository
func NewGormShipToRepository(db *gorm.DB) *GormShipToRepository {
	return &GormShipToRepository{
		TenantStore: NewTenantStore[masterdata.ShipTo](db, StoreConfig{
			NotFoundErr:      shared.NewDomainError("SHIP_TO_NOT_FOUND", "Ship-to site not found"),
			NaturalKeyColumn: "code",
			SortFields:       CodeNameSortFields,
			DefaultOrderBy:   "code",
			SearchColumns:    []string{"code", "name", "address"},
			FilterColumns:    map[string]bool{"status": true},
		}),
	}
}

// Ensure GormShipToRepository implements ShipToRepository
var _ masterdata.ShipToRepository = (*GormShipToRepository)(nil)
