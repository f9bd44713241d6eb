package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/mdm/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPayeeBankAccountRepository implements PayeeBankAccountRepository on the
// generic tenant store
type GormPayeeBankAccountRepository struct {
	*TenantStore[masterdata.PayeeBankAccount, *masterdata.PayeeBankAccount]
}

// NewGormPayeeBankAccountRepository creates a new GormPayeeBankAccountRepository
func NewGormPayeeBankAccountRepository(db *gorm.DB) *GormPayeeBankAccountRepository {
	return &GormPayeeBankAccountRepository{
		TenantStore: NewTenantStore[masterdata.PayeeBankAccount](db, StoreConfig{
			NotFoundErr:      shared.NewDomainError("PAYEE_BANK_ACCOUNT_NOT_FOUND", "Payee bank account not found"),
			NaturalKeyColumn: "account_number",
			SortFields:       PayeeBankAccountSortFields,
			DefaultOrderBy:   "account_number",
			SearchColumns:    []string{"account_number", "account_holder"},
			FilterColumns:    map[string]bool{"status": true, "payee_id": true, "bank_id": true, "account_type": true},
		}),
	}
}

// FindByPayee finds all bank accounts registered for one payee
func (r *GormPayeeBankAccountRepository) FindByPayee(ctx context.Context, tenantID, payeeID uuid.UUID, filter shared.Filter) ([]masterdata.PayeeBankAccount, error) {
	if filter.Filters == nil {
		filter.Filters = make(map[string]interface{})
	}
	filter.Filters["payee_id"] = payeeID
	return r.FindAllForTenant(ctx, tenantID, filter)
}

// FindDefaultForPayee finds the payee's default remittance account
func (r *GormPayeeBankAccountRepository) FindDefaultForPayee(ctx context.Context, tenantID, payeeID uuid.UUID) (*masterdata.PayeeBankAccount, error) {
	var account masterdata.PayeeBankAccount
	if err := r.DB().WithContext(ctx).
		Where("tenant_id = ? AND payee_id = ? AND is_default = ?", tenantID, payeeID, true).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewDomainError("PAYEE_BANK_ACCOUNT_NOT_FOUND", "No default account configured for payee")
		}
		return nil, err
	}
	return &account, nil
}

// SetDefault clears the payee's current default account and flags the given
// one, both inside a single transaction.
func (r *GormPayeeBankAccountRepository) SetDefault(ctx context.Context, account *masterdata.PayeeBankAccount, expectedVersion int) error {
	newVersion := expectedVersion + 1
	err := r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := r.WithTx(tx).FindByIDForTenant(ctx, account.TenantID, account.ID)
		if err != nil {
			return err
		}
		if current.Version != expectedVersion {
			return shared.ErrConcurrencyConflict
		}

		if err := tx.Model(&masterdata.PayeeBankAccount{}).
			Where("tenant_id = ? AND payee_id = ? AND is_default = ? AND id <> ?",
				account.TenantID, account.PayeeID, true, account.ID).
			Updates(map[string]interface{}{
				"is_default": false,
				"version":    gorm.Expr("version + 1"),
				"updated_at": time.Now(),
			}).Error; err != nil {
			return err
		}

		result := tx.Model(&masterdata.PayeeBankAccount{}).
			Where("tenant_id = ? AND id = ? AND version = ?", account.TenantID, account.ID, expectedVersion).
			Updates(map[string]interface{}{
				"is_default": true,
				"version":    newVersion,
				"updated_by": account.UpdatedBy,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}
		return nil
	})
	if err != nil {
		return err
	}

	account.IsDefault = true
	account.Version = newVersion
	return nil
}

// Ensure GormPayeeBankAccountRepository implements PayeeBankAccountRepository
var _ masterdata.PayeeBankAccountRepository = (*GormPayeeBankAccountRepository)(nil)
