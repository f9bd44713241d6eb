package masterdata

import (
	"context"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/shared"
)

// BankRepository defines persistence operations for banks
type BankRepository interface {
	shared.Repository[Bank]
}

// BranchRepository defines persistence operations for branches.
// Natural-key lookups are scoped to the owning bank.
type BranchRepository interface {
	shared.Repository[Branch]
	FindByBank(ctx context.Context, tenantID, bankID uuid.UUID, filter shared.Filter) ([]Branch, error)
}

// WarehouseRepository defines persistence operations for warehouses
type WarehouseRepository interface {
	shared.Repository[Warehouse]
	FindDefaultReceiving(ctx context.Context, tenantID uuid.UUID) (*Warehouse, error)
	// SetDefaultReceiving clears the current default and sets the flag on the
	// given warehouse inside one transaction, so the tenant is never left with
	// zero or two defaults. The version predicate guards the new default.
	SetDefaultReceiving(ctx context.Context, warehouse *Warehouse, expectedVersion int) error
}

// PayeeBankAccountRepository defines persistence operations for payee accounts
type PayeeBankAccountRepository interface {
	shared.Repository[PayeeBankAccount]
	FindByPayee(ctx context.Context, tenantID, payeeID uuid.UUID, filter shared.Filter) ([]PayeeBankAccount, error)
	FindDefaultForPayee(ctx context.Context, tenantID, payeeID uuid.UUID) (*PayeeBankAccount, error)
	// SetDefault flips the payee's default flag to the given account inside
	// one transaction, same discipline as SetDefaultReceiving.
	SetDefault(ctx context.Context, account *PayeeBankAccount, expectedVersion int) error
}

// ProjectRepository defines persistence operations for projects
type ProjectRepository interface {
	shared.Repository[Project]
}

// EmployeeRepository defines persistence operations for employees
type EmployeeRepository interface {
	shared.Repository[Employee]
}

// ShipToRepository defines persistence operations for ship-to sites
type ShipToRepository interface {
	shared.Repository[ShipTo]
}

// TaxCodeRepository defines persistence operations for tax codes
type TaxCodeRepository interface {
	shared.Repository[TaxCode]
}
