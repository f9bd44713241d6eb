package masterdata

import (
	"context"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/mdm/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockBankRepository is a mock implementation of BankRepository
type MockBankRepository struct {
	mock.Mock
}

func (m *MockBankRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Bank, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Bank), args.Error(1)
}

func (m *MockBankRepository) FindByNaturalKey(ctx context.Context, tenantID uuid.UUID, key string, scope shared.Scope) (*masterdata.Bank, error) {
	args := m.Called(ctx, tenantID, key, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Bank), args.Error(1)
}

func (m *MockBankRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Bank, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]masterdata.Bank), args.Error(1)
}

func (m *MockBankRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBankRepository) ExistsByNaturalKey(ctx context.Context, tenantID uuid.UUID, key string, scope shared.Scope) (bool, error) {
	args := m.Called(ctx, tenantID, key, scope)
	return args.Bool(0), args.Error(1)
}

func (m *MockBankRepository) Create(ctx context.Context, bank *masterdata.Bank) error {
	args := m.Called(ctx, bank)
	return args.Error(0)
}

func (m *MockBankRepository) Update(ctx context.Context, bank *masterdata.Bank, expectedVersion int) error {
	args := m.Called(ctx, bank, expectedVersion)
	return args.Error(0)
}

func (m *MockBankRepository) UpdateStatus(ctx context.Context, bank *masterdata.Bank, expectedVersion int) error {
	args := m.Called(ctx, bank, expectedVersion)
	return args.Error(0)
}

// MockBranchRepository is a mock implementation of BranchRepository
type MockBranchRepository struct {
	mock.Mock
}

func (m *MockBranchRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Branch, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Branch), args.Error(1)
}

func (m *MockBranchRepository) FindByNaturalKey(ctx context.Context, tenantID uuid.UUID, key string, scope shared.Scope) (*masterdata.Branch, error) {
	args := m.Called(ctx, tenantID, key, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Branch), args.Error(1)
}

func (m *MockBranchRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Branch, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]masterdata.Branch), args.Error(1)
}

func (m *MockBranchRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBranchRepository) ExistsByNaturalKey(ctx context.Context, tenantID uuid.UUID, key string, scope shared.Scope) (bool, error) {
	args := m.Called(ctx, tenantID, key, scope)
	return args.Bool(0), args.Error(1)
}

func (m *MockBranchRepository) Create(ctx context.Context, branch *masterdata.Branch) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}

func (m *MockBranchRepository) Update(ctx context.Context, branch *masterdata.Branch, expectedVersion int) error {
	args := m.Called(ctx, branch, expectedVersion)
	return args.Error(0)
}

func (m *MockBranchRepository) UpdateStatus(ctx context.Context, branch *masterdata.Branch, expectedVersion int) error {
	args := m.Called(ctx, branch, expectedVersion)
	return args.Error(0)
}

func (m *MockBranchRepository) FindByBank(ctx context.Context, tenantID, bankID uuid.UUID, filter shared.Filter) ([]masterdata.Branch, error) {
	args := m.Called(ctx, tenantID, bankID, filter)
	return args.Get(0).([]masterdata.Branch), args.Error(1)
}

// MockWarehouseRepository is a mock implementation of WarehouseRepository
type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Warehouse, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindByNaturalKey(ctx context.Context, tenantID uuid.UUID, key string, scope shared.Scope) (*masterdata.Warehouse, error) {
	args := m.Called(ctx, tenantID, key, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Warehouse, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]masterdata.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWarehouseRepository) ExistsByNaturalKey(ctx context.Context, tenantID uuid.UUID, key string, scope shared.Scope) (bool, error) {
	args := m.Called(ctx, tenantID, key, scope)
	return args.Bool(0), args.Error(1)
}

func (m *MockWarehouseRepository) Create(ctx context.Context, warehouse *masterdata.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Update(ctx context.Context, warehouse *masterdata.Warehouse, expectedVersion int) error {
	args := m.Called(ctx, warehouse, expectedVersion)
	return args.Error(0)
}

func (m *MockWarehouseRepository) UpdateStatus(ctx context.Context, warehouse *masterdata.Warehouse, expectedVersion int) error {
	args := m.Called(ctx, warehouse, expectedVersion)
	return args.Error(0)
}

func (m *MockWarehouseRepository) FindDefaultReceiving(ctx context.Context, tenantID uuid.UUID) (*masterdata.Warehouse, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) SetDefaultReceiving(ctx context.Context, warehouse *masterdata.Warehouse, expectedVersion int) error {
	args := m.Called(ctx, warehouse, expectedVersion)
	return args.Error(0)
}

// MockPayeeBankAccountRepository is a mock implementation of PayeeBankAccountRepository
type MockPayeeBankAccountRepository struct {
	mock.Mock
}

func (m *MockPayeeBankAccountRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.PayeeBankAccount, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.PayeeBankAccount), args.Error(1)
}

func (m *MockPayeeBankAccountRepository) FindByNaturalKey(ctx context.Context, tenantID uuid.UUID, key string, scope shared.Scope) (*masterdata.PayeeBankAccount, error) {
	args := m.Called(ctx, tenantID, key, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.PayeeBankAccount), args.Error(1)
}

func (m *MockPayeeBankAccountRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.PayeeBankAccount, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]masterdata.PayeeBankAccount), args.Error(1)
}

func (m *MockPayeeBankAccountRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPayeeBankAccountRepository) ExistsByNaturalKey(ctx context.Context, tenantID uuid.UUID, key string, scope shared.Scope) (bool, error) {
	args := m.Called(ctx, tenantID, key, scope)
	return args.Bool(0), args.Error(1)
}

func (m *MockPayeeBankAccountRepository) Create(ctx context.Context, account *masterdata.PayeeBankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockPayeeBankAccountRepository) Update(ctx context.Context, account *masterdata.PayeeBankAccount, expectedVersion int) error {
	args := m.Called(ctx, account, expectedVersion)
	return args.Error(0)
}

func (m *MockPayeeBankAccountRepository) UpdateStatus(ctx context.Context, account *masterdata.PayeeBankAccount, expectedVersion int) error {
	args := m.Called(ctx, account, expectedVersion)
	return args.Error(0)
}

func (m *MockPayeeBankAccountRepository) FindByPayee(ctx context.Context, tenantID, payeeID uuid.UUID, filter shared.Filter) ([]masterdata.PayeeBankAccount, error) {
	args := m.Called(ctx, tenantID, payeeID, filter)
	return args.Get(0).([]masterdata.PayeeBankAccount), args.Error(1)
}

func (m *MockPayeeBankAccountRepository) FindDefaultForPayee(ctx context.Context, tenantID, payeeID uuid.UUID) (*masterdata.PayeeBankAccount, error) {
	args := m.Called(ctx, tenantID, payeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.PayeeBankAccount), args.Error(1)
}

func (m *MockPayeeBankAccountRepository) SetDefault(ctx context.Context, account *masterdata.PayeeBankAccount, expectedVersion int) error {
	args := m.Called(ctx, account, expectedVersion)
	return args.Error(0)
}

// MockEmployeeRepository is a mock implementation of EmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Employee, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByNaturalKey(ctx context.Context, tenantID uuid.UUID, key string, scope shared.Scope) (*masterdata.Employee, error) {
	args := m.Called(ctx, tenantID, key, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Employee, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]masterdata.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) ExistsByNaturalKey(ctx context.Context, tenantID uuid.UUID, key string, scope shared.Scope) (bool, error) {
	args := m.Called(ctx, tenantID, key, scope)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *masterdata.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, employee *masterdata.Employee, expectedVersion int) error {
	args := m.Called(ctx, employee, expectedVersion)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateStatus(ctx context.Context, employee *masterdata.Employee, expectedVersion int) error {
	args := m.Called(ctx, employee, expectedVersion)
	return args.Error(0)
}

// MockShipToRepository is a mock implementation of ShipToRepository
type MockShipToRepository struct {
	mock.Mock
}

func (m *MockShipToRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.ShipTo, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.ShipTo), args.Error(1)
}

func (m *MockShipToRepository) FindByNaturalKey(ctx context.Context, tenantID uuid.UUID, key string, scope shared.Scope) (*masterdata.ShipTo, error) {
	args := m.Called(ctx, tenantID, key, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.ShipTo), args.Error(1)
}

func (m *MockShipToRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.ShipTo, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]masterdata.ShipTo), args.Error(1)
}

func (m *MockShipToRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShipToRepository) ExistsByNaturalKey(ctx context.Context, tenantID uuid.UUID, key string, scope shared.Scope) (bool, error) {
	args := m.Called(ctx, tenantID, key, scope)
	return args.Bool(0), args.Error(1)
}

func (m *MockShipToRepository) Create(ctx context.Context, site *masterdata.ShipTo) error {
	args := m.Called(ctx, site)
	return args.Error(0)
}

func (m *MockShipToRepository) Update(ctx context.Context, site *masterdata.ShipTo, expectedVersion int) error {
	args := m.Called(ctx, site, expectedVersion)
	return args.Error(0)
}

func (m *MockShipToRepository) UpdateStatus(ctx context.Context, site *masterdata.ShipTo, expectedVersion int) error {
	args := m.Called(ctx, site, expectedVersion)
	return args.Error(0)
}

// MockTaxCodeRepository is a mock implementation of TaxCodeRepository
type MockTaxCodeRepository struct {
	mock.Mock
}

func (m *MockTaxCodeRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.TaxCode, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.TaxCode), args.Error(1)
}

func (m *MockTaxCodeRepository) FindByNaturalKey(ctx context.Context, tenantID uuid.UUID, key string, scope shared.Scope) (*masterdata.TaxCode, error) {
	args := m.Called(ctx, tenantID, key, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.TaxCode), args.Error(1)
}

func (m *MockTaxCodeRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.TaxCode, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]masterdata.TaxCode), args.Error(1)
}

func (m *MockTaxCodeRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaxCodeRepository) ExistsByNaturalKey(ctx context.Context, tenantID uuid.UUID, key string, scope shared.Scope) (bool, error) {
	args := m.Called(ctx, tenantID, key, scope)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaxCodeRepository) Create(ctx context.Context, taxCode *masterdata.TaxCode) error {
	args := m.Called(ctx, taxCode)
	return args.Error(0)
}

func (m *MockTaxCodeRepository) Update(ctx context.Context, taxCode *masterdata.TaxCode, expectedVersion int) error {
	args := m.Called(ctx, taxCode, expectedVersion)
	return args.Error(0)
}

func (m *MockTaxCodeRepository) UpdateStatus(ctx context.Context, taxCode *masterdata.TaxCode, expectedVersion int) error {
	args := m.Called(ctx, taxCode, expectedVersion)
	return args.Error(0)
}

// Test helper functions
func newTestTenantID() uuid.UUID {
	return uuid.MustParse("11111111-1111-1111-1111-111111111111")
}

func newTestPayeeID() uuid.UUID {
	return uuid.MustParse("44444444-4444-4444-4444-444444444444")
}

func createTestBank(tenantID uuid.UUID) *masterdata.Bank {
	bank, _ := masterdata.NewBank(tenantID, "0001", "First National Bank")
	return bank
}

func createTestBranch(tenantID, bankID uuid.UUID) *masterdata.Branch {
	branch, _ := masterdata.NewBranch(tenantID, bankID, "001", "Main Branch")
	return branch
}

func createTestWarehouse(tenantID uuid.UUID) *masterdata.Warehouse {
	warehouse, _ := masterdata.NewWarehouse(tenantID, "WH-MAIN", "Main Warehouse")
	return warehouse
}

func createTestEmployee(tenantID uuid.UUID) *masterdata.Employee {
	employee, _ := masterdata.NewEmployee(tenantID, "EMP-001", "Jordan Smith")
	return employee
}

func createTestShipTo(tenantID uuid.UUID) *masterdata.ShipTo {
	site, _ := masterdata.NewShipTo(tenantID, "SITE-001", "Central Depot")
	return site
}

func createTestTaxCode(tenantID uuid.UUID) *masterdata.TaxCode {
	taxCode, _ := masterdata.NewTaxCode(tenantID, "VAT-STD", "Standard VAT", decimal.NewFromFloat(0.10))
	return taxCode
}
