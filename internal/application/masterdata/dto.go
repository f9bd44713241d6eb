package masterdata

import (
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/shopspring/decimal"
)

// CreateBankRequest represents a request to create a bank
type CreateBankRequest struct {
	Code      string     `json:"code" binding:"required,min=1,max=10"`
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	SwiftCode string     `json:"swift_code" binding:"omitempty,max=20"`
	CreatedBy *uuid.UUID `json:"-"`
}

// UpdateBankRequest represents a request to update a bank
type UpdateBankRequest struct {
	Name      *string    `json:"name" binding:"omitempty,min=1,max=200"`
	SwiftCode *string    `json:"swift_code" binding:"omitempty,max=20"`
	Version   int        `json:"version" binding:"required,min=1"`
	UpdatedBy *uuid.UUID `json:"-"`
}

// BankResponse represents a bank in API responses
type BankResponse struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	SwiftCode string    `json:"swift_code"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// CreateBranchRequest represents a request to create a branch under a bank
type CreateBranchRequest struct {
	BankID    uuid.UUID  `json:"bank_id" binding:"required"`
	Code      string     `json:"code" binding:"required,min=1,max=10"`
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	CreatedBy *uuid.UUID `json:"-"`
}

// UpdateBranchRequest represents a request to update a branch
type UpdateBranchRequest struct {
	Name      *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Version   int        `json:"version" binding:"required,min=1"`
	UpdatedBy *uuid.UUID `json:"-"`
}

// BranchResponse represents a branch in API responses
type BranchResponse struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	BankID    uuid.UUID `json:"bank_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// CreateWarehouseRequest represents a request to create a warehouse
type CreateWarehouseRequest struct {
	Code      string     `json:"code" binding:"required,min=1,max=50"`
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	Address   string     `json:"address"`
	SortOrder *int       `json:"sort_order"`
	CreatedBy *uuid.UUID `json:"-"`
}

// UpdateWarehouseRequest represents a request to update a warehouse
type UpdateWarehouseRequest struct {
	Name      *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Address   *string    `json:"address"`
	SortOrder *int       `json:"sort_order"`
	Version   int        `json:"version" binding:"required,min=1"`
	UpdatedBy *uuid.UUID `json:"-"`
}

// WarehouseResponse represents a warehouse in API responses
type WarehouseResponse struct {
	ID                 uuid.UUID `json:"id"`
	TenantID           uuid.UUID `json:"tenant_id"`
	Code               string    `json:"code"`
	Name               string    `json:"name"`
	Address            string    `json:"address"`
	IsDefaultReceiving bool      `json:"is_default_receiving"`
	SortOrder          int       `json:"sort_order"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	Version            int       `json:"version"`
}

// CreatePayeeBankAccountRequest represents a request to create a payee account
type CreatePayeeBankAccountRequest struct {
	PayeeID       uuid.UUID  `json:"payee_id" binding:"required"`
	BankID        uuid.UUID  `json:"bank_id" binding:"required"`
	BranchID      uuid.UUID  `json:"branch_id" binding:"required"`
	AccountType   string     `json:"account_type" binding:"required,oneof=ordinary checking"`
	AccountNumber string     `json:"account_number" binding:"required,min=1,max=20"`
	AccountHolder string     `json:"account_holder" binding:"required,min=1,max=200"`
	CreatedBy     *uuid.UUID `json:"-"`
}

// UpdatePayeeBankAccountRequest represents a request to update a payee account
type UpdatePayeeBankAccountRequest struct {
	AccountType   *string    `json:"account_type" binding:"omitempty,oneof=ordinary checking"`
	AccountHolder *string    `json:"account_holder" binding:"omitempty,min=1,max=200"`
	Version       int        `json:"version" binding:"required,min=1"`
	UpdatedBy     *uuid.UUID `json:"-"`
}

// PayeeBankAccountResponse represents a payee account in API responses
type PayeeBankAccountResponse struct {
	ID            uuid.UUID `json:"id"`
	TenantID      uuid.UUID `json:"tenant_id"`
	PayeeID       uuid.UUID `json:"payee_id"`
	BankID        uuid.UUID `json:"bank_id"`
	BranchID      uuid.UUID `json:"branch_id"`
	AccountType   string    `json:"account_type"`
	AccountNumber string    `json:"account_number"`
	AccountHolder string    `json:"account_holder"`
	IsDefault     bool      `json:"is_default"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Version       int       `json:"version"`
}

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	Code      string     `json:"code" binding:"required,min=1,max=50"`
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	CreatedBy *uuid.UUID `json:"-"`
}

// UpdateProjectRequest represents a request to update a project
type UpdateProjectRequest struct {
	Name      *string    `json:"name" binding:"omitempty,min=1,max=200"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Version   int        `json:"version" binding:"required,min=1"`
	UpdatedBy *uuid.UUID `json:"-"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID        uuid.UUID  `json:"id"`
	TenantID  uuid.UUID  `json:"tenant_id"`
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Version   int        `json:"version"`
}

// CreateEmployeeRequest represents a request to create an employee
type CreateEmployeeRequest struct {
	Code      string     `json:"code" binding:"required,min=1,max=50"`
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	Email     string     `json:"email" binding:"omitempty,email"`
	HireDate  *time.Time `json:"hire_date"`
	CreatedBy *uuid.UUID `json:"-"`
}

// UpdateEmployeeRequest represents a request to update an employee.
// The employee code is fixed at creation; sending a different value is rejected.
type UpdateEmployeeRequest struct {
	Code      *string    `json:"code"`
	Name      *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Email     *string    `json:"email" binding:"omitempty,email"`
	HireDate  *time.Time `json:"hire_date"`
	Version   int        `json:"version" binding:"required,min=1"`
	UpdatedBy *uuid.UUID `json:"-"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID        uuid.UUID  `json:"id"`
	TenantID  uuid.UUID  `json:"tenant_id"`
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	HireDate  *time.Time `json:"hire_date"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Version   int        `json:"version"`
}

// CreateShipToRequest represents a request to create a ship-to site
type CreateShipToRequest struct {
	Code       string     `json:"code" binding:"required,min=1,max=50"`
	Name       string     `json:"name" binding:"required,min=1,max=200"`
	PostalCode string     `json:"postal_code" binding:"omitempty,max=10"`
	Address    string     `json:"address"`
	CreatedBy  *uuid.UUID `json:"-"`
}

// UpdateShipToRequest represents a request to update a ship-to site
type UpdateShipToRequest struct {
	Name       *string    `json:"name" binding:"omitempty,min=1,max=200"`
	PostalCode *string    `json:"postal_code" binding:"omitempty,max=10"`
	Address    *string    `json:"address"`
	Version    int        `json:"version" binding:"required,min=1"`
	UpdatedBy  *uuid.UUID `json:"-"`
}

// ShipToResponse represents a ship-to site in API responses
type ShipToResponse struct {
	ID         uuid.UUID `json:"id"`
	TenantID   uuid.UUID `json:"tenant_id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	PostalCode string    `json:"postal_code"`
	Address    string    `json:"address"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Version    int       `json:"version"`
}

// CreateTaxCodeRequest represents a request to create a tax code
type CreateTaxCodeRequest struct {
	Code      string          `json:"code" binding:"required,min=1,max=50"`
	Name      string          `json:"name" binding:"required,min=1,max=200"`
	Rate      decimal.Decimal `json:"rate" binding:"required"`
	ValidFrom *time.Time      `json:"valid_from"`
	CreatedBy *uuid.UUID      `json:"-"`
}

// UpdateTaxCodeRequest represents a request to update a tax code
type UpdateTaxCodeRequest struct {
	Name      *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Rate      *decimal.Decimal `json:"rate"`
	ValidFrom *time.Time       `json:"valid_from"`
	Version   int              `json:"version" binding:"required,min=1"`
	UpdatedBy *uuid.UUID       `json:"-"`
}

// TaxCodeResponse represents a tax code in API responses
type TaxCodeResponse struct {
	ID        uuid.UUID       `json:"id"`
	TenantID  uuid.UUID       `json:"tenant_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	ValidFrom *time.Time      `json:"valid_from"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Version   int             `json:"version"`
}

// ListFilter represents the common filter options shared by list endpoints
type ListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToBankResponse converts a domain Bank to BankResponse
func ToBankResponse(b *masterdata.Bank) *BankResponse {
	return &BankResponse{
		ID:        b.ID,
		TenantID:  b.TenantID,
		Code:      b.Code,
		Name:      b.Name,
		SwiftCode: b.SwiftCode,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		Version:   b.Version,
	}
}

// ToBranchResponse converts a domain Branch to BranchResponse
func ToBranchResponse(b *masterdata.Branch) *BranchResponse {
	return &BranchResponse{
		ID:        b.ID,
		TenantID:  b.TenantID,
		BankID:    b.BankID,
		Code:      b.Code,
		Name:      b.Name,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		Version:   b.Version,
	}
}

// ToWarehouseResponse converts a domain Warehouse to WarehouseResponse
func ToWarehouseResponse(w *masterdata.Warehouse) *WarehouseResponse {
	return &WarehouseResponse{
		ID:                 w.ID,
		TenantID:           w.TenantID,
		Code:               w.Code,
		Name:               w.Name,
		Address:            w.Address,
		IsDefaultReceiving: w.IsDefaultReceiving,
		SortOrder:          w.SortOrder,
		Status:             string(w.Status),
		CreatedAt:          w.CreatedAt,
		UpdatedAt:          w.UpdatedAt,
		Version:            w.Version,
	}
}

// ToPayeeBankAccountResponse converts a domain PayeeBankAccount to its response
func ToPayeeBankAccountResponse(a *masterdata.PayeeBankAccount) *PayeeBankAccountResponse {
	return &PayeeBankAccountResponse{
		ID:            a.ID,
		TenantID:      a.TenantID,
		PayeeID:       a.PayeeID,
		BankID:        a.BankID,
		BranchID:      a.BranchID,
		AccountType:   string(a.AccountType),
		AccountNumber: a.AccountNumber,
		AccountHolder: a.AccountHolder,
		IsDefault:     a.IsDefault,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
		Version:       a.Version,
	}
}

// ToProjectResponse converts a domain Project to ProjectResponse
func ToProjectResponse(p *masterdata.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:        p.ID,
		TenantID:  p.TenantID,
		Code:      p.Code,
		Name:      p.Name,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Version:   p.Version,
	}
}

// ToEmployeeResponse converts a domain Employee to EmployeeResponse
func ToEmployeeResponse(e *masterdata.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:        e.ID,
		TenantID:  e.TenantID,
		Code:      e.Code,
		Name:      e.Name,
		Email:     e.Email,
		HireDate:  e.HireDate,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		Version:   e.Version,
	}
}

// ToShipToResponse converts a domain ShipTo to ShipToResponse
func ToShipToResponse(s *masterdata.ShipTo) *ShipToResponse {
	return &ShipToResponse{
		ID:         s.ID,
		TenantID:   s.TenantID,
		Code:       s.Code,
		Name:       s.Name,
		PostalCode: s.PostalCode,
		Address:    s.Address,
		Status:     string(s.Status),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		Version:    s.Version,
	}
}

// ToTaxCodeResponse converts a domain TaxCode to TaxCodeResponse
func ToTaxCodeResponse(t *masterdata.TaxCode) *TaxCodeResponse {
	return &TaxCodeResponse{
		ID:        t.ID,
		TenantID:  t.TenantID,
		Code:      t.Code,
		Name:      t.Name,
		Rate:      t.Rate,
		ValidFrom: t.ValidFrom,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		Version:   t.Version,
	}
}
