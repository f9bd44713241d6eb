package masterdata

import (
	"context"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/mdm/backend/internal/domain/shared"
)

// BankService handles bank master data use cases
type BankService struct {
	bankRepo masterdata.BankRepository
}

// NewBankService creates a new bank service
func NewBankService(bankRepo masterdata.BankRepository) *BankService {
	return &BankService{
		bankRepo: bankRepo,
	}
}

// Create registers a new bank
func (s *BankService) Create(ctx context.Context, tenantID uuid.UUID, req CreateBankRequest) (*BankResponse, error) {
	bank, err := masterdata.NewBank(tenantID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}

	exists, err := s.bankRepo.ExistsByNaturalKey(ctx, tenantID, bank.Code, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("BANK_CODE_DUPLICATE", "A bank with this code already exists")
	}

	if req.SwiftCode != "" {
		bank.SwiftCode = req.SwiftCode
	}
	if req.CreatedBy != nil {
		bank.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.bankRepo.Create(ctx, bank); err != nil {
		return nil, err
	}

	return ToBankResponse(bank), nil
}

// GetByID retrieves a bank by ID
func (s *BankService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*BankResponse, error) {
	bank, err := s.bankRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToBankResponse(bank), nil
}

// GetByCode retrieves a bank by its code
func (s *BankService) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*BankResponse, error) {
	bank, err := s.bankRepo.FindByNaturalKey(ctx, tenantID, code, nil)
	if err != nil {
		return nil, err
	}
	return ToBankResponse(bank), nil
}

// List retrieves banks with filtering and pagination
func (s *BankService) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]BankResponse, int64, error) {
	repoFilter := toRepositoryFilter(filter)

	banks, err := s.bankRepo.FindAllForTenant(ctx, tenantID, repoFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.bankRepo.CountForTenant(ctx, tenantID, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]BankResponse, len(banks))
	for i := range banks {
		responses[i] = *ToBankResponse(&banks[i])
	}
	return responses, total, nil
}

// Update modifies a bank's mutable fields under the caller's expected version
func (s *BankService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateBankRequest) (*BankResponse, error) {
	bank, err := s.bankRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	name := bank.Name
	if req.Name != nil {
		name = *req.Name
	}
	swiftCode := bank.SwiftCode
	if req.SwiftCode != nil {
		swiftCode = *req.SwiftCode
	}
	if err := bank.Update(name, swiftCode); err != nil {
		return nil, err
	}
	if req.UpdatedBy != nil {
		bank.Touch(*req.UpdatedBy)
	}

	if err := s.bankRepo.Update(ctx, bank, req.Version); err != nil {
		return nil, err
	}

	return ToBankResponse(bank), nil
}

// Activate reactivates a bank
func (s *BankService) Activate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	bank, err := s.bankRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if bank.Status == shared.StatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Bank is already active")
	}

	bank.SetStatus(shared.StatusActive)
	if updatedBy != nil {
		bank.Touch(*updatedBy)
	}
	return s.bankRepo.UpdateStatus(ctx, bank, expectedVersion)
}

// Deactivate retires a bank
func (s *BankService) Deactivate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	bank, err := s.bankRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if bank.Status == shared.StatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Bank is already inactive")
	}

	bank.SetStatus(shared.StatusInactive)
	if updatedBy != nil {
		bank.Touch(*updatedBy)
	}
	return s.bankRepo.UpdateStatus(ctx, bank, expectedVersion)
}
