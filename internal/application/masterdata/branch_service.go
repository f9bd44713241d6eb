package masterdata

import (
	"context"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/mdm/backend/internal/domain/shared"
)

// BranchService handles bank branch use cases
type BranchService struct {
	branchRepo masterdata.BranchRepository
	bankRepo   masterdata.BankRepository
}

// NewBranchService creates a new branch service
func NewBranchService(branchRepo masterdata.BranchRepository, bankRepo masterdata.BankRepository) *BranchService {
	return &BranchService{
		branchRepo: branchRepo,
		bankRepo:   bankRepo,
	}
}

// Create registers a new branch under an existing bank
func (s *BranchService) Create(ctx context.Context, tenantID uuid.UUID, req CreateBranchRequest) (*BranchResponse, error) {
	bank, err := s.bankRepo.FindByIDForTenant(ctx, tenantID, req.BankID)
	if err != nil {
		return nil, err
	}
	if bank.Status != shared.StatusActive {
		return nil, shared.NewDomainError("BANK_INACTIVE", "Cannot add a branch to an inactive bank")
	}

	branch, err := masterdata.NewBranch(tenantID, bank.ID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}

	exists, err := s.branchRepo.ExistsByNaturalKey(ctx, tenantID, branch.Code, shared.Scope{"bank_id": bank.ID})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("BRANCH_CODE_DUPLICATE", "A branch with this code already exists in the bank")
	}

	if req.CreatedBy != nil {
		branch.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}

	return ToBranchResponse(branch), nil
}

// GetByID retrieves a branch by ID
func (s *BranchService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*BranchResponse, error) {
	branch, err := s.branchRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToBranchResponse(branch), nil
}

// List retrieves branches with filtering and pagination
func (s *BranchService) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]BranchResponse, int64, error) {
	repoFilter := toRepositoryFilter(filter)

	branches, err := s.branchRepo.FindAllForTenant(ctx, tenantID, repoFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.branchRepo.CountForTenant(ctx, tenantID, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]BranchResponse, len(branches))
	for i := range branches {
		responses[i] = *ToBranchResponse(&branches[i])
	}
	return responses, total, nil
}

// ListByBank retrieves the branches of one bank
func (s *BranchService) ListByBank(ctx context.Context, tenantID, bankID uuid.UUID, filter ListFilter) ([]BranchResponse, error) {
	if _, err := s.bankRepo.FindByIDForTenant(ctx, tenantID, bankID); err != nil {
		return nil, err
	}

	branches, err := s.branchRepo.FindByBank(ctx, tenantID, bankID, toRepositoryFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]BranchResponse, len(branches))
	for i := range branches {
		responses[i] = *ToBranchResponse(&branches[i])
	}
	return responses, nil
}

// Update modifies a branch's mutable fields
func (s *BranchService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateBranchRequest) (*BranchResponse, error) {
	branch, err := s.branchRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := branch.Update(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.UpdatedBy != nil {
		branch.Touch(*req.UpdatedBy)
	}

	if err := s.branchRepo.Update(ctx, branch, req.Version); err != nil {
		return nil, err
	}

	return ToBranchResponse(branch), nil
}

// Activate reactivates a branch
func (s *BranchService) Activate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	branch, err := s.branchRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if branch.Status == shared.StatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Branch is already active")
	}

	branch.SetStatus(shared.StatusActive)
	if updatedBy != nil {
		branch.Touch(*updatedBy)
	}
	return s.branchRepo.UpdateStatus(ctx, branch, expectedVersion)
}

// Deactivate retires a branch
func (s *BranchService) Deactivate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	branch, err := s.branchRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if branch.Status == shared.StatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Branch is already inactive")
	}

	branch.SetStatus(shared.StatusInactive)
	if updatedBy != nil {
		branch.Touch(*updatedBy)
	}
	return s.branchRepo.UpdateStatus(ctx, branch, expectedVersion)
}
