package masterdata

import (
	"context"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/mdm/backend/internal/domain/shared"
)

// PayeeBankAccountService handles payee remittance account use cases
type PayeeBankAccountService struct {
	accountRepo masterdata.PayeeBankAccountRepository
	bankRepo    masterdata.BankRepository
	branchRepo  masterdata.BranchRepository
}

// NewPayeeBankAccountService creates a new payee bank account service
func NewPayeeBankAccountService(
	accountRepo masterdata.PayeeBankAccountRepository,
	bankRepo masterdata.BankRepository,
	branchRepo masterdata.BranchRepository,
) *PayeeBankAccountService {
	return &PayeeBankAccountService{
		accountRepo: accountRepo,
		bankRepo:    bankRepo,
		branchRepo:  branchRepo,
	}
}

// Create registers a new remittance account for a payee. The bank and branch
// must exist and the branch must belong to the given bank.
func (s *PayeeBankAccountService) Create(ctx context.Context, tenantID uuid.UUID, req CreatePayeeBankAccountRequest) (*PayeeBankAccountResponse, error) {
	bank, err := s.bankRepo.FindByIDForTenant(ctx, tenantID, req.BankID)
	if err != nil {
		return nil, err
	}
	branch, err := s.branchRepo.FindByIDForTenant(ctx, tenantID, req.BranchID)
	if err != nil {
		return nil, err
	}
	if branch.BankID != bank.ID {
		return nil, shared.NewDomainError("BRANCH_WRONG_BANK", "Branch does not belong to the given bank")
	}

	account, err := masterdata.NewPayeeBankAccount(tenantID, req.PayeeID, bank.ID, branch.ID,
		masterdata.AccountType(req.AccountType), req.AccountNumber, req.AccountHolder)
	if err != nil {
		return nil, err
	}

	exists, err := s.accountRepo.ExistsByNaturalKey(ctx, tenantID, account.AccountNumber, shared.Scope{"payee_id": req.PayeeID})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ACCOUNT_NUMBER_DUPLICATE", "The payee already has an account with this number")
	}

	if req.CreatedBy != nil {
		account.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return ToPayeeBankAccountResponse(account), nil
}

// GetByID retrieves an account by ID
func (s *PayeeBankAccountService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*PayeeBankAccountResponse, error) {
	account, err := s.accountRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToPayeeBankAccountResponse(account), nil
}

// ListByPayee retrieves the accounts of one payee
func (s *PayeeBankAccountService) ListByPayee(ctx context.Context, tenantID, payeeID uuid.UUID, filter ListFilter) ([]PayeeBankAccountResponse, error) {
	accounts, err := s.accountRepo.FindByPayee(ctx, tenantID, payeeID, toRepositoryFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]PayeeBankAccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = *ToPayeeBankAccountResponse(&accounts[i])
	}
	return responses, nil
}

// GetDefaultForPayee retrieves the payee's default remittance account
func (s *PayeeBankAccountService) GetDefaultForPayee(ctx context.Context, tenantID, payeeID uuid.UUID) (*PayeeBankAccountResponse, error) {
	account, err := s.accountRepo.FindDefaultForPayee(ctx, tenantID, payeeID)
	if err != nil {
		return nil, err
	}
	return ToPayeeBankAccountResponse(account), nil
}

// Update modifies an account's mutable fields
func (s *PayeeBankAccountService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdatePayeeBankAccountRequest) (*PayeeBankAccountResponse, error) {
	account, err := s.accountRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	accountType := account.AccountType
	if req.AccountType != nil {
		accountType = masterdata.AccountType(*req.AccountType)
	}
	holder := account.AccountHolder
	if req.AccountHolder != nil {
		holder = *req.AccountHolder
	}
	if err := account.Update(accountType, holder); err != nil {
		return nil, err
	}
	if req.UpdatedBy != nil {
		account.Touch(*req.UpdatedBy)
	}

	if err := s.accountRepo.Update(ctx, account, req.Version); err != nil {
		return nil, err
	}

	return ToPayeeBankAccountResponse(account), nil
}

// SetDefault makes the account the payee's default remittance account.
// The previous default hands off the flag in the same transaction.
func (s *PayeeBankAccountService) SetDefault(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) (*PayeeBankAccountResponse, error) {
	account, err := s.accountRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if account.Status != shared.StatusActive {
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Cannot make an inactive account the default")
	}

	if updatedBy != nil {
		account.Touch(*updatedBy)
	}
	if err := s.accountRepo.SetDefault(ctx, account, expectedVersion); err != nil {
		return nil, err
	}

	return ToPayeeBankAccountResponse(account), nil
}

// Activate reactivates an account
func (s *PayeeBankAccountService) Activate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	account, err := s.accountRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if account.Status == shared.StatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Account is already active")
	}

	account.SetStatus(shared.StatusActive)
	if updatedBy != nil {
		account.Touch(*updatedBy)
	}
	return s.accountRepo.UpdateStatus(ctx, account, expectedVersion)
}

// Deactivate retires an account. The payee's default account must hand off
// the flag before it can be deactivated.
func (s *PayeeBankAccountService) Deactivate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	account, err := s.accountRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := account.Deactivate(); err != nil {
		return err
	}
	if updatedBy != nil {
		account.Touch(*updatedBy)
	}
	return s.accountRepo.UpdateStatus(ctx, account, expectedVersion)
}
