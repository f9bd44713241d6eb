package masterdata

import (
	"context"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/mdm/backend/internal/domain/shared"
)

// EmployeeService handles employee master data use cases
type EmployeeService struct {
	employeeRepo masterdata.EmployeeRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo masterdata.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
	}
}

// Create registers a new employee
func (s *EmployeeService) Create(ctx context.Context, tenantID uuid.UUID, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := masterdata.NewEmployee(tenantID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if req.Email != "" || req.HireDate != nil {
		if err := employee.Update(employee.Name, req.Email, req.HireDate); err != nil {
			return nil, err
		}
	}

	exists, err := s.employeeRepo.ExistsByNaturalKey(ctx, tenantID, employee.Code, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("EMPLOYEE_CODE_DUPLICATE", "An employee with this code already exists")
	}

	if req.CreatedBy != nil {
		employee.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	return ToEmployeeResponse(employee), nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return ToEmployeeResponse(employee), nil
}

// List retrieves employees with filtering and pagination
func (s *EmployeeService) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]EmployeeResponse, int64, error) {
	repoFilter := toRepositoryFilter(filter)

	employees, err := s.employeeRepo.FindAllForTenant(ctx, tenantID, repoFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.employeeRepo.CountForTenant(ctx, tenantID, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = *ToEmployeeResponse(&employees[i])
	}
	return responses, total, nil
}

// Update modifies an employee's mutable fields. The employee code is fixed
// at creation; attempts to change it are rejected.
func (s *EmployeeService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil && *req.Code != employee.Code {
		return nil, shared.NewDomainError("EMPLOYEE_CODE_CANNOT_BE_CHANGED", "Employee code cannot be changed after creation")
	}

	name := employee.Name
	if req.Name != nil {
		name = *req.Name
	}
	email := employee.Email
	if req.Email != nil {
		email = *req.Email
	}
	hireDate := employee.HireDate
	if req.HireDate != nil {
		hireDate = req.HireDate
	}
	if err := employee.Update(name, email, hireDate); err != nil {
		return nil, err
	}
	if req.UpdatedBy != nil {
		employee.Touch(*req.UpdatedBy)
	}

	if err := s.employeeRepo.Update(ctx, employee, req.Version); err != nil {
		return nil, err
	}

	return ToEmployeeResponse(employee), nil
}

// Activate reactivates an employee
func (s *EmployeeService) Activate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	employee, err := s.employeeRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if employee.Status == shared.StatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Employee is already active")
	}

	employee.SetStatus(shared.StatusActive)
	if updatedBy != nil {
		employee.Touch(*updatedBy)
	}
	return s.employeeRepo.UpdateStatus(ctx, employee, expectedVersion)
}

// Deactivate retires an employee
func (s *EmployeeService) Deactivate(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy *uuid.UUID) error {
	employee, err := s.employeeRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if employee.Status == shared.StatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Employee is already inactive")
	}

	employee.SetStatus(shared.StatusInactive)
	if updatedBy != nil {
		employee.Touch(*updatedBy)
	}
	return s.employeeRepo.UpdateStatus(ctx, employee, expectedVersion)
}
