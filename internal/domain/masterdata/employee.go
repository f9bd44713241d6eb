package masterdata

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/shared"
)

// Employee represents a staff member. The employee code is fixed at creation;
// update requests that try to change it are rejected, not silently ignored.
type Employee struct {
	shared.TenantAggregateRoot
	Code     string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_employee_tenant_code,priority:2"`
	Name     string     `gorm:"type:varchar(200);not null"`
	Email    string     `gorm:"type:varchar(200)"`
	HireDate *time.Time `gorm:"type:date"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee creates a new employee with required fields
func NewEmployee(tenantID uuid.UUID, code, name string) (*Employee, error) {
	if err := validateCode(code, "Employee code"); err != nil {
		return nil, err
	}
	if err := validateName(name, "Employee name"); err != nil {
		return nil, err
	}

	return &Employee{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		Name:                name,
	}, nil
}

// Update updates the employee's mutable fields
func (e *Employee) Update(name, email string, hireDate *time.Time) error {
	if err := validateName(name, "Employee name"); err != nil {
		return err
	}
	if email != "" && !strings.Contains(email, "@") {
		return shared.NewDomainError("INVALID_EMAIL", "Email address is malformed")
	}
	e.Name = name
	e.Email = strings.ToLower(email)
	e.HireDate = hireDate
	e.UpdatedAt = time.Now()
	return nil
}
