package masterdata

import (
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/shared"
)

// Project represents a cost-collection project
type Project struct {
	shared.TenantAggregateRoot
	Code      string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_project_tenant_code,priority:2"`
	Name      string     `gorm:"type:varchar(200);not null"`
	StartDate *time.Time `gorm:"type:date"`
	EndDate   *time.Time `gorm:"type:date"`
}

// TableName returns the table name for GORM
func (Project) TableName() string {
	return "projects"
}

// NewProject creates a new project with required fields
func NewProject(tenantID uuid.UUID, code, name string) (*Project, error) {
	if err := validateCode(code, "Project code"); err != nil {
		return nil, err
	}
	if err := validateName(name, "Project name"); err != nil {
		return nil, err
	}

	return &Project{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		Name:                name,
	}, nil
}

// Update updates the project's mutable fields
func (p *Project) Update(name string, startDate, endDate *time.Time) error {
	if err := validateName(name, "Project name"); err != nil {
		return err
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return shared.NewDomainError("INVALID_PERIOD", "Project end date cannot precede its start date")
	}
	p.Name = name
	p.StartDate = startDate
	p.EndDate = endDate
	p.UpdatedAt = time.Now()
	return nil
}
