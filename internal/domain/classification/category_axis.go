package classification

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/shared"
)

// EntityKind identifies which kind of business entity an axis classifies
type EntityKind string

const (
	EntityKindItem     EntityKind = "ITEM"
	EntityKindSupplier EntityKind = "SUPPLIER"
)

// IsValid reports whether k is a known entity kind
func (k EntityKind) IsValid() bool {
	return k == EntityKindItem || k == EntityKindSupplier
}

// CategoryAxis is a named classification axis. Each axis owns a forest of
// segments and declares which entity kind it may classify. Code and
// TargetEntityKind are fixed at creation.
type CategoryAxis struct {
	shared.TenantAggregateRoot
	Code              string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_axis_tenant_code,priority:2"`
	Name              string     `gorm:"type:varchar(100);not null"`
	TargetEntityKind  EntityKind `gorm:"type:varchar(20);not null"`
	SupportsHierarchy bool       `gorm:"not null;default:false"`
	DisplayOrder      int        `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (CategoryAxis) TableName() string {
	return "category_axes"
}

// NewCategoryAxis creates a new classification axis.
// Hierarchy support is only available for item axes.
func NewCategoryAxis(tenantID uuid.UUID, code, name string, kind EntityKind, supportsHierarchy bool) (*CategoryAxis, error) {
	if err := validateAxisCode(code); err != nil {
		return nil, err
	}
	if err := validateAxisName(name); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_ENTITY_KIND", "Unknown target entity kind")
	}
	if supportsHierarchy && kind != EntityKindItem {
		return nil, shared.NewDomainError("HIERARCHY_NOT_ALLOWED", "Only item axes may support hierarchy")
	}

	return &CategoryAxis{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                strings.ToUpper(code),
		Name:                name,
		TargetEntityKind:    kind,
		SupportsHierarchy:   supportsHierarchy,
	}, nil
}

// Update updates the axis's mutable fields
func (a *CategoryAxis) Update(name string) error {
	if err := validateAxisName(name); err != nil {
		return err
	}
	a.Name = name
	a.UpdatedAt = time.Now()
	return nil
}

// SetDisplayOrder sets the display order of the axis
func (a *CategoryAxis) SetDisplayOrder(order int) {
	a.DisplayOrder = order
	a.UpdatedAt = time.Now()
}

// EnableHierarchy turns on hierarchy support; only item axes qualify
func (a *CategoryAxis) EnableHierarchy() error {
	if a.TargetEntityKind != EntityKindItem {
		return shared.NewDomainError("HIERARCHY_NOT_ALLOWED", "Only item axes may support hierarchy")
	}
	a.SupportsHierarchy = true
	a.UpdatedAt = time.Now()
	return nil
}

// Classifies reports whether this axis may classify the given entity kind
func (a *CategoryAxis) Classifies(kind EntityKind) bool {
	return a.TargetEntityKind == kind
}

func validateAxisCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Axis code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Axis code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Axis code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateAxisName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Axis name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Axis name cannot exceed 100 characters")
	}
	return nil
}
