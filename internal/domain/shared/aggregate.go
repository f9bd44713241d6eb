package shared

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle flag shared by every aggregate. Records are never
// hard-deleted; deactivation is the soft-delete surrogate.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsValid reports whether s is a known status value
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetTenantID() uuid.UUID
	GetVersion() int
	IncrementVersion()
	GetStatus() Status
	SetStatus(Status)
	GetUpdatedBy() *uuid.UUID
}

// TenantAggregateRoot provides the common fields for tenant-scoped aggregates:
// tenant isolation key, optimistic-lock version and audit columns
type TenantAggregateRoot struct {
	BaseEntity
	TenantID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Version   int        `gorm:"not null;default:1"`
	Status    Status     `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	UpdatedBy *uuid.UUID `gorm:"type:uuid"`
}

// NewTenantAggregateRoot creates a new tenant-scoped aggregate root.
// Version starts at 1 and every successful mutation increments it by exactly one.
func NewTenantAggregateRoot(tenantID uuid.UUID) TenantAggregateRoot {
	return TenantAggregateRoot{
		BaseEntity: NewBaseEntity(),
		TenantID:   tenantID,
		Version:    1,
		Status:     StatusActive,
	}
}

// GetTenantID returns the owning tenant
func (a *TenantAggregateRoot) GetTenantID() uuid.UUID {
	return a.TenantID
}

// GetVersion returns the aggregate version for optimistic locking
func (a *TenantAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *TenantAggregateRoot) IncrementVersion() {
	a.Version++
}

// GetStatus returns the lifecycle status
func (a *TenantAggregateRoot) GetStatus() Status {
	return a.Status
}

// SetStatus sets the lifecycle status
func (a *TenantAggregateRoot) SetStatus(status Status) {
	a.Status = status
}

// GetUpdatedBy returns the last mutating user
func (a *TenantAggregateRoot) GetUpdatedBy() *uuid.UUID {
	return a.UpdatedBy
}

// IsActive returns true if the aggregate is active
func (a *TenantAggregateRoot) IsActive() bool {
	return a.Status == StatusActive
}

// Touch records the mutating user and bumps the update timestamp.
// The version is incremented separately by the write path.
func (a *TenantAggregateRoot) Touch(userID uuid.UUID) {
	a.UpdatedBy = &userID
	a.UpdatedAt = time.Now()
}

// SetCreatedBy sets the creator user ID on both audit columns
func (a *TenantAggregateRoot) SetCreatedBy(userID uuid.UUID) {
	a.CreatedBy = &userID
	a.UpdatedBy = &userID
}
