package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// aggregatePtr constrains P to a pointer to T that behaves as an aggregate root
type aggregatePtr[T any] interface {
	*T
	shared.AggregateRoot
}

// StoreConfig describes the aggregate-specific parts of a TenantStore
type StoreConfig struct {
	// NotFoundErr is returned for missing rows, e.g. BANK_NOT_FOUND
	NotFoundErr *shared.DomainError
	// NaturalKeyColumn is the column used by natural-key lookups, e.g. "code"
	NaturalKeyColumn string
	// SortFields whitelists order_by columns; unknown fields fall back to
	// DefaultOrderBy rather than being rejected
	SortFields     map[string]bool
	DefaultOrderBy string
	// SearchColumns are matched with ILIKE against the free-text search term
	SearchColumns []string
	// FilterColumns whitelists equality filters; unknown keys are ignored
	FilterColumns map[string]bool
}

// TenantStore is the single choke point through which every aggregate is read
// or written. Every query carries the tenant predicate in the same lookup and
// every write is a version-guarded conditional update, so no aggregate can
// forget tenant isolation or optimistic locking.
type TenantStore[T any, P aggregatePtr[T]] struct {
	db  *gorm.DB
	cfg StoreConfig
}

// NewTenantStore creates a tenant-scoped store for one aggregate type
func NewTenantStore[T any, P aggregatePtr[T]](db *gorm.DB, cfg StoreConfig) *TenantStore[T, P] {
	if cfg.NotFoundErr == nil {
		cfg.NotFoundErr = shared.ErrNotFound
	}
	return &TenantStore[T, P]{db: db, cfg: cfg}
}

// WithTx returns a copy of the store bound to the given transaction
func (s *TenantStore[T, P]) WithTx(tx *gorm.DB) *TenantStore[T, P] {
	return &TenantStore[T, P]{db: tx, cfg: s.cfg}
}

// DB exposes the underlying connection for aggregate-specific queries
func (s *TenantStore[T, P]) DB() *gorm.DB {
	return s.db
}

// FindByIDForTenant finds an aggregate by ID within a tenant. The tenant
// predicate is part of the lookup itself, never a check after the fetch.
func (s *TenantStore[T, P]) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*T, error) {
	var entity T
	if err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.cfg.NotFoundErr
		}
		return nil, err
	}
	return &entity, nil
}

// FindByNaturalKey finds an aggregate by its natural key within a tenant.
// The scope adds equality predicates, e.g. restricting a branch code to one bank.
func (s *TenantStore[T, P]) FindByNaturalKey(ctx context.Context, tenantID uuid.UUID, key string, scope shared.Scope) (*T, error) {
	var entity T
	query := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Where(fmt.Sprintf("%s = ?", s.cfg.NaturalKeyColumn), key)
	query = s.applyScope(query, scope)

	if err := query.First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.cfg.NotFoundErr
		}
		return nil, err
	}
	return &entity, nil
}

// FindAllForTenant finds all aggregates for a tenant matching the filter
func (s *TenantStore[T, P]) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]T, error) {
	var entities []T
	var model T
	query := s.applyFilter(s.db.WithContext(ctx).Model(&model).Where("tenant_id = ?", tenantID), filter)

	if err := query.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// CountForTenant counts aggregates for a tenant matching the filter
func (s *TenantStore[T, P]) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	var model T
	query := s.applyFilterWithoutPagination(s.db.WithContext(ctx).Model(&model).Where("tenant_id = ?", tenantID), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByNaturalKey checks if an aggregate with the given natural key exists
// in the tenant, active or inactive
func (s *TenantStore[T, P]) ExistsByNaturalKey(ctx context.Context, tenantID uuid.UUID, key string, scope shared.Scope) (bool, error) {
	var count int64
	var model T
	query := s.db.WithContext(ctx).Model(&model).
		Where("tenant_id = ?", tenantID).
		Where(fmt.Sprintf("%s = ?", s.cfg.NaturalKeyColumn), key)
	query = s.applyScope(query, scope)

	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new aggregate
func (s *TenantStore[T, P]) Create(ctx context.Context, entity *T) error {
	return s.db.WithContext(ctx).Create(entity).Error
}

// Update persists the aggregate under the two-phase optimistic-lock discipline:
// a tenant-scoped read attributes NotFound vs stale version, then a single
// conditional write on (tenant_id, id, version) closes the race window.
func (s *TenantStore[T, P]) Update(ctx context.Context, entity *T, expectedVersion int) error {
	agg := P(entity)

	current, err := s.FindByIDForTenant(ctx, agg.GetTenantID(), agg.GetID())
	if err != nil {
		return err
	}
	if P(current).GetVersion() != expectedVersion {
		return shared.ErrConcurrencyConflict
	}

	agg.IncrementVersion()
	result := s.db.WithContext(ctx).
		Model(entity).
		Where("tenant_id = ? AND id = ? AND version = ?", agg.GetTenantID(), agg.GetID(), expectedVersion).
		Select("*").
		Omit("id", "tenant_id", "created_at", "created_by").
		Updates(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// A writer slipped in between the read and the conditional write
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// UpdateStatus flips only the lifecycle status, under the same version
// discipline as Update
func (s *TenantStore[T, P]) UpdateStatus(ctx context.Context, entity *T, expectedVersion int) error {
	agg := P(entity)

	current, err := s.FindByIDForTenant(ctx, agg.GetTenantID(), agg.GetID())
	if err != nil {
		return err
	}
	if P(current).GetVersion() != expectedVersion {
		return shared.ErrConcurrencyConflict
	}

	agg.IncrementVersion()
	var model T
	result := s.db.WithContext(ctx).
		Model(&model).
		Where("tenant_id = ? AND id = ? AND version = ?", agg.GetTenantID(), agg.GetID(), expectedVersion).
		Updates(map[string]interface{}{
			"status":     agg.GetStatus(),
			"version":    agg.GetVersion(),
			"updated_by": agg.GetUpdatedBy(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// applyScope adds equality predicates from a natural-key scope
func (s *TenantStore[T, P]) applyScope(query *gorm.DB, scope shared.Scope) *gorm.DB {
	for col, value := range scope {
		if s.cfg.FilterColumns[col] {
			query = query.Where(fmt.Sprintf("%s = ?", col), value)
		}
	}
	return query
}

// applyFilter applies filter options to the query
func (s *TenantStore[T, P]) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = s.applyFilterWithoutPagination(query, filter)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 50
	}
	query = query.Offset((page - 1) * pageSize).Limit(pageSize)

	orderBy := ValidateSortField(filter.OrderBy, s.cfg.SortFields, s.cfg.DefaultOrderBy)
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (s *TenantStore[T, P]) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" && len(s.cfg.SearchColumns) > 0 {
		pattern := "%" + filter.Search + "%"
		clause := ""
		args := make([]interface{}, 0, len(s.cfg.SearchColumns))
		for i, col := range s.cfg.SearchColumns {
			if i > 0 {
				clause += " OR "
			}
			clause += col + " ILIKE ?"
			args = append(args, pattern)
		}
		query = query.Where(clause, args...)
	}

	for key, value := range filter.Filters {
		if s.cfg.FilterColumns[key] {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}
	}

	return query
}
