package classification

import (
	"context"

	"github.com/google/uuid"
	"github.com/mdm/backend/internal/domain/classification"
	"github.com/mdm/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockCategoryAxisRepository is a mock implementation of CategoryAxisRepository
type MockCategoryAxisRepository struct {
	mock.Mock
}

func (m *MockCategoryAxisRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*classification.CategoryAxis, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*classification.CategoryAxis), args.Error(1)
}

func (m *MockCategoryAxisRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*classification.CategoryAxis, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*classification.CategoryAxis), args.Error(1)
}

func (m *MockCategoryAxisRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]classification.CategoryAxis, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]classification.CategoryAxis), args.Error(1)
}

func (m *MockCategoryAxisRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryAxisRepository) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, tenantID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryAxisRepository) Create(ctx context.Context, axis *classification.CategoryAxis) error {
	args := m.Called(ctx, axis)
	return args.Error(0)
}

func (m *MockCategoryAxisRepository) Update(ctx context.Context, axis *classification.CategoryAxis, expectedVersion int) error {
	args := m.Called(ctx, axis, expectedVersion)
	return args.Error(0)
}

func (m *MockCategoryAxisRepository) UpdateStatus(ctx context.Context, axis *classification.CategoryAxis, expectedVersion int) error {
	args := m.Called(ctx, axis, expectedVersion)
	return args.Error(0)
}

// MockSegmentRepository is a mock implementation of SegmentRepository
type MockSegmentRepository struct {
	mock.Mock
}

func (m *MockSegmentRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*classification.Segment, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*classification.Segment), args.Error(1)
}

func (m *MockSegmentRepository) FindByCodeInAxis(ctx context.Context, tenantID, axisID uuid.UUID, code string) (*classification.Segment, error) {
	args := m.Called(ctx, tenantID, axisID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*classification.Segment), args.Error(1)
}

func (m *MockSegmentRepository) FindByAxis(ctx context.Context, tenantID, axisID uuid.UUID) ([]classification.Segment, error) {
	args := m.Called(ctx, tenantID, axisID)
	return args.Get(0).([]classification.Segment), args.Error(1)
}

func (m *MockSegmentRepository) FindChildren(ctx context.Context, tenantID, parentID uuid.UUID) ([]classification.Segment, error) {
	args := m.Called(ctx, tenantID, parentID)
	return args.Get(0).([]classification.Segment), args.Error(1)
}

func (m *MockSegmentRepository) ExistsByCodeInAxis(ctx context.Context, tenantID, axisID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, tenantID, axisID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockSegmentRepository) MaxLevelInSubtree(ctx context.Context, tenantID uuid.UUID, path string) (int, error) {
	args := m.Called(ctx, tenantID, path)
	return args.Int(0), args.Error(1)
}

func (m *MockSegmentRepository) Create(ctx context.Context, segment *classification.Segment) error {
	args := m.Called(ctx, segment)
	return args.Error(0)
}

func (m *MockSegmentRepository) Update(ctx context.Context, segment *classification.Segment, expectedVersion int) error {
	args := m.Called(ctx, segment, expectedVersion)
	return args.Error(0)
}

func (m *MockSegmentRepository) UpdateStatus(ctx context.Context, segment *classification.Segment, expectedVersion int) error {
	args := m.Called(ctx, segment, expectedVersion)
	return args.Error(0)
}

func (m *MockSegmentRepository) Reparent(ctx context.Context, segment *classification.Segment, newParentID *uuid.UUID, newPath string, levelDelta, expectedVersion int) error {
	args := m.Called(ctx, segment, newParentID, newPath, levelDelta, expectedVersion)
	return args.Error(0)
}

// MockSegmentAssignmentRepository is a mock implementation of SegmentAssignmentRepository
type MockSegmentAssignmentRepository struct {
	mock.Mock
}

func (m *MockSegmentAssignmentRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*classification.SegmentAssignment, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*classification.SegmentAssignment), args.Error(1)
}

func (m *MockSegmentAssignmentRepository) FindActiveByEntityAxis(ctx context.Context, tenantID uuid.UUID, kind classification.EntityKind, entityID, axisID uuid.UUID) (*classification.SegmentAssignment, error) {
	args := m.Called(ctx, tenantID, kind, entityID, axisID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*classification.SegmentAssignment), args.Error(1)
}

func (m *MockSegmentAssignmentRepository) FindActiveByEntity(ctx context.Context, tenantID uuid.UUID, kind classification.EntityKind, entityID uuid.UUID) ([]classification.SegmentAssignment, error) {
	args := m.Called(ctx, tenantID, kind, entityID)
	return args.Get(0).([]classification.SegmentAssignment), args.Error(1)
}

func (m *MockSegmentAssignmentRepository) UpsertActive(ctx context.Context, assignment *classification.SegmentAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockSegmentAssignmentRepository) UpdateStatus(ctx context.Context, assignment *classification.SegmentAssignment, expectedVersion int) error {
	args := m.Called(ctx, assignment, expectedVersion)
	return args.Error(0)
}

// MockSegmentCache is a mock implementation of cache.SegmentCache
type MockSegmentCache struct {
	mock.Mock
}

func (m *MockSegmentCache) GetAxisSegments(ctx context.Context, tenantID, axisID uuid.UUID) ([]classification.Segment, bool, error) {
	args := m.Called(ctx, tenantID, axisID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]classification.Segment), args.Bool(1), args.Error(2)
}

func (m *MockSegmentCache) SetAxisSegments(ctx context.Context, tenantID, axisID uuid.UUID, segments []classification.Segment) error {
	args := m.Called(ctx, tenantID, axisID, segments)
	return args.Error(0)
}

func (m *MockSegmentCache) InvalidateAxis(ctx context.Context, tenantID, axisID uuid.UUID) error {
	args := m.Called(ctx, tenantID, axisID)
	return args.Error(0)
}

func (m *MockSegmentCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

// Test helper functions
func newTestTenantID() uuid.UUID {
	return uuid.MustParse("11111111-1111-1111-1111-111111111111")
}

func newTestAxisID() uuid.UUID {
	return uuid.MustParse("22222222-2222-2222-2222-222222222222")
}

func newTestEntityID() uuid.UUID {
	return uuid.MustParse("33333333-3333-3333-3333-333333333333")
}

func createTestAxis(tenantID uuid.UUID, supportsHierarchy bool) *classification.CategoryAxis {
	axis, _ := classification.NewCategoryAxis(tenantID, "ITEM_CATEGORY", "Item Category", classification.EntityKindItem, supportsHierarchy)
	axis.ID = newTestAxisID()
	return axis
}

func createTestRootSegment(tenantID, axisID uuid.UUID, code string) *classification.Segment {
	segment, _ := classification.NewRootSegment(tenantID, axisID, code, "Segment "+code)
	return segment
}
