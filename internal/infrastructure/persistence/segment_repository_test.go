package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mdm/backend/internal/domain/classification"
	"github.com/mdm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockSegmentRepository creates a GormSegmentRepository with a mocked SQL connection
func newMockSegmentRepository(t *testing.T) (*GormSegmentRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormSegmentRepository(gormDB), mock, mockDB
}

func segmentRows(segmentID, tenantID, axisID uuid.UUID, version int, path string, level int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "tenant_id", "version", "status", "category_axis_id", "code", "name", "parent_id", "path", "level", "display_order"}).
		AddRow(segmentID, tenantID, version, "active", axisID, "ELEC", "Electronics", nil, path, level, 0)
}

func TestGormSegmentRepository_FindByAxis(t *testing.T) {
	t.Run("lists segments ordered by display order then code", func(t *testing.T) {
		repo, mock, mockDB := newMockSegmentRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		axisID := uuid.New()
		segmentID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "segments" WHERE tenant_id = \$1 AND category_axis_id = \$2 ORDER BY display_order ASC, code ASC`).
			WithArgs(tenantID, axisID).
			WillReturnRows(segmentRows(segmentID, tenantID, axisID, 1, segmentID.String(), 0))

		segments, err := repo.FindByAxis(context.Background(), tenantID, axisID)

		assert.NoError(t, err)
		assert.Len(t, segments, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSegmentRepository_FindByCodeInAxis(t *testing.T) {
	t.Run("scopes the code lookup to the axis", func(t *testing.T) {
		repo, mock, mockDB := newMockSegmentRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		axisID := uuid.New()
		segmentID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "segments" WHERE tenant_id = \$1 AND code = \$2 AND category_axis_id = \$3 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, "ELEC", axisID, 1).
			WillReturnRows(segmentRows(segmentID, tenantID, axisID, 1, segmentID.String(), 0))

		segment, err := repo.FindByCodeInAxis(context.Background(), tenantID, axisID, "ELEC")

		assert.NoError(t, err)
		assert.NotNil(t, segment)
		assert.Equal(t, "ELEC", segment.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSegmentRepository_MaxLevelInSubtree(t *testing.T) {
	t.Run("returns the deepest level in the subtree", func(t *testing.T) {
		repo, mock, mockDB := newMockSegmentRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		path := uuid.New().String()

		mock.ExpectQuery(`SELECT COALESCE\(MAX\(level\), 0\) FROM "segments" WHERE tenant_id = \$1 AND \(path = \$2 OR path LIKE \$3\)`).
			WithArgs(tenantID, path, path+"/%").
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3))

		maxLevel, err := repo.MaxLevelInSubtree(context.Background(), tenantID, path)

		assert.NoError(t, err)
		assert.Equal(t, 3, maxLevel)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSegmentRepository_Reparent(t *testing.T) {
	t.Run("moves segment and re-paths the subtree", func(t *testing.T) {
		repo, mock, mockDB := newMockSegmentRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		axisID := uuid.New()
		segment, err := classification.NewRootSegment(tenantID, axisID, "ELEC", "Electronics")
		require.NoError(t, err)

		newParentID := uuid.New()
		newPath := newParentID.String() + "/" + segment.ID.String()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "segments" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, segment.ID, 1).
			WillReturnRows(segmentRows(segment.ID, tenantID, axisID, 1, segment.Path, 0))
		mock.ExpectExec(`UPDATE "segments" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "segments" SET`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		err = repo.Reparent(context.Background(), segment, &newParentID, newPath, 1, 1)

		assert.NoError(t, err)
		assert.Equal(t, newPath, segment.Path)
		assert.Equal(t, 1, segment.Level)
		assert.Equal(t, 2, segment.Version)
		require.NotNil(t, segment.ParentID)
		assert.Equal(t, newParentID, *segment.ParentID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on stale version", func(t *testing.T) {
		repo, mock, mockDB := newMockSegmentRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		axisID := uuid.New()
		segment, err := classification.NewRootSegment(tenantID, axisID, "ELEC", "Electronics")
		require.NoError(t, err)

		newParentID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "segments" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, segment.ID, 1).
			WillReturnRows(segmentRows(segment.ID, tenantID, axisID, 5, segment.Path, 0))
		mock.ExpectRollback()

		err = repo.Reparent(context.Background(), segment, &newParentID, "unused", 1, 1)

		assert.Equal(t, shared.ErrConcurrencyConflict, err)
		assert.Nil(t, segment.ParentID)
		assert.Equal(t, 1, segment.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
