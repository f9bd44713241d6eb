package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mdm/backend/internal/domain/masterdata"
	"github.com/mdm/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockBankRepository creates a GormBankRepository with a mocked SQL connection
func newMockBankRepository(t *testing.T) (*GormBankRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormBankRepository(gormDB), mock, mockDB
}

func bankRows(bankID, tenantID uuid.UUID, version int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "tenant_id", "version", "status", "code", "name", "swift_code"}).
		AddRow(bankID, tenantID, version, "active", "0001", "Test Bank", "")
}

func TestTenantStore_FindByIDForTenant(t *testing.T) {
	t.Run("finds aggregate within tenant", func(t *testing.T) {
		repo, mock, mockDB := newMockBankRepository(t)
		defer mockDB.Close()

		bankID := uuid.New()
		tenantID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "banks" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, bankID, 1).
			WillReturnRows(bankRows(bankID, tenantID, 1))

		bank, err := repo.FindByIDForTenant(context.Background(), tenantID, bankID)

		assert.NoError(t, err)
		assert.NotNil(t, bank)
		assert.Equal(t, tenantID, bank.TenantID)
		assert.Equal(t, "0001", bank.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns domain error when row belongs to another tenant", func(t *testing.T) {
		repo, mock, mockDB := newMockBankRepository(t)
		defer mockDB.Close()

		bankID := uuid.New()
		otherTenant := uuid.New()

		// The tenant predicate is in the WHERE clause, so the row is simply absent
		mock.ExpectQuery(`SELECT \* FROM "banks" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(otherTenant, bankID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		bank, err := repo.FindByIDForTenant(context.Background(), otherTenant, bankID)

		assert.Error(t, err)
		assert.Nil(t, bank)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "BANK_NOT_FOUND", domainErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTenantStore_FindByNaturalKey(t *testing.T) {
	t.Run("finds aggregate by natural key", func(t *testing.T) {
		repo, mock, mockDB := newMockBankRepository(t)
		defer mockDB.Close()

		bankID := uuid.New()
		tenantID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "banks" WHERE tenant_id = \$1 AND code = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, "0001", 1).
			WillReturnRows(bankRows(bankID, tenantID, 1))

		bank, err := repo.FindByNaturalKey(context.Background(), tenantID, "0001", nil)

		assert.NoError(t, err)
		assert.NotNil(t, bank)
		assert.Equal(t, "0001", bank.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTenantStore_ExistsByNaturalKey(t *testing.T) {
	t.Run("returns true when code exists", func(t *testing.T) {
		repo, mock, mockDB := newMockBankRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "banks" WHERE tenant_id = \$1 AND code = \$2`).
			WithArgs(tenantID, "0001").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByNaturalKey(context.Background(), tenantID, "0001", nil)

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns false when code does not exist", func(t *testing.T) {
		repo, mock, mockDB := newMockBankRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "banks" WHERE tenant_id = \$1 AND code = \$2`).
			WithArgs(tenantID, "9999").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByNaturalKey(context.Background(), tenantID, "9999", nil)

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTenantStore_Create(t *testing.T) {
	t.Run("inserts new aggregate", func(t *testing.T) {
		repo, mock, mockDB := newMockBankRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		bank, err := masterdata.NewBank(tenantID, "0001", "Test Bank")
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO "banks"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Create(context.Background(), bank)

		assert.NoError(t, err)
		assert.Equal(t, 1, bank.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTenantStore_Update(t *testing.T) {
	t.Run("bumps version on successful update", func(t *testing.T) {
		repo, mock, mockDB := newMockBankRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		bank, err := masterdata.NewBank(tenantID, "0001", "Test Bank")
		require.NoError(t, err)
		bank.Version = 2

		mock.ExpectQuery(`SELECT \* FROM "banks" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, bank.ID, 1).
			WillReturnRows(bankRows(bank.ID, tenantID, 2))

		mock.ExpectExec(`UPDATE "banks" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Update(context.Background(), bank, 2)

		assert.NoError(t, err)
		assert.Equal(t, 3, bank.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns conflict when the read sees a newer version", func(t *testing.T) {
		repo, mock, mockDB := newMockBankRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		bank, err := masterdata.NewBank(tenantID, "0001", "Test Bank")
		require.NoError(t, err)
		bank.Version = 2

		// Another writer already bumped the row to version 3
		mock.ExpectQuery(`SELECT \* FROM "banks" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, bank.ID, 1).
			WillReturnRows(bankRows(bank.ID, tenantID, 3))

		err = repo.Update(context.Background(), bank, 2)

		assert.Equal(t, shared.ErrConcurrencyConflict, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns conflict when a writer slips in after the read", func(t *testing.T) {
		repo, mock, mockDB := newMockBankRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		bank, err := masterdata.NewBank(tenantID, "0001", "Test Bank")
		require.NoError(t, err)
		bank.Version = 2

		mock.ExpectQuery(`SELECT \* FROM "banks" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, bank.ID, 1).
			WillReturnRows(bankRows(bank.ID, tenantID, 2))

		// The conditional write matches zero rows
		mock.ExpectExec(`UPDATE "banks" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.Update(context.Background(), bank, 2)

		assert.Equal(t, shared.ErrConcurrencyConflict, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing aggregate", func(t *testing.T) {
		repo, mock, mockDB := newMockBankRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		bank, err := masterdata.NewBank(tenantID, "0001", "Test Bank")
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT \* FROM "banks" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, bank.ID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		err = repo.Update(context.Background(), bank, 1)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "BANK_NOT_FOUND", domainErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTenantStore_UpdateStatus(t *testing.T) {
	t.Run("flips status under version guard", func(t *testing.T) {
		repo, mock, mockDB := newMockBankRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		bank, err := masterdata.NewBank(tenantID, "0001", "Test Bank")
		require.NoError(t, err)
		bank.SetStatus(shared.StatusInactive)

		mock.ExpectQuery(`SELECT \* FROM "banks" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, bank.ID, 1).
			WillReturnRows(bankRows(bank.ID, tenantID, 1))

		mock.ExpectExec(`UPDATE "banks" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.UpdateStatus(context.Background(), bank, 1)

		assert.NoError(t, err)
		assert.Equal(t, 2, bank.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns conflict on stale version", func(t *testing.T) {
		repo, mock, mockDB := newMockBankRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		bank, err := masterdata.NewBank(tenantID, "0001", "Test Bank")
		require.NoError(t, err)
		bank.SetStatus(shared.StatusInactive)

		mock.ExpectQuery(`SELECT \* FROM "banks" WHERE tenant_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(tenantID, bank.ID, 1).
			WillReturnRows(bankRows(bank.ID, tenantID, 4))

		err = repo.UpdateStatus(context.Background(), bank, 1)

		assert.Equal(t, shared.ErrConcurrencyConflict, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTenantStore_FindAllForTenant(t *testing.T) {
	t.Run("falls back to default ordering for unknown sort field", func(t *testing.T) {
		repo, mock, mockDB := newMockBankRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "banks" WHERE tenant_id = \$1 .* ORDER BY code ASC LIMIT .*`).
			WillReturnRows(bankRows(uuid.New(), tenantID, 1))

		banks, err := repo.FindAllForTenant(context.Background(), tenantID, shared.Filter{
			OrderBy: "evil; DROP TABLE banks",
		})

		assert.NoError(t, err)
		assert.Len(t, banks, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTenantStore_CountForTenant(t *testing.T) {
	t.Run("counts with whitelisted filter", func(t *testing.T) {
		repo, mock, mockDB := newMockBankRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "banks" WHERE tenant_id = \$1 AND status = \$2`).
			WithArgs(tenantID, "active").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := repo.CountForTenant(context.Background(), tenantID, shared.Filter{
			Filters: map[string]interface{}{"status": "active", "not_a_column": "x"},
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormBankRepository_InterfaceCompliance(t *testing.T) {
	t.Run("implements BankRepository interface", func(t *testing.T) {
		repo, _, mockDB := newMockBankRepository(t)
		defer mockDB.Close()

		var _ masterdata.BankRepository = repo
	})
}
