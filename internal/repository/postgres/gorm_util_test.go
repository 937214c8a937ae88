package postgres

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/repository"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantRaw bool
	}{
		{name: "nil", err: nil},
		{name: "record not found", err: gorm.ErrRecordNotFound, wantIs: repository.ErrNotFound},
		{name: "pg unique violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), wantIs: repository.ErrDuplicateKey},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, wantIs: repository.ErrDuplicateKey},
		{name: "sqlite unique", err: errors.New("constraint failed: UNIQUE constraint failed: tenants.name (2067)"), wantIs: repository.ErrDuplicateKey},
		{name: "other pg error", err: &pgconn.PgError{Code: "23503"}, wantRaw: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err)
			switch {
			case tt.err == nil:
				assert.NoError(t, got)
			case tt.wantRaw:
				assert.Equal(t, tt.err, got)
			default:
				assert.ErrorIs(t, got, tt.wantIs)
			}
		})
	}
}

func TestLedgerInsert_PostgresUniqueViolation(t *testing.T) {
	// Arrange
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "tenant_usages"`)).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "tenant_usages_pkey"})
	mock.ExpectRollback()

	repo := NewUsageLedgerRepository(db, db)

	// Act
	_, err = repo.Insert(context.Background(), domain.NewUsageRecord("tenant_1", time.Now(), 1, 1))

	// Assert
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}
