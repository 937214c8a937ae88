package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/kingrain94/usage-billing-api/internal/repository"
)

const pgUniqueViolation = "23505"

// tenantScope returns a context-bound query restricted to one tenant.
func tenantScope(db *gorm.DB, ctx context.Context, tenantID string) *gorm.DB {
	return db.WithContext(ctx).Where("tenant_id = ?", tenantID)
}

// translateError maps driver errors onto the repository error set.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	if isUniqueViolation(err) {
		return errors.Join(repository.ErrDuplicateKey, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// sqlite reports constraint failures only through the message
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
