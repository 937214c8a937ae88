package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/kingrain94/usage-billing-api/internal/config"
	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/repository"
)

type postgresRepository struct {
	tenantRepo    repository.TenantRepository
	ledgerRepo    repository.UsageLedgerRepository
	billingRepo   repository.BillingRepository
	tenantDocRepo repository.TenantDocRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	return &postgresRepository{
		tenantRepo:    NewTenantRepository(dbConnections.Writer, dbConnections.Reader),
		ledgerRepo:    NewUsageLedgerRepository(dbConnections.Writer, dbConnections.Reader),
		billingRepo:   NewBillingRepository(dbConnections.Writer, dbConnections.Reader),
		tenantDocRepo: NewTenantDocRepository(dbConnections.Writer, dbConnections.Reader),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Ledger() repository.UsageLedgerRepository {
	return r.ledgerRepo
}

func (r *postgresRepository) Billing() repository.BillingRepository {
	return r.billingRepo
}

func (r *postgresRepository) TenantDoc() repository.TenantDocRepository {
	return r.tenantDocRepo
}

// Migrate creates or updates the relational schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Tenant{},
		&domain.UsageRecord{},
		&domain.BillingHistory{},
		&domain.BillingSettings{},
		&domain.TenantDoc{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
