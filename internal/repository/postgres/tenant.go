package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/repository"
)

type TenantRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTenantRepository(writerDB, readerDB *gorm.DB) *TenantRepository {
	return &TenantRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// Create inserts the row, derives tenant_<id> from the generated surrogate id
// and writes it back inside the same transaction.
func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	tenant.ActiveState = true
	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("tenant_id").Create(tenant).Error; err != nil {
			return err
		}

		tenantID := domain.FormatTenantID(tenant.ID)
		if err := tx.Model(tenant).Update("tenant_id", tenantID).Error; err != nil {
			return fmt.Errorf("failed to assign tenant id: %w", err)
		}
		tenant.TenantID = &tenantID
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return tenant, nil
}

// Lookups that gate writes go to the writer so a just-committed row is visible.
func (r *TenantRepository) GetByTenantID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	return r.first(r.writerDB.WithContext(ctx).Where("tenant_id = ?", tenantID))
}

func (r *TenantRepository) GetByName(ctx context.Context, name string) (*domain.Tenant, error) {
	return r.first(r.writerDB.WithContext(ctx).Where("name = ?", name))
}

func (r *TenantRepository) GetByAlias(ctx context.Context, alias string) (*domain.Tenant, error) {
	return r.first(r.writerDB.WithContext(ctx).Where("alias = ?", alias))
}

func (r *TenantRepository) FindByNameOrAlias(ctx context.Context, name, alias string) (*domain.Tenant, error) {
	db := r.readerDB.WithContext(ctx)
	switch {
	case name != "" && alias != "":
		db = db.Where("name = ? OR alias = ?", name, alias)
	case name != "":
		db = db.Where("name = ?", name)
	case alias != "":
		db = db.Where("alias = ?", alias)
	default:
		return nil, repository.ErrNotFound
	}
	return r.first(db)
}

func (r *TenantRepository) Update(ctx context.Context, tenantID string, update domain.TenantUpdate) (*domain.Tenant, error) {
	var tenant domain.Tenant
	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ?", tenantID).First(&tenant).Error; err != nil {
			return err
		}
		if update.IsEmpty() {
			return nil
		}
		if err := tx.Model(&tenant).Updates(update.Columns()).Error; err != nil {
			return err
		}
		return tx.First(&tenant, tenant.ID).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

func (r *TenantRepository) Delete(ctx context.Context, tenantID string) error {
	result := r.writerDB.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&domain.Tenant{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TenantRepository) first(db *gorm.DB) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := db.First(&tenant).Error; err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}
