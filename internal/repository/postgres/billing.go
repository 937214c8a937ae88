package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/repository"
)

type BillingRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewBillingRepository(writerDB, readerDB *gorm.DB) *BillingRepository {
	return &BillingRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *BillingRepository) CreateHistory(ctx context.Context, history *domain.BillingHistory) (*domain.BillingHistory, error) {
	if err := r.writerDB.WithContext(ctx).Create(history).Error; err != nil {
		return nil, translateError(err)
	}
	return history, nil
}

// ListHistory returns the newest period first.
func (r *BillingRepository) ListHistory(ctx context.Context, tenantID string) ([]domain.BillingHistory, error) {
	var history []domain.BillingHistory
	err := tenantScope(r.readerDB, ctx, tenantID).
		Order("year DESC").
		Order("month DESC").
		Find(&history).Error
	if err != nil {
		return nil, translateError(err)
	}
	return history, nil
}

func (r *BillingRepository) GetHistory(ctx context.Context, tenantID string, id uint64) (*domain.BillingHistory, error) {
	var history domain.BillingHistory
	if err := tenantScope(r.readerDB, ctx, tenantID).First(&history, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &history, nil
}

func (r *BillingRepository) SetInvoiceURL(ctx context.Context, id uint64, invoiceURL string) error {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.BillingHistory{}).
		Where("id = ?", id).
		Update("invoice_url", invoiceURL)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *BillingRepository) GetSettings(ctx context.Context, tenantID string) (*domain.BillingSettings, error) {
	var settings domain.BillingSettings
	if err := tenantScope(r.readerDB, ctx, tenantID).First(&settings).Error; err != nil {
		return nil, translateError(err)
	}
	return &settings, nil
}

func (r *BillingRepository) CreateSettings(ctx context.Context, settings *domain.BillingSettings) (*domain.BillingSettings, error) {
	if err := r.writerDB.WithContext(ctx).Create(settings).Error; err != nil {
		return nil, translateError(err)
	}
	return settings, nil
}

func (r *BillingRepository) UpdateUsageAlert(ctx context.Context, tenantID string, usageAlert float64) (*domain.BillingSettings, error) {
	var settings domain.BillingSettings
	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ?", tenantID).First(&settings).Error; err != nil {
			return err
		}
		if err := tx.Model(&settings).Update("usage_alert", usageAlert).Error; err != nil {
			return err
		}
		settings.UsageAlert = usageAlert
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &settings, nil
}
