package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/repository"
)

type TenantDocRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTenantDocRepository(writerDB, readerDB *gorm.DB) *TenantDocRepository {
	return &TenantDocRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *TenantDocRepository) Create(ctx context.Context, doc *domain.TenantDoc) (*domain.TenantDoc, error) {
	if err := r.writerDB.WithContext(ctx).Create(doc).Error; err != nil {
		return nil, translateError(err)
	}
	return doc, nil
}

func (r *TenantDocRepository) UpdateEntries(ctx context.Context, tenantID, docName string, numEntries int) (*domain.TenantDoc, error) {
	var doc domain.TenantDoc
	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ? AND doc_name = ?", tenantID, docName).First(&doc).Error; err != nil {
			return err
		}
		if err := tx.Model(&doc).Update("num_entries", numEntries).Error; err != nil {
			return err
		}
		doc.NumEntries = numEntries
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &doc, nil
}

func (r *TenantDocRepository) Delete(ctx context.Context, tenantID, docName string) error {
	result := tenantScope(r.writerDB, ctx, tenantID).
		Where("doc_name = ?", docName).
		Delete(&domain.TenantDoc{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TenantDocRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.TenantDoc, error) {
	var docs []domain.TenantDoc
	if err := tenantScope(r.readerDB, ctx, tenantID).Order("doc_name").Find(&docs).Error; err != nil {
		return nil, translateError(err)
	}
	return docs, nil
}
