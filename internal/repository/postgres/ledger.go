package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kingrain94/usage-billing-api/internal/domain"
)

type UsageLedgerRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewUsageLedgerRepository(writerDB, readerDB *gorm.DB) *UsageLedgerRepository {
	return &UsageLedgerRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *UsageLedgerRepository) Insert(ctx context.Context, record *domain.UsageRecord) (*domain.UsageRecord, error) {
	record.Date = record.Date.UTC()
	if err := r.writerDB.WithContext(ctx).Create(record).Error; err != nil {
		return nil, translateError(err)
	}
	return record, nil
}

// QueryRange returns the tenant's rows with start <= date <= endInclusive,
// ascending by date.
func (r *UsageLedgerRepository) QueryRange(ctx context.Context, tenantID string, start, endInclusive time.Time) ([]domain.UsageRecord, error) {
	var records []domain.UsageRecord
	err := tenantScope(r.readerDB, ctx, tenantID).
		Where("date >= ? AND date <= ?", start.UTC(), endInclusive.UTC()).
		Order("date ASC").
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, translateError(err)
	}
	return records, nil
}

// SumRange aggregates in the database and yields zeros for an empty range.
func (r *UsageLedgerRepository) SumRange(ctx context.Context, tenantID string, start, endInclusive time.Time) (domain.UsageTotals, error) {
	var result struct {
		Tokens int64
		Price  float64
	}
	err := tenantScope(r.readerDB, ctx, tenantID).
		Model(&domain.UsageRecord{}).
		Select("COALESCE(SUM(tokens_used), 0) AS tokens, COALESCE(SUM(total_price), 0) AS price").
		Where("date >= ? AND date <= ?", start.UTC(), endInclusive.UTC()).
		Scan(&result).Error
	if err != nil {
		return domain.UsageTotals{}, translateError(err)
	}
	return domain.UsageTotals{Tokens: result.Tokens, Price: result.Price}, nil
}
