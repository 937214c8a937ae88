package repository

import (
	"context"
	"errors"
	"time"

	"github.com/kingrain94/usage-billing-api/internal/domain"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	// Create inserts the tenant and assigns its public identifier in one transaction.
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByTenantID(ctx context.Context, tenantID string) (*domain.Tenant, error)
	GetByName(ctx context.Context, name string) (*domain.Tenant, error)
	GetByAlias(ctx context.Context, alias string) (*domain.Tenant, error)
	FindByNameOrAlias(ctx context.Context, name, alias string) (*domain.Tenant, error)
	Update(ctx context.Context, tenantID string, update domain.TenantUpdate) (*domain.Tenant, error)
	Delete(ctx context.Context, tenantID string) error
}

//go:generate mockery --name UsageLedgerRepository --output ../mocks
type UsageLedgerRepository interface {
	Insert(ctx context.Context, record *domain.UsageRecord) (*domain.UsageRecord, error)
	QueryRange(ctx context.Context, tenantID string, start, endInclusive time.Time) ([]domain.UsageRecord, error)
	SumRange(ctx context.Context, tenantID string, start, endInclusive time.Time) (domain.UsageTotals, error)
}

//go:generate mockery --name EventStoreRepository --output ../mocks
type EventStoreRepository interface {
	Insert(ctx context.Context, event *domain.UsageEvent) (string, error)
	UpdateFeedback(ctx context.Context, tenantID, eventID string, feedback bool) error
	AggregateWindow(ctx context.Context, tenantID string, start, endExclusive time.Time) (domain.UsageTotals, error)
	AggregateByDay(ctx context.Context, tenantID string, start, endExclusive time.Time) (map[time.Time]domain.UsageTotals, error)
	RawEventsInRange(ctx context.Context, tenantID string, start, endExclusive time.Time) ([]domain.UsageEvent, error)
	EnsureIndexes(ctx context.Context) error
}

//go:generate mockery --name BillingRepository --output ../mocks
type BillingRepository interface {
	CreateHistory(ctx context.Context, history *domain.BillingHistory) (*domain.BillingHistory, error)
	ListHistory(ctx context.Context, tenantID string) ([]domain.BillingHistory, error)
	GetHistory(ctx context.Context, tenantID string, id uint64) (*domain.BillingHistory, error)
	SetInvoiceURL(ctx context.Context, id uint64, invoiceURL string) error
	GetSettings(ctx context.Context, tenantID string) (*domain.BillingSettings, error)
	CreateSettings(ctx context.Context, settings *domain.BillingSettings) (*domain.BillingSettings, error)
	UpdateUsageAlert(ctx context.Context, tenantID string, usageAlert float64) (*domain.BillingSettings, error)
}

//go:generate mockery --name TenantDocRepository --output ../mocks
type TenantDocRepository interface {
	Create(ctx context.Context, doc *domain.TenantDoc) (*domain.TenantDoc, error)
	UpdateEntries(ctx context.Context, tenantID, docName string, numEntries int) (*domain.TenantDoc, error)
	Delete(ctx context.Context, tenantID, docName string) error
	ListByTenant(ctx context.Context, tenantID string) ([]domain.TenantDoc, error)
}

//go:generate mockery --name KnowledgeBaseRepository --output ../mocks
type KnowledgeBaseRepository interface {
	CreateIndex(ctx context.Context, tenantID string) error
	ListEntries(ctx context.Context, tenantID, docName string) ([]domain.KnowledgeEntry, error)
	DeleteDocEntries(ctx context.Context, tenantID, docName string) (int64, error)
	Search(ctx context.Context, tenantID, text string, size int) ([]domain.KnowledgeHit, error)
}

type PostgresRepository interface {
	Tenant() TenantRepository
	Ledger() UsageLedgerRepository
	Billing() BillingRepository
	TenantDoc() TenantDocRepository
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	EventStore() EventStoreRepository
	KnowledgeBase() KnowledgeBaseRepository
}
