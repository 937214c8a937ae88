package api

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/service"
)

type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) RegisterWithLogo(ctx context.Context, name, alias string, logo *service.FileUpload) (*domain.Tenant, error) {
	args := m.Called(ctx, name, alias, logo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) Update(ctx context.Context, tenantID string, update domain.TenantUpdate) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) UpdateLogo(ctx context.Context, tenantID string, logo *service.FileUpload) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID, logo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) Delete(ctx context.Context, tenantID string) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

func (m *MockTenantService) Find(ctx context.Context, query domain.TenantQuery) (*domain.Tenant, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) Check(ctx context.Context, name, alias string) (*domain.Tenant, error) {
	args := m.Called(ctx, name, alias)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

type MockUsageService struct {
	mock.Mock
}

func (m *MockUsageService) InsertUsageRecord(ctx context.Context, tenantID string, date time.Time, tokensUsed int64, perTokenPrice float64) (*domain.UsageRecord, error) {
	args := m.Called(ctx, tenantID, date, tokensUsed, perTokenPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UsageRecord), args.Error(1)
}

func (m *MockUsageService) PastDayUsage(ctx context.Context, tenantID string) ([]domain.UsageRecord, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UsageRecord), args.Error(1)
}

func (m *MockUsageService) PastDayTotal(ctx context.Context, tenantID string) (domain.UsageTotals, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(domain.UsageTotals), args.Error(1)
}

func (m *MockUsageService) RecordEvent(ctx context.Context, event *domain.UsageEvent) (string, error) {
	args := m.Called(ctx, event)
	return args.String(0), args.Error(1)
}

func (m *MockUsageService) UpdateFeedback(ctx context.Context, tenantID, eventID string, feedback bool) error {
	args := m.Called(ctx, tenantID, eventID, feedback)
	return args.Error(0)
}

type MockAggregationService struct {
	mock.Mock
}

func (m *MockAggregationService) MonthlySummary(ctx context.Context, tenantID string, year, month, tzOffsetMinutes int) (*domain.MonthlySummary, error) {
	args := m.Called(ctx, tenantID, year, month, tzOffsetMinutes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlySummary), args.Error(1)
}

func (m *MockAggregationService) DailySummary(ctx context.Context, tenantID string, year, month, tzOffsetMinutes int) ([]domain.DailyUsage, error) {
	args := m.Called(ctx, tenantID, year, month, tzOffsetMinutes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyUsage), args.Error(1)
}

func (m *MockAggregationService) CurrentMonthAggregation(ctx context.Context, tenantID string) (*domain.MonthlyAggregation, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyAggregation), args.Error(1)
}

type MockBillingService struct {
	mock.Mock
}

func (m *MockBillingService) SettlePeriod(ctx context.Context, tenantID string, year, month int) (*domain.BillingHistory, error) {
	args := m.Called(ctx, tenantID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingHistory), args.Error(1)
}

func (m *MockBillingService) ListHistory(ctx context.Context, tenantID string) ([]domain.BillingHistory, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillingHistory), args.Error(1)
}

func (m *MockBillingService) GetHistory(ctx context.Context, tenantID string, id uint64) (*domain.BillingHistory, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingHistory), args.Error(1)
}

func (m *MockBillingService) RenderInvoice(ctx context.Context, tenantID string, id uint64) ([]byte, *domain.BillingHistory, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(1) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]byte), args.Get(1).(*domain.BillingHistory), args.Error(2)
}

func (m *MockBillingService) GetSettings(ctx context.Context, tenantID string) (*domain.BillingSettings, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingSettings), args.Error(1)
}

func (m *MockBillingService) CreateSettings(ctx context.Context, tenantID string, usageAlert float64) (*domain.BillingSettings, error) {
	args := m.Called(ctx, tenantID, usageAlert)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingSettings), args.Error(1)
}

func (m *MockBillingService) UpdateSettings(ctx context.Context, tenantID string, usageAlert float64) (*domain.BillingSettings, error) {
	args := m.Called(ctx, tenantID, usageAlert)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingSettings), args.Error(1)
}

type MockTenantDocService struct {
	mock.Mock
}

func (m *MockTenantDocService) Create(ctx context.Context, tenantID, docName string, numEntries int) (*domain.TenantDoc, error) {
	args := m.Called(ctx, tenantID, docName, numEntries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantDoc), args.Error(1)
}

func (m *MockTenantDocService) UpdateEntries(ctx context.Context, tenantID, docName string, numEntries int) (*domain.TenantDoc, error) {
	args := m.Called(ctx, tenantID, docName, numEntries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantDoc), args.Error(1)
}

func (m *MockTenantDocService) Delete(ctx context.Context, tenantID, docName string) error {
	args := m.Called(ctx, tenantID, docName)
	return args.Error(0)
}

func (m *MockTenantDocService) List(ctx context.Context, tenantID string) ([]domain.TenantDoc, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TenantDoc), args.Error(1)
}

func (m *MockTenantDocService) Entries(ctx context.Context, tenantID, docName string) ([]domain.KnowledgeEntry, error) {
	args := m.Called(ctx, tenantID, docName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KnowledgeEntry), args.Error(1)
}

func (m *MockTenantDocService) Search(ctx context.Context, tenantID, text string, size int) ([]domain.KnowledgeHit, error) {
	args := m.Called(ctx, tenantID, text, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KnowledgeHit), args.Error(1)
}
