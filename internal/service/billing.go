package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/repository"
	"github.com/kingrain94/usage-billing-api/internal/service/invoice"
	"github.com/kingrain94/usage-billing-api/pkg/logger"
)

const invoiceContentType = "application/pdf"

//go:generate mockery --name InvoiceQueue --output ../mocks
type InvoiceQueue interface {
	SendInvoiceMessage(ctx context.Context, tenantID string, historyID uint64) error
}

//go:generate mockery --name MonthlySummarizer --output ../mocks
type MonthlySummarizer interface {
	MonthlySummary(ctx context.Context, tenantID string, year, month, tzOffsetMinutes int) (*domain.MonthlySummary, error)
}

type BillingService struct {
	repo       repository.Repository
	summarizer MonthlySummarizer
	renderer   *invoice.Renderer
	storage    ObjectStorage
	queue      InvoiceQueue
	logger     *logger.Logger
	issuer     string
	now        func() time.Time
}

func NewBillingService(
	repo repository.Repository,
	summarizer MonthlySummarizer,
	renderer *invoice.Renderer,
	storage ObjectStorage,
	queue InvoiceQueue,
	logger *logger.Logger,
	issuer string,
) *BillingService {
	return &BillingService{
		repo:       repo,
		summarizer: summarizer,
		renderer:   renderer,
		storage:    storage,
		queue:      queue,
		logger:     logger,
		issuer:     issuer,
		now:        time.Now,
	}
}

// CreateBillingHistory appends a billing record. Any constraint violation is
// reported as an internal error.
func (s *BillingService) CreateBillingHistory(ctx context.Context, tenantID string, year, month int, tokensUsed int64, totalPrice float64, invoiceURL *string) (*domain.BillingHistory, error) {
	if err := validatePeriod(tenantID, year, month, 0); err != nil {
		return nil, err
	}

	history, err := s.repo.Billing().CreateHistory(ctx, &domain.BillingHistory{
		TenantID:   tenantID,
		Period:     domain.PeriodLabel(year, month),
		Year:       year,
		Month:      month,
		TokensUsed: tokensUsed,
		TotalPrice: totalPrice,
		InvoiceURL: invoiceURL,
	})
	if err != nil {
		s.logger.Error("Failed to create billing history", err,
			zap.String("tenant_id", tenantID),
			zap.String("period", domain.PeriodLabel(year, month)),
		)
		return nil, &InternalError{Op: "create billing history", Err: err}
	}
	return history, nil
}

// SettlePeriod snapshots the month's usage into billing history and queues
// the invoice for rendering.
func (s *BillingService) SettlePeriod(ctx context.Context, tenantID string, year, month int) (*domain.BillingHistory, error) {
	summary, err := s.summarizer.MonthlySummary(ctx, tenantID, year, month, 0)
	if err != nil {
		return nil, err
	}

	history, err := s.CreateBillingHistory(ctx, tenantID, year, month, summary.TotalTokensUsed, summary.TotalPrice, nil)
	if err != nil {
		return nil, err
	}

	if s.queue != nil {
		if err := s.queue.SendInvoiceMessage(ctx, tenantID, history.ID); err != nil {
			s.logger.Error("Failed to enqueue invoice", err, zap.String("tenant_id", tenantID), zap.Uint64("history_id", history.ID))
		}
	}
	return history, nil
}

// ListHistory returns the tenant's billing history, newest period first.
func (s *BillingService) ListHistory(ctx context.Context, tenantID string) ([]domain.BillingHistory, error) {
	history, err := s.repo.Billing().ListHistory(ctx, tenantID)
	if err != nil {
		return nil, &StorageError{Op: "list billing history", Err: err}
	}
	if len(history) == 0 {
		return nil, ErrBillingHistoryNotFound
	}
	return history, nil
}

func (s *BillingService) GetHistory(ctx context.Context, tenantID string, id uint64) (*domain.BillingHistory, error) {
	history, err := s.repo.Billing().GetHistory(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBillingHistoryNotFound
		}
		return nil, &StorageError{Op: "get billing history", Err: err}
	}
	return history, nil
}

// RenderInvoice renders the PDF invoice of one billing record.
func (s *BillingService) RenderInvoice(ctx context.Context, tenantID string, id uint64) ([]byte, *domain.BillingHistory, error) {
	history, err := s.GetHistory(ctx, tenantID, id)
	if err != nil {
		return nil, nil, err
	}

	data := invoice.Data{
		Issuer:   s.issuer,
		TenantID: tenantID,
		History:  *history,
		IssuedAt: s.now(),
	}
	if tenant, err := s.repo.Tenant().GetByTenantID(ctx, tenantID); err == nil {
		data.TenantName = tenant.Name
	}

	pdf, err := s.renderer.Render(data)
	if err != nil {
		return nil, nil, &InternalError{Op: "render invoice", Err: err}
	}
	return pdf, history, nil
}

// AttachInvoice renders, stores and links the invoice of a billing record.
func (s *BillingService) AttachInvoice(ctx context.Context, tenantID string, historyID uint64) (string, error) {
	pdf, _, err := s.RenderInvoice(ctx, tenantID, historyID)
	if err != nil {
		return "", err
	}

	key := InvoiceKey(tenantID)
	invoiceURL, err := s.storage.Upload(ctx, key, invoiceContentType, pdf, map[string]string{
		"tenant-id":  tenantID,
		"history-id": fmt.Sprintf("%d", historyID),
	})
	if err != nil {
		return "", &InternalError{Op: "upload invoice", Err: err}
	}

	if err := s.repo.Billing().SetInvoiceURL(ctx, historyID, invoiceURL); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrBillingHistoryNotFound
		}
		return "", &StorageError{Op: "set invoice url", Err: err}
	}
	return invoiceURL, nil
}

func (s *BillingService) GetSettings(ctx context.Context, tenantID string) (*domain.BillingSettings, error) {
	settings, err := s.repo.Billing().GetSettings(ctx, tenantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBillingSettingsNotFound
		}
		return nil, &StorageError{Op: "get billing settings", Err: err}
	}
	return settings, nil
}

func (s *BillingService) CreateSettings(ctx context.Context, tenantID string, usageAlert float64) (*domain.BillingSettings, error) {
	if tenantID == "" {
		return nil, newValidationError("tenant_id", "is required")
	}
	if usageAlert < 0 {
		return nil, newValidationError("usage_alert", "must not be negative")
	}

	settings, err := s.repo.Billing().CreateSettings(ctx, &domain.BillingSettings{TenantID: tenantID, UsageAlert: usageAlert})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrBillingSettingsExist
		}
		return nil, &StorageError{Op: "create billing settings", Err: err}
	}
	return settings, nil
}

func (s *BillingService) UpdateSettings(ctx context.Context, tenantID string, usageAlert float64) (*domain.BillingSettings, error) {
	if usageAlert < 0 {
		return nil, newValidationError("usage_alert", "must not be negative")
	}

	settings, err := s.repo.Billing().UpdateUsageAlert(ctx, tenantID, usageAlert)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBillingSettingsNotFound
		}
		return nil, &StorageError{Op: "update billing settings", Err: err}
	}
	return settings, nil
}

// InvoiceKey is a fresh object key for an invoice PDF.
func InvoiceKey(tenantID string) string {
	return fmt.Sprintf("invoices/%s/%s.pdf", tenantID, uuid.NewString())
}
