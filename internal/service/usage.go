package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/repository"
	"github.com/kingrain94/usage-billing-api/pkg/logger"
)

//go:generate mockery --name EventPublisher --output ../mocks
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.UsageEvent) error
}

type UsageService struct {
	repo      repository.Repository
	publisher EventPublisher
	logger    *logger.Logger
	now       func() time.Time
}

func NewUsageService(repo repository.Repository, publisher EventPublisher, logger *logger.Logger) *UsageService {
	return &UsageService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *UsageService) InsertUsageRecord(ctx context.Context, tenantID string, date time.Time, tokensUsed int64, perTokenPrice float64) (*domain.UsageRecord, error) {
	if tenantID == "" {
		return nil, newValidationError("tenant_id", "is required")
	}
	if date.IsZero() {
		return nil, newValidationError("date", "is required")
	}
	if tokensUsed < 0 {
		return nil, newValidationError("tokens_used", "must not be negative")
	}
	if perTokenPrice < 0 {
		return nil, newValidationError("per_token_price", "must not be negative")
	}

	record, err := s.repo.Ledger().Insert(ctx, domain.NewUsageRecord(tenantID, date, tokensUsed, perTokenPrice))
	if err != nil {
		return nil, &StorageError{Op: "insert usage record", Err: err}
	}
	return record, nil
}

// pastDay returns yesterday's UTC calendar day as an inclusive range.
func (s *UsageService) pastDay() (time.Time, time.Time) {
	today := startOfDay(s.now().UTC())
	start := today.AddDate(0, 0, -1)
	return start, today.Add(-time.Microsecond)
}

func (s *UsageService) PastDayUsage(ctx context.Context, tenantID string) ([]domain.UsageRecord, error) {
	start, end := s.pastDay()
	records, err := s.repo.Ledger().QueryRange(ctx, tenantID, start, end)
	if err != nil {
		return nil, &StorageError{Op: "query past day usage", Err: err}
	}
	if len(records) == 0 {
		return nil, ErrUsageNotFound
	}
	return records, nil
}

func (s *UsageService) PastDayTotal(ctx context.Context, tenantID string) (domain.UsageTotals, error) {
	start, end := s.pastDay()
	totals, err := s.repo.Ledger().SumRange(ctx, tenantID, start, end)
	if err != nil {
		return domain.UsageTotals{}, &StorageError{Op: "sum past day usage", Err: err}
	}
	return totals, nil
}

// RecordEvent appends a raw usage event and fans it out to live subscribers.
// A failed fan-out does not fail the write.
func (s *UsageService) RecordEvent(ctx context.Context, event *domain.UsageEvent) (string, error) {
	if event.TenantID == "" {
		return "", newValidationError("tenant_id", "is required")
	}
	for category, usage := range event.Tokens {
		if usage.Count < 0 || usage.Price < 0 {
			return "", newValidationError("tokens."+category, "count and price must not be negative")
		}
	}
	if event.TotalTokens < 0 {
		return "", newValidationError("total_tokens", "must not be negative")
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = s.now().UTC()
	}

	id, err := s.repo.EventStore().Insert(ctx, event)
	if err != nil {
		return "", &StorageError{Op: "insert usage event", Err: err}
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Error("Failed to publish usage event", err, zap.String("tenant_id", event.TenantID), zap.String("event_id", id))
		}
	}
	return id, nil
}

func (s *UsageService) UpdateFeedback(ctx context.Context, tenantID, eventID string, feedback bool) error {
	if err := s.repo.EventStore().UpdateFeedback(ctx, tenantID, eventID, feedback); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEventNotFound
		}
		return &StorageError{Op: "update feedback", Err: err}
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
