package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/metrics"
	"github.com/kingrain94/usage-billing-api/internal/repository"
	"github.com/kingrain94/usage-billing-api/pkg/logger"
)

const (
	MaxTZOffsetMinutes = 14 * 60

	// ledger timestamps carry microsecond precision
	ledgerPrecision = time.Microsecond

	opMonthlySummary = "monthly_summary"
	opDailySummary   = "daily_summary"
	opCurrentMonth   = "current_month"
)

// AggregationService merges the settled ledger with the unsettled event
// store. The two stores are assumed to cover disjoint periods, so their sums
// are added without de-duplication.
type AggregationService struct {
	repo    repository.Repository
	metrics *metrics.Metrics
	logger  *logger.Logger
	timeout time.Duration
	now     func() time.Time
}

func NewAggregationService(repo repository.Repository, metrics *metrics.Metrics, logger *logger.Logger, timeout time.Duration) *AggregationService {
	return &AggregationService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
		timeout: timeout,
		now:     time.Now,
	}
}

// MonthWindow returns the tenant-local calendar month as UTC instants
// [start, endExclusive). December carries into January of the next year.
func MonthWindow(year, month, tzOffsetMinutes int) (time.Time, time.Time) {
	offset := time.Duration(tzOffsetMinutes) * time.Minute

	nextYear, nextMonth := year, month+1
	if nextMonth > 12 {
		nextMonth = 1
		nextYear++
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(nextYear, time.Month(nextMonth), 1, 0, 0, 0, 0, time.UTC)
	return start.Add(-offset), end.Add(-offset)
}

// InclusiveEnd is the last representable ledger instant before endExclusive.
func InclusiveEnd(endExclusive time.Time) time.Time {
	return endExclusive.Add(-ledgerPrecision)
}

func validatePeriod(tenantID string, year, month, tzOffsetMinutes int) error {
	if tenantID == "" {
		return newValidationError("tenant_id", "is required")
	}
	if month < 1 || month > 12 {
		return newValidationError("month", "must be between 1 and 12")
	}
	if year < 1 || year > 9999 {
		return newValidationError("year", "must be between 1 and 9999")
	}
	if tzOffsetMinutes < -MaxTZOffsetMinutes || tzOffsetMinutes > MaxTZOffsetMinutes {
		return newValidationError("timezone_offset_minutes", "must be within +/-840")
	}
	return nil
}

func (s *AggregationService) MonthlySummary(ctx context.Context, tenantID string, year, month, tzOffsetMinutes int) (*domain.MonthlySummary, error) {
	if err := validatePeriod(tenantID, year, month, tzOffsetMinutes); err != nil {
		return nil, err
	}

	started := time.Now()
	start, end := MonthWindow(year, month, tzOffsetMinutes)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var ledger, events domain.UsageTotals
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		totals, err := s.repo.Ledger().SumRange(gctx, tenantID, start, InclusiveEnd(end))
		if err != nil {
			return fmt.Errorf("failed to sum ledger: %w", err)
		}
		ledger = totals
		return nil
	})
	g.Go(func() error {
		totals, err := s.repo.EventStore().AggregateWindow(gctx, tenantID, start, end)
		if err != nil {
			return fmt.Errorf("failed to aggregate events: %w", err)
		}
		events = totals
		return nil
	})

	err := s.finish(ctx, opMonthlySummary, tenantID, start, end, g.Wait())
	s.metrics.ObserveAggregation(opMonthlySummary, started, err)
	if err != nil {
		return nil, err
	}

	total := MergeTotals(ledger, events)
	return &domain.MonthlySummary{
		TenantID:        tenantID,
		Year:            year,
		Month:           month,
		TotalTokensUsed: total.Tokens,
		TotalPrice:      total.Price,
	}, nil
}

// DailySummary returns the month's usage per tenant-local day. Days without
// usage are omitted.
func (s *AggregationService) DailySummary(ctx context.Context, tenantID string, year, month, tzOffsetMinutes int) ([]domain.DailyUsage, error) {
	if err := validatePeriod(tenantID, year, month, tzOffsetMinutes); err != nil {
		return nil, err
	}

	started := time.Now()
	start, end := MonthWindow(year, month, tzOffsetMinutes)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		records []domain.UsageRecord
		events  []domain.UsageEvent
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.repo.Ledger().QueryRange(gctx, tenantID, start, InclusiveEnd(end))
		if err != nil {
			return fmt.Errorf("failed to query ledger: %w", err)
		}
		records = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.EventStore().RawEventsInRange(gctx, tenantID, start, end)
		if err != nil {
			return fmt.Errorf("failed to query events: %w", err)
		}
		events = rows
		return nil
	})

	err := s.finish(ctx, opDailySummary, tenantID, start, end, g.Wait())
	s.metrics.ObserveAggregation(opDailySummary, started, err)
	if err != nil {
		return nil, err
	}

	return MergeDaily(records, events, time.Duration(tzOffsetMinutes)*time.Minute), nil
}

// CurrentMonthAggregation combines the ledger from the start of the current
// UTC month with today's events.
func (s *AggregationService) CurrentMonthAggregation(ctx context.Context, tenantID string) (*domain.MonthlyAggregation, error) {
	if tenantID == "" {
		return nil, newValidationError("tenant_id", "is required")
	}

	started := time.Now()
	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	todayStart := startOfDay(now)
	tomorrowStart := todayStart.AddDate(0, 0, 1)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var ledger, events domain.UsageTotals
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		totals, err := s.repo.Ledger().SumRange(gctx, tenantID, monthStart, now)
		if err != nil {
			return fmt.Errorf("failed to sum ledger: %w", err)
		}
		ledger = totals
		return nil
	})
	g.Go(func() error {
		totals, err := s.repo.EventStore().AggregateWindow(gctx, tenantID, todayStart, tomorrowStart)
		if err != nil {
			return fmt.Errorf("failed to aggregate events: %w", err)
		}
		events = totals
		return nil
	})

	err := s.finish(ctx, opCurrentMonth, tenantID, monthStart, tomorrowStart, g.Wait())
	s.metrics.ObserveAggregation(opCurrentMonth, started, err)
	if err != nil {
		return nil, err
	}

	return &domain.MonthlyAggregation{
		TenantID:    tenantID,
		Year:        now.Year(),
		Month:       int(now.Month()),
		Ledger:      ledger,
		EventStore:  events,
		Combined:    MergeTotals(ledger, events),
		GeneratedAt: now,
	}, nil
}

func (s *AggregationService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// finish classifies a failed fetch. Either store failing fails the whole call.
func (s *AggregationService) finish(ctx context.Context, op, tenantID string, start, end time.Time, err error) error {
	if err == nil {
		return nil
	}

	fields := []zap.Field{
		zap.String("tenant_id", tenantID),
		zap.String("operation", op),
		zap.Time("window_start", start),
		zap.Time("window_end", end),
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		s.logger.Warn("Usage aggregation timed out", fields...)
		return fmt.Errorf("%s: %w: %w", op, ErrTimeout, context.DeadlineExceeded)
	}

	s.logger.Error("Usage aggregation failed", err, fields...)
	return &StorageError{Op: op, Err: err}
}
