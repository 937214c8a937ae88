package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/mocks"
	"github.com/kingrain94/usage-billing-api/internal/repository"
	"github.com/kingrain94/usage-billing-api/pkg/logger"
)

type UsageServiceTestSuite struct {
	suite.Suite
	mockRepo      *mocks.Repository
	mockLedger    *mocks.UsageLedgerRepository
	mockEvents    *mocks.EventStoreRepository
	mockPublisher *mocks.EventPublisher
	service       *UsageService
	now           time.Time
}

func (s *UsageServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockLedger = new(mocks.UsageLedgerRepository)
	s.mockEvents = new(mocks.EventStoreRepository)
	s.mockPublisher = new(mocks.EventPublisher)

	s.mockRepo.On("Ledger").Return(s.mockLedger)
	s.mockRepo.On("EventStore").Return(s.mockEvents)

	s.now = time.Date(2024, time.May, 2, 15, 0, 0, 0, time.UTC)
	s.service = NewUsageService(s.mockRepo, s.mockPublisher, logger.NewNop())
	s.service.now = func() time.Time { return s.now }
}

func TestUsageService(t *testing.T) {
	suite.Run(t, new(UsageServiceTestSuite))
}

func (s *UsageServiceTestSuite) TestInsertUsageRecord_DerivesTotalPrice() {
	// Arrange
	ctx := context.Background()
	date := time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC)
	s.mockLedger.On("Insert", ctx, mock.AnythingOfType("*domain.UsageRecord")).
		Return(func(_ context.Context, r *domain.UsageRecord) (*domain.UsageRecord, error) {
			r.ID = 42
			return r, nil
		})

	// Act
	record, err := s.service.InsertUsageRecord(ctx, "tenant_1", date, 1500, 0.01)

	// Assert
	s.NoError(err)
	s.Equal(uint64(42), record.ID)
	s.Equal(int64(1500), record.TokensUsed)
	s.Equal(15.0, record.TotalPrice)
}

func (s *UsageServiceTestSuite) TestInsertUsageRecord_RejectsNegativeValues() {
	ctx := context.Background()
	date := time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC)

	_, err := s.service.InsertUsageRecord(ctx, "tenant_1", date, -1, 0.01)
	var validationErr *ValidationError
	s.Require().ErrorAs(err, &validationErr)
	s.Equal("tokens_used", validationErr.Field)

	_, err = s.service.InsertUsageRecord(ctx, "tenant_1", date, 1, -0.01)
	s.Require().ErrorAs(err, &validationErr)
	s.Equal("per_token_price", validationErr.Field)

	s.mockLedger.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *UsageServiceTestSuite) TestPastDayUsage_QueriesYesterday() {
	// Arrange
	ctx := context.Background()
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.May, 1, 23, 59, 59, 999999000, time.UTC)
	rows := []domain.UsageRecord{*domain.NewUsageRecord("tenant_1", start.Add(time.Hour), 10, 0.1)}
	s.mockLedger.On("QueryRange", ctx, "tenant_1", start, end).Return(rows, nil)

	// Act
	records, err := s.service.PastDayUsage(ctx, "tenant_1")

	// Assert
	s.NoError(err)
	s.Len(records, 1)
	s.mockLedger.AssertExpectations(s.T())
}

func (s *UsageServiceTestSuite) TestPastDayUsage_EmptyIsNotFound() {
	// Arrange
	ctx := context.Background()
	s.mockLedger.On("QueryRange", ctx, "tenant_1", mock.Anything, mock.Anything).Return([]domain.UsageRecord{}, nil)

	// Act
	_, err := s.service.PastDayUsage(ctx, "tenant_1")

	// Assert
	s.ErrorIs(err, ErrUsageNotFound)
}

func (s *UsageServiceTestSuite) TestPastDayTotal_ZeroWhenEmpty() {
	// Arrange
	ctx := context.Background()
	s.mockLedger.On("SumRange", ctx, "tenant_1", mock.Anything, mock.Anything).Return(domain.UsageTotals{}, nil)

	// Act
	totals, err := s.service.PastDayTotal(ctx, "tenant_1")

	// Assert
	s.NoError(err)
	s.Equal(domain.UsageTotals{}, totals)
}

func (s *UsageServiceTestSuite) TestRecordEvent_PublishesAfterInsert() {
	// Arrange
	ctx := context.Background()
	event := &domain.UsageEvent{
		TenantID: "tenant_1",
		Tokens:   map[string]domain.TokenUsage{"input": {Count: 100, Price: 0.00001}},
	}
	s.mockEvents.On("Insert", ctx, event).Return("6650f1c2a4b3c2d1e0f9a8b7", nil)
	s.mockPublisher.On("Publish", ctx, event).Return(nil)

	// Act
	id, err := s.service.RecordEvent(ctx, event)

	// Assert
	s.NoError(err)
	s.Equal("6650f1c2a4b3c2d1e0f9a8b7", id)
	s.Equal(s.now, event.CreatedAt)
	s.mockPublisher.AssertExpectations(s.T())
}

func (s *UsageServiceTestSuite) TestRecordEvent_PublishFailureDoesNotFailWrite() {
	// Arrange
	ctx := context.Background()
	event := &domain.UsageEvent{TenantID: "tenant_1", CreatedAt: s.now}
	s.mockEvents.On("Insert", ctx, event).Return("abc", nil)
	s.mockPublisher.On("Publish", ctx, event).Return(errors.New("redis down"))

	// Act
	id, err := s.service.RecordEvent(ctx, event)

	// Assert
	s.NoError(err)
	s.Equal("abc", id)
}

func (s *UsageServiceTestSuite) TestUpdateFeedback_UnknownEvent() {
	// Arrange
	ctx := context.Background()
	s.mockEvents.On("UpdateFeedback", ctx, "tenant_1", "missing", true).Return(repository.ErrNotFound)

	// Act
	err := s.service.UpdateFeedback(ctx, "tenant_1", "missing", true)

	// Assert
	s.ErrorIs(err, ErrEventNotFound)
}
