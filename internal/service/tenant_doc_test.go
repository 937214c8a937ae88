package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/mocks"
	"github.com/kingrain94/usage-billing-api/internal/repository"
	"github.com/kingrain94/usage-billing-api/pkg/logger"
)

type TenantDocServiceTestSuite struct {
	suite.Suite
	mockRepo *mocks.Repository
	mockDocs *mocks.TenantDocRepository
	mockKB   *mocks.KnowledgeBaseRepository
	service  *TenantDocService
}

func (s *TenantDocServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockDocs = new(mocks.TenantDocRepository)
	s.mockKB = new(mocks.KnowledgeBaseRepository)

	s.mockRepo.On("TenantDoc").Return(s.mockDocs)
	s.mockRepo.On("KnowledgeBase").Return(s.mockKB)

	s.service = NewTenantDocService(s.mockRepo, logger.NewNop())
}

func TestTenantDocService(t *testing.T) {
	suite.Run(t, new(TenantDocServiceTestSuite))
}

func (s *TenantDocServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := context.Background()
	s.mockDocs.On("Create", ctx, mock.AnythingOfType("*domain.TenantDoc")).
		Return(func(_ context.Context, d *domain.TenantDoc) (*domain.TenantDoc, error) {
			d.ID = 3
			return d, nil
		})
	s.mockKB.On("CreateIndex", ctx, "tenant_1").Return(nil)

	// Act
	doc, err := s.service.Create(ctx, "tenant_1", "faq.pdf", 12)

	// Assert
	s.NoError(err)
	s.Equal(uint64(3), doc.ID)
	s.Equal(12, doc.NumEntries)
	s.mockKB.AssertExpectations(s.T())
}

func (s *TenantDocServiceTestSuite) TestCreate_IndexFailureIsNotFatal() {
	// Arrange
	ctx := context.Background()
	s.mockDocs.On("Create", ctx, mock.AnythingOfType("*domain.TenantDoc")).Return(&domain.TenantDoc{ID: 1}, nil)
	s.mockKB.On("CreateIndex", ctx, "tenant_1").Return(errors.New("cluster red"))

	// Act
	_, err := s.service.Create(ctx, "tenant_1", "faq.pdf", 1)

	// Assert
	s.NoError(err)
}

func (s *TenantDocServiceTestSuite) TestCreate_Duplicate() {
	// Arrange
	ctx := context.Background()
	s.mockDocs.On("Create", ctx, mock.AnythingOfType("*domain.TenantDoc")).
		Return(nil, errors.Join(repository.ErrDuplicateKey, errors.New("uniq_tenant_doc")))

	// Act
	_, err := s.service.Create(ctx, "tenant_1", "faq.pdf", 1)

	// Assert
	s.ErrorIs(err, ErrDuplicateTenantDoc)
	s.mockKB.AssertNotCalled(s.T(), "CreateIndex", mock.Anything, mock.Anything)
}

func (s *TenantDocServiceTestSuite) TestCreate_Validation() {
	ctx := context.Background()

	_, err := s.service.Create(ctx, "tenant_1", "  ", 1)
	var validationErr *ValidationError
	s.Require().ErrorAs(err, &validationErr)
	s.Equal("doc_name", validationErr.Field)

	_, err = s.service.Create(ctx, "tenant_1", "faq.pdf", -1)
	s.Require().ErrorAs(err, &validationErr)
	s.Equal("num_entries", validationErr.Field)
}

func (s *TenantDocServiceTestSuite) TestDelete_RemovesIndexedEntries() {
	// Arrange
	ctx := context.Background()
	s.mockDocs.On("Delete", ctx, "tenant_1", "faq.pdf").Return(nil)
	s.mockKB.On("DeleteDocEntries", ctx, "tenant_1", "faq.pdf").Return(int64(12), nil)

	// Act
	err := s.service.Delete(ctx, "tenant_1", "faq.pdf")

	// Assert
	s.NoError(err)
	s.mockKB.AssertExpectations(s.T())
}

func (s *TenantDocServiceTestSuite) TestDelete_NotFound() {
	// Arrange
	ctx := context.Background()
	s.mockDocs.On("Delete", ctx, "tenant_1", "gone.pdf").Return(repository.ErrNotFound)

	// Act
	err := s.service.Delete(ctx, "tenant_1", "gone.pdf")

	// Assert
	s.ErrorIs(err, ErrTenantDocNotFound)
	s.mockKB.AssertNotCalled(s.T(), "DeleteDocEntries", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TenantDocServiceTestSuite) TestList_EmptyIsNotFound() {
	// Arrange
	ctx := context.Background()
	s.mockDocs.On("ListByTenant", ctx, "tenant_1").Return([]domain.TenantDoc{}, nil)

	// Act
	_, err := s.service.List(ctx, "tenant_1")

	// Assert
	s.ErrorIs(err, ErrTenantDocNotFound)
}

func (s *TenantDocServiceTestSuite) TestSearch_ClampsSize() {
	// Arrange
	ctx := context.Background()
	hits := []domain.KnowledgeHit{{KnowledgeEntry: domain.KnowledgeEntry{ID: "1", Content: "refund policy"}, Score: 1.2}}
	s.mockKB.On("Search", ctx, "tenant_1", "refund", 10).Return(hits, nil)

	// Act
	got, err := s.service.Search(ctx, "tenant_1", "refund", 500)

	// Assert
	s.NoError(err)
	s.Equal(hits, got)
}

func (s *TenantDocServiceTestSuite) TestSearch_EmptyQuery() {
	// Act
	_, err := s.service.Search(context.Background(), "tenant_1", " ", 5)

	// Assert
	var validationErr *ValidationError
	s.ErrorAs(err, &validationErr)
}
