package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/repository"
	"github.com/kingrain94/usage-billing-api/pkg/logger"
)

const maxSearchSize = 50

type TenantDocService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewTenantDocService(repo repository.Repository, logger *logger.Logger) *TenantDocService {
	return &TenantDocService{
		repo:   repo,
		logger: logger,
	}
}

func (s *TenantDocService) Create(ctx context.Context, tenantID, docName string, numEntries int) (*domain.TenantDoc, error) {
	if err := validateDocKey(tenantID, docName); err != nil {
		return nil, err
	}
	if numEntries < 0 {
		return nil, newValidationError("num_entries", "must not be negative")
	}

	doc, err := s.repo.TenantDoc().Create(ctx, &domain.TenantDoc{
		TenantID:   tenantID,
		DocName:    docName,
		NumEntries: numEntries,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateTenantDoc
		}
		return nil, &StorageError{Op: "create tenant doc", Err: err}
	}

	if err := s.repo.KnowledgeBase().CreateIndex(ctx, tenantID); err != nil {
		s.logger.Warn("Failed to ensure knowledge index", zap.String("tenant_id", tenantID), zap.Error(err))
	}
	return doc, nil
}

func (s *TenantDocService) UpdateEntries(ctx context.Context, tenantID, docName string, numEntries int) (*domain.TenantDoc, error) {
	if err := validateDocKey(tenantID, docName); err != nil {
		return nil, err
	}
	if numEntries < 0 {
		return nil, newValidationError("num_entries", "must not be negative")
	}

	doc, err := s.repo.TenantDoc().UpdateEntries(ctx, tenantID, docName, numEntries)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTenantDocNotFound
		}
		return nil, &StorageError{Op: "update tenant doc", Err: err}
	}
	return doc, nil
}

// Delete removes the document row and its indexed entries.
func (s *TenantDocService) Delete(ctx context.Context, tenantID, docName string) error {
	if err := s.repo.TenantDoc().Delete(ctx, tenantID, docName); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTenantDocNotFound
		}
		return &StorageError{Op: "delete tenant doc", Err: err}
	}

	deleted, err := s.repo.KnowledgeBase().DeleteDocEntries(ctx, tenantID, docName)
	if err != nil {
		return &StorageError{Op: "delete knowledge entries", Err: err}
	}
	s.logger.Info("Deleted tenant document",
		zap.String("tenant_id", tenantID),
		zap.String("doc_name", docName),
		zap.Int64("entries_deleted", deleted),
	)
	return nil
}

func (s *TenantDocService) List(ctx context.Context, tenantID string) ([]domain.TenantDoc, error) {
	docs, err := s.repo.TenantDoc().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, &StorageError{Op: "list tenant docs", Err: err}
	}
	if len(docs) == 0 {
		return nil, ErrTenantDocNotFound
	}
	return docs, nil
}

func (s *TenantDocService) Entries(ctx context.Context, tenantID, docName string) ([]domain.KnowledgeEntry, error) {
	entries, err := s.repo.KnowledgeBase().ListEntries(ctx, tenantID, docName)
	if err != nil {
		return nil, &StorageError{Op: "list knowledge entries", Err: err}
	}
	return entries, nil
}

func (s *TenantDocService) Search(ctx context.Context, tenantID, text string, size int) ([]domain.KnowledgeHit, error) {
	if tenantID == "" {
		return nil, newValidationError("tenant_id", "is required")
	}
	if strings.TrimSpace(text) == "" {
		return nil, newValidationError("q", "must not be empty")
	}
	if size <= 0 || size > maxSearchSize {
		size = 10
	}

	hits, err := s.repo.KnowledgeBase().Search(ctx, tenantID, text, size)
	if err != nil {
		return nil, &StorageError{Op: "search knowledge base", Err: err}
	}
	return hits, nil
}

func validateDocKey(tenantID, docName string) error {
	if tenantID == "" {
		return newValidationError("tenant_id", "is required")
	}
	if strings.TrimSpace(docName) == "" {
		return newValidationError("doc_name", "is required")
	}
	return nil
}
