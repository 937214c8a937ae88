package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/repository"
	"github.com/kingrain94/usage-billing-api/pkg/logger"
)

const logoKeyPrefix = "tenant_logos"

//go:generate mockery --name ObjectStorage --output ../mocks
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, body []byte, metadata map[string]string) (string, error)
	Delete(ctx context.Context, key string) error
}

// FileUpload is an uploaded file held in memory.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type TenantService struct {
	repo    repository.Repository
	storage ObjectStorage
	logger  *logger.Logger
}

func NewTenantService(repo repository.Repository, storage ObjectStorage, logger *logger.Logger) *TenantService {
	return &TenantService{
		repo:    repo,
		storage: storage,
		logger:  logger,
	}
}

// Register creates a tenant after checking name, then alias, for duplicates.
func (s *TenantService) Register(ctx context.Context, name, alias string) (*domain.Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newValidationError("name", "must not be empty")
	}
	if !domain.ValidAlias(alias) {
		return nil, newValidationError("alias", "must be 1-10 letters or digits")
	}

	if err := s.checkDuplicates(ctx, name, alias, ""); err != nil {
		return nil, err
	}

	tenant, err := s.repo.Tenant().Create(ctx, &domain.Tenant{Name: name, Alias: alias})
	if err != nil {
		// lost a race against a concurrent registration
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateTenant
		}
		return nil, &StorageError{Op: "register tenant", Err: err}
	}
	return tenant, nil
}

// RegisterWithLogo registers the tenant and stores its logo. When the logo
// cannot be stored the tenant is deleted again.
func (s *TenantService) RegisterWithLogo(ctx context.Context, name, alias string, logo *FileUpload) (*domain.Tenant, error) {
	tenant, err := s.Register(ctx, name, alias)
	if err != nil {
		return nil, err
	}
	if logo == nil || len(logo.Data) == 0 {
		return tenant, nil
	}

	tenantID := tenant.PublicID()
	key := LogoKey(tenantID, logo.Filename)
	logoURL, err := s.storage.Upload(ctx, key, logo.ContentType, logo.Data, map[string]string{"tenant-id": tenantID})
	if err != nil {
		s.compensateRegistration(ctx, tenantID, "")
		return nil, &InternalError{Op: "upload tenant logo", Err: err}
	}

	updated, err := s.repo.Tenant().Update(ctx, tenantID, domain.TenantUpdate{Logo: &logoURL})
	if err != nil {
		s.compensateRegistration(ctx, tenantID, key)
		return nil, &InternalError{Op: "store tenant logo", Err: err}
	}
	return updated, nil
}

func (s *TenantService) compensateRegistration(ctx context.Context, tenantID, uploadedKey string) {
	if uploadedKey != "" {
		if err := s.storage.Delete(ctx, uploadedKey); err != nil {
			s.logger.Error("Failed to remove orphaned logo", err, zap.String("tenant_id", tenantID), zap.String("key", uploadedKey))
		}
	}
	if err := s.repo.Tenant().Delete(ctx, tenantID); err != nil {
		s.logger.Error("Failed to roll back tenant registration", err, zap.String("tenant_id", tenantID))
		return
	}
	s.logger.Warn("Rolled back tenant registration", zap.String("tenant_id", tenantID))
}

func (s *TenantService) Update(ctx context.Context, tenantID string, update domain.TenantUpdate) (*domain.Tenant, error) {
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if trimmed == "" {
			return nil, newValidationError("name", "must not be empty")
		}
		update.Name = &trimmed
	}
	if update.Alias != nil && !domain.ValidAlias(*update.Alias) {
		return nil, newValidationError("alias", "must be 1-10 letters or digits")
	}

	var name, alias string
	if update.Name != nil {
		name = *update.Name
	}
	if update.Alias != nil {
		alias = *update.Alias
	}
	if err := s.checkDuplicates(ctx, name, alias, tenantID); err != nil {
		return nil, err
	}

	tenant, err := s.repo.Tenant().Update(ctx, tenantID, update)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrTenantNotFound
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, ErrDuplicateTenant
		}
		return nil, &StorageError{Op: "update tenant", Err: err}
	}
	return tenant, nil
}

func (s *TenantService) UpdateLogo(ctx context.Context, tenantID string, logo *FileUpload) (*domain.Tenant, error) {
	if logo == nil || len(logo.Data) == 0 {
		return nil, newValidationError("logo", "file is required")
	}
	if _, err := s.getTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	logoURL, err := s.storage.Upload(ctx, LogoKey(tenantID, logo.Filename), logo.ContentType, logo.Data, map[string]string{"tenant-id": tenantID})
	if err != nil {
		return nil, &InternalError{Op: "upload tenant logo", Err: err}
	}

	tenant, err := s.repo.Tenant().Update(ctx, tenantID, domain.TenantUpdate{Logo: &logoURL})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, &StorageError{Op: "update tenant logo", Err: err}
	}
	return tenant, nil
}

func (s *TenantService) Delete(ctx context.Context, tenantID string) error {
	if err := s.repo.Tenant().Delete(ctx, tenantID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTenantNotFound
		}
		return &StorageError{Op: "delete tenant", Err: err}
	}
	return nil
}

// Find looks up by identifier when given, otherwise by name or alias.
func (s *TenantService) Find(ctx context.Context, query domain.TenantQuery) (*domain.Tenant, error) {
	if query.IsEmpty() {
		return nil, newValidationError("query", "at least one of tenant_id, name or alias is required")
	}
	if query.TenantID != "" {
		return s.getTenant(ctx, query.TenantID)
	}
	return s.Check(ctx, query.Name, query.Alias)
}

// Check reports the tenant holding name or alias.
func (s *TenantService) Check(ctx context.Context, name, alias string) (*domain.Tenant, error) {
	if name == "" && alias == "" {
		return nil, newValidationError("query", "name or alias is required")
	}
	tenant, err := s.repo.Tenant().FindByNameOrAlias(ctx, name, alias)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, &StorageError{Op: "find tenant", Err: err}
	}
	return tenant, nil
}

func (s *TenantService) getTenant(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetByTenantID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, &StorageError{Op: "get tenant", Err: err}
	}
	return tenant, nil
}

// checkDuplicates reports a name clash before an alias clash. Rows owned by
// exceptTenantID do not count.
func (s *TenantService) checkDuplicates(ctx context.Context, name, alias, exceptTenantID string) error {
	if name != "" {
		existing, err := s.repo.Tenant().GetByName(ctx, name)
		if err := duplicateOrNil(existing, err, exceptTenantID, ErrDuplicateTenantName); err != nil {
			return err
		}
	}
	if alias != "" {
		existing, err := s.repo.Tenant().GetByAlias(ctx, alias)
		if err := duplicateOrNil(existing, err, exceptTenantID, ErrDuplicateTenantAlias); err != nil {
			return err
		}
	}
	return nil
}

func duplicateOrNil(existing *domain.Tenant, err error, exceptTenantID string, duplicate error) error {
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return &StorageError{Op: "check tenant uniqueness", Err: err}
	}
	if exceptTenantID != "" && existing.PublicID() == exceptTenantID {
		return nil
	}
	return duplicate
}

// LogoKey is the object key of a tenant logo.
func LogoKey(tenantID, filename string) string {
	return fmt.Sprintf("%s/%s/%s", logoKeyPrefix, tenantID, path.Base(filename))
}
