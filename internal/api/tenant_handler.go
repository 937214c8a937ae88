package api

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/usage-billing-api/internal/api/dto"
	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/service"
)

//go:generate mockery --name TenantService --output ../mocks
type TenantService interface {
	RegisterWithLogo(ctx context.Context, name, alias string, logo *service.FileUpload) (*domain.Tenant, error)
	Update(ctx context.Context, tenantID string, update domain.TenantUpdate) (*domain.Tenant, error)
	UpdateLogo(ctx context.Context, tenantID string, logo *service.FileUpload) (*domain.Tenant, error)
	Delete(ctx context.Context, tenantID string) error
	Find(ctx context.Context, query domain.TenantQuery) (*domain.Tenant, error)
	Check(ctx context.Context, name, alias string) (*domain.Tenant, error)
}

type TenantHandler struct {
	*BaseHandler
	service TenantService
}

func NewTenantHandler(service TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

// RegisterTenant godoc
// @Summary Register a new tenant
// @Description Register a tenant by name and alias, optionally uploading its logo
// @Tags tenants
// @Accept mpfd
// @Produce json
// @Param name formData string true "Tenant name"
// @Param alias formData string true "Tenant alias, 1-10 letters or digits"
// @Param logo formData file false "Tenant logo"
// @Success 201 {object} dto.TenantInfo
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /tenants [post]
func (h *TenantHandler) RegisterTenant(c *gin.Context) {
	var req dto.RegisterTenantRequest
	if err := c.ShouldBind(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	logo, err := readUpload(c, "logo")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tenant, err := h.service.RegisterWithLogo(h.RequestCtx(c), req.Name, req.Alias, logo)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromTenant(tenant))
}

// UpdateTenant godoc
// @Summary Update a tenant
// @Description Update the supplied fields of a tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param body body dto.UpdateTenantRequest true "Fields to update"
// @Success 200 {object} dto.TenantInfo
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /tenants/{tenant_id} [patch]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	update := req.ToTenantUpdate()
	if update.IsEmpty() {
		h.BadRequest(c, "no fields to update")
		return
	}

	tenant, err := h.service.Update(h.RequestCtx(c), h.TenantID(c), update)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTenant(tenant))
}

// UpdateTenantLogo godoc
// @Summary Replace a tenant logo
// @Tags tenants
// @Accept mpfd
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param logo formData file true "Tenant logo"
// @Success 200 {object} dto.TenantInfo
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /tenants/{tenant_id}/logo [put]
func (h *TenantHandler) UpdateTenantLogo(c *gin.Context) {
	logo, err := readUpload(c, "logo")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tenant, err := h.service.UpdateLogo(h.RequestCtx(c), h.TenantID(c), logo)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTenant(tenant))
}

// DeleteTenant godoc
// @Summary Delete a tenant
// @Tags tenants
// @Param tenant_id path string true "Tenant ID"
// @Success 204
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /tenants/{tenant_id} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), h.TenantID(c)); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// FindTenant godoc
// @Summary Find a tenant
// @Description Exact lookup by tenant_id when given, otherwise by name or alias
// @Tags tenants
// @Produce json
// @Param tenant_id query string false "Tenant ID"
// @Param name query string false "Tenant name"
// @Param alias query string false "Tenant alias"
// @Success 200 {object} dto.TenantLookupResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /tenants/find [get]
func (h *TenantHandler) FindTenant(c *gin.Context) {
	query := domain.TenantQuery{
		TenantID: c.Query("tenant_id"),
		Name:     c.Query("name"),
		Alias:    c.Query("alias"),
	}

	tenant, err := h.service.Find(h.RequestCtx(c), query)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TenantLookupResponse{Data: dto.FromTenant(tenant)})
}

// CheckTenant godoc
// @Summary Check whether a name or alias is taken
// @Tags tenants
// @Produce json
// @Param name query string false "Tenant name"
// @Param alias query string false "Tenant alias"
// @Success 200 {object} dto.TenantLookupResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /tenants/check [get]
func (h *TenantHandler) CheckTenant(c *gin.Context) {
	tenant, err := h.service.Check(h.RequestCtx(c), c.Query("name"), c.Query("alias"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TenantLookupResponse{Data: dto.FromTenant(tenant)})
}

// readUpload reads an optional multipart file into memory. A missing file
// yields nil.
func readUpload(c *gin.Context, field string) (*service.FileUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return loadFile(header)
}

func loadFile(header *multipart.FileHeader) (*service.FileUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &service.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
