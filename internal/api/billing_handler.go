package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/usage-billing-api/internal/api/dto"
	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/service/invoice"
)

//go:generate mockery --name BillingService --output ../mocks
type BillingService interface {
	SettlePeriod(ctx context.Context, tenantID string, year, month int) (*domain.BillingHistory, error)
	ListHistory(ctx context.Context, tenantID string) ([]domain.BillingHistory, error)
	GetHistory(ctx context.Context, tenantID string, id uint64) (*domain.BillingHistory, error)
	RenderInvoice(ctx context.Context, tenantID string, id uint64) ([]byte, *domain.BillingHistory, error)
	GetSettings(ctx context.Context, tenantID string) (*domain.BillingSettings, error)
	CreateSettings(ctx context.Context, tenantID string, usageAlert float64) (*domain.BillingSettings, error)
	UpdateSettings(ctx context.Context, tenantID string, usageAlert float64) (*domain.BillingSettings, error)
}

type BillingHandler struct {
	*BaseHandler
	service BillingService
}

func NewBillingHandler(service BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

// SettlePeriod godoc
// @Summary Settle a billing period
// @Description Snapshot the month's usage into billing history and queue invoice generation
// @Tags billing
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 201 {object} dto.BillingHistoryResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /billing/history [post]
func (h *BillingHandler) SettlePeriod(c *gin.Context) {
	year, err := requiredQueryInt(c, "year")
	if err != nil {
		h.RespondError(c, err)
		return
	}
	month, err := requiredQueryInt(c, "month")
	if err != nil {
		h.RespondError(c, err)
		return
	}

	history, err := h.service.SettlePeriod(h.RequestCtx(c), h.TenantID(c), year, month)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromBillingHistory(history))
}

// ListHistory godoc
// @Summary List billing history
// @Description Billing periods of a tenant, most recent first
// @Tags billing
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Success 200 {array} dto.BillingHistoryResponse
// @Failure 404 {object} dto.Error
// @Router /billing/history [get]
func (h *BillingHandler) ListHistory(c *gin.Context) {
	history, err := h.service.ListHistory(h.RequestCtx(c), h.TenantID(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromBillingHistories(history))
}

// GetHistory godoc
// @Summary Get a billing period
// @Tags billing
// @Produce json
// @Param id path int true "Billing history ID"
// @Param tenant_id query string true "Tenant ID"
// @Success 200 {object} dto.BillingHistoryResponse
// @Failure 404 {object} dto.Error
// @Router /billing/history/{id} [get]
func (h *BillingHandler) GetHistory(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		h.RespondError(c, err)
		return
	}

	history, err := h.service.GetHistory(h.RequestCtx(c), h.TenantID(c), id)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromBillingHistory(history))
}

// DownloadInvoice godoc
// @Summary Download the invoice PDF of a billing period
// @Tags billing
// @Produce application/pdf
// @Param id path int true "Billing history ID"
// @Param tenant_id query string true "Tenant ID"
// @Success 200 {file} file
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /billing/history/{id}/invoice [get]
func (h *BillingHandler) DownloadInvoice(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		h.RespondError(c, err)
		return
	}

	pdf, history, err := h.service.RenderInvoice(h.RequestCtx(c), h.TenantID(c), id)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", invoice.InvoiceNumber(*history)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GetSettings godoc
// @Summary Get billing settings
// @Tags billing
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Success 200 {object} dto.BillingSettingsResponse
// @Failure 404 {object} dto.Error
// @Router /billing/settings [get]
func (h *BillingHandler) GetSettings(c *gin.Context) {
	settings, err := h.service.GetSettings(h.RequestCtx(c), h.TenantID(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromBillingSettings(settings))
}

// CreateSettings godoc
// @Summary Create billing settings
// @Tags billing
// @Accept json
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Param body body dto.BillingSettingsRequest true "Settings"
// @Success 201 {object} dto.BillingSettingsResponse
// @Failure 400 {object} dto.Error
// @Router /billing/settings [post]
func (h *BillingHandler) CreateSettings(c *gin.Context) {
	var req dto.BillingSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	settings, err := h.service.CreateSettings(h.RequestCtx(c), h.TenantID(c), req.UsageAlert)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromBillingSettings(settings))
}

// UpdateSettings godoc
// @Summary Update billing settings
// @Tags billing
// @Accept json
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Param body body dto.BillingSettingsRequest true "Settings"
// @Success 200 {object} dto.BillingSettingsResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /billing/settings [patch]
func (h *BillingHandler) UpdateSettings(c *gin.Context) {
	var req dto.BillingSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	settings, err := h.service.UpdateSettings(h.RequestCtx(c), h.TenantID(c), req.UsageAlert)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromBillingSettings(settings))
}
