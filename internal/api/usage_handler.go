package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/usage-billing-api/internal/api/dto"
	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/pkg/utils"
)

//go:generate mockery --name UsageService --output ../mocks
type UsageService interface {
	InsertUsageRecord(ctx context.Context, tenantID string, date time.Time, tokensUsed int64, perTokenPrice float64) (*domain.UsageRecord, error)
	PastDayUsage(ctx context.Context, tenantID string) ([]domain.UsageRecord, error)
	PastDayTotal(ctx context.Context, tenantID string) (domain.UsageTotals, error)
	RecordEvent(ctx context.Context, event *domain.UsageEvent) (string, error)
	UpdateFeedback(ctx context.Context, tenantID, eventID string, feedback bool) error
}

type UsageHandler struct {
	*BaseHandler
	service UsageService
}

func NewUsageHandler(service UsageService) *UsageHandler {
	return &UsageHandler{service: service}
}

// InsertUsage godoc
// @Summary Record settled usage
// @Description Append a ledger row; total_price is derived as tokens_used * per_token_price
// @Tags usage
// @Accept json
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Param body body dto.InsertUsageRequest true "Usage record"
// @Success 201 {object} dto.UsageRecordResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /usage [post]
func (h *UsageHandler) InsertUsage(c *gin.Context) {
	var req dto.InsertUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	date, err := utils.ParseUserTime(req.Date)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.service.InsertUsageRecord(h.RequestCtx(c), h.TenantID(c), date, req.TokensUsed, req.PerTokenPrice)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromUsageRecord(record))
}

// PastDayUsage godoc
// @Summary List yesterday's usage
// @Tags usage
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Success 200 {array} dto.UsageRecordResponse
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /usage/past-day [get]
func (h *UsageHandler) PastDayUsage(c *gin.Context) {
	records, err := h.service.PastDayUsage(h.RequestCtx(c), h.TenantID(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromUsageRecords(records))
}

// PastDayTotal godoc
// @Summary Total yesterday's usage
// @Tags usage
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Success 200 {object} dto.TotalUsageResponse
// @Failure 500 {object} dto.Error
// @Router /usage/past-day/total [get]
func (h *UsageHandler) PastDayTotal(c *gin.Context) {
	tenantID := h.TenantID(c)
	totals, err := h.service.PastDayTotal(h.RequestCtx(c), tenantID)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TotalUsageResponse{
		TenantID:   tenantID,
		TokensUsed: totals.Tokens,
		TotalPrice: totals.Price,
	})
}

// RecordEvent godoc
// @Summary Record an AI reply usage event
// @Description Store an unsettled usage event and publish it to live subscribers
// @Tags usage
// @Accept json
// @Produce json
// @Param body body dto.RecordEventRequest true "Usage event"
// @Success 201 {object} dto.RecordEventResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /usage/events [post]
func (h *UsageHandler) RecordEvent(c *gin.Context) {
	var req dto.RecordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	id, err := h.service.RecordEvent(h.RequestCtx(c), req.ToUsageEvent())
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RecordEventResponse{ID: id})
}

// UpdateFeedback godoc
// @Summary Set customer feedback on a usage event
// @Tags usage
// @Accept json
// @Param id path string true "Event ID"
// @Param tenant_id query string true "Tenant ID"
// @Param body body dto.FeedbackRequest true "Feedback"
// @Success 204
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /usage/events/{id}/feedback [patch]
func (h *UsageHandler) UpdateFeedback(c *gin.Context) {
	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.service.UpdateFeedback(h.RequestCtx(c), h.TenantID(c), c.Param("id"), *req.CustomerFeedback); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
