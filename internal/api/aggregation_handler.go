package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/usage-billing-api/internal/api/dto"
	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/service"
)

//go:generate mockery --name AggregationService --output ../mocks
type AggregationService interface {
	MonthlySummary(ctx context.Context, tenantID string, year, month, tzOffsetMinutes int) (*domain.MonthlySummary, error)
	DailySummary(ctx context.Context, tenantID string, year, month, tzOffsetMinutes int) ([]domain.DailyUsage, error)
	CurrentMonthAggregation(ctx context.Context, tenantID string) (*domain.MonthlyAggregation, error)
}

type AggregationHandler struct {
	*BaseHandler
	service AggregationService
}

func NewAggregationHandler(service AggregationService) *AggregationHandler {
	return &AggregationHandler{service: service}
}

type periodQuery struct {
	year, month, tzOffsetMinutes int
}

func parsePeriodQuery(c *gin.Context) (periodQuery, error) {
	var q periodQuery
	var err error
	if q.year, err = requiredQueryInt(c, "year"); err != nil {
		return q, err
	}
	if q.month, err = requiredQueryInt(c, "month"); err != nil {
		return q, err
	}
	if q.tzOffsetMinutes, err = queryInt(c, "timezone_offset_minutes", 0); err != nil {
		return q, err
	}
	return q, nil
}

// MonthlySummary godoc
// @Summary Monthly usage summary
// @Description Total tokens and price for a tenant-local calendar month across settled and unsettled usage
// @Tags aggregation
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Param timezone_offset_minutes query int false "Tenant offset from UTC in minutes" default(0)
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Failure 504 {object} dto.Error
// @Router /usage/monthly/summary [get]
func (h *AggregationHandler) MonthlySummary(c *gin.Context) {
	q, err := parsePeriodQuery(c)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	summary, err := h.service.MonthlySummary(h.RequestCtx(c), h.TenantID(c), q.year, q.month, q.tzOffsetMinutes)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromMonthlySummary(summary))
}

// DailySummary godoc
// @Summary Daily usage series for a month
// @Description Per-day totals bucketed by tenant-local calendar date, ascending, days without usage omitted
// @Tags aggregation
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Param timezone_offset_minutes query int false "Tenant offset from UTC in minutes" default(0)
// @Success 200 {array} dto.DailySummaryResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 504 {object} dto.Error
// @Router /usage/monthly/daily [get]
func (h *AggregationHandler) DailySummary(c *gin.Context) {
	q, err := parsePeriodQuery(c)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	days, err := h.service.DailySummary(h.RequestCtx(c), h.TenantID(c), q.year, q.month, q.tzOffsetMinutes)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if len(days) == 0 {
		h.RespondError(c, service.ErrUsageNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.FromDailyUsage(days))
}

// CurrentMonth godoc
// @Summary Current month aggregation
// @Description Ledger usage for the current UTC month plus today's unsettled events
// @Tags aggregation
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Success 200 {object} dto.MonthlyAggregationResponse
// @Failure 500 {object} dto.Error
// @Failure 504 {object} dto.Error
// @Router /aggregation/monthly [get]
func (h *AggregationHandler) CurrentMonth(c *gin.Context) {
	aggregation, err := h.service.CurrentMonthAggregation(h.RequestCtx(c), h.TenantID(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromMonthlyAggregation(aggregation))
}
