package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kingrain94/usage-billing-api/internal/config"
	"github.com/kingrain94/usage-billing-api/internal/metrics"
	"github.com/kingrain94/usage-billing-api/internal/middleware"
	"github.com/kingrain94/usage-billing-api/pkg/logger"
)

type Server struct {
	tenant      *TenantHandler
	usage       *UsageHandler
	aggregation *AggregationHandler
	billing     *BillingHandler
	tenantDoc   *TenantDocHandler
	websocket   *WebSocketHandler
	scope       *middleware.ScopeMiddleware
	rateLimit   *middleware.RateLimitMiddleware
	validation  *middleware.ValidationMiddleware
	metrics     *metrics.Metrics
	config      *config.Config
}

func NewServer(
	cfg *config.Config,
	tenantService TenantService,
	usageService UsageService,
	aggregationService AggregationService,
	billingService BillingService,
	tenantDocService TenantDocService,
	stream UsageEventStream,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Server {
	return &Server{
		tenant:      NewTenantHandler(tenantService),
		usage:       NewUsageHandler(usageService),
		aggregation: NewAggregationHandler(aggregationService),
		billing:     NewBillingHandler(billingService),
		tenantDoc:   NewTenantDocHandler(tenantDocService),
		websocket:   NewWebSocketHandler(logger, stream),
		scope:       middleware.NewScopeMiddleware(),
		rateLimit:   rateLimit,
		validation:  validation,
		metrics:     metrics,
		config:      cfg,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.scope.RequestID())
	api.Use(middleware.Metrics(s.metrics))

	// Apply security middleware first
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateRequestSize(s.config.MaxUploadSize))
	api.Use(s.validation.ValidateContentType("application/json", "multipart/form-data"))

	// Apply global rate limiting
	api.Use(s.rateLimit.GlobalRateLimit(s.config.GlobalRateLimit))

	scoped := []gin.HandlerFunc{s.scope.TenantScope(), s.rateLimit.TenantRateLimit()}

	{
		tenants := api.Group("/tenants")
		{
			tenants.POST("", s.tenant.RegisterTenant)
			tenants.GET("/find", s.tenant.FindTenant)
			tenants.GET("/check", s.tenant.CheckTenant)

			scopedTenant := tenants.Group("/:tenant_id", scoped...)
			scopedTenant.PATCH("", s.tenant.UpdateTenant)
			scopedTenant.DELETE("", s.tenant.DeleteTenant)
			scopedTenant.PUT("/logo", s.tenant.UpdateTenantLogo)
		}

		api.POST("/usage/events", s.usage.RecordEvent)

		usage := api.Group("/usage", scoped...)
		{
			usage.POST("", s.usage.InsertUsage)
			usage.GET("/past-day", s.usage.PastDayUsage)
			usage.GET("/past-day/total", s.usage.PastDayTotal)
			usage.GET("/monthly/summary", s.aggregation.MonthlySummary)
			usage.GET("/monthly/daily", s.aggregation.DailySummary)
			usage.PATCH("/events/:id/feedback", s.usage.UpdateFeedback)
			usage.GET("/stream", s.websocket.HandleWebSocket)
		}

		api.GET("/aggregation/monthly", append(scoped, s.aggregation.CurrentMonth)...)

		billing := api.Group("/billing", scoped...)
		{
			billing.POST("/history", s.billing.SettlePeriod)
			billing.GET("/history", s.billing.ListHistory)
			billing.GET("/history/:id", s.billing.GetHistory)
			billing.GET("/history/:id/invoice", s.billing.DownloadInvoice)
			billing.GET("/settings", s.billing.GetSettings)
			billing.POST("/settings", s.billing.CreateSettings)
			billing.PATCH("/settings", s.billing.UpdateSettings)
		}

		docs := api.Group("/tenant_docs")
		{
			docs.POST("", s.tenantDoc.CreateDoc)

			scopedDocs := docs.Group("/:tenant_id", scoped...)
			scopedDocs.GET("", s.tenantDoc.ListDocs)
			scopedDocs.PATCH("/:doc_name", s.tenantDoc.UpdateDoc)
			scopedDocs.DELETE("/:doc_name", s.tenantDoc.DeleteDoc)
			scopedDocs.GET("/:doc_name/entries", s.tenantDoc.DocEntries)
		}

		api.GET("/knowledge/search", append(scoped, s.tenantDoc.Search)...)
	}
}

// StartWebSocketHub starts the hub serving live usage streams
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

func (s *Server) StopWebSocketHub() {
	s.websocket.Stop()
}
