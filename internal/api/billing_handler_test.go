package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/usage-billing-api/internal/api/dto"
	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/middleware"
	"github.com/kingrain94/usage-billing-api/internal/service"
)

type BillingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockBillingService
}

func (s *BillingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(MockBillingService)
	handler := NewBillingHandler(s.mockService)

	billing := s.router.Group("/billing", middleware.NewScopeMiddleware().TenantScope())
	billing.POST("/history", handler.SettlePeriod)
	billing.GET("/history", handler.ListHistory)
	billing.GET("/history/:id", handler.GetHistory)
	billing.GET("/history/:id/invoice", handler.DownloadInvoice)
	billing.GET("/settings", handler.GetSettings)
	billing.POST("/settings", handler.CreateSettings)
	billing.PATCH("/settings", handler.UpdateSettings)
}

func TestBillingHandler(t *testing.T) {
	suite.Run(t, new(BillingHandlerTestSuite))
}

func (s *BillingHandlerTestSuite) serve(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *BillingHandlerTestSuite) TestSettlePeriod() {
	// Arrange
	s.mockService.On("SettlePeriod", mock.Anything, "tenant_7", 2024, 4).Return(&domain.BillingHistory{
		ID: 9, TenantID: "tenant_7", Period: "Apr 2024", Year: 2024, Month: 4, TokensUsed: 10200, TotalPrice: 51,
	}, nil)

	// Act
	w := s.serve(http.MethodPost, "/billing/history?tenant_id=tenant_7&year=2024&month=4", "")

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.BillingHistoryResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("Apr 2024", response.Period)
	s.Equal(int64(10200), response.TokensUsed)
	s.Nil(response.InvoiceURL)
}

func (s *BillingHandlerTestSuite) TestSettlePeriod_MissingMonth() {
	w := s.serve(http.MethodPost, "/billing/history?tenant_id=tenant_7&year=2024", "")

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "SettlePeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *BillingHandlerTestSuite) TestListHistory_NotFound() {
	// Arrange
	s.mockService.On("ListHistory", mock.Anything, "tenant_7").Return(nil, service.ErrBillingHistoryNotFound)

	// Act
	w := s.serve(http.MethodGet, "/billing/history?tenant_id=tenant_7", "")

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *BillingHandlerTestSuite) TestGetHistory() {
	// Arrange
	url := "https://cdn.example.com/invoices/tenant_7/a.pdf"
	s.mockService.On("GetHistory", mock.Anything, "tenant_7", uint64(9)).
		Return(&domain.BillingHistory{ID: 9, TenantID: "tenant_7", InvoiceURL: &url}, nil)

	// Act
	w := s.serve(http.MethodGet, "/billing/history/9?tenant_id=tenant_7", "")
	bad := s.serve(http.MethodGet, "/billing/history/nine?tenant_id=tenant_7", "")

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), url)
	s.Equal(http.StatusBadRequest, bad.Code)
}

func (s *BillingHandlerTestSuite) TestDownloadInvoice() {
	// Arrange
	pdf := []byte("%PDF-1.3 fake")
	s.mockService.On("RenderInvoice", mock.Anything, "tenant_7", uint64(9)).
		Return(pdf, &domain.BillingHistory{ID: 9, TenantID: "tenant_7", Year: 2024, Month: 4}, nil)

	// Act
	w := s.serve(http.MethodGet, "/billing/history/9/invoice?tenant_id=tenant_7", "")

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.Equal("application/pdf", w.Header().Get("Content-Type"))
	s.Equal("attachment; filename=INV-202404-000009.pdf", w.Header().Get("Content-Disposition"))
	s.Equal(pdf, w.Body.Bytes())
}

func (s *BillingHandlerTestSuite) TestDownloadInvoice_NotFound() {
	// Arrange
	s.mockService.On("RenderInvoice", mock.Anything, "tenant_7", uint64(1)).Return(nil, nil, service.ErrBillingHistoryNotFound)

	// Act
	w := s.serve(http.MethodGet, "/billing/history/1/invoice?tenant_id=tenant_7", "")

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *BillingHandlerTestSuite) TestSettings() {
	// Arrange
	s.mockService.On("GetSettings", mock.Anything, "tenant_7").Return(nil, service.ErrBillingSettingsNotFound)
	s.mockService.On("CreateSettings", mock.Anything, "tenant_7", 100.0).Return(nil, service.ErrBillingSettingsExist)
	s.mockService.On("UpdateSettings", mock.Anything, "tenant_7", 250.0).
		Return(&domain.BillingSettings{ID: 1, TenantID: "tenant_7", UsageAlert: 250}, nil)

	// Act
	get := s.serve(http.MethodGet, "/billing/settings?tenant_id=tenant_7", "")
	create := s.serve(http.MethodPost, "/billing/settings?tenant_id=tenant_7", `{"usage_alert":100}`)
	update := s.serve(http.MethodPatch, "/billing/settings?tenant_id=tenant_7", `{"usage_alert":250}`)

	// Assert
	s.Equal(http.StatusNotFound, get.Code)
	s.Equal(http.StatusBadRequest, create.Code)
	s.Contains(create.Body.String(), CodeBillingSettingsExist)
	s.Equal(http.StatusOK, update.Code)
	s.Contains(update.Body.String(), `"usage_alert":250`)
}
