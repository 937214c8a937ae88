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

type TenantDocHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTenantDocService
}

func (s *TenantDocHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(MockTenantDocService)
	handler := NewTenantDocHandler(s.mockService)
	scope := middleware.NewScopeMiddleware()

	s.router.POST("/tenant_docs", handler.CreateDoc)
	docs := s.router.Group("/tenant_docs/:tenant_id", scope.TenantScope())
	docs.GET("", handler.ListDocs)
	docs.PATCH("/:doc_name", handler.UpdateDoc)
	docs.DELETE("/:doc_name", handler.DeleteDoc)
	docs.GET("/:doc_name/entries", handler.DocEntries)
	s.router.GET("/knowledge/search", scope.TenantScope(), handler.Search)
}

func TestTenantDocHandler(t *testing.T) {
	suite.Run(t, new(TenantDocHandlerTestSuite))
}

func (s *TenantDocHandlerTestSuite) serve(method, target, body string) *httptest.ResponseRecorder {
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

func (s *TenantDocHandlerTestSuite) TestCreateDoc() {
	// Arrange
	s.mockService.On("Create", mock.Anything, "tenant_1", "faq.pdf", 12).
		Return(&domain.TenantDoc{ID: 3, TenantID: "tenant_1", DocName: "faq.pdf", NumEntries: 12}, nil)

	// Act
	w := s.serve(http.MethodPost, "/tenant_docs", `{"tenant_id":"tenant_1","doc_name":"faq.pdf","num_entries":12}`)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.TenantDocResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(uint64(3), response.ID)
}

func (s *TenantDocHandlerTestSuite) TestCreateDoc_Duplicate() {
	// Arrange
	s.mockService.On("Create", mock.Anything, "tenant_1", "faq.pdf", 0).Return(nil, service.ErrDuplicateTenantDoc)

	// Act
	w := s.serve(http.MethodPost, "/tenant_docs", `{"tenant_id":"tenant_1","doc_name":"faq.pdf"}`)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), CodeDuplicateTenantDoc)
}

func (s *TenantDocHandlerTestSuite) TestUpdateAndDeleteDoc() {
	// Arrange
	s.mockService.On("UpdateEntries", mock.Anything, "tenant_1", "faq.pdf", 24).
		Return(&domain.TenantDoc{ID: 3, TenantID: "tenant_1", DocName: "faq.pdf", NumEntries: 24}, nil)
	s.mockService.On("Delete", mock.Anything, "tenant_1", "faq.pdf").Return(nil)
	s.mockService.On("Delete", mock.Anything, "tenant_1", "gone.pdf").Return(service.ErrTenantDocNotFound)

	// Act
	updated := s.serve(http.MethodPatch, "/tenant_docs/tenant_1/faq.pdf", `{"num_entries":24}`)
	deleted := s.serve(http.MethodDelete, "/tenant_docs/tenant_1/faq.pdf", "")
	missing := s.serve(http.MethodDelete, "/tenant_docs/tenant_1/gone.pdf", "")

	// Assert
	s.Equal(http.StatusOK, updated.Code)
	s.Contains(updated.Body.String(), `"num_entries":24`)
	s.Equal(http.StatusNoContent, deleted.Code)
	s.Equal(http.StatusNotFound, missing.Code)
}

func (s *TenantDocHandlerTestSuite) TestListDocs_EmptyIsNotFound() {
	// Arrange
	s.mockService.On("List", mock.Anything, "tenant_1").Return(nil, service.ErrTenantDocNotFound)

	// Act
	w := s.serve(http.MethodGet, "/tenant_docs/tenant_1", "")

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *TenantDocHandlerTestSuite) TestDocEntries() {
	// Arrange
	s.mockService.On("Entries", mock.Anything, "tenant_1", "faq.pdf").Return([]domain.KnowledgeEntry{
		{ID: "e1", TenantID: "tenant_1", DocName: "faq.pdf", Content: "Refunds within 14 days."},
	}, nil)

	// Act
	w := s.serve(http.MethodGet, "/tenant_docs/tenant_1/faq.pdf/entries", "")

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Refunds within 14 days.")
}

func (s *TenantDocHandlerTestSuite) TestSearch() {
	// Arrange
	s.mockService.On("Search", mock.Anything, "tenant_1", "refund policy", defaultSearchSize).Return([]domain.KnowledgeHit{
		{KnowledgeEntry: domain.KnowledgeEntry{ID: "e1", DocName: "faq.pdf", Content: "Refunds within 14 days."}, Score: 1.5},
	}, nil)

	// Act
	w := s.serve(http.MethodGet, "/knowledge/search?tenant_id=tenant_1&q=refund+policy", "")

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response []dto.KnowledgeHitResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Require().Len(response, 1)
	s.Equal(1.5, response[0].Score)
	s.Equal("faq.pdf", response[0].DocName)
}

func (s *TenantDocHandlerTestSuite) TestSearch_InvalidSize() {
	w := s.serve(http.MethodGet, "/knowledge/search?tenant_id=tenant_1&q=x&size=lots", "")

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
