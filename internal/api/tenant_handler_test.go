package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/usage-billing-api/internal/api/dto"
	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/middleware"
	"github.com/kingrain94/usage-billing-api/internal/service"
)

type TenantHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTenantService
	handler     *TenantHandler
}

func (s *TenantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(MockTenantService)
	s.handler = NewTenantHandler(s.mockService)

	// Setup routes
	scope := middleware.NewScopeMiddleware()
	s.router.POST("/tenants", s.handler.RegisterTenant)
	s.router.GET("/tenants/find", s.handler.FindTenant)
	s.router.GET("/tenants/check", s.handler.CheckTenant)
	s.router.PATCH("/tenants/:tenant_id", scope.TenantScope(), s.handler.UpdateTenant)
	s.router.DELETE("/tenants/:tenant_id", scope.TenantScope(), s.handler.DeleteTenant)
	s.router.PUT("/tenants/:tenant_id/logo", scope.TenantScope(), s.handler.UpdateTenantLogo)
}

func TestTenantHandler(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}

func storedTenant(id uint, name, alias string) *domain.Tenant {
	tenantID := domain.FormatTenantID(id)
	now := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Tenant{ID: id, TenantID: &tenantID, Name: name, Alias: alias, ActiveState: true, CreatedAt: now, UpdatedAt: now}
}

func multipartBody(fields map[string]string, fileField, filename string, content []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		_ = writer.WriteField(k, v)
	}
	if fileField != "" {
		part, _ := writer.CreateFormFile(fileField, filename)
		_, _ = part.Write(content)
	}
	_ = writer.Close()
	return body, writer.FormDataContentType()
}

func (s *TenantHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *TenantHandlerTestSuite) TestRegisterTenant_WithLogo() {
	// Arrange
	body, contentType := multipartBody(map[string]string{"name": "Acme", "alias": "acme"}, "logo", "logo.png", []byte("png-bytes"))
	tenant := storedTenant(1, "Acme", "acme")
	tenant.Logo = "https://cdn.example.com/tenant_logos/tenant_1/logo.png"
	s.mockService.On("RegisterWithLogo", mock.Anything, "Acme", "acme", mock.MatchedBy(func(f *service.FileUpload) bool {
		return f != nil && f.Filename == "logo.png" && string(f.Data) == "png-bytes"
	})).Return(tenant, nil)

	req := httptest.NewRequest(http.MethodPost, "/tenants", body)
	req.Header.Set("Content-Type", contentType)

	// Act
	w := s.serve(req)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.TenantInfo
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("tenant_1", response.TenantID)
	s.Equal(tenant.Logo, response.Logo)
	s.True(response.ActiveState)
	s.mockService.AssertExpectations(s.T())
}

func (s *TenantHandlerTestSuite) TestRegisterTenant_WithoutLogo() {
	// Arrange
	body, contentType := multipartBody(map[string]string{"name": "Acme", "alias": "acme"}, "", "", nil)
	s.mockService.On("RegisterWithLogo", mock.Anything, "Acme", "acme", (*service.FileUpload)(nil)).
		Return(storedTenant(1, "Acme", "acme"), nil)

	req := httptest.NewRequest(http.MethodPost, "/tenants", body)
	req.Header.Set("Content-Type", contentType)

	// Act
	w := s.serve(req)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *TenantHandlerTestSuite) TestRegisterTenant_DuplicateCodes() {
	tests := []struct {
		err  error
		code string
	}{
		{service.ErrDuplicateTenantName, CodeDuplicateTenantName},
		{service.ErrDuplicateTenantAlias, CodeDuplicateTenantAlias},
		{service.ErrDuplicateTenant, CodeDuplicateTenant},
	}

	for _, tt := range tests {
		s.Run(tt.code, func() {
			// Arrange
			s.SetupTest()
			body, contentType := multipartBody(map[string]string{"name": "Acme", "alias": "acme"}, "", "", nil)
			s.mockService.On("RegisterWithLogo", mock.Anything, "Acme", "acme", mock.Anything).Return(nil, tt.err)
			req := httptest.NewRequest(http.MethodPost, "/tenants", body)
			req.Header.Set("Content-Type", contentType)

			// Act
			w := s.serve(req)

			// Assert
			s.Equal(http.StatusBadRequest, w.Code)
			var response dto.Error
			s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
			s.Equal(tt.code, response.ErrorCode)
		})
	}
}

func (s *TenantHandlerTestSuite) TestRegisterTenant_MissingAlias() {
	// Arrange
	body, contentType := multipartBody(map[string]string{"name": "Acme"}, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/tenants", body)
	req.Header.Set("Content-Type", contentType)

	// Act
	w := s.serve(req)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), CodeValidation)
	s.mockService.AssertNotCalled(s.T(), "RegisterWithLogo", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *TenantHandlerTestSuite) TestRegisterTenant_LogoFailureIsInternal() {
	// Arrange
	body, contentType := multipartBody(map[string]string{"name": "Acme", "alias": "acme"}, "logo", "logo.png", []byte("x"))
	s.mockService.On("RegisterWithLogo", mock.Anything, "Acme", "acme", mock.Anything).
		Return(nil, &service.InternalError{Op: "upload tenant logo", Err: errors.New("s3 down")})
	req := httptest.NewRequest(http.MethodPost, "/tenants", body)
	req.Header.Set("Content-Type", contentType)

	// Act
	w := s.serve(req)

	// Assert
	s.Equal(http.StatusInternalServerError, w.Code)
	s.NotContains(w.Body.String(), "s3 down")
}

func (s *TenantHandlerTestSuite) TestUpdateTenant_PartialUpdate() {
	// Arrange
	name := "Acme Corp"
	s.mockService.On("Update", mock.Anything, "tenant_1", domain.TenantUpdate{Name: &name}).
		Return(storedTenant(1, name, "acme"), nil)
	req := httptest.NewRequest(http.MethodPatch, "/tenants/tenant_1", bytes.NewBufferString(`{"name":"Acme Corp"}`))
	req.Header.Set("Content-Type", "application/json")

	// Act
	w := s.serve(req)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"name":"Acme Corp"`)
	s.mockService.AssertExpectations(s.T())
}

func (s *TenantHandlerTestSuite) TestUpdateTenant_NotFound() {
	// Arrange
	s.mockService.On("Update", mock.Anything, "tenant_9", mock.Anything).Return(nil, service.ErrTenantNotFound)
	req := httptest.NewRequest(http.MethodPatch, "/tenants/tenant_9", bytes.NewBufferString(`{"active_state":false}`))
	req.Header.Set("Content-Type", "application/json")

	// Act
	w := s.serve(req)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), CodeNotFound)
}

func (s *TenantHandlerTestSuite) TestUpdateTenant_EmptyBody() {
	req := httptest.NewRequest(http.MethodPatch, "/tenants/tenant_1", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	w := s.serve(req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TenantHandlerTestSuite) TestUpdateTenantLogo() {
	// Arrange
	body, contentType := multipartBody(nil, "logo", "new.png", []byte("new"))
	s.mockService.On("UpdateLogo", mock.Anything, "tenant_1", mock.MatchedBy(func(f *service.FileUpload) bool {
		return f.Filename == "new.png"
	})).Return(storedTenant(1, "Acme", "acme"), nil)
	req := httptest.NewRequest(http.MethodPut, "/tenants/tenant_1/logo", body)
	req.Header.Set("Content-Type", contentType)

	// Act
	w := s.serve(req)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *TenantHandlerTestSuite) TestDeleteTenant() {
	// Arrange
	s.mockService.On("Delete", mock.Anything, "tenant_1").Return(nil)
	s.mockService.On("Delete", mock.Anything, "tenant_2").Return(service.ErrTenantNotFound)

	// Act
	deleted := s.serve(httptest.NewRequest(http.MethodDelete, "/tenants/tenant_1", nil))
	missing := s.serve(httptest.NewRequest(http.MethodDelete, "/tenants/tenant_2", nil))

	// Assert
	s.Equal(http.StatusNoContent, deleted.Code)
	s.Equal(http.StatusNotFound, missing.Code)
}

func (s *TenantHandlerTestSuite) TestFindTenant() {
	// Arrange
	s.mockService.On("Find", mock.Anything, domain.TenantQuery{Alias: "acme"}).Return(storedTenant(1, "Acme", "acme"), nil)

	// Act
	w := s.serve(httptest.NewRequest(http.MethodGet, "/tenants/find?alias=acme", nil))

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.TenantLookupResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("tenant_1", response.Data.TenantID)
}

func (s *TenantHandlerTestSuite) TestFindTenant_NoCriteria() {
	// Arrange
	s.mockService.On("Find", mock.Anything, domain.TenantQuery{}).
		Return(nil, &service.ValidationError{Field: "query", Reason: "at least one of tenant_id, name or alias is required"})

	// Act
	w := s.serve(httptest.NewRequest(http.MethodGet, "/tenants/find", nil))

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), CodeValidation)
}

func (s *TenantHandlerTestSuite) TestCheckTenant_NotFound() {
	// Arrange
	s.mockService.On("Check", mock.Anything, "Nobody", "").Return(nil, service.ErrTenantNotFound)

	// Act
	w := s.serve(httptest.NewRequest(http.MethodGet, "/tenants/check?name=Nobody", nil))

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}
