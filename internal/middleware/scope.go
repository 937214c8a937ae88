package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kingrain94/usage-billing-api/internal/utils"
)

const RequestIDHeader = "X-Request-ID"

type ScopeMiddleware struct{}

func NewScopeMiddleware() *ScopeMiddleware {
	return &ScopeMiddleware{}
}

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func (m *ScopeMiddleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(string(utils.RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// TenantScope resolves the tenant a request acts on, from the :tenant_id
// path parameter or the tenant_id query parameter, and rejects requests
// without one.
func (m *ScopeMiddleware) TenantScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.Param("tenant_id")
		if tenantID == "" {
			tenantID = c.Query("tenant_id")
		}
		tenantID = strings.TrimSpace(tenantID)

		if tenantID == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      "tenant_id is required",
				"error_code": "VALIDATION_ERROR",
			})
			c.Abort()
			return
		}

		c.Set(string(utils.TenantIDKey), tenantID)
		c.Request = c.Request.WithContext(utils.WithTenantID(c.Request.Context(), tenantID))
		c.Next()
	}
}
