package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/usage-billing-api/pkg/logger"
)

// Query parameters carrying free text are exempt from pattern blocking.
var freeTextParams = map[string]bool{
	"q": true,
}

type ValidationMiddleware struct {
	logger *logger.Logger
}

func NewValidationMiddleware(logger *logger.Logger) *ValidationMiddleware {
	return &ValidationMiddleware{
		logger: logger,
	}
}

// SanitizeInput strips control characters from query parameters and headers.
func (m *ValidationMiddleware) SanitizeInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Request.URL.Query()
		changed := false
		for key, values := range query {
			for i, value := range values {
				sanitized := sanitizeString(value)
				if sanitized != value {
					m.logger.Info("Sanitized query parameter", zap.String("key", key))
					query[key][i] = sanitized
					changed = true
				}
			}
		}
		if changed {
			c.Request.URL.RawQuery = query.Encode()
		}

		for key, values := range c.Request.Header {
			for i, value := range values {
				if sanitized := sanitizeString(value); sanitized != value {
					m.logger.Info("Sanitized header", zap.String("key", key))
					c.Request.Header[key][i] = sanitized
				}
			}
		}

		c.Next()
	}
}

// ValidateContentType ensures only allowed content types on requests that
// carry a body.
func (m *ValidationMiddleware) ValidateContentType(allowedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodDelete || c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		contentType := c.GetHeader("Content-Type")
		if contentType == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Content-Type header is required", "error_code": "VALIDATION_ERROR"})
			c.Abort()
			return
		}

		// Drop parameters such as charset or multipart boundary
		contentType = strings.TrimSpace(strings.Split(contentType, ";")[0])

		for _, allowedType := range allowedTypes {
			if strings.EqualFold(contentType, allowedType) {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusUnsupportedMediaType, gin.H{
			"error":         "Unsupported Content-Type",
			"allowed_types": allowedTypes,
		})
		c.Abort()
	}
}

// ValidateRequestSize limits request body size.
func (m *ValidationMiddleware) ValidateRequestSize(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":         "Request body too large",
				"max_size":      maxSize,
				"received_size": c.Request.ContentLength,
			})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

// BlockSuspiciousPatterns rejects paths, identifiers and headers that look
// like injection or traversal attempts.
func (m *ValidationMiddleware) BlockSuspiciousPatterns() gin.HandlerFunc {
	patterns := compilePatterns(
		// SQL injection
		`(?i)(\bUNION\b.*\bSELECT\b)`,
		`(?i)(\bOR\b.*=.*\bOR\b)`,
		`(?i)(\bINSERT\b.*\bINTO\b)`,
		`(?i)(\bDROP\b.*\bTABLE\b)`,
		`/\*.*\*/`,
		// XSS
		`(?i)<script.*?>`,
		`(?i)javascript:`,
		`(?i)on(load|click|error)=`,
		`(?i)<(iframe|object|embed).*?>`,
		// Path traversal
		`\.\./`,
		`\.\.\\`,
		`(?i)%2e%2e(%2f|%5c)`,
	)

	reject := func(c *gin.Context, fields ...zap.Field) {
		m.logger.Warn("Blocked suspicious request", append(fields, zap.String("ip", c.ClientIP()))...)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "error_code": "VALIDATION_ERROR"})
		c.Abort()
	}

	return func(c *gin.Context) {
		if matchesAny(c.Request.URL.Path, patterns) {
			reject(c, zap.String("path", c.Request.URL.Path))
			return
		}

		for key, values := range c.Request.URL.Query() {
			if freeTextParams[key] {
				continue
			}
			for _, value := range values {
				if matchesAny(value, patterns) {
					reject(c, zap.String("query_key", key))
					return
				}
			}
		}

		for key, values := range c.Request.Header {
			for _, value := range values {
				if matchesAny(value, patterns) {
					reject(c, zap.String("header", key))
					return
				}
			}
		}

		c.Next()
	}
}

func compilePatterns(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, pattern := range patterns {
		compiled[i] = regexp.MustCompile(pattern)
	}
	return compiled
}

// sanitizeString removes control characters except newline, carriage
// return and tab.
func sanitizeString(input string) string {
	return strings.Map(func(r rune) rune {
		if r >= 32 || r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		return -1
	}, input)
}

func matchesAny(input string, patterns []*regexp.Regexp) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(input) {
			return true
		}
	}
	return false
}
