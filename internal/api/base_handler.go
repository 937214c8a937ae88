package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/usage-billing-api/internal/api/dto"
	"github.com/kingrain94/usage-billing-api/internal/service"
	"github.com/kingrain94/usage-billing-api/internal/utils"
)

const (
	CodeNotFound             = "NOT_FOUND"
	CodeValidation           = "VALIDATION_ERROR"
	CodeDuplicateTenantName  = "DUPLICATE_TENANT_NAME"
	CodeDuplicateTenantAlias = "DUPLICATE_TENANT_ALIAS"
	CodeDuplicateTenant      = "DUPLICATE_TENANT"
	CodeDuplicateTenantDoc   = "DUPLICATE_TENANT_DOC"
	CodeBillingSettingsExist = "BILLING_SETTINGS_EXIST"
	CodeStorage              = "STORAGE_ERROR"
	CodeTimeout              = "TIMEOUT"
	CodeInternal             = "INTERNAL_ERROR"
)

var notFoundErrors = []error{
	service.ErrTenantNotFound,
	service.ErrUsageNotFound,
	service.ErrEventNotFound,
	service.ErrTenantDocNotFound,
	service.ErrBillingHistoryNotFound,
	service.ErrBillingSettingsNotFound,
}

var conflictCodes = map[error]string{
	service.ErrDuplicateTenantName:  CodeDuplicateTenantName,
	service.ErrDuplicateTenantAlias: CodeDuplicateTenantAlias,
	service.ErrDuplicateTenant:      CodeDuplicateTenant,
	service.ErrDuplicateTenantDoc:   CodeDuplicateTenantDoc,
	service.ErrBillingSettingsExist: CodeBillingSettingsExist,
}

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// TenantID returns the tenant resolved by the scope middleware.
func (h *BaseHandler) TenantID(c *gin.Context) string {
	return c.GetString(string(utils.TenantIDKey))
}

// BadRequest writes a 400 validation response.
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.Error{Error: message, ErrorCode: CodeValidation})
}

// RespondError maps a service error to its HTTP status and error code.
// Storage and internal failures are reported with a generic message.
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	status, body := errorResponse(err)
	c.JSON(status, body)
}

func errorResponse(err error) (int, dto.Error) {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound, dto.Error{Error: target.Error(), ErrorCode: CodeNotFound}
		}
	}
	for target, code := range conflictCodes {
		if errors.Is(err, target) {
			return http.StatusBadRequest, dto.Error{Error: target.Error(), ErrorCode: code}
		}
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, dto.Error{Error: validationErr.Error(), ErrorCode: CodeValidation}
	}
	if errors.Is(err, service.ErrTimeout) {
		return http.StatusGatewayTimeout, dto.Error{Error: service.ErrTimeout.Error(), ErrorCode: CodeTimeout}
	}
	var storageErr *service.StorageError
	if errors.As(err, &storageErr) {
		return http.StatusInternalServerError, dto.Error{Error: "storage backend unavailable", ErrorCode: CodeStorage}
	}
	return http.StatusInternalServerError, dto.Error{Error: "internal server error", ErrorCode: CodeInternal}
}

// queryInt reads an integer query parameter, falling back to def when absent.
func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &service.ValidationError{Field: key, Reason: "must be an integer"}
	}
	return v, nil
}

// requiredQueryInt reads an integer query parameter that must be present.
func requiredQueryInt(c *gin.Context, key string) (int, error) {
	if c.Query(key) == "" {
		return 0, &service.ValidationError{Field: key, Reason: "is required"}
	}
	return queryInt(c, key, 0)
}

func paramUint(c *gin.Context, key string) (uint64, error) {
	v, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil {
		return 0, &service.ValidationError{Field: key, Reason: "must be a positive integer"}
	}
	return v, nil
}
