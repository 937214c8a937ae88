package utils

import (
	"context"
	"errors"
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	TenantIDKey  ContextKey = "tenant_id"
)

var (
	ErrNoTenantIDInContext = errors.New("no tenant_id found in context")
	ErrInvalidTenantIDType = errors.New("tenant_id must be a string")
)

func GetTenantIDFromContext(c context.Context) (string, error) {
	value := c.Value(TenantIDKey)
	if value == nil {
		return "", ErrNoTenantIDInContext
	}

	tenantID, ok := value.(string)
	if !ok {
		return "", ErrInvalidTenantIDType
	}
	if tenantID == "" {
		return "", ErrNoTenantIDInContext
	}

	return tenantID, nil
}

func WithTenantID(c context.Context, tenantID string) context.Context {
	return context.WithValue(c, TenantIDKey, tenantID)
}

func GetRequestIDFromContext(c context.Context) string {
	requestID, _ := c.Value(RequestIDKey).(string)
	return requestID
}
