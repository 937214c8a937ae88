package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTenantIDFromContext(t *testing.T) {
	tenantID, err := GetTenantIDFromContext(WithTenantID(context.Background(), "tenant_1"))
	assert.NoError(t, err)
	assert.Equal(t, "tenant_1", tenantID)

	_, err = GetTenantIDFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoTenantIDInContext)

	_, err = GetTenantIDFromContext(context.WithValue(context.Background(), TenantIDKey, 7))
	assert.ErrorIs(t, err, ErrInvalidTenantIDType)

	_, err = GetTenantIDFromContext(WithTenantID(context.Background(), ""))
	assert.ErrorIs(t, err, ErrNoTenantIDInContext)
}

func TestGetRequestIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")

	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Equal(t, "", GetRequestIDFromContext(context.Background()))
}
