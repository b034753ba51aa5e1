package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/posbridge/brink-insights-api/internal/domain"
	"github.com/posbridge/brink-insights-api/internal/usecases/tokening"
	"github.com/posbridge/brink-insights-api/internal/usecases/tokening/mocks"
	"github.com/posbridge/brink-insights-api/pkg/apiErrors"
)

func TestIssueTenantToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockTokenProxy(ctrl)

	token := &domain.TenantToken{
		TenantID:    "acme",
		AccessToken: "opaque-token",
		TokenType:   "Bearer",
		ExpiresAt:   time.Date(2026, 8, 15, 13, 0, 0, 0, time.UTC),
	}
	service.EXPECT().AccessToken(gomock.Any(), "acme").Return(token, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/token", strings.NewReader(`{"tenant_id":"acme"}`))
	rec := httptest.NewRecorder()

	IssueTenantToken(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got domain.TenantToken
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "opaque-token", got.AccessToken)
	assert.Equal(t, "Bearer", got.TokenType)
}

func TestIssueTenantTokenMalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockTokenProxy(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/v1/token", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	IssueTenantToken(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
}

func TestIssueTenantTokenMissingTenantID(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockTokenProxy(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/v1/token", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	IssueTenantToken(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
}

func TestIssueTenantTokenUnknownTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockTokenProxy(ctrl)

	service.EXPECT().AccessToken(gomock.Any(), "nope").Return(nil, tokening.ErrUnknownTenant)

	req := httptest.NewRequest(http.MethodPost, "/v1/token", strings.NewReader(`{"tenant_id":"nope"}`))
	rec := httptest.NewRecorder()

	IssueTenantToken(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrUnknownTenant, decodeAPIError(t, rec).Code)
}

func TestIssueTenantTokenUpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockTokenProxy(ctrl)

	service.EXPECT().AccessToken(gomock.Any(), "acme").Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodPost, "/v1/token", strings.NewReader(`{"tenant_id":"acme"}`))
	rec := httptest.NewRecorder()

	IssueTenantToken(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, apiErrors.ErrExternalService, decodeAPIError(t, rec).Code)
}
