package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/posbridge/brink-insights-api/internal/domain"
	"github.com/posbridge/brink-insights-api/internal/usecases/reporting"
	"github.com/posbridge/brink-insights-api/internal/usecases/reporting/mocks"
	"github.com/posbridge/brink-insights-api/pkg/apiErrors"
	"github.com/posbridge/brink-insights-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}

func TestGetHourlyDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboardService(ctrl)

	report := &domain.DailyReport{
		Location:     "Downtown",
		LocationID:   "store-001",
		BusinessDate: "2026-08-15",
		TotalSales:   42.50,
	}

	service.EXPECT().
		HourlyDashboard(gomock.Any(), reporting.DashboardParams{
			LocationToken: "loc-token",
			AccessToken:   "access-token",
			BusinessDate:  "2026-08-15",
		}).
		Return(report, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/hourly?location_token=loc-token&business_date=2026-08-15", nil)
	req.Header.Set("AccessToken", "access-token")
	rec := httptest.NewRecorder()

	GetHourlyDashboard(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got domain.DailyReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "store-001", got.LocationID)
	assert.Equal(t, 42.50, got.TotalSales)
}

func TestGetHourlyDashboardAccessTokenQueryFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboardService(ctrl)

	service.EXPECT().
		HourlyDashboard(gomock.Any(), reporting.DashboardParams{
			LocationToken: "loc-token",
			AccessToken:   "query-token",
		}).
		Return(&domain.DailyReport{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/hourly?location_token=loc-token&access_token=query-token", nil)
	rec := httptest.NewRecorder()

	GetHourlyDashboard(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetHourlyDashboardErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing parameter",
			serviceErr: reporting.ErrMissingParameter,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:       "unknown location",
			serviceErr: reporting.ErrUnknownLocation,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrUnknownLocation,
		},
		{
			name:       "invalid business date",
			serviceErr: reporting.ErrInvalidBusinessDate,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "unexpected failure",
			serviceErr: errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockDashboardService(ctrl)

			service.EXPECT().
				HourlyDashboard(gomock.Any(), gomock.Any()).
				Return(nil, tt.serviceErr)

			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/hourly?location_token=loc-token", nil)
			req.Header.Set("AccessToken", "access-token")
			rec := httptest.NewRecorder()

			GetHourlyDashboard(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
		})
	}
}
