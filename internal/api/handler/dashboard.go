package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/posbridge/brink-insights-api/internal/usecases/reporting"
	"github.com/posbridge/brink-insights-api/pkg/apiErrors"
	"github.com/posbridge/brink-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetHourlyDashboard serves the hourly sales/labor report for one location.
// The POS access token is read from the AccessToken header, with an
// access_token query parameter accepted as a fallback.
func GetHourlyDashboard(service reporting.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accessToken := r.Header.Get("AccessToken")
		if accessToken == "" {
			accessToken = r.URL.Query().Get("access_token")
		}

		params := reporting.DashboardParams{
			LocationToken: r.URL.Query().Get("location_token"),
			AccessToken:   accessToken,
			BusinessDate:  r.URL.Query().Get("business_date"),
		}

		report, err := service.HourlyDashboard(r.Context(), params)
		if err != nil {
			switch {
			case errors.Is(err, reporting.ErrMissingParameter):
				logger.Warn("dashboard: missing required parameter")
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "location_token and access token are required", nil)
			case errors.Is(err, reporting.ErrUnknownLocation):
				logger.WithField("location_token_len", len(params.LocationToken)).Warn("dashboard: unknown location token")
				apiErrors.WriteError(w, apiErrors.ErrUnknownLocation, "location token does not match a known location", nil)
			case errors.Is(err, reporting.ErrInvalidBusinessDate):
				logger.WithField("business_date", params.BusinessDate).Warn("dashboard: invalid business date")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "business_date must be YYYY-MM-DD", nil)
			default:
				logger.WithError(err).Error("dashboard: failed to generate report")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to generate report", nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"location_id":   report.LocationID,
			"business_date": report.BusinessDate,
			"degraded":      report.Degraded,
		}).Info("dashboard: report generated")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
