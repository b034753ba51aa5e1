package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/posbridge/brink-insights-api/internal/usecases/tokening"
	"github.com/posbridge/brink-insights-api/pkg/apiErrors"
	"github.com/posbridge/brink-insights-api/pkg/log"
)

type issueTokenRequest struct {
	TenantID string `json:"tenant_id"`
}

// IssueTenantToken proxies OAuth token issuance for one tenant.
func IssueTenantToken(service tokening.TokenProxy) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req issueTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("token: malformed request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "request body must be JSON with a tenant_id", nil)
			return
		}

		if req.TenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "tenant_id is required", nil)
			return
		}

		token, err := service.AccessToken(r.Context(), req.TenantID)
		if err != nil {
			if errors.Is(err, tokening.ErrUnknownTenant) {
				logger.WithField("tenant_id", req.TenantID).Warn("token: unknown tenant")
				apiErrors.WriteError(w, apiErrors.ErrUnknownTenant, "tenant is not configured", nil)
				return
			}

			logger.WithError(err).WithField("tenant_id", req.TenantID).Error("token: issuance failed")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "token issuance failed", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(token); err != nil {
			logger.WithError(err).Error("token: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
