package handler

import (
	"net/http"

	"github.com/posbridge/brink-insights-api/internal/usecases/locating"
	"github.com/posbridge/brink-insights-api/pkg/apiErrors"
	"github.com/posbridge/brink-insights-api/pkg/log"
)

// ListLocations serves the cached store metadata. Location tokens are never
// echoed back.
func ListLocations(provider locating.Provider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		locations, err := provider.Locations(r.Context())
		if err != nil {
			logger.WithError(err).Error("locations: failed to list locations")
			apiErrors.WriteError(w, apiErrors.ErrDatabase, "failed to list locations", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(locations); err != nil {
			logger.WithError(err).Error("locations: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
