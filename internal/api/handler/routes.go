package handler

import (
	"net/http"

	"github.com/posbridge/brink-insights-api/internal/api/handler/router"
	"github.com/posbridge/brink-insights-api/internal/usecases/locating"
	"github.com/posbridge/brink-insights-api/internal/usecases/reporting"
	"github.com/posbridge/brink-insights-api/internal/usecases/tokening"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service reporting.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/hourly",
			Method:  http.MethodGet,
			Handler: GetHourlyDashboard(service),
		},
	}
}

func Tokens(service tokening.TokenProxy) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/token",
			Method:  http.MethodPost,
			Handler: IssueTenantToken(service),
		},
	}
}

func Locations(provider locating.Provider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/locations",
			Method:  http.MethodGet,
			Handler: ListLocations(provider),
		},
	}
}
