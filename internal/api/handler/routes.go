package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/ads-insights-extractor/internal/api/handler/router"
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

func Extractions(scheduler ExtractionScheduler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/extractions",
			Method:  http.MethodPost,
			Handler: RunExtraction(scheduler),
		},
		{
			Path:    "/v1/extractions/status",
			Method:  http.MethodGet,
			Handler: GetExtractionStatus(scheduler),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}
