package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ads_insights"

// Status usados no label "status"
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

var (
	AccountsFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_fetched_total",
		Help:      "Contas consultadas no provedor de insights, por status.",
	}, []string{"status"})

	RowsFetched = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rows_fetched_total",
		Help:      "Linhas de insights recebidas do provedor.",
	})

	LinkClickParseErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "link_click_parse_errors_total",
		Help:      "Valores de link_click não numéricos tratados como 0.",
	})

	ExtractionRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extraction_runs_total",
		Help:      "Execuções da extração, por status.",
	}, []string{"status"})

	ExtractionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "extraction_duration_seconds",
		Help:      "Duração das execuções da extração.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Requisições HTTP atendidas, por método e status.",
	}, []string{"method", "status_code"})
)
