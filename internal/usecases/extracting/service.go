package extracting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-extractor/internal/domain"
	"github.com/vfg2006/ads-insights-extractor/internal/exporter"
	"github.com/vfg2006/ads-insights-extractor/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-extractor/pkg/metrics"
	"github.com/vfg2006/ads-insights-extractor/pkg/utils"
)

// Request descreve uma execução: quais contas, qual período e para onde exportar
type Request struct {
	Params     domain.FetchParams
	OutputPath string
}

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
type Runner interface {
	Run(ctx context.Context, request Request) (*domain.RunSummary, error)
}

type Service struct {
	fetcher  insighting.Fetcher
	exporter exporter.Exporter
	now      func() time.Time
	newID    func() (string, error)
}

func NewService(fetcher insighting.Fetcher, exp exporter.Exporter) *Service {
	return &Service{
		fetcher:  fetcher,
		exporter: exp,
		now:      time.Now,
		newID:    utils.GenerateRunID,
	}
}

// WithClock substitui o relógio usado no período e nos horários do resumo
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Run busca os insights de todas as contas, achata as ações e exporta o resultado.
// Falhas de contas individuais ficam apenas no resumo; erros de schema e de exportação são devolvidos.
func (s *Service) Run(ctx context.Context, request Request) (summary *domain.RunSummary, err error) {
	runID, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("extracting: error generating run id: %w", err)
	}

	startedAt := s.now()
	summary = &domain.RunSummary{
		RunID:          runID,
		Level:          request.Params.Level,
		Accounts:       len(request.Params.AccountIDs),
		FailedAccounts: []string{},
		StartedAt:      startedAt,
	}

	logger := logrus.WithField("run_id", runID)

	defer func() {
		summary.FinishedAt = s.now()
		metrics.ExtractionDuration.Observe(summary.FinishedAt.Sub(startedAt).Seconds())

		status := metrics.StatusSuccess
		if err != nil {
			status = metrics.StatusFailure
		}
		metrics.ExtractionRuns.WithLabelValues(status).Inc()
	}()

	logger.WithFields(logrus.Fields{
		"accounts": summary.Accounts,
		"level":    summary.Level,
	}).Info("extracting: run started")

	dataset, results := s.fetcher.Fetch(ctx, request.Params)
	summary.TimeRange = dataset.TimeRange
	for _, result := range results {
		if result.Failed() {
			summary.FailedAccounts = append(summary.FailedAccounts, result.AccountID)
		}
	}

	if len(summary.FailedAccounts) > 0 {
		logger.WithFields(logrus.Fields{
			"failed_accounts": summary.FailedAccounts,
			"succeeded":       len(results) - len(summary.FailedAccounts),
		}).Warn("extracting: partial result")
	}

	if dataset.Len() == 0 && len(dataset.Columns) == 0 {
		if request.OutputPath != "" {
			logger.WithField("output_path", request.OutputPath).
				Warn("extracting: no insights returned, output left untouched")
			return summary, nil
		}
		logger.Info("extracting: no insights returned, nothing to export")
		return summary, nil
	}

	cleaned, err := insighting.Flatten(dataset)
	if err != nil {
		logger.WithError(err).Error("extracting: error flattening dataset")
		return summary, err
	}
	summary.Rows = cleaned.Len()

	if err = s.exporter.Export(cleaned, request.OutputPath); err != nil {
		logger.WithError(err).Error("extracting: error exporting dataset")
		return summary, err
	}
	summary.OutputPath = request.OutputPath

	logger.WithFields(logrus.Fields{
		"rows":   summary.Rows,
		"output": summary.OutputPath,
		"since":  summary.TimeRange.Since.Format(time.DateOnly),
		"until":  summary.TimeRange.Until.Format(time.DateOnly),
	}).Info("extracting: run finished")

	return summary, nil
}
