package insighting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-extractor/internal/domain"
	"github.com/vfg2006/ads-insights-extractor/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// RawColumns são as colunas do dataset bruto quando ao menos uma conta respondeu
var RawColumns = []string{
	domain.ColumnEntityName,
	domain.ColumnEntityID,
	domain.ColumnImpressions,
	domain.ColumnClicks,
	domain.ColumnSpend,
	domain.ColumnActions,
	domain.ColumnActionValues,
	domain.ColumnDateStart,
	domain.ColumnDateStop,
}

type Service struct {
	provider          InsightsProvider
	maxConcurrentJobs int
	now               func() time.Time
}

// NewService cria o serviço de extração. maxConcurrentJobs <= 1 consulta as contas em sequência.
func NewService(provider InsightsProvider, maxConcurrentJobs int) *Service {
	if maxConcurrentJobs < 1 {
		maxConcurrentJobs = 1
	}

	return &Service{
		provider:          provider,
		maxConcurrentJobs: maxConcurrentJobs,
		now:               time.Now,
	}
}

// WithClock substitui o relógio usado para calcular o "hoje"
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ResolveTimeRange calcula o intervalo [hoje - daysBack, hoje], nunca anterior a floor
func ResolveTimeRange(now time.Time, daysBack int, floor time.Time) domain.TimeRange {
	today := truncateToDate(now, now.Location())
	start := today.AddDate(0, 0, -daysBack)

	floorDate := truncateToDate(floor, today.Location())
	if start.Before(floorDate) {
		start = floorDate
	}

	return domain.TimeRange{
		Since: start,
		Until: today,
	}
}

func truncateToDate(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Fields devolve os campos pedidos ao provedor para o nível de agregação
func Fields(level domain.Level) []string {
	return []string{
		string(level) + "_name",
		string(level) + "_id",
		"impressions",
		"clicks",
		"spend",
		"actions",
		"action_values",
	}
}

// Fetch consulta todas as contas e concatena as que responderam. Falhas de uma conta são
// registradas em log e não interrompem as demais.
func (s *Service) Fetch(ctx context.Context, params domain.FetchParams) (*domain.Dataset, []domain.AccountResult) {
	timeRange := ResolveTimeRange(s.now(), params.DaysBack, params.FloorDate)
	if timeRange.Since.After(timeRange.Until) {
		logrus.WithFields(logrus.Fields{
			"since": timeRange.Since.Format(time.DateOnly),
			"until": timeRange.Until.Format(time.DateOnly),
		}).Warn("insights: floor date is after today")
	}

	if len(params.AccountIDs) == 0 {
		logrus.Warn("insights: no accounts to fetch")
		return &domain.Dataset{TimeRange: timeRange}, nil
	}

	request := domain.InsightsRequest{
		TimeRange:     timeRange,
		Level:         params.Level,
		TimeIncrement: params.TimeIncrement,
		Fields:        Fields(params.Level),
	}

	logrus.WithFields(logrus.Fields{
		"accounts":       len(params.AccountIDs),
		"since":          timeRange.Since.Format(time.DateOnly),
		"until":          timeRange.Until.Format(time.DateOnly),
		"level":          params.Level,
		"time_increment": params.TimeIncrement,
	}).Info("insights: fetching accounts")

	results := s.FetchAccounts(ctx, params.AccountIDs, request)

	dataset := Concat(results)
	dataset.TimeRange = timeRange

	return dataset, results
}

// FetchAccounts consulta cada conta e devolve um resultado por conta, na ordem de entrada
func (s *Service) FetchAccounts(ctx context.Context, accountIDs []string, request domain.InsightsRequest) []domain.AccountResult {
	results := make([]domain.AccountResult, len(accountIDs))

	if s.maxConcurrentJobs == 1 {
		for i, accountID := range accountIDs {
			results[i] = s.fetchAccount(ctx, accountID, request)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(s.maxConcurrentJobs)
	for i, accountID := range accountIDs {
		i, accountID := i, accountID
		g.Go(func() error {
			results[i] = s.fetchAccount(ctx, accountID, request)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (s *Service) fetchAccount(ctx context.Context, accountID string, request domain.InsightsRequest) domain.AccountResult {
	rows, err := s.provider.GetInsights(ctx, accountID, request)
	if err != nil {
		metrics.AccountsFetched.WithLabelValues(metrics.StatusFailure).Inc()
		return domain.AccountResult{AccountID: accountID, Err: err}
	}

	metrics.AccountsFetched.WithLabelValues(metrics.StatusSuccess).Inc()
	metrics.RowsFetched.Add(float64(len(rows)))

	return domain.AccountResult{AccountID: accountID, Rows: rows}
}

// Concat junta as linhas das contas bem-sucedidas e registra as falhas.
// Sem nenhuma conta bem-sucedida o dataset volta vazio e sem colunas.
func Concat(results []domain.AccountResult) *domain.Dataset {
	dataset := &domain.Dataset{}
	succeeded := 0

	for _, result := range results {
		if result.Failed() {
			logrus.WithFields(logrus.Fields{
				"account_id": result.AccountID,
				"error":      result.Err.Error(),
			}).Warn("insights: failed to fetch account insights")
			continue
		}

		succeeded++
		dataset.Rows = append(dataset.Rows, result.Rows...)
	}

	if succeeded > 0 {
		dataset.Columns = append([]string(nil), RawColumns...)
	}

	return dataset
}
