package insighting

import (
	"context"

	"github.com/vfg2006/ads-insights-extractor/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// InsightsProvider consulta os insights de uma conta de anúncios.
// Paginação, rate limit e retry são responsabilidade do provedor.
type InsightsProvider interface {
	GetInsights(ctx context.Context, accountID string, request domain.InsightsRequest) ([]domain.InsightsRow, error)
}

// Fetcher obtém o dataset bruto de várias contas
type Fetcher interface {
	Fetch(ctx context.Context, params domain.FetchParams) (*domain.Dataset, []domain.AccountResult)
}
