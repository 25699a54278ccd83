package meta

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-insights-extractor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-extractor/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-insights-extractor/internal/domain"
)

type MetaIntegrator struct {
	Client metaclient.Client
}

func New(client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		Client: client,
	}
}

// GetInsights busca os insights de uma conta e converte para linhas do domínio
func (s *MetaIntegrator) GetInsights(ctx context.Context, accountID string, request domain.InsightsRequest) ([]domain.InsightsRow, error) {
	params := metadomain.InsightsParams{
		Since:         request.TimeRange.Since.Format(time.DateOnly),
		Until:         request.TimeRange.Until.Format(time.DateOnly),
		Level:         string(request.Level),
		TimeIncrement: request.TimeIncrement,
		Fields:        request.Fields,
	}

	records, err := s.Client.GetInsights(ctx, accountID, params)
	if err != nil {
		var apiErr *metadomain.APIError
		if errors.As(err, &apiErr) && apiErr.IsTokenExpired() {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"code":       apiErr.Details.Code,
				"subcode":    apiErr.Details.ErrorSubcode,
			}).Error("insights: meta access token expired, renew FACEBOOK_ACCESS_TOKEN")
		}
		return nil, err
	}

	rows := make([]domain.InsightsRow, 0, len(records))
	for i := range records {
		rows = append(rows, FactoryInsightsRow(accountID, request.Level, &records[i]))
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"rows":       len(rows),
	}).Debug("insights: successfully retrieved account insights")

	return rows, nil
}

// FactoryInsightsRow converte um registro da Graph API em uma linha do domínio
func FactoryInsightsRow(accountID string, level domain.Level, record *metadomain.InsightRecord) domain.InsightsRow {
	entityName, entityID := record.CampaignName, record.CampaignID
	switch level {
	case domain.LevelAdSet:
		entityName, entityID = record.AdSetName, record.AdSetID
	case domain.LevelAd:
		entityName, entityID = record.AdName, record.AdID
	}

	if record.AccountID != "" {
		accountID = record.AccountID
	}

	return domain.InsightsRow{
		AccountID:    accountID,
		EntityName:   entityName,
		EntityID:     entityID,
		Impressions:  parseInt("impressions", record.Impressions),
		Clicks:       parseInt("clicks", record.Clicks),
		Spend:        parseFloat("spend", record.Spend),
		Actions:      factoryActions(record.Actions),
		ActionValues: factoryActionValues(record.ActionValues),
		DateStart:    record.DateStart,
		DateStop:     record.DateStop,
	}
}

func factoryActions(actions []metadomain.Action) []domain.Action {
	if actions == nil {
		return nil
	}

	out := make([]domain.Action, 0, len(actions))
	for _, a := range actions {
		out = append(out, domain.Action{
			ActionType:        a.ActionType,
			ActionTargetID:    a.ActionTargetID,
			ActionDestination: a.ActionDestination,
			Value:             a.Value,
		})
	}
	return out
}

func factoryActionValues(values []metadomain.Action) []domain.ActionValue {
	if values == nil {
		return nil
	}

	out := make([]domain.ActionValue, 0, len(values))
	for _, v := range values {
		out = append(out, domain.ActionValue{
			ActionType: v.ActionType,
			Value:      v.Value,
		})
	}
	return out
}

func parseInt(field, value string) int64 {
	if value == "" {
		return 0
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: error converting value to integer")
		return 0
	}
	return n
}

func parseFloat(field, value string) float64 {
	if value == "" {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: error converting value to float")
		return 0
	}
	return f
}
