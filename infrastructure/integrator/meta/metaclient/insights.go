package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-insights-extractor/infrastructure/integrator/meta/domain"
)

// GetInsights consulta /{act_id}/insights e percorre todas as páginas
func (c *MetaClient) GetInsights(ctx context.Context, accountID string, params metadomain.InsightsParams) ([]metadomain.InsightRecord, error) {
	timeRange, err := json.Marshal(map[string]string{
		"since": params.Since,
		"until": params.Until,
	})
	if err != nil {
		return nil, err
	}

	values := url.Values{}
	values.Add("time_range", string(timeRange))
	values.Add("level", params.Level)
	values.Add("time_increment", strconv.Itoa(params.TimeIncrement))
	values.Add("fields", strings.Join(params.Fields, ","))
	if c.Cfg.Meta.PageLimit > 0 {
		values.Add("limit", strconv.Itoa(c.Cfg.Meta.PageLimit))
	}
	values.Add("access_token", c.Cfg.Meta.AccessToken)
	if c.Cfg.Meta.AppSecret != "" {
		values.Add("appsecret_proof", AppSecretProof(c.Cfg.Meta.AccessToken, c.Cfg.Meta.AppSecret))
	}

	next := fmt.Sprintf("%s/%s/insights?%s", c.Cfg.Meta.URL, AccountNode(accountID), values.Encode())

	records := make([]metadomain.InsightRecord, 0)
	pages := 0
	for next != "" {
		body, err := c.get(ctx, next)
		if err != nil {
			return nil, err
		}

		var response metadomain.InsightsResponse
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, fmt.Errorf("erro ao decodificar JSON: %w", err)
		}

		records = append(records, response.Data...)
		pages++

		next = ""
		if response.Paging != nil {
			next = response.Paging.Next
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"pages":      pages,
		"records":    len(records),
	}).Debug("insights: pages fetched from graph api")

	return records, nil
}
