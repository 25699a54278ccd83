package metaclient

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-insights-extractor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-extractor/internal/config"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	GetInsights(ctx context.Context, accountID string, params metadomain.InsightsParams) ([]metadomain.InsightRecord, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(cfg *config.Config) Client {
	limit := rate.Inf
	if cfg.Meta.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.Meta.RequestsPerSecond)
	}

	return &MetaClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: cfg.Meta.RequestTimeout,
		},
		limiter: rate.NewLimiter(limit, 1),
	}
}

// AppSecretProof calcula o appsecret_proof exigido quando o app tem a opção habilitada
func AppSecretProof(accessToken, appSecret string) string {
	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write([]byte(accessToken))
	return hex.EncodeToString(mac.Sum(nil))
}

// AccountNode devolve o id do nó da conta de anúncios no formato act_<id>
func AccountNode(accountID string) string {
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}

func (c *MetaClient) get(ctx context.Context, requestURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return c.HandleResponse(resp)
}

// HandleResponse lê o corpo da resposta e converte erros da API em *metadomain.APIError
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error.Message == "" {
		return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
	}

	if errorResp.IsTokenExpired() {
		logrus.WithFields(logrus.Fields{
			"code":     errorResp.Error.Code,
			"subcode":  errorResp.Error.ErrorSubcode,
			"trace_id": errorResp.Error.FBTraceID,
		}).Warn("Token expirado detectado pela API Meta")
	}

	return nil, &metadomain.APIError{
		StatusCode: resp.StatusCode,
		Details:    errorResp.Error,
	}
}
