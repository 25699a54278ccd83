package config

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrSecretNotFound      = errors.New("config: secret file not found")
	ErrMissingCredentials  = errors.New("config: missing meta credentials")
	ErrSecretStoreDisabled = errors.New("config: secret store not configured")
)

// Chaves esperadas dentro do arquivo de credenciais
const (
	KeyAppID       = "FACEBOOK_APP_ID"
	KeyAppSecret   = "FACEBOOK_APP_SECRET"
	KeyAccessToken = "FACEBOOK_ACCESS_TOKEN"
)

//go:generate mockgen -source=render_client.go -destination=mocks/mock_secret_storage.go -package=mocks
type SecretStorage interface {
	ListSecrets(serviceID string) (map[string]string, error)
}

type RenderClient struct {
	APIURL     string
	APIKey     string
	HTTPClient *http.Client
}

func NewRenderClient(config *Config) *RenderClient {
	return &RenderClient{
		APIURL: strings.TrimRight(config.Render.APIURL, "/"),
		APIKey: config.Render.APIKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *RenderClient) ListSecrets(serviceID string) (map[string]string, error) {
	url := fmt.Sprintf("%s/services/%s/secret-files?limit=100", c.APIURL, serviceID)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("config: error list secrets: status %d: %s", resp.StatusCode, body)
	}

	var response []struct {
		SecretFile struct {
			Content string `json:"content"`
			Name    string `json:"name"`
		} `json:"secretFile"`
		Cursor string `json:"cursor"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	secretsMap := make(map[string]string)
	for _, sf := range response {
		secretsMap[sf.SecretFile.Name] = sf.SecretFile.Content
	}

	return secretsMap, nil
}

// LoadCredentials lê o arquivo de credenciais do armazenamento remoto e preenche as credenciais
// do Meta que ainda não vieram do ambiente.
func LoadCredentials(cfg *Config, storage SecretStorage) error {
	if storage == nil || cfg.Render.ServiceID == "" {
		if missing := missingCredentials(cfg); len(missing) > 0 {
			return fmt.Errorf("%w: %s (%v)", ErrMissingCredentials, strings.Join(missing, ", "), ErrSecretStoreDisabled)
		}
		return nil
	}

	secrets, err := storage.ListSecrets(cfg.Render.ServiceID)
	if err != nil {
		return fmt.Errorf("config: error reading secret store: %w", err)
	}

	content, ok := secrets[cfg.Secrets.CredentialsFile]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSecretNotFound, cfg.Secrets.CredentialsFile)
	}

	values, err := godotenv.Unmarshal(content)
	if err != nil {
		return fmt.Errorf("config: error parsing secret file %s: %w", cfg.Secrets.CredentialsFile, err)
	}

	if cfg.Meta.AppID == "" {
		cfg.Meta.AppID = values[KeyAppID]
	}
	if cfg.Meta.AppSecret == "" {
		cfg.Meta.AppSecret = values[KeyAppSecret]
	}
	if cfg.Meta.AccessToken == "" {
		cfg.Meta.AccessToken = values[KeyAccessToken]
	}

	if missing := missingCredentials(cfg); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}

	logrus.WithFields(logrus.Fields{
		"service_id": cfg.Render.ServiceID,
		"file":       cfg.Secrets.CredentialsFile,
	}).Info("Credenciais do Meta carregadas do armazenamento de secrets")

	return nil
}

func missingCredentials(cfg *Config) []string {
	missing := make([]string, 0, 3)
	if cfg.Meta.AppID == "" {
		missing = append(missing, KeyAppID)
	}
	if cfg.Meta.AppSecret == "" {
		missing = append(missing, KeyAppSecret)
	}
	if cfg.Meta.AccessToken == "" {
		missing = append(missing, KeyAccessToken)
	}
	return missing
}
