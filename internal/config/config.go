package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	Render     Render     `mapstructure:",squash"`
	Secrets    Secrets    `mapstructure:",squash"`
	Extraction Extraction `mapstructure:",squash"`
	Schedule   Schedule   `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Meta struct {
	BaseURL           string        `mapstructure:"meta_base_url"`
	URL               string        `mapstructure:"meta_url"`
	Version           string        `mapstructure:"meta_version"`
	AppID             string        `mapstructure:"facebook_app_id"`
	AppSecret         string        `mapstructure:"facebook_app_secret"`
	AccessToken       string        `mapstructure:"facebook_access_token"`
	PageLimit         int           `mapstructure:"meta_page_limit"`
	RequestsPerSecond float64       `mapstructure:"meta_requests_per_second"`
	RequestTimeout    time.Duration `mapstructure:"meta_request_timeout"`
}

type Render struct {
	APIURL    string `mapstructure:"render_api_url"`
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

// Secrets aponta o arquivo de credenciais guardado no armazenamento remoto
type Secrets struct {
	CredentialsFile string `mapstructure:"secrets_credentials_file"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Extraction struct {
	AccountIDs        []string `mapstructure:"extract_account_ids" validate:"dive,required"`
	LastDays          int      `mapstructure:"extract_last_days" validate:"min=0"`
	BaseDate          string   `mapstructure:"extract_base_date" validate:"required,datetime=2006-01-02"`
	Level             string   `mapstructure:"extract_level" validate:"required,oneof=campaign adset ad"`
	TimeIncrement     int      `mapstructure:"extract_time_increment" validate:"min=1"`
	MaxConcurrentJobs int      `mapstructure:"extract_max_concurrent_jobs" validate:"min=1"`
	OutputFormat      string   `mapstructure:"extract_output_format" validate:"required,oneof=csv json xlsx"`
	OutputPath        string   `mapstructure:"extract_output_path" validate:"required"`
}

// FloorDate devolve a data mínima configurada
func (e Extraction) FloorDate() (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, e.BaseDate, time.Local)
}

type Schedule struct {
	CronSchedule string `mapstructure:"extract_cron"`
	Enabled      bool   `mapstructure:"extract_schedule_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("FACEBOOK_APP_ID", "")
	viper.SetDefault("FACEBOOK_APP_SECRET", "")
	viper.SetDefault("FACEBOOK_ACCESS_TOKEN", "")
	viper.SetDefault("META_PAGE_LIMIT", 500)
	viper.SetDefault("META_REQUESTS_PER_SECOND", 2)
	viper.SetDefault("META_REQUEST_TIMEOUT", "60s")

	viper.SetDefault("RENDER_API_URL", "https://api.render.com/v1")
	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")
	viper.SetDefault("SECRETS_CREDENTIALS_FILE", "facebook.env")

	// Defaults da extração
	viper.SetDefault("EXTRACT_ACCOUNT_IDS", "")
	viper.SetDefault("EXTRACT_LAST_DAYS", 30)            // número de dias para captação
	viper.SetDefault("EXTRACT_BASE_DATE", "2024-08-22")  // data mínima
	viper.SetDefault("EXTRACT_LEVEL", "campaign")        // campaign, adset ou ad
	viper.SetDefault("EXTRACT_TIME_INCREMENT", 1)        // quebra por dia
	viper.SetDefault("EXTRACT_MAX_CONCURRENT_JOBS", 1)   // 1 = contas em sequência
	viper.SetDefault("EXTRACT_OUTPUT_FORMAT", "csv")
	viper.SetDefault("EXTRACT_OUTPUT_PATH", "insights.csv")

	viper.SetDefault("EXTRACT_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("EXTRACT_SCHEDULE_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)
	config.Extraction.AccountIDs = normalizeAccountIDs(config.Extraction.AccountIDs)

	return config, nil
}

// Validate valida as configurações da extração
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c.Extraction); err != nil {
		return fmt.Errorf("config: invalid extraction settings: %w", err)
	}
	return nil
}

func normalizeAccountIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		out = append(out, id)
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
