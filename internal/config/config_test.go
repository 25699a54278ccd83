package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validExtraction() Extraction {
	return Extraction{
		AccountIDs:        []string{"act_1"},
		LastDays:          30,
		BaseDate:          "2024-08-22",
		Level:             "campaign",
		TimeIncrement:     1,
		MaxConcurrentJobs: 1,
		OutputFormat:      "csv",
		OutputPath:        "insights.csv",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *Extraction)
		wantErr bool
	}{
		{name: "Configuração válida", mutate: func(e *Extraction) {}},
		{name: "Sem contas é válido", mutate: func(e *Extraction) { e.AccountIDs = nil }},
		{name: "Dias negativos", mutate: func(e *Extraction) { e.LastDays = -1 }, wantErr: true},
		{name: "Data base inválida", mutate: func(e *Extraction) { e.BaseDate = "22/08/2024" }, wantErr: true},
		{name: "Nível desconhecido", mutate: func(e *Extraction) { e.Level = "account" }, wantErr: true},
		{name: "Formato desconhecido", mutate: func(e *Extraction) { e.OutputFormat = "parquet" }, wantErr: true},
		{name: "Conta vazia na lista", mutate: func(e *Extraction) { e.AccountIDs = []string{"act_1", ""} }, wantErr: true},
		{name: "Concorrência zero", mutate: func(e *Extraction) { e.MaxConcurrentJobs = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Extraction: validExtraction()}
			tt.mutate(&cfg.Extraction)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExtraction_FloorDate(t *testing.T) {
	e := validExtraction()

	floor, err := e.FloorDate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 8, 22, 0, 0, 0, 0, time.Local), floor)

	e.BaseDate = "ontem"
	_, err = e.FloorDate()
	assert.Error(t, err)
}

func TestNormalizeAccountIDs(t *testing.T) {
	assert.Equal(t,
		[]string{"act_1", "act_2"},
		normalizeAccountIDs([]string{" act_1", "", "act_2 ", "  "}),
	)
}

// isolatedViper limpa o viper global e roda o teste num diretório sem .env
func isolatedViper(t *testing.T) {
	t.Helper()

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))

	viper.Reset()
	t.Cleanup(func() {
		viper.Reset()
		_ = os.Chdir(cwd)
	})

	// vazio conta como ausente para o viper
	for _, key := range []string{
		"EXTRACT_ACCOUNT_IDS", "EXTRACT_LAST_DAYS", "EXTRACT_BASE_DATE", "EXTRACT_LEVEL",
		"EXTRACT_OUTPUT_FORMAT", "EXTRACT_OUTPUT_PATH", "META_BASE_URL", "META_VERSION",
		"META_REQUEST_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestNewConfig(t *testing.T) {
	t.Run("Valores padrão", func(t *testing.T) {
		isolatedViper(t)

		cfg, err := NewConfig()
		require.NoError(t, err)

		assert.Empty(t, cfg.Extraction.AccountIDs)
		assert.Equal(t, 30, cfg.Extraction.LastDays)
		assert.Equal(t, "2024-08-22", cfg.Extraction.BaseDate)
		assert.Equal(t, "campaign", cfg.Extraction.Level)
		assert.Equal(t, "csv", cfg.Extraction.OutputFormat)
		assert.Equal(t, "insights.csv", cfg.Extraction.OutputPath)
		assert.Equal(t, "https://graph.facebook.com/v22.0", cfg.Meta.URL)
		assert.Equal(t, 60*time.Second, cfg.Meta.RequestTimeout)
	})

	t.Run("Variáveis de ambiente sobrescrevem os padrões", func(t *testing.T) {
		isolatedViper(t)
		t.Setenv("EXTRACT_ACCOUNT_IDS", "act_1, act_2,,")
		t.Setenv("EXTRACT_LAST_DAYS", "7")
		t.Setenv("EXTRACT_LEVEL", "adset")
		t.Setenv("META_VERSION", "v21.0")
		t.Setenv("META_REQUEST_TIMEOUT", "15s")

		cfg, err := NewConfig()
		require.NoError(t, err)

		assert.Equal(t, []string{"act_1", "act_2"}, cfg.Extraction.AccountIDs)
		assert.Equal(t, 7, cfg.Extraction.LastDays)
		assert.Equal(t, "adset", cfg.Extraction.Level)
		assert.Equal(t, "2024-08-22", cfg.Extraction.BaseDate)
		assert.Equal(t, "https://graph.facebook.com/v21.0", cfg.Meta.URL)
		assert.Equal(t, 15*time.Second, cfg.Meta.RequestTimeout)
		require.NoError(t, cfg.Validate())
	})
}
