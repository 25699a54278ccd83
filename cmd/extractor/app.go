package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-insights-extractor/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-insights-extractor/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-insights-extractor/internal/config"
	"github.com/vfg2006/ads-insights-extractor/internal/domain"
	"github.com/vfg2006/ads-insights-extractor/internal/exporter"
	"github.com/vfg2006/ads-insights-extractor/internal/usecases/extracting"
	"github.com/vfg2006/ads-insights-extractor/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-extractor/pkg/log"
)

const (
	flagAccounts = "accounts"
	flagDays     = "days"
	flagBaseDate = "base-date"
	flagLevel    = "level"
	flagFormat   = "format"
	flagOutput   = "output"
)

// loadConfig lê a configuração, aplica as flags, valida e busca as credenciais do Meta
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log.Configure(cfg.App.LogLevel)

	if err := applyFlags(cmd, &cfg.Extraction); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var storage config.SecretStorage
	if cfg.Render.ServiceID != "" {
		storage = config.NewRenderClient(cfg)
	}
	if err := config.LoadCredentials(cfg, storage); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyFlags sobrescreve a configuração com as flags informadas na linha de comando
func applyFlags(cmd *cobra.Command, extraction *config.Extraction) error {
	flags := cmd.Flags()

	if flags.Changed(flagAccounts) {
		accounts, err := flags.GetStringSlice(flagAccounts)
		if err != nil {
			return err
		}
		extraction.AccountIDs = trimAll(accounts)
	}
	if flags.Changed(flagDays) {
		days, err := flags.GetInt(flagDays)
		if err != nil {
			return err
		}
		extraction.LastDays = days
	}

	for name, target := range map[string]*string{
		flagBaseDate: &extraction.BaseDate,
		flagLevel:    &extraction.Level,
		flagFormat:   &extraction.OutputFormat,
		flagOutput:   &extraction.OutputPath,
	} {
		if !flags.Changed(name) {
			continue
		}
		value, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*target = value
	}

	return nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// buildExtraction monta a cadeia MetaClient -> MetaIntegrator -> insighting -> extracting
func buildExtraction(cfg *config.Config) (*extracting.Service, extracting.Request, error) {
	floor, err := cfg.Extraction.FloorDate()
	if err != nil {
		return nil, extracting.Request{}, err
	}

	exp, err := exporter.New(cfg.Extraction.OutputFormat)
	if err != nil {
		return nil, extracting.Request{}, err
	}

	metaIntegrator := meta.New(metaclient.NewClient(cfg))
	fetcher := insighting.NewService(metaIntegrator, cfg.Extraction.MaxConcurrentJobs)

	request := extracting.Request{
		Params: domain.FetchParams{
			AccountIDs:    cfg.Extraction.AccountIDs,
			DaysBack:      cfg.Extraction.LastDays,
			FloorDate:     floor,
			Level:         domain.Level(cfg.Extraction.Level),
			TimeIncrement: cfg.Extraction.TimeIncrement,
		},
		OutputPath: cfg.Extraction.OutputPath,
	}

	return extracting.NewService(fetcher, exp), request, nil
}
