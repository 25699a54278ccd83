package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-insights-extractor/internal/api"
	"github.com/vfg2006/ads-insights-extractor/internal/scheduler"
)

var (
	version = "0.1.0"
	rootCmd = &cobra.Command{
		Use:   "extractor",
		Short: "Extrai insights de anúncios do Meta e achata as ações em colunas",
		Long: `Busca os insights das contas de anúncios configuradas, do período
[hoje - dias, hoje] limitado pela data base, e exporta o resultado tratado.

Examples:
  extractor run --accounts act_1,act_2 --days 30 --format csv --output insights.csv
  extractor run --level ad --output -
  extractor serve`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Executa uma extração e termina",
		RunE:  runExtraction,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Inicia o agendador e a API HTTP",
		RunE:  serve,
	}
)

func init() {
	runCmd.Flags().StringSlice(flagAccounts, nil, "Contas de anúncios (act_<id>), separadas por vírgula")
	runCmd.Flags().Int(flagDays, 0, "Número de dias para trás a partir de hoje")
	runCmd.Flags().String(flagBaseDate, "", "Data mínima da extração (YYYY-MM-DD)")
	runCmd.Flags().String(flagLevel, "", "Nível de agregação: campaign, adset ou ad")
	runCmd.Flags().String(flagFormat, "", "Formato de saída: csv, json ou xlsx")
	runCmd.Flags().String(flagOutput, "", "Arquivo de saída ('-' para stdout)")

	rootCmd.AddCommand(runCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func runExtraction(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service, request, err := buildExtraction(cfg)
	if err != nil {
		return err
	}

	summary, err := service.Run(ctx, request)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":          summary.RunID,
		"rows":            summary.Rows,
		"failed_accounts": summary.FailedAccounts,
		"output":          summary.OutputPath,
	}).Info("Extração finalizada")

	return nil
}

func serve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	service, request, err := buildExtraction(cfg)
	if err != nil {
		return err
	}

	extractionSync := scheduler.NewExtractionSyncService(service, request, scheduler.ExtractionSyncConfig{
		CronSchedule: cfg.Schedule.CronSchedule,
		SyncEnabled:  cfg.Schedule.Enabled,
	})

	if err := extractionSync.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da extração")
		return err
	}

	return api.New(cfg, extractionSync).Run(ctx)
}
