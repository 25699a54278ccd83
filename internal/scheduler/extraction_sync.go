package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-extractor/internal/domain"
	"github.com/vfg2006/ads-insights-extractor/internal/usecases/extracting"
)

// ExtractionSyncConfig representa a configuração do agendador da extração
type ExtractionSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ExtractionSyncService agenda e executa a extração periódica dos insights
type ExtractionSyncService struct {
	scheduler *gocron.Scheduler
	config    ExtractionSyncConfig
	runner    extracting.Runner
	request   extracting.Request

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *domain.RunSummary
	lastError           error
}

// NewExtractionSyncService cria o agendador. request é usado em todas as execuções.
func NewExtractionSyncService(runner extracting.Runner, request extracting.Request, config ExtractionSyncConfig) *ExtractionSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": config.CronSchedule,
		"sync_enabled":  config.SyncEnabled,
		"accounts":      len(request.Params.AccountIDs),
		"days_back":     request.Params.DaysBack,
	}).Info("Configuração do agendador da extração carregada")

	return &ExtractionSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    config,
		runner:    runner,
		request:   request,
	}
}

// Start inicia o agendador e o encerra quando ctx for cancelado
func (s *ExtractionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Extração agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da extração")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runExtraction(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar extração: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da extração")
		s.scheduler.Stop()
	}()

	return nil
}

// runExtraction executa uma extração, ignorando o disparo se outra ainda estiver em andamento
func (s *ExtractionSyncService) runExtraction(ctx context.Context) {
	if !s.tryAcquire() {
		logrus.Info("Extração já em andamento, ignorando")
		return
	}
	defer s.release()

	s.run(ctx)
}

// run executa a extração; o chamador já detém syncRunning
func (s *ExtractionSyncService) run(ctx context.Context) {
	summary, err := s.runner.Run(ctx, s.request)

	s.syncMutex.Lock()
	s.lastSummary = summary
	s.lastError = err
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro na extração agendada")
		return
	}

	logrus.WithFields(logrus.Fields{
		"run_id":          summary.RunID,
		"rows":            summary.Rows,
		"failed_accounts": len(summary.FailedAccounts),
		"duration":        summary.FinishedAt.Sub(summary.StartedAt).String(),
	}).Info("Extração concluída")
}

func (s *ExtractionSyncService) tryAcquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *ExtractionSyncService) release() {
	s.syncMutex.Lock()
	s.syncRunning = false
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia uma extração fora do agendamento. Retorna false se já houver uma em andamento.
func (s *ExtractionSyncService) TriggerManualSync(ctx context.Context) bool {
	if !s.tryAcquire() {
		logrus.Info("Extração já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando extração manual")
	go func() {
		defer s.release()
		s.run(context.WithoutCancel(ctx))
	}()
	return true
}

// IsRunning informa se há uma extração em andamento
func (s *ExtractionSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *ExtractionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"accounts":               len(s.request.Params.AccountIDs),
		"days_back":              s.request.Params.DaysBack,
		"level":                  s.request.Params.Level,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run":               s.lastSummary,
		"last_error":             nil,
	}
	if s.lastError != nil {
		status["last_error"] = s.lastError.Error()
	}

	return status
}
