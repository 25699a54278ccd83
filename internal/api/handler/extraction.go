package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-insights-extractor/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-extractor/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=extraction.go -destination=mocks/mock_extraction.go -package=mocks

// ExtractionScheduler é o agendador controlado pela API
type ExtractionScheduler interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// RunExtraction dispara uma extração fora do agendamento
func RunExtraction(scheduler ExtractionScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if scheduler == nil {
			apiErrors.WriteError(w, apiErrors.ErrExtractionDisabled, "Agendador da extração não disponível", nil)
			return
		}

		if !scheduler.TriggerManualSync(r.Context()) {
			logger.Warn("Extração manual recusada: já em andamento")
			apiErrors.WriteError(w, apiErrors.ErrExtractionRunning, "Já existe uma extração em andamento", nil)
			return
		}

		logger.Info("Extração manual iniciada")
		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Extração iniciada com sucesso",
		})
	}
}

// GetExtractionStatus retorna o status do agendador e o resumo da última execução
func GetExtractionStatus(scheduler ExtractionScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if scheduler == nil {
			apiErrors.WriteError(w, apiErrors.ErrExtractionDisabled, "Agendador da extração não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, scheduler.GetStatus())
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao escrever resposta")
	}
}

// NotFound responde rotas inexistentes no formato de erro da API
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", nil)
	})
}
