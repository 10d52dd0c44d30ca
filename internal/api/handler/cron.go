package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/dropos-api/pkg/apiErrors"
	"github.com/vfg2006/dropos-api/pkg/log"
)

// SummarySyncer é o agendador de fechamento diário visto pelos handlers
type SummarySyncer interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// RunDailySummaryJob dispara o fechamento diário fora do horário do cron
func RunDailySummaryJob(syncer SummarySyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if syncer == nil {
			apiErrors.WriteError(w, apiErrors.ErrSchedulerDisabled, "Agendador de fechamento não disponível", nil)
			return
		}

		if !syncer.TriggerManualSync(r.Context()) {
			apiErrors.WriteError(w, apiErrors.ErrConflict, "Fechamento diário já em andamento", nil)
			return
		}

		log.ForContext(r.Context()).Info("Fechamento diário disparado manualmente")
		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Fechamento diário iniciado",
			"type":    "daily-summary",
		})
	}
}

// GetCronStatus retorna o status dos agendadores
func GetCronStatus(syncer SummarySyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if syncer != nil {
			status["daily-summary"] = syncer.GetStatus()
		}
		writeJSON(w, r, http.StatusOK, status)
	}
}
