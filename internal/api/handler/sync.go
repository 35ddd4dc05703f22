package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/yt-analytics-sync/internal/scheduler"
	"github.com/vfg2006/yt-analytics-sync/pkg/apiErrors"
	"github.com/vfg2006/yt-analytics-sync/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RunSyncJob dispara manualmente uma sincronização incremental de métricas
func RunSyncJob(service *scheduler.AnalyticsSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - RunSyncJob")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		// A sincronização continua após a resposta; o contexto da requisição
		// não pode cancelá-la.
		service.TriggerManualSync(context.WithoutCancel(r.Context()))

		response := map[string]any{
			"message": "Sincronização de métricas iniciada com sucesso",
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetSyncStatus retorna o status do agendador de sincronização
func GetSyncStatus(service *scheduler.AnalyticsSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - GetSyncStatus")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.GetStatus())
	}
}
