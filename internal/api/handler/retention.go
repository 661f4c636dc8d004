package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/orderlines-analysis-api/internal/scheduler"
	"github.com/vfg2006/orderlines-analysis-api/pkg/apiErrors"
)

// RunRetention dispara manualmente a limpeza de datasets expirados
func RunRetention(service *scheduler.RetentionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de retenção não disponível", nil)
			return
		}

		logrus.Info("Limpeza manual de datasets solicitada via API")
		service.TriggerManualRun()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "Limpeza de datasets iniciada",
		})
	}
}

// GetRetentionStatus retorna o status do agendador de retenção
func GetRetentionStatus(service *scheduler.RetentionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de retenção não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.GetStatus())
	}
}
