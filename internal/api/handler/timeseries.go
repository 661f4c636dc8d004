package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/orderlines-analysis-api/internal/usecases/analyzing"
	"github.com/vfg2006/orderlines-analysis-api/pkg/apiErrors"
	"github.com/vfg2006/orderlines-analysis-api/pkg/log"
)

// GetTimeseries monta as séries temporais diárias da métrica selecionada,
// com os marcadores de limite dos dois períodos
func GetTimeseries(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, err := parseAnalysisFilters(r)
		if err != nil {
			logger.WithError(err).WithField("dataset_id", id).Warn("timeseries: parâmetros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		timeseries, err := service.Timeseries(id, filters)
		if err != nil {
			writeAnalysisError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"dataset_id": id,
			"metric":     string(filters.Metric),
			"charts":     len(timeseries.Charts),
		}).Info("timeseries: séries temporais calculadas com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(timeseries); err != nil {
			logger.WithError(err).Error("timeseries: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}
