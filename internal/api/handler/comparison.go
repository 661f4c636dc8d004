package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/orderlines-analysis-api/internal/usecases/analyzing"
	"github.com/vfg2006/orderlines-analysis-api/pkg/apiErrors"
	"github.com/vfg2006/orderlines-analysis-api/pkg/log"
)

// GetComparison reexecuta o pipeline de análise e compara as métricas dos
// dois períodos selecionados
func GetComparison(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, err := parseAnalysisFilters(r)
		if err != nil {
			logger.WithError(err).WithField("dataset_id", id).Warn("comparison: parâmetros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"dataset_id":    id,
			"metric":        string(filters.Metric),
			"filter_column": filters.FilterColumn,
		}).Info("comparison: calculando comparação de períodos")

		comparison, err := service.Compare(id, filters)
		if err != nil {
			writeAnalysisError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"dataset_id":        id,
			"rows_after_filter": comparison.RowCount,
			"metrics_compared":  len(comparison.Comparison),
		}).Info("comparison: comparação calculada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(comparison); err != nil {
			logger.WithError(err).Error("comparison: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// GetColumnValues lista os valores distintos de uma coluna para o seletor
// de filtro
func GetColumnValues(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		id := params.ByName("id")
		column := params.ByName("name")

		values, err := service.DistinctValues(id, column)
		if err != nil {
			writeAnalysisError(w, logger, err)
			return
		}

		response := map[string]any{
			"dataset_id": id,
			"column":     column,
			"values":     values,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("columns: erro ao codificar resposta")
		}
	})
}
