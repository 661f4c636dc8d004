package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/orderlines-analysis-api/infrastructure/storage"
	"github.com/vfg2006/orderlines-analysis-api/internal/domain"
	"github.com/vfg2006/orderlines-analysis-api/internal/usecases/analyzing"
	"github.com/vfg2006/orderlines-analysis-api/pkg/apiErrors"
	"github.com/vfg2006/orderlines-analysis-api/pkg/log"
	"github.com/vfg2006/orderlines-analysis-api/pkg/utils"
)

// parseAnalysisFilters interpreta os controles de uma interação a partir da
// query string: períodos, filtro de coluna e métrica. Datas ausentes ficam
// zeradas e caem no min/max do dataset.
func parseAnalysisFilters(r *http.Request) (domain.AnalysisFilters, error) {
	query := r.URL.Query()

	filters := domain.AnalysisFilters{}

	start1, err := utils.ParseDate(query.Get("start1"))
	if err != nil {
		return filters, errors.New("parâmetro start1 inválido, use o formato YYYY-MM-DD")
	}
	end1, err := utils.ParseDate(query.Get("end1"))
	if err != nil {
		return filters, errors.New("parâmetro end1 inválido, use o formato YYYY-MM-DD")
	}
	start2, err := utils.ParseDate(query.Get("start2"))
	if err != nil {
		return filters, errors.New("parâmetro start2 inválido, use o formato YYYY-MM-DD")
	}
	end2, err := utils.ParseDate(query.Get("end2"))
	if err != nil {
		return filters, errors.New("parâmetro end2 inválido, use o formato YYYY-MM-DD")
	}

	filters.Period1 = domain.Period{Start: *start1, End: *end1}
	filters.Period2 = domain.Period{Start: *start2, End: *end2}

	metric, ok := domain.ParseMetricChoice(query.Get("metric"))
	if !ok {
		return filters, errors.New("parâmetro metric inválido, use All, Revenue, Margin ou Quantity")
	}
	filters.Metric = metric

	filters.FilterColumn = query.Get("filter_column")
	if rawValues := query.Get("filter_values"); rawValues != "" {
		filters.FilterValues = strings.Split(rawValues, ",")
	}

	return filters, nil
}

// writeAnalysisError traduz os erros de análise para o envelope da API
func writeAnalysisError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, storage.ErrDatasetNotFound):
		apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, "Nenhum arquivo carregado com esse identificador", nil)

	case errors.Is(err, analyzing.ErrInvalidFilterColumn):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, analyzing.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		logger.WithError(err).Error("analysis: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
