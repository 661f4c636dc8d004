package analyzing

import (
	"github.com/vfg2006/orderlines-analysis-api/internal/domain"
)

// Analyzer define as operações de análise sobre um dataset carregado.
// Cada chamada reexecuta o pipeline completo (filtro, fatiamento e
// agregação); nada é memorizado entre interações.
type Analyzer interface {
	// Compare calcula as métricas dos dois períodos e a tabela comparativa
	Compare(datasetID string, filters domain.AnalysisFilters) (*domain.ComparisonResponse, error)

	// Timeseries monta as séries temporais diárias com os marcadores de período
	Timeseries(datasetID string, filters domain.AnalysisFilters) (*domain.TimeseriesResponse, error)

	// DistinctValues lista os valores distintos de uma coluna filtrável
	DistinctValues(datasetID string, column string) ([]string, error)
}
