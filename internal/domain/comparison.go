package domain

import (
	"time"

	"github.com/vfg2006/orderlines-analysis-api/pkg/utils"
)

// MetricComparison compara o valor de uma métrica entre os dois períodos.
// A variação percentual usa o período 1 como base; base zero resulta em 0.
type MetricComparison struct {
	Metric        string  `json:"metric"`
	Period1Value  float64 `json:"period1_value"`
	Period2Value  float64 `json:"period2_value"`
	Difference    float64 `json:"difference"`
	PercentChange float64 `json:"percent_change"`
}

// CompareMetric monta a comparação de uma métrica entre dois períodos
func CompareMetric(name string, p1, p2 *PeriodMetrics) MetricComparison {
	v1 := p1.Value(name)
	v2 := p2.Value(name)
	diff := v2 - v1

	return MetricComparison{
		Metric:        name,
		Period1Value:  v1,
		Period2Value:  v2,
		Difference:    diff,
		PercentChange: utils.SafeDivide(diff, v1) * 100,
	}
}

// BuildComparison monta a tabela de comparação conforme a métrica escolhida:
// "All" produz todas as métricas, as demais produzem apenas o total
// correspondente
func BuildComparison(choice MetricChoice, p1, p2 *PeriodMetrics) []MetricComparison {
	if choice == MetricAll {
		comparisons := make([]MetricComparison, 0, len(MetricNames))
		for _, name := range MetricNames {
			comparisons = append(comparisons, CompareMetric(name, p1, p2))
		}
		return comparisons
	}

	return []MetricComparison{CompareMetric(choice.TotalFor(), p1, p2)}
}

// PeriodEcho devolve os limites efetivos de um período na resposta
type PeriodEcho struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewPeriodEcho formata um período para a resposta
func NewPeriodEcho(p Period) PeriodEcho {
	return PeriodEcho{
		Start: p.Start.Format(time.DateOnly),
		End:   p.End.Format(time.DateOnly),
	}
}

// ComparisonResponse é a resposta completa de uma interação de comparação:
// filtros ecoados, contagem pós-filtro, pré-visualização, métricas de cada
// período e a tabela comparativa
type ComparisonResponse struct {
	DatasetID    string              `json:"dataset_id"`
	FilterColumn string              `json:"filter_column,omitempty"`
	FilterValues []string            `json:"filter_values,omitempty"`
	RowCount     int                 `json:"row_count"`
	Preview      []map[string]string `json:"preview"`
	Metric       MetricChoice        `json:"metric"`
	Period1      PeriodEcho          `json:"period1"`
	Period2      PeriodEcho          `json:"period2"`
	Period1Data  *PeriodMetrics      `json:"period1_metrics"`
	Period2Data  *PeriodMetrics      `json:"period2_metrics"`
	Comparison   []MetricComparison  `json:"comparison"`
}
