package domain

import (
	"time"
)

// Period é um intervalo fechado de datas [Start, End] usado para fatiar o
// dataset. Os dois períodos de uma comparação são independentes e podem
// se sobrepor.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains informa se a data pertence ao período (inclusivo nas duas pontas)
func (p Period) Contains(date time.Time) bool {
	return !date.Before(p.Start) && !date.After(p.End)
}

// Slice retorna apenas as linhas cuja data resolvida cai dentro do período
func (p Period) Slice(rows []OrderLine) []OrderLine {
	subset := make([]OrderLine, 0)
	for _, row := range rows {
		if p.Contains(row.Date) {
			subset = append(subset, row)
		}
	}
	return subset
}

// MetricChoice é o seletor de métrica exibida na comparação e nos gráficos
type MetricChoice string

const (
	MetricAll      MetricChoice = "All"
	MetricRevenue  MetricChoice = "Revenue"
	MetricMargin   MetricChoice = "Margin"
	MetricQuantity MetricChoice = "Quantity"
)

// ParseMetricChoice interpreta o parâmetro de métrica; vazio vira "All"
func ParseMetricChoice(s string) (MetricChoice, bool) {
	switch MetricChoice(s) {
	case "":
		return MetricAll, true
	case MetricAll, MetricRevenue, MetricMargin, MetricQuantity:
		return MetricChoice(s), true
	}
	return "", false
}

// AnalysisFilters agrupa os controles de uma interação: filtro por coluna,
// os dois períodos e a métrica selecionada. Datas zeradas significam
// "não informado" e caem no min/max do dataset.
type AnalysisFilters struct {
	FilterColumn string
	FilterValues []string
	Period1      Period
	Period2      Period
	Metric       MetricChoice
}

// HasFilter informa se a interação escolheu um filtro de coluna com valores
func (f AnalysisFilters) HasFilter() bool {
	return f.FilterColumn != "" && len(f.FilterValues) > 0
}

// ApplyFilter mantém apenas as linhas cujo valor na coluna escolhida pertence
// ao conjunto selecionado. Sem filtro escolhido, todas as linhas permanecem.
func (f AnalysisFilters) ApplyFilter(rows []OrderLine) []OrderLine {
	if !f.HasFilter() {
		return rows
	}

	chosen := make(map[string]bool, len(f.FilterValues))
	for _, v := range f.FilterValues {
		chosen[v] = true
	}

	filtered := make([]OrderLine, 0, len(rows))
	for _, row := range rows {
		if chosen[row.Cells[f.FilterColumn]] {
			filtered = append(filtered, row)
		}
	}

	return filtered
}
