package domain

import (
	"time"
)

// Estilos dos marcadores de limite de período: período 1 em verde e
// período 2 em vermelho; início tracejado e fim pontilhado
const (
	MarkerRoleStart = "start"
	MarkerRoleEnd   = "end"

	MarkerColorPeriod1 = "green"
	MarkerColorPeriod2 = "red"

	MarkerStyleStart = "dash"
	MarkerStyleEnd   = "dot"
)

// ChartDataPoint é um ponto diário da série temporal
type ChartDataPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// BoundaryMarker é uma linha vertical marcando o início ou fim de um período
type BoundaryMarker struct {
	Date      string `json:"date"`
	Period    int    `json:"period"`
	Role      string `json:"role"`
	Color     string `json:"color"`
	LineStyle string `json:"line_style"`
}

// ChartData é a série temporal de uma métrica: soma diária sobre toda a
// tabela filtrada, com os quatro marcadores de limite e o recorte horizontal
// visível na união dos dois períodos
type ChartData struct {
	Metric     MetricChoice     `json:"metric"`
	Title      string           `json:"title"`
	Data       []ChartDataPoint `json:"data"`
	Markers    []BoundaryMarker `json:"markers"`
	RangeStart string           `json:"range_start"`
	RangeEnd   string           `json:"range_end"`
}

// TimeseriesResponse agrupa os gráficos de uma interação: um por métrica
// quando "All" está selecionada, senão apenas o da métrica escolhida
type TimeseriesResponse struct {
	DatasetID string      `json:"dataset_id"`
	RowCount  int         `json:"row_count"`
	Charts    []ChartData `json:"charts"`
}

// BoundaryMarkers monta os quatro marcadores a partir dos dois períodos
func BoundaryMarkers(period1, period2 Period) []BoundaryMarker {
	return []BoundaryMarker{
		{
			Date:      period1.Start.Format(time.DateOnly),
			Period:    1,
			Role:      MarkerRoleStart,
			Color:     MarkerColorPeriod1,
			LineStyle: MarkerStyleStart,
		},
		{
			Date:      period1.End.Format(time.DateOnly),
			Period:    1,
			Role:      MarkerRoleEnd,
			Color:     MarkerColorPeriod1,
			LineStyle: MarkerStyleEnd,
		},
		{
			Date:      period2.Start.Format(time.DateOnly),
			Period:    2,
			Role:      MarkerRoleStart,
			Color:     MarkerColorPeriod2,
			LineStyle: MarkerStyleStart,
		},
		{
			Date:      period2.End.Format(time.DateOnly),
			Period:    2,
			Role:      MarkerRoleEnd,
			Color:     MarkerColorPeriod2,
			LineStyle: MarkerStyleEnd,
		},
	}
}

// SeriesValue retorna a grandeza somada por dia para o seletor de métrica:
// receita, margem ou quantidade da linha
func SeriesValue(choice MetricChoice, row OrderLine) float64 {
	switch choice {
	case MetricMargin:
		return row.Margin()
	case MetricQuantity:
		return row.Quantity
	default:
		return row.Revenue()
	}
}
