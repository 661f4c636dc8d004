package analyzing

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/orderlines-analysis-api/infrastructure/storage"
	"github.com/vfg2006/orderlines-analysis-api/internal/config"
	"github.com/vfg2006/orderlines-analysis-api/internal/domain"
	"github.com/vfg2006/orderlines-analysis-api/pkg/log"
)

// Erros de validação dos parâmetros de análise
var (
	ErrInvalidFilterColumn = errors.New("coluna de filtro inválida")
	ErrInvalidPeriod       = errors.New("a data de início não pode ser posterior à data de fim")
)

// Service implementa a interface Analyzer sobre o armazenamento em memória
type Service struct {
	cfg   *config.Config
	store storage.DatasetStore
}

// NewService cria uma nova instância do serviço de análise
func NewService(cfg *config.Config, store storage.DatasetStore) Analyzer {
	return &Service{
		cfg:   cfg,
		store: store,
	}
}

// Compare reexecuta o pipeline e compara as métricas dos dois períodos
func (s *Service) Compare(datasetID string, filters domain.AnalysisFilters) (*domain.ComparisonResponse, error) {
	dataset, rows, err := s.prepare(datasetID, &filters)
	if err != nil {
		return nil, err
	}

	metrics1 := domain.ComputePeriodMetrics(filters.Period1.Slice(rows))
	metrics2 := domain.ComputePeriodMetrics(filters.Period2.Slice(rows))

	log.L.WithFields(log.Fields{
		"dataset_id":        datasetID,
		"rows_after_filter": len(rows),
		"metric":            string(filters.Metric),
		"period1_rows":      metrics1.RowCount,
		"period2_rows":      metrics2.RowCount,
	}).Debug("analyzing: comparação de períodos calculada")

	return &domain.ComparisonResponse{
		DatasetID:    dataset.ID,
		FilterColumn: filters.FilterColumn,
		FilterValues: filters.FilterValues,
		RowCount:     len(rows),
		Preview:      domain.Preview(rows, s.cfg.Dataset.PreviewRows),
		Metric:       filters.Metric,
		Period1:      domain.NewPeriodEcho(filters.Period1),
		Period2:      domain.NewPeriodEcho(filters.Period2),
		Period1Data:  metrics1,
		Period2Data:  metrics2,
		Comparison:   domain.BuildComparison(filters.Metric, metrics1, metrics2),
	}, nil
}

// Timeseries monta a soma diária da grandeza escolhida sobre toda a tabela
// filtrada, com um gráfico por métrica quando "All" está selecionada
func (s *Service) Timeseries(datasetID string, filters domain.AnalysisFilters) (*domain.TimeseriesResponse, error) {
	dataset, rows, err := s.prepare(datasetID, &filters)
	if err != nil {
		return nil, err
	}

	choices := []domain.MetricChoice{filters.Metric}
	if filters.Metric == domain.MetricAll {
		choices = []domain.MetricChoice{domain.MetricRevenue, domain.MetricMargin, domain.MetricQuantity}
	}

	rangeStart := filters.Period1.Start
	if filters.Period2.Start.Before(rangeStart) {
		rangeStart = filters.Period2.Start
	}
	rangeEnd := filters.Period1.End
	if filters.Period2.End.After(rangeEnd) {
		rangeEnd = filters.Period2.End
	}

	charts := make([]domain.ChartData, 0, len(choices))
	for _, choice := range choices {
		charts = append(charts, domain.ChartData{
			Metric:     choice,
			Title:      fmt.Sprintf("%s Over Time", choice),
			Data:       dailySeries(choice, rows),
			Markers:    domain.BoundaryMarkers(filters.Period1, filters.Period2),
			RangeStart: rangeStart.Format(time.DateOnly),
			RangeEnd:   rangeEnd.Format(time.DateOnly),
		})
	}

	return &domain.TimeseriesResponse{
		DatasetID: dataset.ID,
		RowCount:  len(rows),
		Charts:    charts,
	}, nil
}

// DistinctValues lista os valores distintos de uma coluna filtrável
func (s *Service) DistinctValues(datasetID string, column string) ([]string, error) {
	dataset, err := s.store.Get(datasetID)
	if err != nil {
		return nil, err
	}

	if !dataset.HasColumn(column) || column == dataset.DateColumn {
		return nil, errors.Wrap(ErrInvalidFilterColumn, column)
	}

	return dataset.DistinctValues(column), nil
}

// prepare busca o dataset, valida os filtros, resolve os períodos padrão e
// aplica o filtro de coluna
func (s *Service) prepare(datasetID string, filters *domain.AnalysisFilters) (*domain.Dataset, []domain.OrderLine, error) {
	dataset, err := s.store.Get(datasetID)
	if err != nil {
		return nil, nil, err
	}

	if filters.FilterColumn != "" {
		if !dataset.HasColumn(filters.FilterColumn) || filters.FilterColumn == dataset.DateColumn {
			return nil, nil, errors.Wrap(ErrInvalidFilterColumn, filters.FilterColumn)
		}
	}

	filters.Period1 = resolvePeriod(filters.Period1, dataset)
	filters.Period2 = resolvePeriod(filters.Period2, dataset)

	if filters.Period1.Start.After(filters.Period1.End) || filters.Period2.Start.After(filters.Period2.End) {
		return nil, nil, ErrInvalidPeriod
	}

	return dataset, filters.ApplyFilter(dataset.Rows), nil
}

// resolvePeriod preenche datas não informadas com o min/max do dataset,
// o mesmo padrão dos seletores de data da ferramenta
func resolvePeriod(p domain.Period, dataset *domain.Dataset) domain.Period {
	if p.Start.IsZero() {
		p.Start = dataset.MinDate
	}
	if p.End.IsZero() {
		p.End = dataset.MaxDate
	}
	return p
}

// dailySeries soma a grandeza da métrica por dia sobre toda a faixa de datas
// das linhas filtradas. Dias sem linhas aparecem com valor 0, nunca são
// omitidos.
func dailySeries(choice domain.MetricChoice, rows []domain.OrderLine) []domain.ChartDataPoint {
	if len(rows) == 0 {
		return []domain.ChartDataPoint{}
	}

	sumsByDay := make(map[string]float64)
	first := rows[0].Date
	last := rows[0].Date

	for _, row := range rows {
		sumsByDay[row.Date.Format(time.DateOnly)] += domain.SeriesValue(choice, row)

		if row.Date.Before(first) {
			first = row.Date
		}
		if row.Date.After(last) {
			last = row.Date
		}
	}

	points := make([]domain.ChartDataPoint, 0, int(last.Sub(first).Hours()/24)+1)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := day.Format(time.DateOnly)
		points = append(points, domain.ChartDataPoint{
			Date:  key,
			Value: sumsByDay[key],
		})
	}

	return points
}
