package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/orderlines-analysis-api/infrastructure/storage"
	"github.com/vfg2006/orderlines-analysis-api/internal/api/handler/router"
	"github.com/vfg2006/orderlines-analysis-api/internal/domain"
	"github.com/vfg2006/orderlines-analysis-api/internal/usecases/analyzing"
	"github.com/vfg2006/orderlines-analysis-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/orderlines-analysis-api/pkg/apiErrors"
	"github.com/vfg2006/orderlines-analysis-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func newAnalysisRouter(service analyzing.Analyzer) http.Handler {
	log.SetupTestLogger()
	return router.New(router.WithRoutes(Analysis(service)...))
}

func day(d string) time.Time {
	date, _ := time.Parse(time.DateOnly, d)
	return date
}

func TestGetComparison(t *testing.T) {
	t.Run("Parâmetros da query viram os filtros da análise", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		expectedFilters := domain.AnalysisFilters{
			FilterColumn: "Region",
			FilterValues: []string{"Sul", "Norte"},
			Period1:      domain.Period{Start: day("2026-01-01"), End: day("2026-01-15")},
			Period2:      domain.Period{Start: day("2026-01-16"), End: day("2026-01-31")},
			Metric:       domain.MetricRevenue,
		}

		mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
		mockAnalyzer.EXPECT().
			Compare("abc123", expectedFilters).
			Return(&domain.ComparisonResponse{DatasetID: "abc123", RowCount: 10}, nil)

		url := "/v1/datasets/abc123/comparison" +
			"?start1=2026-01-01&end1=2026-01-15&start2=2026-01-16&end2=2026-01-31" +
			"&metric=Revenue&filter_column=Region&filter_values=Sul,Norte"

		request := httptest.NewRequest(http.MethodGet, url, nil)
		recorder := httptest.NewRecorder()

		newAnalysisRouter(mockAnalyzer).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response domain.ComparisonResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "abc123", response.DatasetID)
		assert.Equal(t, 10, response.RowCount)
	})

	t.Run("Sem parâmetros a métrica assume All e os períodos ficam zerados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
		mockAnalyzer.EXPECT().
			Compare("abc123", domain.AnalysisFilters{Metric: domain.MetricAll}).
			Return(&domain.ComparisonResponse{DatasetID: "abc123"}, nil)

		request := httptest.NewRequest(http.MethodGet, "/v1/datasets/abc123/comparison", nil)
		recorder := httptest.NewRecorder()

		newAnalysisRouter(mockAnalyzer).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Data inválida retorna 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

		request := httptest.NewRequest(http.MethodGet, "/v1/datasets/abc123/comparison?start1=15-01-2026", nil)
		recorder := httptest.NewRecorder()

		newAnalysisRouter(mockAnalyzer).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var apiErr apiErrors.APIError
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
	})

	t.Run("Métrica inválida retorna 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

		request := httptest.NewRequest(http.MethodGet, "/v1/datasets/abc123/comparison?metric=Profit", nil)
		recorder := httptest.NewRecorder()

		newAnalysisRouter(mockAnalyzer).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Dataset inexistente retorna 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
		mockAnalyzer.EXPECT().
			Compare("nao-existe", gomock.Any()).
			Return(nil, storage.ErrDatasetNotFound)

		request := httptest.NewRequest(http.MethodGet, "/v1/datasets/nao-existe/comparison", nil)
		recorder := httptest.NewRecorder()

		newAnalysisRouter(mockAnalyzer).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Período invertido retorna 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
		mockAnalyzer.EXPECT().
			Compare("abc123", gomock.Any()).
			Return(nil, analyzing.ErrInvalidPeriod)

		request := httptest.NewRequest(http.MethodGet, "/v1/datasets/abc123/comparison?start1=2026-01-31&end1=2026-01-01", nil)
		recorder := httptest.NewRecorder()

		newAnalysisRouter(mockAnalyzer).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var apiErr apiErrors.APIError
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
	})
}

func TestGetColumnValues(t *testing.T) {
	t.Run("Valores distintos da coluna", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
		mockAnalyzer.EXPECT().
			DistinctValues("abc123", "Region").
			Return([]string{"Norte", "Sul"}, nil)

		request := httptest.NewRequest(http.MethodGet, "/v1/datasets/abc123/columns/Region/values", nil)
		recorder := httptest.NewRecorder()

		newAnalysisRouter(mockAnalyzer).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response struct {
			DatasetID string   `json:"dataset_id"`
			Column    string   `json:"column"`
			Values    []string `json:"values"`
		}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "Region", response.Column)
		assert.Equal(t, []string{"Norte", "Sul"}, response.Values)
	})

	t.Run("Coluna inválida retorna 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
		mockAnalyzer.EXPECT().
			DistinctValues("abc123", "CreatedDate").
			Return(nil, analyzing.ErrInvalidFilterColumn)

		request := httptest.NewRequest(http.MethodGet, "/v1/datasets/abc123/columns/CreatedDate/values", nil)
		recorder := httptest.NewRecorder()

		newAnalysisRouter(mockAnalyzer).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestGetTimeseries(t *testing.T) {
	t.Run("Série temporal com gráficos e marcadores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
		mockAnalyzer.EXPECT().
			Timeseries("abc123", gomock.Any()).
			Return(&domain.TimeseriesResponse{
				DatasetID: "abc123",
				RowCount:  4,
				Charts: []domain.ChartData{
					{
						Metric: domain.MetricRevenue,
						Title:  "Revenue Over Time",
						Data:   []domain.ChartDataPoint{{Date: "2026-01-01", Value: 20}},
						Markers: domain.BoundaryMarkers(
							domain.Period{Start: day("2026-01-01"), End: day("2026-01-15")},
							domain.Period{Start: day("2026-01-16"), End: day("2026-01-31")},
						),
					},
				},
			}, nil)

		request := httptest.NewRequest(http.MethodGet, "/v1/datasets/abc123/timeseries?metric=Revenue", nil)
		recorder := httptest.NewRecorder()

		newAnalysisRouter(mockAnalyzer).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response domain.TimeseriesResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Len(t, response.Charts, 1)
		assert.Len(t, response.Charts[0].Markers, 4)
		assert.Equal(t, "Revenue Over Time", response.Charts[0].Title)
	})

	t.Run("Dataset inexistente retorna 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
		mockAnalyzer.EXPECT().
			Timeseries("nao-existe", gomock.Any()).
			Return(nil, storage.ErrDatasetNotFound)

		request := httptest.NewRequest(http.MethodGet, "/v1/datasets/nao-existe/timeseries", nil)
		recorder := httptest.NewRecorder()

		newAnalysisRouter(mockAnalyzer).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
