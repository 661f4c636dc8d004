package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/orderlines-analysis-api/internal/domain"
	"github.com/vfg2006/orderlines-analysis-api/internal/usecases/analyzing/mocks"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func TestExportComparison(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	mockAnalyzer.EXPECT().
		Compare("abc123", gomock.Any()).
		Return(&domain.ComparisonResponse{
			DatasetID: "abc123",
			RowCount:  4,
			Period1:   domain.PeriodEcho{Start: "2026-01-01", End: "2026-01-15"},
			Period2:   domain.PeriodEcho{Start: "2026-01-16", End: "2026-01-31"},
			Comparison: []domain.MetricComparison{
				{Metric: domain.MetricTotalRevenue, Period1Value: 100, Period2Value: 150, Difference: 50, PercentChange: 50},
				{Metric: domain.MetricTotalMargin, Period1Value: 30, Period2Value: 36, Difference: 6, PercentChange: 20},
			},
		}, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/datasets/abc123/comparison/export", nil)
	recorder := httptest.NewRecorder()

	newAnalysisRouter(mockAnalyzer).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), `comparison-abc123.xlsx`)

	file, err := excelize.OpenReader(bytes.NewReader(recorder.Body.Bytes()))
	assert.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Comparison")
	assert.NoError(t, err)

	assert.Equal(t, []string{"Metric", "Period 1 Value", "Period 2 Value", "Difference", "Percentage Change (%)"}, rows[0])
	assert.Equal(t, "total_revenue", rows[1][0])
	assert.Equal(t, "total_margin", rows[2][0])
}
