package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareMetric(t *testing.T) {
	tests := []struct {
		name     string
		p1       *PeriodMetrics
		p2       *PeriodMetrics
		expected MetricComparison
	}{
		{
			name: "Crescimento entre períodos",
			p1:   &PeriodMetrics{TotalRevenue: 100},
			p2:   &PeriodMetrics{TotalRevenue: 150},
			expected: MetricComparison{
				Metric:        MetricTotalRevenue,
				Period1Value:  100,
				Period2Value:  150,
				Difference:    50,
				PercentChange: 50,
			},
		},
		{
			name: "Queda entre períodos",
			p1:   &PeriodMetrics{TotalRevenue: 200},
			p2:   &PeriodMetrics{TotalRevenue: 150},
			expected: MetricComparison{
				Metric:        MetricTotalRevenue,
				Period1Value:  200,
				Period2Value:  150,
				Difference:    -50,
				PercentChange: -25,
			},
		},
		{
			name: "Base zero - variação percentual deve ser 0",
			p1:   &PeriodMetrics{TotalRevenue: 0},
			p2:   &PeriodMetrics{TotalRevenue: 80},
			expected: MetricComparison{
				Metric:        MetricTotalRevenue,
				Period1Value:  0,
				Period2Value:  80,
				Difference:    80,
				PercentChange: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompareMetric(MetricTotalRevenue, tt.p1, tt.p2))
		})
	}
}

func TestBuildComparison(t *testing.T) {
	p1 := &PeriodMetrics{TotalRevenue: 100, TotalMargin: 30, TotalQuantity: 10}
	p2 := &PeriodMetrics{TotalRevenue: 120, TotalMargin: 36, TotalQuantity: 8}

	t.Run("Métrica All - deve conter a tabela completa na ordem padrão", func(t *testing.T) {
		comparisons := BuildComparison(MetricAll, p1, p2)

		assert.Len(t, comparisons, len(MetricNames))
		for i, name := range MetricNames {
			assert.Equal(t, name, comparisons[i].Metric)
		}
	})

	t.Run("Métrica específica - deve conter apenas o total correspondente", func(t *testing.T) {
		comparisons := BuildComparison(MetricMargin, p1, p2)

		assert.Len(t, comparisons, 1)
		assert.Equal(t, MetricTotalMargin, comparisons[0].Metric)
		assert.Equal(t, 30.0, comparisons[0].Period1Value)
		assert.Equal(t, 36.0, comparisons[0].Period2Value)
		assert.Equal(t, 6.0, comparisons[0].Difference)
		assert.Equal(t, 20.0, comparisons[0].PercentChange)
	})
}
