package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePeriodMetrics(t *testing.T) {
	tests := []struct {
		name     string
		rows     []OrderLine
		validate func(t *testing.T, metrics *PeriodMetrics)
	}{
		{
			name: "Cliente recorrente - deve calcular totais e taxa de recompra",
			rows: []OrderLine{
				{Quantity: 2, PricePerUnit: 10, MarginPerUnit: 3, CustomerID: "A"},
				{Quantity: 1, PricePerUnit: 5, MarginPerUnit: 1, CustomerID: "A"},
			},
			validate: func(t *testing.T, metrics *PeriodMetrics) {
				assert.Equal(t, 25.0, metrics.TotalRevenue)
				assert.Equal(t, 7.0, metrics.TotalMargin)
				assert.Equal(t, 3.0, metrics.TotalQuantity)
				assert.Equal(t, 1, metrics.UniqueCustomers)
				assert.Equal(t, 1, metrics.RepeatCustomers)
				assert.Equal(t, 100.0, metrics.RepeatPurchaseRate)
				assert.Equal(t, 25.0, metrics.AvgSpendingPerCustomer)
			},
		},
		{
			name: "Clientes distintos sem recompra",
			rows: []OrderLine{
				{Quantity: 1, PricePerUnit: 10, MarginPerUnit: 4, CustomerID: "A"},
				{Quantity: 2, PricePerUnit: 20, MarginPerUnit: 6, CustomerID: "B"},
			},
			validate: func(t *testing.T, metrics *PeriodMetrics) {
				assert.Equal(t, 50.0, metrics.TotalRevenue)
				assert.Equal(t, 16.0, metrics.TotalMargin)
				assert.Equal(t, 2, metrics.UniqueCustomers)
				assert.Equal(t, 0, metrics.RepeatCustomers)
				assert.Equal(t, 0.0, metrics.RepeatPurchaseRate)
				assert.Equal(t, 15.0, metrics.AvgRevenuePerUnit)
				assert.Equal(t, 5.0, metrics.AvgMarginPerUnit)
				assert.Equal(t, 25.0, metrics.AvgRevenuePerOrderline)
				assert.Equal(t, 8.0, metrics.AvgMarginPerOrderline)
				assert.Equal(t, 25.0, metrics.AvgSpendingPerCustomer)
			},
		},
		{
			name: "Período sem linhas - todas as razões devem valer 0, nunca NaN",
			rows: []OrderLine{},
			validate: func(t *testing.T, metrics *PeriodMetrics) {
				assert.Equal(t, 0, metrics.RowCount)
				assert.Equal(t, 0.0, metrics.TotalRevenue)
				assert.Equal(t, 0.0, metrics.AvgRevenuePerUnit)
				assert.Equal(t, 0.0, metrics.AvgMarginPerUnit)
				assert.Equal(t, 0.0, metrics.AvgRevenuePerOrderline)
				assert.Equal(t, 0.0, metrics.AvgMarginPerOrderline)
				assert.Equal(t, 0.0, metrics.RepeatPurchaseRate)
				assert.Equal(t, 0.0, metrics.AvgSpendingPerCustomer)
				assert.False(t, math.IsNaN(metrics.RepeatPurchaseRate))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ComputePeriodMetrics(tt.rows))
		})
	}
}

func TestPeriodMetricsValue(t *testing.T) {
	metrics := &PeriodMetrics{
		TotalRevenue:    100,
		UniqueCustomers: 7,
	}

	assert.Equal(t, 100.0, metrics.Value(MetricTotalRevenue))
	assert.Equal(t, 7.0, metrics.Value(MetricUniqueCustomers))
	assert.Equal(t, 0.0, metrics.Value("desconhecida"))
}
