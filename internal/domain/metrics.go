package domain

import (
	"github.com/vfg2006/orderlines-analysis-api/pkg/utils"
)

// Nomes das métricas calculadas por período
const (
	MetricTotalRevenue           = "total_revenue"
	MetricTotalMargin            = "total_margin"
	MetricTotalQuantity          = "total_quantity"
	MetricAvgRevenuePerUnit      = "avg_revenue_per_unit"
	MetricAvgMarginPerUnit       = "avg_margin_per_unit"
	MetricAvgRevenuePerOrderline = "avg_revenue_per_orderline"
	MetricAvgMarginPerOrderline  = "avg_margin_per_orderline"
	MetricUniqueCustomers        = "unique_customers"
	MetricRepeatCustomers        = "repeat_customers"
	MetricRepeatPurchaseRate     = "repeat_purchase_rate"
	MetricAvgSpendingPerCustomer = "avg_spending_per_customer"
)

// MetricNames lista as métricas na ordem de exibição da tabela de comparação
var MetricNames = []string{
	MetricTotalRevenue,
	MetricTotalMargin,
	MetricTotalQuantity,
	MetricAvgRevenuePerUnit,
	MetricAvgMarginPerUnit,
	MetricAvgRevenuePerOrderline,
	MetricAvgMarginPerOrderline,
	MetricUniqueCustomers,
	MetricRepeatCustomers,
	MetricRepeatPurchaseRate,
	MetricAvgSpendingPerCustomer,
}

// PeriodMetrics agrupa as métricas agregadas de um período
type PeriodMetrics struct {
	RowCount               int     `json:"row_count"`
	TotalRevenue           float64 `json:"total_revenue"`
	TotalMargin            float64 `json:"total_margin"`
	TotalQuantity          float64 `json:"total_quantity"`
	AvgRevenuePerUnit      float64 `json:"avg_revenue_per_unit"`
	AvgMarginPerUnit       float64 `json:"avg_margin_per_unit"`
	AvgRevenuePerOrderline float64 `json:"avg_revenue_per_orderline"`
	AvgMarginPerOrderline  float64 `json:"avg_margin_per_orderline"`
	UniqueCustomers        int     `json:"unique_customers"`
	RepeatCustomers        int     `json:"repeat_customers"`
	RepeatPurchaseRate     float64 `json:"repeat_purchase_rate"`
	AvgSpendingPerCustomer float64 `json:"avg_spending_per_customer"`
}

// ComputePeriodMetrics calcula as métricas de um período a partir do seu
// subconjunto de linhas. Divisões com denominador zero resultam em 0, nunca
// em erro, NaN ou infinito.
func ComputePeriodMetrics(rows []OrderLine) *PeriodMetrics {
	metrics := &PeriodMetrics{RowCount: len(rows)}

	linesByCustomer := make(map[string]int)

	var sumPrice, sumMargin float64
	for _, row := range rows {
		metrics.TotalRevenue += row.Revenue()
		metrics.TotalMargin += row.Margin()
		metrics.TotalQuantity += row.Quantity

		sumPrice += row.PricePerUnit
		sumMargin += row.MarginPerUnit

		linesByCustomer[row.CustomerID]++
	}

	rowCount := float64(len(rows))
	metrics.AvgRevenuePerUnit = utils.SafeDivide(sumPrice, rowCount)
	metrics.AvgMarginPerUnit = utils.SafeDivide(sumMargin, rowCount)
	metrics.AvgRevenuePerOrderline = utils.SafeDivide(metrics.TotalRevenue, rowCount)
	metrics.AvgMarginPerOrderline = utils.SafeDivide(metrics.TotalMargin, rowCount)

	metrics.UniqueCustomers = len(linesByCustomer)
	for _, count := range linesByCustomer {
		if count > 1 {
			metrics.RepeatCustomers++
		}
	}

	uniqueCustomers := float64(metrics.UniqueCustomers)
	metrics.RepeatPurchaseRate = utils.SafeDivide(float64(metrics.RepeatCustomers), uniqueCustomers) * 100
	metrics.AvgSpendingPerCustomer = utils.SafeDivide(metrics.TotalRevenue, uniqueCustomers)

	return metrics
}

// Value retorna o valor de uma métrica pelo nome
func (m *PeriodMetrics) Value(name string) float64 {
	switch name {
	case MetricTotalRevenue:
		return m.TotalRevenue
	case MetricTotalMargin:
		return m.TotalMargin
	case MetricTotalQuantity:
		return m.TotalQuantity
	case MetricAvgRevenuePerUnit:
		return m.AvgRevenuePerUnit
	case MetricAvgMarginPerUnit:
		return m.AvgMarginPerUnit
	case MetricAvgRevenuePerOrderline:
		return m.AvgRevenuePerOrderline
	case MetricAvgMarginPerOrderline:
		return m.AvgMarginPerOrderline
	case MetricUniqueCustomers:
		return float64(m.UniqueCustomers)
	case MetricRepeatCustomers:
		return float64(m.RepeatCustomers)
	case MetricRepeatPurchaseRate:
		return m.RepeatPurchaseRate
	case MetricAvgSpendingPerCustomer:
		return m.AvgSpendingPerCustomer
	}
	return 0
}

// TotalFor retorna o total correspondente ao seletor de métrica
// (Revenue, Margin ou Quantity)
func (c MetricChoice) TotalFor() string {
	switch c {
	case MetricRevenue:
		return MetricTotalRevenue
	case MetricMargin:
		return MetricTotalMargin
	case MetricQuantity:
		return MetricTotalQuantity
	}
	return ""
}
