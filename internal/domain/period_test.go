package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d string) time.Time {
	date, _ := time.Parse(time.DateOnly, d)
	return date
}

func TestPeriodContains(t *testing.T) {
	period := Period{Start: day("2026-01-10"), End: day("2026-01-20")}

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"Data no início do período é inclusiva", day("2026-01-10"), true},
		{"Data no fim do período é inclusiva", day("2026-01-20"), true},
		{"Data dentro do período", day("2026-01-15"), true},
		{"Data anterior ao período", day("2026-01-09"), false},
		{"Data posterior ao período", day("2026-01-21"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, period.Contains(tt.date))
		})
	}
}

func TestPeriodSlice(t *testing.T) {
	rows := []OrderLine{
		{Date: day("2026-01-05"), CustomerID: "A"},
		{Date: day("2026-01-10"), CustomerID: "B"},
		{Date: day("2026-01-20"), CustomerID: "C"},
		{Date: day("2026-01-25"), CustomerID: "D"},
	}

	period := Period{Start: day("2026-01-10"), End: day("2026-01-20")}
	subset := period.Slice(rows)

	assert.Len(t, subset, 2)
	assert.Equal(t, "B", subset[0].CustomerID)
	assert.Equal(t, "C", subset[1].CustomerID)
}

func TestParseMetricChoice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected MetricChoice
		valid    bool
	}{
		{"Vazio assume All", "", MetricAll, true},
		{"All explícito", "All", MetricAll, true},
		{"Revenue", "Revenue", MetricRevenue, true},
		{"Margin", "Margin", MetricMargin, true},
		{"Quantity", "Quantity", MetricQuantity, true},
		{"Valor desconhecido é inválido", "Profit", MetricChoice(""), false},
		{"Minúsculas não são aceitas", "revenue", MetricChoice(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			choice, ok := ParseMetricChoice(tt.input)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.expected, choice)
		})
	}
}

func TestAnalysisFiltersApplyFilter(t *testing.T) {
	rows := []OrderLine{
		{Cells: map[string]string{"Region": "Sul"}},
		{Cells: map[string]string{"Region": "Norte"}},
		{Cells: map[string]string{"Region": "Leste"}},
	}

	t.Run("Deve manter apenas linhas com valor no conjunto selecionado", func(t *testing.T) {
		filters := AnalysisFilters{FilterColumn: "Region", FilterValues: []string{"Sul", "Leste"}}

		filtered := filters.ApplyFilter(rows)
		assert.Len(t, filtered, 2)
		assert.Equal(t, "Sul", filtered[0].Cells["Region"])
		assert.Equal(t, "Leste", filtered[1].Cells["Region"])
	})

	t.Run("Sem filtro escolhido deve manter todas as linhas", func(t *testing.T) {
		filters := AnalysisFilters{}
		assert.Len(t, filters.ApplyFilter(rows), 3)
	})

	t.Run("Coluna sem valores selecionados não filtra", func(t *testing.T) {
		filters := AnalysisFilters{FilterColumn: "Region"}
		assert.Len(t, filters.ApplyFilter(rows), 3)
	})
}
