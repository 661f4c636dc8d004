package domain

import (
	"sort"
	"time"
)

// DateColumnCandidates é a lista ordenada de nomes de coluna de data reconhecidos.
// A primeira coluna presente no arquivo é usada; variantes em português no final.
var DateColumnCandidates = []string{
	"CreatedDate",
	"OrderDate",
	"Date",
	"InvoiceCreationDate",
	"InvoiceDate",
	"DataCriacao",
	"DataPedido",
	"Data",
}

// ResolveDateColumn retorna a primeira coluna candidata presente na lista de
// colunas do arquivo, respeitando a ordem de prioridade. Retorna "" quando
// nenhuma candidata está presente.
func ResolveDateColumn(columns []string) string {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	for _, candidate := range DateColumnCandidates {
		if present[candidate] {
			return candidate
		}
	}

	return ""
}

// Dataset representa um arquivo de orderlines carregado e mantido em memória.
// Nada é persistido: o dataset vive apenas até expirar ou ser removido.
type Dataset struct {
	ID         string      `json:"id"`
	FileName   string      `json:"file_name"`
	Columns    []string    `json:"columns"`
	DateColumn string      `json:"date_column"`
	Rows       []OrderLine `json:"-"`
	MinDate    time.Time   `json:"min_date"`
	MaxDate    time.Time   `json:"max_date"`
	CreatedAt  time.Time   `json:"created_at"`
	ExpiresAt  time.Time   `json:"expires_at"`
}

// RowCount retorna o total de linhas do dataset
func (d *Dataset) RowCount() int {
	return len(d.Rows)
}

// Expired informa se o dataset já passou do prazo de retenção
func (d *Dataset) Expired(now time.Time) bool {
	return !d.ExpiresAt.IsZero() && now.After(d.ExpiresAt)
}

// Preview retorna as primeiras n linhas como mapas coluna -> valor bruto,
// no formato exibido na pré-visualização do upload
func Preview(rows []OrderLine, n int) []map[string]string {
	if n > len(rows) {
		n = len(rows)
	}

	preview := make([]map[string]string, 0, n)
	for _, row := range rows[:n] {
		cells := make(map[string]string, len(row.Cells))
		for col, value := range row.Cells {
			cells[col] = value
		}
		preview = append(preview, cells)
	}

	return preview
}

// DistinctValues retorna os valores distintos e não vazios de uma coluna,
// ordenados, para alimentar o seletor de filtro
func (d *Dataset) DistinctValues(column string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)

	for _, row := range d.Rows {
		value := row.Cells[column]
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}

	sort.Strings(values)
	return values
}

// HasColumn informa se a coluna existe no dataset
func (d *Dataset) HasColumn(column string) bool {
	for _, c := range d.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// DatasetSummary é a resposta resumida de um dataset, devolvida no upload
// e na consulta por ID
type DatasetSummary struct {
	ID         string              `json:"id"`
	FileName   string              `json:"file_name"`
	Columns    []string            `json:"columns"`
	DateColumn string              `json:"date_column"`
	RowCount   int                 `json:"row_count"`
	MinDate    string              `json:"min_date"`
	MaxDate    string              `json:"max_date"`
	ExpiresAt  time.Time           `json:"expires_at"`
	Preview    []map[string]string `json:"preview"`
}

// NewDatasetSummary monta o resumo de um dataset com a pré-visualização
// das primeiras previewRows linhas
func NewDatasetSummary(d *Dataset, previewRows int) *DatasetSummary {
	return &DatasetSummary{
		ID:         d.ID,
		FileName:   d.FileName,
		Columns:    d.Columns,
		DateColumn: d.DateColumn,
		RowCount:   d.RowCount(),
		MinDate:    d.MinDate.Format(time.DateOnly),
		MaxDate:    d.MaxDate.Format(time.DateOnly),
		ExpiresAt:  d.ExpiresAt,
		Preview:    Preview(d.Rows, previewRows),
	}
}
