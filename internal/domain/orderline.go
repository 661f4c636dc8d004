package domain

import (
	"time"
)

// Colunas obrigatórias de um arquivo de orderlines
const (
	ColumnQuantity      = "Quantity"
	ColumnPricePerUnit  = "PricePerUnit"
	ColumnMarginPerUnit = "MarginPerUnit"
	ColumnCustomerID    = "CustomerId"
)

// RequiredColumns lista as colunas que precisam existir no arquivo enviado,
// além de uma coluna de data reconhecida
var RequiredColumns = []string{
	ColumnQuantity,
	ColumnPricePerUnit,
	ColumnMarginPerUnit,
	ColumnCustomerID,
}

// OrderLine representa uma linha de venda: uma quantidade de um item
// vendida com um preço e uma margem unitários
type OrderLine struct {
	Date          time.Time `json:"date"`
	Quantity      float64   `json:"quantity"`
	PricePerUnit  float64   `json:"price_per_unit"`
	MarginPerUnit float64   `json:"margin_per_unit"`
	CustomerID    string    `json:"customer_id"`

	// Cells guarda os valores brutos de todas as colunas do arquivo,
	// usados pelo filtro por coluna arbitrária
	Cells map[string]string `json:"-"`
}

// Revenue retorna a receita da linha (Quantity x PricePerUnit)
func (o OrderLine) Revenue() float64 {
	return o.Quantity * o.PricePerUnit
}

// Margin retorna a margem da linha (Quantity x MarginPerUnit)
func (o OrderLine) Margin() float64 {
	return o.Quantity * o.MarginPerUnit
}
