package utils

import (
	"time"

	"github.com/pkg/errors"
)

// ParseDate interpreta um parâmetro de data no formato YYYY-MM-DD.
// String vazia retorna a data zero (parâmetro não informado).
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// cellDateLayouts são os formatos aceitos para células de data do arquivo,
// testados em ordem
var cellDateLayouts = []string{
	time.DateOnly,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
	"2006/01/02",
}

// ParseCellDate interpreta uma célula de data do arquivo enviado e a
// normaliza para o dia (sem horário). Valores não reconhecidos são fatais
// para o upload.
func ParseCellDate(value string) (time.Time, error) {
	for _, layout := range cellDateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, errors.Errorf("data não reconhecida: %q", value)
}
