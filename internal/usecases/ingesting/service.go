package ingesting

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/orderlines-analysis-api/infrastructure/storage"
	"github.com/vfg2006/orderlines-analysis-api/internal/config"
	"github.com/vfg2006/orderlines-analysis-api/internal/domain"
	"github.com/vfg2006/orderlines-analysis-api/pkg/log"
	"github.com/vfg2006/orderlines-analysis-api/pkg/utils"
)

// Erros fatais de ingestão: qualquer um deles interrompe o upload
var (
	ErrEmptyFile      = errors.New("arquivo vazio ou sem linhas de dados")
	ErrNoDateColumn   = errors.New("o arquivo não contém uma coluna de data reconhecida")
	ErrMissingColumn  = errors.New("coluna obrigatória ausente")
	ErrUnparsableCell = errors.New("valor de célula não reconhecido")
)

// Service implementa a interface Ingester sobre o armazenamento em memória
type Service struct {
	cfg   *config.Config
	store storage.DatasetStore
}

// NewService cria uma nova instância do serviço de ingestão
func NewService(cfg *config.Config, store storage.DatasetStore) Ingester {
	return &Service{
		cfg:   cfg,
		store: store,
	}
}

// CreateDataset interpreta o CSV enviado, resolve a coluna de data e registra
// o dataset em memória com prazo de retenção
func (s *Service) CreateDataset(fileName string, file io.Reader) (*domain.Dataset, error) {
	columns, rows, err := s.parseCSV(file)
	if err != nil {
		return nil, err
	}

	dateColumn := domain.ResolveDateColumn(columns)
	if dateColumn == "" {
		return nil, ErrNoDateColumn
	}

	for _, required := range domain.RequiredColumns {
		if !containsColumn(columns, required) {
			return nil, errors.Wrap(ErrMissingColumn, required)
		}
	}

	orderLines, minDate, maxDate, err := s.buildOrderLines(columns, dateColumn, rows)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar identificador do dataset")
	}

	now := time.Now()
	dataset := &domain.Dataset{
		ID:         id,
		FileName:   fileName,
		Columns:    columns,
		DateColumn: dateColumn,
		Rows:       orderLines,
		MinDate:    minDate,
		MaxDate:    maxDate,
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Duration(s.cfg.Dataset.TTLMinutes) * time.Minute),
	}

	if err := s.store.Save(dataset); err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"dataset_id":  dataset.ID,
		"file_name":   fileName,
		"row_count":   dataset.RowCount(),
		"date_column": dateColumn,
		"min_date":    minDate.Format(time.DateOnly),
		"max_date":    maxDate.Format(time.DateOnly),
	}).Info("ingesting: dataset registrado em memória")

	return dataset, nil
}

// GetDataset obtém um dataset pelo identificador
func (s *Service) GetDataset(id string) (*domain.Dataset, error) {
	return s.store.Get(id)
}

// DeleteDataset remove um dataset da memória
func (s *Service) DeleteDataset(id string) error {
	return s.store.Delete(id)
}

// parseCSV lê o cabeçalho e as linhas do arquivo delimitado
func (s *Service) parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, ErrEmptyFile
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao ler o cabeçalho do arquivo")
	}

	columns := make([]string, 0, len(header))
	for i, name := range header {
		if i == 0 {
			// Remove o BOM que planilhas exportadas costumam incluir
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		columns = append(columns, strings.TrimSpace(name))
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao ler as linhas do arquivo")
	}

	if len(rows) == 0 {
		return nil, nil, ErrEmptyFile
	}

	return columns, rows, nil
}

// buildOrderLines converte as linhas brutas em OrderLines tipadas. Células de
// data ou numéricas não reconhecidas interrompem a ingestão.
func (s *Service) buildOrderLines(columns []string, dateColumn string, rows [][]string) ([]domain.OrderLine, time.Time, time.Time, error) {
	indexByColumn := make(map[string]int, len(columns))
	for i, column := range columns {
		indexByColumn[column] = i
	}

	var minDate, maxDate time.Time

	orderLines := make([]domain.OrderLine, 0, len(rows))
	for lineNumber, record := range rows {
		cells := make(map[string]string, len(columns))
		for column, index := range indexByColumn {
			if index < len(record) {
				cells[column] = strings.TrimSpace(record[index])
			}
		}

		date, err := utils.ParseCellDate(cells[dateColumn])
		if err != nil {
			return nil, time.Time{}, time.Time{}, errors.Wrapf(
				ErrUnparsableCell, "coluna %s, linha %d: %v", dateColumn, lineNumber+2, err,
			)
		}

		quantity, err := parseNumericCell(cells[domain.ColumnQuantity])
		if err != nil {
			return nil, time.Time{}, time.Time{}, errors.Wrapf(
				ErrUnparsableCell, "coluna %s, linha %d", domain.ColumnQuantity, lineNumber+2,
			)
		}

		price, err := parseNumericCell(cells[domain.ColumnPricePerUnit])
		if err != nil {
			return nil, time.Time{}, time.Time{}, errors.Wrapf(
				ErrUnparsableCell, "coluna %s, linha %d", domain.ColumnPricePerUnit, lineNumber+2,
			)
		}

		margin, err := parseNumericCell(cells[domain.ColumnMarginPerUnit])
		if err != nil {
			return nil, time.Time{}, time.Time{}, errors.Wrapf(
				ErrUnparsableCell, "coluna %s, linha %d", domain.ColumnMarginPerUnit, lineNumber+2,
			)
		}

		if minDate.IsZero() || date.Before(minDate) {
			minDate = date
		}
		if maxDate.IsZero() || date.After(maxDate) {
			maxDate = date
		}

		orderLines = append(orderLines, domain.OrderLine{
			Date:          date,
			Quantity:      quantity,
			PricePerUnit:  price,
			MarginPerUnit: margin,
			CustomerID:    cells[domain.ColumnCustomerID],
			Cells:         cells,
		})
	}

	return orderLines, minDate, maxDate, nil
}

// parseNumericCell interpreta uma célula numérica; célula vazia vale 0
func parseNumericCell(value string) (float64, error) {
	if value == "" {
		return 0, nil
	}

	return strconv.ParseFloat(value, 64)
}

func containsColumn(columns []string, name string) bool {
	for _, column := range columns {
		if column == name {
			return true
		}
	}
	return false
}
