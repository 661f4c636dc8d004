package ingesting

import (
	"io"

	"github.com/vfg2006/orderlines-analysis-api/internal/domain"
)

// Ingester define a interface de carga e ciclo de vida dos datasets
type Ingester interface {
	// CreateDataset interpreta um arquivo CSV de orderlines e o registra em memória
	CreateDataset(fileName string, file io.Reader) (*domain.Dataset, error)

	// GetDataset obtém um dataset pelo identificador
	GetDataset(id string) (*domain.Dataset, error)

	// DeleteDataset remove um dataset da memória
	DeleteDataset(id string) error
}
