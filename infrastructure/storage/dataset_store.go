// Package storage contém o armazenamento efêmero de datasets em memória
package storage

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/orderlines-analysis-api/internal/domain"
)

// ErrDatasetNotFound indica que o dataset não existe ou já expirou
var ErrDatasetNotFound = errors.New("dataset não encontrado")

// DatasetStore guarda os datasets enviados durante a sessão. Nada é
// persistido em disco: um dataset vive até ser removido ou expirar.
type DatasetStore interface {
	Save(dataset *domain.Dataset) error
	Get(id string) (*domain.Dataset, error)
	Delete(id string) error
	DeleteExpired(now time.Time) int
	Count() int
}

type datasetStore struct {
	mu       sync.RWMutex
	datasets map[string]*domain.Dataset
}

// NewDatasetStore cria um armazenamento de datasets em memória
func NewDatasetStore() DatasetStore {
	return &datasetStore{
		datasets: make(map[string]*domain.Dataset),
	}
}

func (s *datasetStore) Save(dataset *domain.Dataset) error {
	if dataset == nil || dataset.ID == "" {
		return errors.New("dataset inválido para armazenamento")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.datasets[dataset.ID] = dataset
	return nil
}

func (s *datasetStore) Get(id string) (*domain.Dataset, error) {
	s.mu.RLock()
	dataset, ok := s.datasets[id]
	s.mu.RUnlock()

	if !ok {
		return nil, errors.Wrap(ErrDatasetNotFound, id)
	}

	// Dataset expirado é tratado como inexistente mesmo antes da limpeza
	if dataset.Expired(time.Now()) {
		return nil, errors.Wrap(ErrDatasetNotFound, id)
	}

	return dataset, nil
}

func (s *datasetStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.datasets[id]; !ok {
		return errors.Wrap(ErrDatasetNotFound, id)
	}

	delete(s.datasets, id)
	return nil
}

// DeleteExpired remove os datasets com retenção vencida e retorna quantos
// foram removidos
func (s *datasetStore) DeleteExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, dataset := range s.datasets {
		if dataset.Expired(now) {
			delete(s.datasets, id)
			removed++
		}
	}

	return removed
}

func (s *datasetStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.datasets)
}
