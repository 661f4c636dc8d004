package storage

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/orderlines-analysis-api/internal/domain"
)

func TestDatasetStore(t *testing.T) {
	t.Run("Salvar e consultar um dataset", func(t *testing.T) {
		store := NewDatasetStore()

		dataset := &domain.Dataset{
			ID:        "abc123",
			FileName:  "orderlines.csv",
			ExpiresAt: time.Now().Add(time.Hour),
		}

		assert.NoError(t, store.Save(dataset))
		assert.Equal(t, 1, store.Count())

		found, err := store.Get("abc123")
		assert.NoError(t, err)
		assert.Equal(t, "orderlines.csv", found.FileName)
	})

	t.Run("Dataset inexistente retorna erro", func(t *testing.T) {
		store := NewDatasetStore()

		_, err := store.Get("nao-existe")
		assert.True(t, errors.Is(err, ErrDatasetNotFound))
	})

	t.Run("Dataset sem ID não pode ser salvo", func(t *testing.T) {
		store := NewDatasetStore()

		assert.Error(t, store.Save(&domain.Dataset{}))
		assert.Error(t, store.Save(nil))
	})

	t.Run("Dataset expirado é tratado como inexistente", func(t *testing.T) {
		store := NewDatasetStore()

		dataset := &domain.Dataset{
			ID:        "expirado",
			ExpiresAt: time.Now().Add(-time.Minute),
		}
		assert.NoError(t, store.Save(dataset))

		_, err := store.Get("expirado")
		assert.True(t, errors.Is(err, ErrDatasetNotFound))
	})

	t.Run("Remover um dataset", func(t *testing.T) {
		store := NewDatasetStore()

		dataset := &domain.Dataset{ID: "abc123", ExpiresAt: time.Now().Add(time.Hour)}
		assert.NoError(t, store.Save(dataset))

		assert.NoError(t, store.Delete("abc123"))
		assert.Equal(t, 0, store.Count())

		err := store.Delete("abc123")
		assert.True(t, errors.Is(err, ErrDatasetNotFound))
	})
}

func TestDatasetStoreDeleteExpired(t *testing.T) {
	store := NewDatasetStore()
	now := time.Now()

	assert.NoError(t, store.Save(&domain.Dataset{ID: "vivo", ExpiresAt: now.Add(time.Hour)}))
	assert.NoError(t, store.Save(&domain.Dataset{ID: "vencido1", ExpiresAt: now.Add(-time.Minute)}))
	assert.NoError(t, store.Save(&domain.Dataset{ID: "vencido2", ExpiresAt: now.Add(-time.Hour)}))

	removed := store.DeleteExpired(now)

	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, store.Count())

	_, err := store.Get("vivo")
	assert.NoError(t, err)
}
