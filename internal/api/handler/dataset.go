package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/orderlines-analysis-api/infrastructure/storage"
	"github.com/vfg2006/orderlines-analysis-api/internal/config"
	"github.com/vfg2006/orderlines-analysis-api/internal/domain"
	"github.com/vfg2006/orderlines-analysis-api/internal/usecases/ingesting"
	"github.com/vfg2006/orderlines-analysis-api/pkg/apiErrors"
	"github.com/vfg2006/orderlines-analysis-api/pkg/log"
)

// UploadDataset recebe o arquivo CSV de orderlines e registra o dataset
// em memória
func UploadDataset(service ingesting.Ingester, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		maxUploadSize := int64(cfg.Dataset.MaxUploadSizeMB) << 20
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

		file, header, err := r.FormFile("file")
		if err != nil {
			logger.WithError(err).Warn("datasets: upload sem arquivo válido")

			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, "Arquivo maior que o limite de upload", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário enviar o arquivo no campo 'file'", nil)
			return
		}
		defer file.Close()

		logger.WithFields(log.Fields{
			"file_name": header.Filename,
			"file_size": header.Size,
		}).Info("datasets: processando upload de orderlines")

		dataset, err := service.CreateDataset(header.Filename, file)
		if err != nil {
			writeIngestError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(domain.NewDatasetSummary(dataset, cfg.Dataset.PreviewRows)); err != nil {
			logger.WithError(err).Error("datasets: erro ao codificar resposta do upload")
		}
	})
}

// GetDataset retorna o resumo e a pré-visualização de um dataset
func GetDataset(service ingesting.Ingester, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		dataset, err := service.GetDataset(id)
		if err != nil {
			if errors.Is(err, storage.ErrDatasetNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, "Nenhum arquivo carregado com esse identificador", nil)
				return
			}

			logger.WithError(err).WithField("dataset_id", id).Error("datasets: erro ao buscar dataset")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(domain.NewDatasetSummary(dataset, cfg.Dataset.PreviewRows)); err != nil {
			logger.WithError(err).Error("datasets: erro ao codificar resposta")
		}
	})
}

// DeleteDataset remove um dataset da memória antes do prazo de retenção
func DeleteDataset(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteDataset(id); err != nil {
			if errors.Is(err, storage.ErrDatasetNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, "Nenhum arquivo carregado com esse identificador", nil)
				return
			}

			logger.WithError(err).WithField("dataset_id", id).Error("datasets: erro ao remover dataset")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithField("dataset_id", id).Info("datasets: dataset removido")
		w.WriteHeader(http.StatusNoContent)
	})
}

// writeIngestError traduz os erros fatais de ingestão para o envelope da API
func writeIngestError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, ingesting.ErrNoDateColumn):
		logger.WithError(err).Warn("datasets: arquivo sem coluna de data reconhecida")
		apiErrors.WriteError(w, apiErrors.ErrNoDateColumn, "O arquivo não contém uma coluna de data reconhecida", domain.DateColumnCandidates)

	case errors.Is(err, ingesting.ErrMissingColumn):
		logger.WithError(err).Warn("datasets: arquivo sem coluna obrigatória")
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredColumn, err.Error(), domain.RequiredColumns)

	case errors.Is(err, ingesting.ErrUnparsableCell):
		logger.WithError(err).Warn("datasets: célula com valor não reconhecido")
		apiErrors.WriteError(w, apiErrors.ErrUnparsableDate, err.Error(), nil)

	case errors.Is(err, ingesting.ErrEmptyFile):
		logger.WithError(err).Warn("datasets: arquivo vazio")
		apiErrors.WriteError(w, apiErrors.ErrEmptyFile, "Arquivo vazio ou sem linhas de dados", nil)

	default:
		logger.WithError(err).Error("datasets: erro ao processar upload")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	}
}
