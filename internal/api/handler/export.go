package handler

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/orderlines-analysis-api/internal/domain"
	"github.com/vfg2006/orderlines-analysis-api/internal/usecases/analyzing"
	"github.com/vfg2006/orderlines-analysis-api/pkg/apiErrors"
	"github.com/vfg2006/orderlines-analysis-api/pkg/log"
	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Comparison"

// ExportComparison gera a tabela de comparação em XLSX para download
func ExportComparison(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, err := parseAnalysisFilters(r)
		if err != nil {
			logger.WithError(err).WithField("dataset_id", id).Warn("export: parâmetros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		comparison, err := service.Compare(id, filters)
		if err != nil {
			writeAnalysisError(w, logger, err)
			return
		}

		file, err := buildComparisonWorkbook(comparison)
		if err != nil {
			logger.WithError(err).Error("export: erro ao montar planilha")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}
		defer file.Close()

		fileName := fmt.Sprintf("comparison-%s.xlsx", comparison.DatasetID)
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))

		if err := file.Write(w); err != nil {
			logger.WithError(err).Error("export: erro ao escrever planilha na resposta")
			return
		}

		logger.WithFields(log.Fields{
			"dataset_id": id,
			"file_name":  fileName,
			"rows":       len(comparison.Comparison),
		}).Info("export: planilha de comparação gerada")
	})
}

// buildComparisonWorkbook monta a planilha com os períodos e a tabela
// comparativa de métricas
func buildComparisonWorkbook(comparison *domain.ComparisonResponse) (*excelize.File, error) {
	file := excelize.NewFile()

	if err := file.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, err
	}

	headers := []any{"Metric", "Period 1 Value", "Period 2 Value", "Difference", "Percentage Change (%)"}
	if err := file.SetSheetRow(exportSheetName, "A1", &headers); err != nil {
		return nil, err
	}

	for i, row := range comparison.Comparison {
		cell := fmt.Sprintf("A%d", i+2)
		values := []any{
			row.Metric,
			row.Period1Value,
			row.Period2Value,
			row.Difference,
			row.PercentChange,
		}
		if err := file.SetSheetRow(exportSheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	infoStart := len(comparison.Comparison) + 3
	info := [][]any{
		{"Period 1", comparison.Period1.Start, comparison.Period1.End},
		{"Period 2", comparison.Period2.Start, comparison.Period2.End},
		{"Rows after filtering", comparison.RowCount},
	}
	for i, row := range info {
		cell := fmt.Sprintf("A%d", infoStart+i)
		values := row
		if err := file.SetSheetRow(exportSheetName, cell, &values); err != nil {
			return nil, err
		}
	}

	return file, nil
}
