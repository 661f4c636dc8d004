package handler

import (
	"net/http"

	"github.com/vfg2006/orderlines-analysis-api/internal/api/handler/router"
	"github.com/vfg2006/orderlines-analysis-api/internal/config"
	"github.com/vfg2006/orderlines-analysis-api/internal/scheduler"
	"github.com/vfg2006/orderlines-analysis-api/internal/usecases/analyzing"
	"github.com/vfg2006/orderlines-analysis-api/internal/usecases/ingesting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Datasets(service ingesting.Ingester, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets",
			Method:  http.MethodPost,
			Handler: UploadDataset(service, cfg),
		},
		{
			Path:    "/v1/datasets/:id",
			Method:  http.MethodGet,
			Handler: GetDataset(service, cfg),
		},
		{
			Path:    "/v1/datasets/:id",
			Method:  http.MethodDelete,
			Handler: DeleteDataset(service),
		},
	}
}

func Analysis(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets/:id/columns/:name/values",
			Method:  http.MethodGet,
			Handler: GetColumnValues(service),
		},
		{
			Path:    "/v1/datasets/:id/comparison",
			Method:  http.MethodGet,
			Handler: GetComparison(service),
		},
		{
			Path:    "/v1/datasets/:id/comparison/export",
			Method:  http.MethodGet,
			Handler: ExportComparison(service),
		},
		{
			Path:    "/v1/datasets/:id/timeseries",
			Method:  http.MethodGet,
			Handler: GetTimeseries(service),
		},
	}
}

func Retention(service *scheduler.RetentionService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/retention/run",
			Method:  http.MethodPost,
			Handler: RunRetention(service),
		},
		{
			Path:    "/v1/retention/status",
			Method:  http.MethodGet,
			Handler: GetRetentionStatus(service),
		},
	}
}
