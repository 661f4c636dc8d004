package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/orderlines-analysis-api/infrastructure/storage"
	"github.com/vfg2006/orderlines-analysis-api/internal/api/handler/router"
	"github.com/vfg2006/orderlines-analysis-api/internal/config"
	"github.com/vfg2006/orderlines-analysis-api/internal/scheduler"
)

func newRetentionRouter() http.Handler {
	cfg := &config.Config{}
	cfg.Retention.Enabled = true
	cfg.Retention.CronSchedule = "*/15 * * * *"

	service := scheduler.NewRetentionService(storage.NewDatasetStore(), cfg)
	return router.New(router.WithRoutes(Retention(service)...))
}

func TestRunRetention(t *testing.T) {
	request := httptest.NewRequest(http.MethodPost, "/v1/retention/run", nil)
	recorder := httptest.NewRecorder()

	newRetentionRouter().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusAccepted, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "status")
}

func TestGetRetentionStatus(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/v1/retention/status", nil)
	recorder := httptest.NewRecorder()

	newRetentionRouter().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var status map[string]any
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &status))
	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "*/15 * * * *", status["cron"])
}
