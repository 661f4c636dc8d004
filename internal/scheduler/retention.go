// Package scheduler contém o agendamento da limpeza de datasets expirados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/orderlines-analysis-api/infrastructure/storage"
	"github.com/vfg2006/orderlines-analysis-api/internal/config"
)

// RetentionConfig representa a configuração do agendador de retenção
type RetentionConfig struct {
	CronSchedule string
	Enabled      bool
}

// RetentionService remove periodicamente os datasets com retenção vencida.
// Os datasets são efêmeros: este agendador é o único coletor deles.
type RetentionService struct {
	scheduler          *gocron.Scheduler
	config             RetentionConfig
	store              storage.DatasetStore
	runRunning         bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRemovedCount   int
}

// NewRetentionService cria uma nova instância do serviço de retenção
func NewRetentionService(store storage.DatasetStore, appConfig *config.Config) *RetentionService {
	retentionConfig := RetentionConfig{
		CronSchedule: appConfig.Retention.CronSchedule,
		Enabled:      appConfig.Retention.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": retentionConfig.CronSchedule,
		"enabled":       retentionConfig.Enabled,
	}).Info("Configuração do agendador de retenção de datasets carregada")

	return &RetentionService{
		scheduler: scheduler,
		config:    retentionConfig,
		store:     store,
	}
}

// Start inicia o agendador
func (s *RetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de datasets expirados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção de datasets")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanupExpiredDatasets()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de datasets expirados: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção de datasets")
		s.scheduler.Stop()
	}()

	return nil
}

// cleanupExpiredDatasets remove os datasets com prazo de retenção vencido
func (s *RetentionService) cleanupExpiredDatasets() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Limpeza de datasets já em andamento, ignorando")
		return
	}
	s.runRunning = true
	s.runMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.runMutex.Unlock()
	}()

	removed := s.store.DeleteExpired(startTime)
	s.lastRemovedCount = removed
	s.lastRunCompletedAt = time.Now()

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removed":   removed,
			"remaining": s.store.Count(),
			"duration":  time.Since(startTime).String(),
		}).Info("Limpeza de datasets expirados concluída")
		return
	}

	logrus.Debug("Nenhum dataset expirado encontrado")
}

// TriggerManualRun dispara uma limpeza fora do agendamento
func (s *RetentionService) TriggerManualRun() {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Limpeza de datasets já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de datasets expirados")
	go s.cleanupExpiredDatasets()
}

// GetStatus retorna o status atual do agendador
func (s *RetentionService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"datasets_in_memory":    s.store.Count(),
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_removed_count":    s.lastRemovedCount,
	}
}
