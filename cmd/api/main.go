package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/orderlines-analysis-api/infrastructure/storage"
	"github.com/vfg2006/orderlines-analysis-api/internal/api"
	"github.com/vfg2006/orderlines-analysis-api/internal/config"
	"github.com/vfg2006/orderlines-analysis-api/internal/scheduler"
	"github.com/vfg2006/orderlines-analysis-api/internal/usecases/analyzing"
	"github.com/vfg2006/orderlines-analysis-api/internal/usecases/ingesting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Armazenamento efêmero: os datasets vivem somente em memória
	datasetStore := storage.NewDatasetStore()

	ingestService := ingesting.NewService(cfg, datasetStore)
	analysisService := analyzing.NewService(cfg, datasetStore)

	// Inicializa o agendador de limpeza de datasets expirados
	retentionService := scheduler.NewRetentionService(datasetStore, cfg)
	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção de datasets")
	} else {
		logrus.Info("Agendador de retenção de datasets iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		ingestService,
		analysisService,
		retentionService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
