package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/database/postgres"
	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/integrator/meta"
	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/integrator/meta/metaclient"
	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/integrator/telegram"
	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/repository"
	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/storage"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/api"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/config"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/scheduler"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/usecases/insighting"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/usecases/leadsync"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := storage.EnsureSchema(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao garantir o schema do banco de dados")
	}

	kvStore := storage.NewPostgresKVStore(pgConn)
	blobStore := storage.NewPostgresBlobStore(pgConn)

	projectRepo := repository.NewProjectRepository(pgConn)
	scheduleRepo := repository.NewReportScheduleRepository(pgConn)
	stateRepo := repository.NewScheduleStateRepository(kvStore)
	cacheRepo := repository.NewMetricsCacheRepository(kvStore)
	leadRepo := repository.NewLeadRepository(blobStore)

	tokenManager := metaclient.NewTokenManager(cfg)
	tokenManager.InitToken()
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	metaClient := metaclient.NewClient(cfg, tokenManager)
	metaIntegrator := meta.New(cfg, metaClient)

	dispatcher := telegram.NewDispatcher(cfg)

	insightService := insighting.NewService(cfg, metaIntegrator, cacheRepo)
	leadService := leadsync.NewService(leadRepo, metaIntegrator)

	reportService := scheduler.NewReportDispatchService(
		projectRepo,
		scheduleRepo,
		stateRepo,
		insightService,
		metaIntegrator,
		leadService,
		dispatcher,
		cfg,
	)

	retentionService := scheduler.NewRetentionService(
		projectRepo,
		leadRepo,
		cacheRepo,
		cfg,
	)

	if err := reportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de despacho de relatórios")
	} else {
		logrus.Info("Agendador de despacho de relatórios iniciado com sucesso")
	}

	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da varredura de retenção")
	} else {
		logrus.Info("Agendador da varredura de retenção iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		projectRepo,
		insightService,
		leadService,
		reportService,
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

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
