package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-scaler-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-scaler-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-scaler-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-scaler-api/infrastructure/notifier"
	"github.com/vfg2006/ad-scaler-api/infrastructure/repository"
	"github.com/vfg2006/ad-scaler-api/internal/api"
	"github.com/vfg2006/ad-scaler-api/internal/config"
	"github.com/vfg2006/ad-scaler-api/internal/scheduler"
	"github.com/vfg2006/ad-scaler-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-scaler-api/internal/usecases/insighting"
	"github.com/vfg2006/ad-scaler-api/internal/usecases/suggesting"
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

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	adSetRepo := repository.NewAdSetRepository(pgConn)
	insightRepo := repository.NewAdSetInsightRepository(pgConn)
	settingsRepo := repository.NewAccountSettingsRepository(pgConn)
	suggestionRepo := repository.NewSuggestionRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)
	tokenProvider := metaclient.NewStaticTokenProvider(cfg.Meta.AccessToken)

	webhookNotifier := notifier.NewWebhookNotifier(cfg)

	syncService := insighting.NewService(
		cfg,
		metaIntegrator,
		tokenProvider,
		accountRepo,
		insightRepo,
		adSetRepo,
	)

	analysisService := suggesting.NewService(
		accountRepo,
		settingsRepo,
		adSetRepo,
		insightRepo,
		suggestionRepo,
		webhookNotifier,
	)

	suggestionLifecycle := suggesting.NewLifecycle(suggestionRepo, adSetRepo)

	// Inicializa os agendadores de sincronização e análise
	insightSyncService := scheduler.NewInsightSyncService(syncService, cfg)
	suggestionAnalysisService := scheduler.NewSuggestionAnalysisService(analysisService, cfg)

	// Inicia os agendadores em background
	if err := insightSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de insights")
	} else {
		logrus.Info("Agendador de sincronização de insights iniciado com sucesso")
	}

	if err := suggestionAnalysisService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de análise de sugestões")
	} else {
		logrus.Info("Agendador de análise de sugestões iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		analysisService,
		suggestionLifecycle,
		accountRepo,
		settingsRepo,
		insightSyncService,
		suggestionAnalysisService,
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
