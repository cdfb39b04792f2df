package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nexgestao/analytics-api/infrastructure/database/postgres"
	"github.com/nexgestao/analytics-api/infrastructure/repository"
	"github.com/nexgestao/analytics-api/internal/api"
	"github.com/nexgestao/analytics-api/internal/config"
	"github.com/nexgestao/analytics-api/internal/scheduler"
	"github.com/nexgestao/analytics-api/internal/usecases/authenticating"
	"github.com/nexgestao/analytics-api/internal/usecases/exporting"
	"github.com/nexgestao/analytics-api/internal/usecases/reporting"
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

	userRepo := repository.NewUserRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	clientRepo := repository.NewClientRepository(pgConn)
	meetingRepo := repository.NewMeetingRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	reporter := reporting.NewService(orderRepo, clientRepo, meetingRepo, campaignRepo)
	exporter := exporting.NewService(reporter)

	// Inicializa o agendador de atualização periódica de insights
	insightRefreshService := scheduler.NewInsightRefreshService(reporter, clientRepo, cfg)

	if err := insightRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de insights")
	} else {
		logrus.Info("Agendador de atualização de insights iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reporter,
		exporter,
		authenticator,
		insightRefreshService,
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
