package main

import (
	"context"
	"math/rand"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-manager-api/infrastructure/queue"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository"
	"github.com/vfg2006/campaign-manager-api/internal/api"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/internal/scheduler"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-manager-api/internal/usecases/scheduling"
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

	campaignRepo := repository.NewCampaignRepository(pgConn)
	postRepo := repository.NewPostRepository(pgConn)

	publisher := campaignPublisher(cfg)
	defer publisher.Close()

	generator := scheduling.NewService(rand.New(rand.NewSource(time.Now().UnixNano())))
	statsService := reporting.NewService(postRepo)
	campaignService := campaigning.NewService(campaignRepo, postRepo, generator, pgConn, publisher)

	// Inicializa o agendador de conclusão automática de campanhas
	campaignCompletionSyncService := scheduler.NewCampaignCompletionSyncService(
		campaignRepo,
		campaignService,
		statsService,
		cfg,
	)

	if err := campaignCompletionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de conclusão de campanhas")
	} else {
		logrus.Info("Agendador de conclusão de campanhas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		campaignService,
		statsService,
		campaignCompletionSyncService,
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

// campaignPublisher conecta na fila de eventos de ativação, caindo no
// publicador nulo quando a fila está desabilitada ou indisponível
func campaignPublisher(cfg *config.Config) queue.Publisher {
	if !cfg.Queue.Enabled {
		logrus.Info("Fila de eventos desabilitada por configuração")
		return queue.NewNoopPublisher()
	}

	publisher, err := queue.NewPublisher(cfg.Queue)
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar no RabbitMQ, eventos de ativação serão descartados")
		return queue.NewNoopPublisher()
	}

	logrus.Info("Conexão com RabbitMQ estabelecida com sucesso")
	return publisher
}
