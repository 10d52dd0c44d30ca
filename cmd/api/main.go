package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dropos-api/infrastructure/database/postgres"
	"github.com/vfg2006/dropos-api/infrastructure/integrator/postgrest"
	"github.com/vfg2006/dropos-api/infrastructure/repository"
	"github.com/vfg2006/dropos-api/internal/api"
	"github.com/vfg2006/dropos-api/internal/config"
	"github.com/vfg2006/dropos-api/internal/scheduler"
	"github.com/vfg2006/dropos-api/internal/usecases/authenticating"
	"github.com/vfg2006/dropos-api/internal/usecases/dashboard"
	"github.com/vfg2006/dropos-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Setup(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore := newRecordStore(ctx, cfg)
	defer closeStore()

	dashboardService := dashboard.NewService(cfg, store)
	authenticator := authenticating.NewService(cfg)

	summarySyncService := scheduler.NewDailySummarySyncService(store, cfg)
	if err := summarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do fechamento diário")
	} else {
		logrus.Info("Agendador do fechamento diário iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, authenticator, summarySyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite achar o .env rodando de qualquer diretório
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))
}

// newRecordStore escolhe a implementação pelo STORE_DRIVER
func newRecordStore(ctx context.Context, cfg *config.Config) (repository.RecordStore, func()) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgREST:
		logrus.WithField("url", cfg.PostgREST.URL).Info("Usando store PostgREST")
		return postgrest.NewClient(cfg.PostgREST), func() {}
	default:
		conn := pgconn(ctx, cfg.Database)
		return repository.NewRecordStore(conn), func() { conn.Close() }
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
