package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/infrastructure/migration"
	"github.com/vfg2006/influencer-match-api/internal/api"
	"github.com/vfg2006/influencer-match-api/internal/app"
	"github.com/vfg2006/influencer-match-api/internal/config"
	"github.com/vfg2006/influencer-match-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer application.Close()

	if err := migration.Migrate(ctx, application.Conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	autoContactSync := application.Services.AutoContactSync
	if err := autoContactSync.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de contato automático")
	} else {
		logrus.Info("Agendador de contato automático iniciado com sucesso")
	}

	server := api.New(cfg, application.Services)
	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
