package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/influencer-match-api/internal/app"
	"github.com/vfg2006/influencer-match-api/internal/config"
	"github.com/vfg2006/influencer-match-api/pkg/log"
)

const cliName = "matchctl"

var (
	debug bool

	rootCmd = &cobra.Command{
		Use:          cliName,
		Short:        "matchctl runs influencer matching operations against the configured database",
		SilenceUsage: true,
	}
)

// Execute executa o comando raiz. Ctrl+C cancela o contexto dos subcomandos.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
}

// loadApp lê a configuração do ambiente e monta os casos de uso
func loadApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	level := cfg.App.LogLevel
	if debug {
		level = logrus.DebugLevel.String()
	}
	log.Setup(level)

	return app.New(ctx, cfg)
}
