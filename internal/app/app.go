package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/infrastructure/cache"
	"github.com/vfg2006/influencer-match-api/infrastructure/database/postgres"
	"github.com/vfg2006/influencer-match-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/influencer-match-api/infrastructure/integrator/mailer"
	"github.com/vfg2006/influencer-match-api/infrastructure/integrator/website"
	"github.com/vfg2006/influencer-match-api/infrastructure/integrator/youtube"
	"github.com/vfg2006/influencer-match-api/infrastructure/repository"
	"github.com/vfg2006/influencer-match-api/internal/api"
	"github.com/vfg2006/influencer-match-api/internal/config"
	"github.com/vfg2006/influencer-match-api/internal/scheduler"
	"github.com/vfg2006/influencer-match-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-match-api/internal/usecases/catalog"
	"github.com/vfg2006/influencer-match-api/internal/usecases/matching"
	"github.com/vfg2006/influencer-match-api/internal/usecases/outreach"
	"github.com/vfg2006/influencer-match-api/internal/usecases/profiling"
	"github.com/vfg2006/influencer-match-api/internal/usecases/scoring"
	"github.com/vfg2006/influencer-match-api/internal/usecases/searching"
)

const websiteTimeout = 10 * time.Second

// App reúne a conexão e os casos de uso montados a partir da configuração
type App struct {
	Config   *config.Config
	Conn     *postgres.Connection
	Services api.Services

	closers []func() error
}

// New conecta ao banco e monta o grafo de dependências. Integrações sem
// credenciais ficam desligadas e os casos de uso caem nos valores padrão.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	app := &App{Config: cfg, Conn: conn}
	app.closers = append(app.closers, conn.Close)

	brandRepo := repository.NewBrandRepository(conn)
	offeringRepo := repository.NewOfferingRepository(conn)
	campaignRepo := repository.NewCampaignRepository(conn)
	creatorRepo := repository.NewCreatorRepository(conn)
	matchRepo := repository.NewMatchRepository(conn)

	var generator gemini.Generator
	if cfg.Gemini.APIKey != "" {
		generator, err = gemini.NewGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logrus.WithError(err).Warn("Gemini indisponível, avaliações consultivas usarão valores padrão")
			generator = nil
		}
	} else {
		logrus.Info("GEMINI_API_KEY ausente, avaliações consultivas usarão valores padrão")
	}
	advisor := gemini.New(generator)

	var (
		channelSearcher searching.ChannelSearcher
		channelAnalyzer profiling.ChannelAnalyzer
	)
	if cfg.YouTube.APIKey != "" {
		client, err := youtube.NewClient(ctx, cfg.YouTube.APIKey)
		if err != nil {
			logrus.WithError(err).Warn("YouTube indisponível, usando canais de demonstração")
		} else {
			integrator := youtube.New(client, advisor, cfg.YouTube.RecentVideos)
			channelSearcher = integrator
			channelAnalyzer = integrator
		}
	} else {
		logrus.Info("YOUTUBE_API_KEY ausente, usando canais de demonstração")
	}

	if channelSearcher != nil && cfg.Redis.URL != "" {
		client, err := cache.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			logrus.WithError(err).Warn("Redis indisponível, busca de canais sem cache")
		} else {
			app.closers = append(app.closers, client.Close)
			channelSearcher = cache.NewChannelSearchCache(channelSearcher, cache.NewRedisStore(client), cfg.Redis.SearchTTL)
			logrus.Info("Cache de busca de canais habilitado")
		}
	}

	var sender mailer.Sender
	if cfg.SMTP.Configured() {
		sender, err = mailer.NewSender(cfg.SMTP)
		if err != nil {
			logrus.WithError(err).Warn("Cliente SMTP inválido, emails não serão enviados")
			sender = nil
		}
	} else {
		logrus.Info("SMTP não configurado, emails não serão enviados")
	}

	ledger := matching.NewService(matchRepo)
	resolver := profiling.NewService(creatorRepo, channelAnalyzer)
	scorer := scoring.NewFitScorer(advisor, advisor)
	pricer := scoring.NewPriceEstimator(cfg.Matching.ConversionRate)

	searcher := searching.NewService(
		offeringRepo,
		brandRepo,
		creatorRepo,
		channelSearcher,
		resolver,
		scorer,
		pricer,
		ledger,
		searching.Defaults{
			MaxResults:  cfg.Matching.DefaultMaxResults,
			MinFitScore: cfg.Matching.DefaultMinFitScore,
		},
	)

	catalogService := catalog.NewService(brandRepo, offeringRepo, campaignRepo, website.NewReader(websiteTimeout), advisor)

	contactDriver := outreach.NewService(
		campaignRepo,
		offeringRepo,
		brandRepo,
		ledger,
		mailer.New(sender, advisor, cfg.SMTP),
	)

	app.Services = api.Services{
		Authenticator:   authenticating.NewService(brandRepo, cfg.Auth),
		Catalog:         catalogService,
		Searcher:        searcher,
		Ledger:          ledger,
		ProfileResolver: resolver,
		ContactDriver:   contactDriver,
		AutoContactSync: scheduler.NewAutoContactSyncService(contactDriver, cfg),
	}

	return app, nil
}

// Close libera as conexões na ordem inversa da abertura
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logrus.WithError(err).Warn("Erro ao encerrar recurso")
		}
	}
}
