package handler

import (
	"net/http"

	"github.com/vfg2006/influencer-match-api/internal/api/handler/router"
	"github.com/vfg2006/influencer-match-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-match-api/internal/usecases/catalog"
	"github.com/vfg2006/influencer-match-api/internal/usecases/matching"
	"github.com/vfg2006/influencer-match-api/internal/usecases/outreach"
	"github.com/vfg2006/influencer-match-api/internal/usecases/profiling"
	"github.com/vfg2006/influencer-match-api/internal/usecases/searching"
	"github.com/vfg2006/influencer-match-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Brands(service catalog.Catalog) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/brands",
			Method:  http.MethodPost,
			Handler: RegisterBrand(service),
		},
		{
			Path:        "/v1/brands/:id",
			Method:      http.MethodGet,
			Handler:     GetBrand(service),
			Middlewares: middlewares{middleware.AllRoles(), middleware.BrandScoped("id")},
		},
		{
			Path:        "/v1/brands/:id/refresh-profile",
			Method:      http.MethodPost,
			Handler:     RefreshBrandProfile(service),
			Middlewares: middlewares{middleware.AllRoles(), middleware.BrandScoped("id")},
		},
		{
			Path:        "/v1/brands/:id/offerings",
			Method:      http.MethodPost,
			Handler:     CreateOffering(service),
			Middlewares: middlewares{middleware.AllRoles(), middleware.BrandScoped("id")},
		},
		{
			Path:        "/v1/brands/:id/offerings",
			Method:      http.MethodGet,
			Handler:     ListOfferings(service),
			Middlewares: middlewares{middleware.AllRoles(), middleware.BrandScoped("id")},
		},
	}
}

func Matches(service catalog.Catalog, searcher searching.InfluencerSearcher, ledger matching.MatchLedger, resolver profiling.ProfileResolver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/influencers/search",
			Method:      http.MethodPost,
			Handler:     SearchInfluencers(service, searcher),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/creators/:channel_id/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshInfluencer(resolver),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/offerings/:id/matches",
			Method:      http.MethodGet,
			Handler:     ListMatches(service, ledger),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/matches/:id/approve",
			Method:      http.MethodPost,
			Handler:     ApproveMatch(service, ledger),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/matches/:id/reject",
			Method:      http.MethodPost,
			Handler:     RejectMatch(service, ledger),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/matches/:id/rescore",
			Method:      http.MethodPost,
			Handler:     RescoreMatch(service, ledger, searcher),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Campaigns(service catalog.Catalog, driver outreach.ContactDriver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaign(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/status",
			Method:      http.MethodPut,
			Handler:     UpdateCampaignStatus(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/contact-influencers",
			Method:      http.MethodPost,
			Handler:     ContactInfluencers(service, driver),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
