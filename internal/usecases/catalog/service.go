package catalog

import (
	"context"
	"time"

	"github.com/vfg2006/influencer-match-api/infrastructure/repository"
	"github.com/vfg2006/influencer-match-api/internal/domain"
)

const profileRefreshTimeout = 2 * time.Minute

// WebsiteReader extrai o texto visível do site da marca
type WebsiteReader interface {
	ReadWebsite(ctx context.Context, url string) (string, error)
}

// BrandAnalyzer gera o perfil da marca a partir do texto do site
type BrandAnalyzer interface {
	AnalyzeBrand(ctx context.Context, websiteText string) (*domain.BrandProfile, error)
}

type Catalog interface {
	RegisterBrand(ctx context.Context, request *domain.CreateBrandRequest) (*domain.Brand, error)
	GetBrand(ctx context.Context, brandID string) (*domain.Brand, error)
	RefreshBrandProfile(ctx context.Context, brandID string) (*domain.Brand, error)

	CreateOffering(ctx context.Context, request *domain.CreateOfferingRequest) (*domain.Offering, error)
	GetOffering(ctx context.Context, offeringID string) (*domain.Offering, error)
	ListOfferings(ctx context.Context, brandID string) ([]*domain.Offering, error)

	CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) (*domain.Campaign, error)
}

type Service struct {
	brandRepository    repository.BrandRepository
	offeringRepository repository.OfferingRepository
	campaignRepository repository.CampaignRepository
	websiteReader      WebsiteReader
	brandAnalyzer      BrandAnalyzer
	now                func() time.Time
	runAsync           func(func())
}

func NewService(
	brandRepository repository.BrandRepository,
	offeringRepository repository.OfferingRepository,
	campaignRepository repository.CampaignRepository,
	websiteReader WebsiteReader,
	brandAnalyzer BrandAnalyzer,
) Catalog {
	return &Service{
		brandRepository:    brandRepository,
		offeringRepository: offeringRepository,
		campaignRepository: campaignRepository,
		websiteReader:      websiteReader,
		brandAnalyzer:      brandAnalyzer,
		now:                time.Now,
		runAsync:           func(f func()) { go f() },
	}
}
