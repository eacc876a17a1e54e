package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/infrastructure/repository"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-match-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// RegisterBrand cria a marca e, se houver site, dispara a análise do perfil em segundo plano
func (s *Service) RegisterBrand(ctx context.Context, request *domain.CreateBrandRequest) (*domain.Brand, error) {
	if request == nil || strings.TrimSpace(request.Name) == "" || request.Email == "" || request.Password == "" {
		return nil, NewCatalogError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios")
	}

	if len(request.Password) < minPasswordLength {
		return nil, NewCatalogError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "A senha deve conter pelo menos 8 caracteres")
	}

	email := NormalizeEmail(request.Email)

	existing, err := s.brandRepository.GetByEmail(ctx, email)
	if err != nil {
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar marca")
	}
	if existing != nil {
		return nil, NewCatalogError(ErrBrandAlreadyExists, apiErrors.ErrBrandAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewCatalogError(err, apiErrors.ErrInternalServer, "Erro ao gerar hash da senha")
	}

	brandID, err := utils.GenerateID()
	if err != nil {
		return nil, NewCatalogError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	brand := &domain.Brand{
		ID:           brandID,
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		Website:      normalizeOptional(request.Website),
		PasswordHash: string(hashedPassword),
		RoleID:       domain.RoleBrand,
	}

	if err := s.brandRepository.Create(ctx, brand); err != nil {
		if errors.Is(err, repository.ErrBrandEmailTaken) {
			return nil, NewCatalogError(ErrBrandAlreadyExists, apiErrors.ErrBrandAlreadyExists, "Email já cadastrado")
		}
		logrus.WithError(err).WithField("email", email).Error("Erro ao criar marca")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar marca")
	}

	if brand.Website != nil {
		s.runAsync(func() {
			refreshCtx, cancel := context.WithTimeout(context.Background(), profileRefreshTimeout)
			defer cancel()

			if _, err := s.RefreshBrandProfile(refreshCtx, brand.ID); err != nil {
				logrus.WithError(err).WithField("brand_id", brand.ID).Warn("Análise inicial do perfil da marca falhou")
			}
		})
	}

	brand.PasswordHash = ""
	return brand, nil
}

func (s *Service) GetBrand(ctx context.Context, brandID string) (*domain.Brand, error) {
	brand, err := s.brandRepository.GetByID(ctx, brandID)
	if err != nil {
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar marca")
	}
	if brand == nil {
		return nil, NewCatalogError(ErrBrandNotFound, apiErrors.ErrResourceNotFound, brandID)
	}

	brand.PasswordHash = ""
	return brand, nil
}

// RefreshBrandProfile lê o site da marca e regrava o perfil. É a única operação que
// altera os campos de perfil.
func (s *Service) RefreshBrandProfile(ctx context.Context, brandID string) (*domain.Brand, error) {
	brand, err := s.GetBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}

	if brand.Website == nil || *brand.Website == "" {
		return nil, NewCatalogError(ErrWebsiteNotSet, apiErrors.ErrMissingRequiredData, brandID)
	}

	if s.websiteReader == nil || s.brandAnalyzer == nil {
		return nil, NewCatalogError(ErrProfileAnalysis, apiErrors.ErrExternalService, "Análise de perfil não configurada")
	}

	logger := logrus.WithFields(logrus.Fields{
		"brand_id": brandID,
		"website":  *brand.Website,
	})

	text, err := s.websiteReader.ReadWebsite(ctx, *brand.Website)
	if err != nil {
		logger.WithError(err).Warn("Falha ao ler site da marca")
		return nil, NewCatalogError(ErrProfileAnalysis, apiErrors.ErrExternalService, "Falha ao ler site da marca")
	}

	profile, err := s.brandAnalyzer.AnalyzeBrand(ctx, text)
	if err != nil || profile == nil {
		logger.WithError(err).Warn("Falha ao analisar perfil da marca")
		return nil, NewCatalogError(ErrProfileAnalysis, apiErrors.ErrExternalService, "Falha ao analisar perfil da marca")
	}

	analyzedAt := s.now()
	if err := s.brandRepository.UpdateProfile(ctx, brandID, *profile, analyzedAt); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewCatalogError(ErrBrandNotFound, apiErrors.ErrResourceNotFound, brandID)
		}
		logger.WithError(err).Error("Erro ao gravar perfil da marca")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao gravar perfil da marca")
	}

	brand.Profile = *profile
	brand.ProfileAnalyzedAt = &analyzedAt

	logger.Info("Perfil da marca atualizado")

	return brand, nil
}

// NormalizeEmail remove espaços e converte para minúsculas
func NormalizeEmail(email string) string {
	email = strings.ToLower(email)
	email = strings.TrimSpace(email)
	return strings.ReplaceAll(email, " ", "")
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
