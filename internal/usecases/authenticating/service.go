package authenticating

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/infrastructure/repository"
	"github.com/vfg2006/influencer-match-api/internal/config"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/internal/usecases/catalog"
	"github.com/vfg2006/influencer-match-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	brandRepository repository.BrandRepository
	secret          []byte
	tokenTTL        time.Duration
	now             func() time.Time
}

func NewService(brandRepository repository.BrandRepository, cfg config.Auth) Authenticator {
	tokenTTL := cfg.TokenTTL
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}

	return &Service{
		brandRepository: brandRepository,
		secret:          []byte(cfg.Secret),
		tokenTTL:        tokenTTL,
		now:             time.Now,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = catalog.NormalizeEmail(email)

	brand, err := s.brandRepository.GetByEmail(ctx, email)
	if err != nil {
		logrus.WithError(err).Error("Erro ao consultar marca no login")
		return "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar marca no banco de dados")
	}

	if brand == nil {
		return "", NewAuthError(ErrBrandNotFound, apiErrors.ErrBrandNotFound, "Marca não encontrada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(brand.PasswordHash), []byte(password)); err != nil {
		return "", NewBrandAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, brand.ID, "Senha incorreta")
	}

	token, err := s.generateJWT(brand)
	if err != nil {
		return "", NewBrandAuthError(ErrTokenGeneration, apiErrors.ErrInternalServer, brand.ID, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) generateJWT(brand *domain.Brand) (string, error) {
	roleID := brand.RoleID
	if roleID == 0 {
		roleID = domain.RoleBrand
	}

	now := s.now()
	claims := domain.Claims{
		BrandID:    brand.ID,
		BrandName:  brand.Name,
		BrandEmail: brand.Email,
		RoleID:     roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   brand.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.BrandID == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "invalid token")
	}

	return claims, nil
}
