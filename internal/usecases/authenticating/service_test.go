package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/influencer-match-api/infrastructure/repository/mocks"
	"github.com/vfg2006/influencer-match-api/internal/config"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "segredo-de-teste"

func newTestService(ctrl *gomock.Controller) (*Service, *repomocks.MockBrandRepository) {
	brands := repomocks.NewMockBrandRepository(ctrl)
	service := NewService(brands, config.Auth{Secret: testSecret, TokenTTL: time.Hour}).(*Service)
	return service, brands
}

func hashedBrand(t *testing.T, password string) *domain.Brand {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.Brand{
		ID:           "BRD001",
		Name:         "Acme",
		Email:        "contato@acme.com",
		PasswordHash: string(hash),
		RoleID:       domain.RoleBrand,
	}
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		email       string
		password    string
		setup       func(t *testing.T, brands *repomocks.MockBrandRepository)
		expectedErr error
	}{
		{
			name:     "Login válido normaliza o email",
			email:    " Contato@Acme.com",
			password: "segredo123",
			setup: func(t *testing.T, brands *repomocks.MockBrandRepository) {
				brands.EXPECT().GetByEmail(ctx, "contato@acme.com").Return(hashedBrand(t, "segredo123"), nil)
			},
		},
		{
			name:     "Senha incorreta",
			email:    "contato@acme.com",
			password: "errada123",
			setup: func(t *testing.T, brands *repomocks.MockBrandRepository) {
				brands.EXPECT().GetByEmail(ctx, "contato@acme.com").Return(hashedBrand(t, "segredo123"), nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "Marca inexistente",
			email:    "nao@existe.com",
			password: "segredo123",
			setup: func(t *testing.T, brands *repomocks.MockBrandRepository) {
				brands.EXPECT().GetByEmail(ctx, "nao@existe.com").Return(nil, nil)
			},
			expectedErr: ErrBrandNotFound,
		},
		{
			name:     "Erro de banco",
			email:    "contato@acme.com",
			password: "segredo123",
			setup: func(t *testing.T, brands *repomocks.MockBrandRepository) {
				brands.EXPECT().GetByEmail(ctx, "contato@acme.com").Return(nil, errors.New("connection reset"))
			},
			expectedErr: ErrDatabaseOperation,
		},
		{
			name:        "Campos vazios",
			setup:       func(*testing.T, *repomocks.MockBrandRepository) {},
			expectedErr: ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, brands := newTestService(ctrl)
			tt.setup(t, brands)

			token, err := service.Login(ctx, tt.email, tt.password)
			if tt.expectedErr != nil {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)

			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, "BRD001", claims.BrandID)
			assert.Equal(t, domain.RoleBrand, claims.RoleID)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	t.Run("Token expirado", func(t *testing.T) {
		issued := time.Now().Add(-3 * time.Hour)
		service.now = func() time.Time { return issued }
		token, err := service.generateJWT(&domain.Brand{ID: "BRD001"})
		require.NoError(t, err)

		service.now = time.Now
		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Assinatura com outro segredo", func(t *testing.T) {
		claims := domain.Claims{
			BrandID:          "BRD001",
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("outro"))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("abc.def")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Papel padrão é marca", func(t *testing.T) {
		token, err := service.generateJWT(&domain.Brand{ID: "BRD002"})
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleBrand, claims.RoleID)
		assert.False(t, claims.IsAdmin())
	})
}
