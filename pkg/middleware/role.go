package middleware

import (
	"net/http"
	"slices"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/pkg/apiErrors"
)

// RoleMiddleware restringe o acesso aos roles informados
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authenticated", nil)
				return
			}

			if !slices.Contains(allowedRoles, claims.RoleID) {
				logrus.WithFields(logrus.Fields{
					"brand_id": claims.BrandID,
					"role_id":  claims.RoleID,
				}).Warning("Acesso negado por role")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "You are not allowed to access this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleAdmin})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleAdmin, domain.RoleBrand})
}

// BrandScoped permite a rota apenas para a própria marca (parâmetro da URL) ou administradores
func BrandScoped(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authenticated", nil)
				return
			}

			brandID := httprouter.ParamsFromContext(r.Context()).ByName(param)
			if !claims.CanAccessBrand(brandID) {
				logrus.WithFields(logrus.Fields{
					"brand_id":        claims.BrandID,
					"target_brand_id": brandID,
				}).Warning("Acesso negado a outra marca")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "You are not allowed to access this brand", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
