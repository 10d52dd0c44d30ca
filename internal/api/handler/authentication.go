package handler

import (
	"net/http"

	"github.com/vfg2006/dropos-api/internal/domain"
	"github.com/vfg2006/dropos-api/internal/usecases/authenticating"
	"github.com/vfg2006/dropos-api/pkg/apiErrors"
	"github.com/vfg2006/dropos-api/pkg/log"
	"github.com/vfg2006/dropos-api/pkg/middleware"
)

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.Login(req.Password)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).Info("Operador autenticado")
		writeJSON(w, r, http.StatusOK, resp)
	}
}

// GetMe retorna o operador do token atual
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !service.Enabled() {
			writeJSON(w, r, http.StatusOK, map[string]any{"auth_enabled": false})
			return
		}

		claims, ok := middleware.OperatorFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Operador não autenticado", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"auth_enabled": true,
			"operator":     claims.Operator,
			"expires_at":   claims.ExpiresAt,
		})
	}
}
