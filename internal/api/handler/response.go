package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"
	"github.com/vfg2006/dropos-api/infrastructure/repository"
	"github.com/vfg2006/dropos-api/internal/domain"
	"github.com/vfg2006/dropos-api/internal/usecases/authenticating"
	"github.com/vfg2006/dropos-api/internal/usecases/dashboard"
	"github.com/vfg2006/dropos-api/pkg/apiErrors"
	"github.com/vfg2006/dropos-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// viewOptions lê privacy e refresh da query. Valores ilegíveis contam como false.
func viewOptions(r *http.Request) dashboard.ViewOptions {
	query := r.URL.Query()
	return dashboard.ViewOptions{
		Privacy: cast.ToBool(query.Get("privacy")),
		Refresh: cast.ToBool(query.Get("refresh")),
	}
}

// decodeBody lê o corpo JSON; em erro já responde 400
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
		return false
	}
	return true
}

// writeServiceError traduz os erros dos casos de uso para o contrato HTTP.
// Store indisponível vira 503: o cliente nunca recebe um total zerado no lugar.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var validationErr *dashboard.ValidationError
	var authErr *authenticating.AuthError

	switch {
	case errors.Is(err, domain.ErrStoreUnavailable):
		logger.Error("Store indisponível")
		apiErrors.WriteError(w, apiErrors.ErrStoreUnavailable, "Dados indisponíveis no momento", nil)

	case errors.Is(err, dashboard.ErrDuplicateName), errors.Is(err, repository.ErrConstraintViolation):
		logger.Warn("Registro em conflito")
		apiErrors.WriteError(w, apiErrors.ErrConflict, err.Error(), nil)

	case errors.Is(err, dashboard.ErrGenerateID):
		logger.Error("Falha ao gerar ID")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificador", nil)

	case errors.As(err, &validationErr):
		logger.Warn("Comando rejeitado")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validationErr.Error(), map[string]string{
			"field": validationErr.Field,
		})

	case errors.As(err, &authErr):
		logger.Warn("Falha de autenticação")
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)

	default:
		logger.Error("Erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}
