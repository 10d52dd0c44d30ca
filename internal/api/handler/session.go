package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/dropos-api/internal/domain"
	"github.com/vfg2006/dropos-api/pkg/apiErrors"
)

type ReduceSessionRequest struct {
	State  *domain.AppState `json:"state"`
	Action domain.Action    `json:"action"`
}

type ReduceSessionResponse struct {
	State domain.AppState `json:"state"`
}

// ReduceSession aplica uma ação ao estado de navegação enviado pelo cliente.
// Sem estado, parte do inicial.
func ReduceSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReduceSessionRequest
		if !decodeBody(w, r, &req) {
			return
		}

		state := domain.InitialAppState()
		if req.State != nil {
			state = *req.State
		}

		next, err := domain.Reduce(state, req.Action)
		if err != nil {
			field := "action.type"
			if errors.Is(err, domain.ErrUnknownPage) {
				field = "action.page"
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), map[string]any{
				"field": field,
				"state": next,
			})
			return
		}

		writeJSON(w, r, http.StatusOK, ReduceSessionResponse{State: next})
	}
}
