package domain

import (
	"errors"
	"fmt"
)

type Page string

const (
	PageDashboard Page = "dashboard"
	PageSales     Page = "sales"
	PageInventory Page = "inventory"
	PageFinance   Page = "finance"
)

func (p Page) Valid() bool {
	switch p {
	case PageDashboard, PageSales, PageInventory, PageFinance:
		return true
	}
	return false
}

type ActionType string

const (
	ActionNavigate      ActionType = "navigate"
	ActionTogglePrivacy ActionType = "toggle_privacy"
	ActionSetPrivacy    ActionType = "set_privacy"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownPage   = errors.New("unknown page")
)

// AppState é o estado de navegação da camada de apresentação. É imutável:
// toda transição passa por Reduce e devolve um novo valor.
type AppState struct {
	Page        Page `json:"page"`
	PrivacyMode bool `json:"privacy_mode"`
}

type Action struct {
	Type    ActionType `json:"type"`
	Page    Page       `json:"page,omitempty"`
	Enabled bool       `json:"enabled,omitempty"`
}

func InitialAppState() AppState {
	return AppState{Page: PageDashboard}
}

// Reduce aplica a ação ao estado. Em erro o estado original é devolvido.
func Reduce(state AppState, action Action) (AppState, error) {
	if state.Page == "" {
		state.Page = PageDashboard
	}

	switch action.Type {
	case ActionNavigate:
		if !action.Page.Valid() {
			return state, fmt.Errorf("%w: %q", ErrUnknownPage, action.Page)
		}
		return AppState{Page: action.Page, PrivacyMode: state.PrivacyMode}, nil
	case ActionTogglePrivacy:
		return AppState{Page: state.Page, PrivacyMode: !state.PrivacyMode}, nil
	case ActionSetPrivacy:
		return AppState{Page: state.Page, PrivacyMode: action.Enabled}, nil
	default:
		return state, fmt.Errorf("%w: %q", ErrUnknownAction, action.Type)
	}
}
