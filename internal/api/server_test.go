package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/dropos-api/internal/config"
	"github.com/vfg2006/dropos-api/internal/domain"
	"github.com/vfg2006/dropos-api/internal/usecases/authenticating"
	"github.com/vfg2006/dropos-api/internal/usecases/dashboard"
	"github.com/vfg2006/dropos-api/internal/usecases/dashboard/mocks"
	"go.uber.org/mock/gomock"
)

func TestNewHandler_routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().
		GetDashboard(gomock.Any(), dashboard.ViewOptions{Privacy: true}).
		Return(&domain.DashboardView{RevenueToday: "R$ ****"}, nil)

	cfg := &config.Config{}
	auth := authenticating.NewService(cfg)
	h := NewHandler(cfg, service, auth, nil)

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{method: http.MethodGet, path: "/healthcheck", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/v1/dashboard?privacy=true", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/v1/unknown", wantStatus: http.StatusNotFound},
		{method: http.MethodPost, path: "/v1/cron/daily-summary/run", wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNewHandler_requiresTokenWhenAuthEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)

	cfg := &config.Config{Auth: config.Auth{Enabled: true, Secret: "segredo", OperatorPasswordHash: "x"}}
	h := NewHandler(cfg, service, authenticating.NewService(cfg), nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
