package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dropos-api/internal/domain"
	"github.com/vfg2006/dropos-api/internal/usecases/authenticating"
	"github.com/vfg2006/dropos-api/pkg/apiErrors"
)

type fakeAuthenticator struct {
	enabled bool
	claims  *domain.Claims
	err     error
}

func (f fakeAuthenticator) Enabled() bool { return f.enabled }

func (f fakeAuthenticator) Login(string) (*domain.LoginResponse, error) { return nil, nil }

func (f fakeAuthenticator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func okHandler(t *testing.T, wantOperator bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := OperatorFromContext(r.Context())
		assert.Equal(t, wantOperator, ok)
		if ok {
			assert.Equal(t, "Operador Alfa", claims.Operator)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	valid := fakeAuthenticator{enabled: true, claims: &domain.Claims{Operator: "Operador Alfa"}}
	expired := fakeAuthenticator{
		enabled: true,
		err:     authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""),
	}

	tests := []struct {
		name         string
		auth         fakeAuthenticator
		path         string
		header       string
		wantStatus   int
		wantOperator bool
	}{
		{name: "desligada deixa passar", auth: fakeAuthenticator{}, path: "/v1/dashboard", wantStatus: http.StatusNoContent},
		{name: "rota pública", auth: valid, path: "/v1/login", wantStatus: http.StatusNoContent},
		{name: "sem header", auth: valid, path: "/v1/dashboard", wantStatus: http.StatusUnauthorized},
		{name: "sem Bearer", auth: valid, path: "/v1/dashboard", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "token expirado", auth: expired, path: "/v1/dashboard", header: "Bearer x", wantStatus: http.StatusUnauthorized},
		{name: "token válido", auth: valid, path: "/v1/dashboard", header: "Bearer x", wantStatus: http.StatusNoContent, wantOperator: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.auth)(okHandler(t, tt.wantOperator)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	t.Run("token expirado devolve o código do erro", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.Header.Set("Authorization", "Bearer x")
		rec := httptest.NewRecorder()

		AuthMiddleware(expired)(okHandler(t, false)).ServeHTTP(rec, req)

		assert.Contains(t, rec.Body.String(), apiErrors.ErrExpiredToken)
	})
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("origem liberada", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/sales", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLoggingMiddleware_setsCorrelationID(t *testing.T) {
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sales", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500 µs", formatDuration(500_000))
	assert.Equal(t, "12 ms", formatDuration(12_000_000))
	assert.Equal(t, "1.50 s", formatDuration(1_500_000_000))
}
