package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/dropos-api/internal/config"
	"github.com/vfg2006/dropos-api/internal/domain"
	"github.com/vfg2006/dropos-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const (
	operatorSubject = "operator"
	minPasswordLen  = 8
	defaultTokenTTL = 24 * time.Hour
)

// Authenticator autentica o único operador do painel
type Authenticator interface {
	Enabled() bool
	Login(password string) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg config.Auth
	now func() time.Time
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg: cfg.Auth,
		now: time.Now,
	}
}

// Enabled indica se as rotas exigem token
func (s *Service) Enabled() bool {
	return s.cfg.Enabled
}

func (s *Service) Login(password string) (*domain.LoginResponse, error) {
	if password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Senha é obrigatória")
	}

	if s.cfg.OperatorPasswordHash == "" {
		return nil, NewAuthError(ErrAuthNotConfigured, apiErrors.ErrInternalServer, "Defina AUTH_OPERATOR_PASSWORD_HASH")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.OperatorPasswordHash), []byte(password)); err != nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Senha incorreta")
	}

	token, err := s.generateJWT()
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return &domain.LoginResponse{
		Token:    token,
		Operator: s.cfg.OperatorName,
	}, nil
}

func (s *Service) generateJWT() (string, error) {
	ttl := s.cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := s.now()
	claims := domain.Claims{
		Operator: s.cfg.OperatorName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   operatorSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithSubject(operatorSubject))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

// HashPassword gera o hash bcrypt usado em AUTH_OPERATOR_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLen {
		return "", NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("a senha deve conter pelo menos %d caracteres", minPasswordLen))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
