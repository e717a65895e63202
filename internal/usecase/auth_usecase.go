package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const adminTokenIssuer = "barberapp"

// AuthConfig holds the single admin credential and the token settings.
type AuthConfig struct {
	AdminEmail    string
	AdminPassword string
	JWTSecret     string
	TokenTTL      time.Duration
}

// Session is the result of a successful admin login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Email     string    `json:"email"`
}

// IAuthUseCase guards the admin panel.
//
// There is exactly one admin account; its credential comes from configuration.
type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (Session, error)
	VerifyToken(token string) (*jwt.RegisteredClaims, error)
}

type AuthUseCase struct {
	cfg AuthConfig
	now func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(cfg AuthConfig) *AuthUseCase {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &AuthUseCase{cfg: cfg, now: time.Now}
}

func (u *AuthUseCase) Login(_ context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	vErr := check([]fieldRule{
		{field: "email", value: email, tag: "required,email", key: "login_page.email_error"},
		{field: "password", value: password, tag: "min=6", key: "login_page.password_error"},
	})
	if err := vErr.errOrNil(); err != nil {
		return Session{}, err
	}
	if u.cfg.JWTSecret == "" {
		log.Printf("[auth][usecase] login refused: signing secret not configured")
		return Session{}, ErrAuthNotConfigured
	}

	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(email)), []byte(strings.ToLower(u.cfg.AdminEmail))) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(u.cfg.AdminPassword)) == 1
	if !emailOK || !passOK {
		log.Printf("[auth][usecase] warn login rejected email=%q", email)
		return Session{}, ErrInvalidCredentials
	}

	now := u.now().UTC()
	expiresAt := now.Add(u.cfg.TokenTTL)
	claims := jwt.RegisteredClaims{
		Issuer:    adminTokenIssuer,
		Subject:   u.cfg.AdminEmail,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		log.Printf("[auth][usecase] token signing failed err=%v", err)
		return Session{}, err
	}
	log.Printf("[auth][usecase] login ok email=%q", email)
	return Session{Token: signed, ExpiresAt: expiresAt, Email: u.cfg.AdminEmail}, nil
}

// VerifyToken accepts only HS256 tokens issued by this service that have not expired.
func (u *AuthUseCase) VerifyToken(token string) (*jwt.RegisteredClaims, error) {
	if u.cfg.JWTSecret == "" {
		return nil, ErrAuthNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(u.cfg.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(adminTokenIssuer),
		jwt.WithTimeFunc(u.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	return claims, nil
}
