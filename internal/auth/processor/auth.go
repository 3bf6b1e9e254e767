package processor

import (
	"context"
	"crypto/subtle"
	"errors"
	"shop-admin/internal/config"
	"shop-admin/internal/observability"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL    = 24 * time.Hour
	tokenIssuer = "shop-admin"
	adminRole   = "admin"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrFailedSignIn       = errors.New("failed to sign in")
)

type AuthProcessor struct {
	adminEmail        string
	adminPasswordHash []byte
	jwtSecret         []byte
	logger            *observability.Logger
	now               func() time.Time
}

func New(cfg config.AuthConfig, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		adminEmail:        strings.ToLower(strings.TrimSpace(cfg.AdminEmail)),
		adminPasswordHash: []byte(cfg.AdminPasswordHash),
		jwtSecret:         []byte(cfg.JWTSecret),
		logger:            logger,
		now:               time.Now,
	}
}

type LoggedInAdmin struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Email     string    `json:"email"`
}

// Login checks the credentials against the configured admin account.
func (p *AuthProcessor) Login(ctx context.Context, email string, password string) (LoggedInAdmin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	emailMatches := subtle.ConstantTimeCompare([]byte(email), []byte(p.adminEmail)) == 1
	// The hash is always compared so an unknown email costs the same as a bad password.
	err := bcrypt.CompareHashAndPassword(p.adminPasswordHash, []byte(password))
	if !emailMatches || err != nil {
		p.logger.Warn(ctx, "admin login rejected")
		return LoggedInAdmin{}, ErrInvalidCredentials
	}

	token, expiresAt, err := p.generateJWTToken(ctx, email)
	if err != nil {
		return LoggedInAdmin{}, err
	}

	p.logger.Info(ctx, "admin logged in")
	return LoggedInAdmin{Token: token, ExpiresAt: expiresAt, Email: email}, nil
}

// HashPassword returns the bcrypt hash to configure as ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
