package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type BaseClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

func (p *AuthProcessor) generateJWTToken(ctx context.Context, email string) (string, time.Time, error) {
	issuedAt := p.now()
	expirationTime := issuedAt.Add(tokenTTL)

	claims := BaseClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenIssuer},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
		Role: adminRole,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(p.jwtSecret)
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", time.Time{}, ErrFailedSignIn
	}

	return tokenString, expirationTime, nil
}

// ValidateJWTToken parses an admin token and checks its signature, issuer,
// audience and expiry.
func (p *AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (BaseClaims, error) {
	var claims BaseClaims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.jwtSecret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		p.logger.InfoWithError(ctx, "rejected jwt token", err)
		return BaseClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !t.Valid || claims.Role != adminRole {
		return BaseClaims{}, ErrInvalidToken
	}

	return claims, nil
}
