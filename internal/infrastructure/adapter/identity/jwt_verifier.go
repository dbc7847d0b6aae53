package identity

import (
	"context"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/identity"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by tokens the JWT verifier accepts
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256 tokens signed with a shared secret
type JWTVerifier struct {
	secret       []byte
	issuer       string
	timeProvider coreport.TimeProvider
}

var _ identity.Verifier = (*JWTVerifier)(nil)

// NewJWTVerifier checks the issuer only when one is configured
func NewJWTVerifier(secret, issuer string, timeProvider coreport.TimeProvider) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), issuer: issuer, timeProvider: timeProvider}
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (*identity.Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errs.ErrUnauthorized
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.timeProvider.Now),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnauthorized, err)
	}
	if strings.TrimSpace(claims.Email) == "" {
		return nil, fmt.Errorf("%w: token has no email claim", errs.ErrUnauthorized)
	}

	return &identity.Identity{Subject: claims.Subject, Email: claims.Email}, nil
}

// IssueToken signs a token for email; used by tests and the load script
func IssueToken(secret, issuer, email string, expiresIn coreport.Duration, timeProvider coreport.TimeProvider) (string, error) {
	now := timeProvider.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn.Std())),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
