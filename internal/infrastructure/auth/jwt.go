package auth

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"

	"github.com/playfield/tournament-service/internal/domain/user"
)

const tokenIssuerName = "tournament-service"

type accessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// JWTManager issues and verifies HMAC-signed access tokens carrying the
// principal's user id as subject and their role as a custom claim.
type JWTManager struct {
	secret []byte
}

func NewJWTManager(secret string) (*JWTManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &JWTManager{secret: []byte(secret)}, nil
}

func (m *JWTManager) Issue(principal user.Principal, expiry time.Time) (string, error) {
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuerName,
			Subject:   principal.UserID,
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Role: principal.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}
	return signed, nil
}

// VerifyAccessToken checks the signature and expiry and returns the embedded
// principal.
func (m *JWTManager) VerifyAccessToken(_ context.Context, tokenString string) (user.Principal, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.Newf("unexpected signing method %q", t.Method.Alg())
			}
			return m.secret, nil
		},
		jwt.WithIssuer(tokenIssuerName),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return user.Principal{}, errors.Wrap(err, "parse access token")
	}
	if !token.Valid || claims.Subject == "" {
		return user.Principal{}, errors.New("access token is not valid")
	}

	return user.Principal{UserID: claims.Subject, Role: claims.Role}, nil
}
