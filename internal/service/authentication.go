// File: internal/service/authentication.go
package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"job-portal/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims

	ErrInvalidToken = errors.New("invalid token")
)

// CustomClaims is the payload of a session token. Subject holds the user id.
type CustomClaims struct {
	Role        model.Role `json:"role"`
	ProfileName string     `json:"profile_name"`
	jwt.RegisteredClaims
}

// UserID returns the id of the user the token was issued to.
func (c *CustomClaims) UserID() string {
	return c.Subject
}

// Credentials hashes passwords and signs session tokens with one secret.
type Credentials struct {
	secret []byte
	ttl    time.Duration
	cost   int

	dummyOnce sync.Once
	dummyHash []byte
}

func NewCredentials(secret string, ttl time.Duration, cost int) *Credentials {
	return &Credentials{
		secret: []byte(secret),
		ttl:    ttl,
		cost:   clampCost(cost),
	}
}

// IssueAccessToken signs an HS256 token for user that expires after the configured TTL.
func (c *Credentials) IssueAccessToken(user model.User) (string, error) {
	if len(c.secret) == 0 {
		return "", fmt.Errorf("IssueAccessToken: empty secret")
	}

	now := timeNow()
	claims := CustomClaims{
		Role:        user.Role,
		ProfileName: user.ProfileName(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// VerifyAccessToken parses tokenString and returns its claims. Expired tokens,
// bad signatures and non-HMAC algorithms are rejected.
func (c *Credentials) VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(timeNow))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims, nil
}
