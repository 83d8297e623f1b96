package service

import (
	"fmt"
	"freshpack-backend/internal/config"
	"freshpack-backend/internal/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	ID    uint       `json:"id"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.Role == model.RoleAdmin
}

type TokenManager interface {
	Issue(user *model.User) (string, error)
	Parse(token string) (*Claims, error)
}

type jwtTokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(cfg config.JWT) TokenManager {
	return &jwtTokenManager{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		now:    time.Now,
	}
}

func (m *jwtTokenManager) Issue(user *model.User) (string, error) {
	now := m.now()
	claims := Claims{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *jwtTokenManager) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, newError(ErrForbidden, "Invalid token")
	}

	return claims, nil
}
