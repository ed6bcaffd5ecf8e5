package api

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultSessionTTL is the lifetime of a session token.
const DefaultSessionTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid session token")

type sessionClaims struct {
	Name string `json:"name"` // display name
	jwt.RegisteredClaims
}

// Sessions mints and validates HS256 session tokens whose subject is the
// player's wallet address.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// NewSessions returns a session issuer. An empty secret generates an
// in-memory secret for development; tokens then do not survive restarts.
func NewSessions(secret string, secureCookie bool) (*Sessions, error) {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := crand.Read(key); err != nil {
			return nil, errors.New("failed to generate dev session secret")
		}
	}
	return &Sessions{secret: key, ttl: DefaultSessionTTL, secure: secureCookie, now: time.Now}, nil
}

func (s *Sessions) create(wallet, name string) (string, error) {
	now := s.now()
	claims := sessionClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   wallet,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Sessions) parse(token string) (*sessionClaims, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
