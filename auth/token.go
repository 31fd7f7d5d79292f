package auth

import (
	"errors"
	"time"

	"postboard/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID    uint64 `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenService issues and verifies the access/refresh token pair. It is an
// interface so the HTTP layer and its tests never touch signing or claims
// parsing directly.
type TokenService interface {
	IssuePair(userID uint64) (TokenPair, error)
	VerifyAccess(token string) (*Claims, error)
	Refresh(refreshToken string) (string, error)
}

// Tokens is the process-wide token service, set up by Init.
var Tokens TokenService

func Init() {
	if config.JWT_SECRET == "" {
		panic("JWT_SECRET is not set")
	}
	Tokens = &jwtService{
		secret:     []byte(config.JWT_SECRET),
		accessTTL:  time.Duration(config.ACCESS_TOKEN_MINUTES) * time.Minute,
		refreshTTL: time.Duration(config.REFRESH_TOKEN_HOURS) * time.Hour,
	}
}

type jwtService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func (s *jwtService) sign(userID uint64, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *jwtService) parse(token, wantType string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.TokenType != wantType || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *jwtService) IssuePair(userID uint64) (TokenPair, error) {
	access, err := s.sign(userID, TokenTypeAccess, s.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.sign(userID, TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *jwtService) VerifyAccess(token string) (*Claims, error) {
	return s.parse(token, TokenTypeAccess)
}

func (s *jwtService) Refresh(refreshToken string) (string, error) {
	claims, err := s.parse(refreshToken, TokenTypeRefresh)
	if err != nil {
		return "", err
	}
	return s.sign(claims.UserID, TokenTypeAccess, s.accessTTL)
}
