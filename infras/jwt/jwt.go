package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"time"

	"tick/config"
	"tick/shared/constant"
	"tick/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrInvalidClaim   = errors.New("invalid token claim")
)

// Claims is what a session token asserts: the owning user and the access
// tag. The codec is a pure cryptographic transform; whether the token is
// still honored is decided against the user's persisted token list.
type Claims struct {
	UserID string `json:"user_id"`
	Access string `json:"access"`
	jwt.RegisteredClaims
}

// JWT is the token codec.
type JWT interface {
	Issue(userID string) (string, error)
	Verify(tokenString string) (*Claims, error)
}

type Service struct {
	config *config.Config
}

// New creates a new token codec using the process-wide signing secret.
func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

// Issue signs a token asserting the given user identity with the "auth"
// access tag.
func (s *Service) Issue(userID string) (string, error) {
	claims := Claims{
		UserID: userID,
		Access: constant.TokenAccessAuth,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: userID,
			Issuer:  s.config.App.Name,
		},
	}

	if s.config.JWT.ExpireMin > 0 {
		now := timezone.Now()
		claims.IssuedAt = jwt.NewNumericDate(now)
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(time.Duration(s.config.JWT.ExpireMin) * time.Minute))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify decodes the token and checks its signature and access tag.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.config.JWT.Secret), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		default:
			return nil, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == "" || claims.Access != constant.TokenAccessAuth {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}
