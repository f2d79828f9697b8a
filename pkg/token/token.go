package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrMissingSecret    = errors.New("signing secret is required")
)

// Kind distinguishes the two principal types a token can carry.
type Kind string

const (
	KindCompany   Kind = "company"
	KindApplicant Kind = "applicant"
)

// Claims represents the JWT claims carried by a credential.
type Claims struct {
	Kind Kind `json:"kind,omitempty"`
	jwt.RegisteredClaims
}

// Config holds token service configuration
type Config struct {
	Secret     []byte
	Issuer     string
	Expiration time.Duration
}

// Service signs and verifies bearer tokens
type Service struct {
	secret     []byte
	issuer     string
	expiration time.Duration
}

// NewService creates a new token service
func NewService(cfg Config) (*Service, error) {
	if len(cfg.Secret) == 0 {
		return nil, ErrMissingSecret
	}

	expiration := cfg.Expiration
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}

	return &Service{
		secret:     cfg.Secret,
		issuer:     cfg.Issuer,
		expiration: expiration,
	}, nil
}

// Sign issues a token for the given principal
func (s *Service) Sign(subject string, kind Kind) (string, error) {
	now := time.Now()

	claims := Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify validates a token string and returns its claims.
// The HMAC comparison inside the JWT library is constant-time.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrInvalidToken
		}
	}

	return claims, nil
}
