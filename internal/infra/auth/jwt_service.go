package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bookstore/config"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/service"
	"bookstore/internal/errors"
)

// errMissingSecret aborts startup; an unsigned deployment must never serve requests.
var errMissingSecret = errors.New("jwt access secret must be provided")

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte        // Process-wide signing key, fixed at construction.
	ttl    time.Duration // Lifetime of every issued token.
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTService builds the token service from configuration.
// It fails when the access secret is empty.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.SecretKey.Access == "" {
		return nil, errors.WithStack(errMissingSecret)
	}

	ttl := config.DefaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return newJWTService([]byte(cfg.SecretKey.Access), ttl, time.Now), nil
}

func newJWTService(secret []byte, ttl time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		secret: secret,
		ttl:    ttl,
		now:    now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithTimeFunc(now),
		),
	}
}

// Issue signs {id, iat, exp} for accountID.
func (s *jwtService) Issue(accountID uuid.UUID) (string, error) {
	issuedAt := s.now()
	claims := &service.Claims{
		AccountID: accountID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error()), "sign access token")
	}

	return signed, nil
}

// Verify parses tokenString and checks signature, algorithm and expiry.
// The cause is dropped on purpose: callers only ever see ErrInvalidToken.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	if _, err := claims.AccountUUID(); err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	return claims, nil
}
