package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload of an access token: {id, iat, exp}.
type Claims struct {
	AccountID string `json:"id"`
	jwt.RegisteredClaims
}

// AccountUUID parses the account ID carried by the token.
func (c *Claims) AccountUUID() (uuid.UUID, error) {
	return uuid.Parse(c.AccountID)
}

// TokenService issues and verifies signed, expiring access tokens.
type TokenService interface {
	// Issue signs a token asserting accountID.
	Issue(accountID uuid.UUID) (string, error)

	// Verify checks signature and expiry. Every failure is domainerrors.ErrInvalidToken.
	Verify(token string) (*Claims, error)
}
