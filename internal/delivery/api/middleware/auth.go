package middleware

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bookstore/internal/delivery/context"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// Authenticator decides whether an Authorization header grants access.
type Authenticator struct {
	tokenSvc service.TokenService
}

// NewAuthenticator is the constructor for Authenticator.
func NewAuthenticator(tokenSvc service.TokenService) *Authenticator {
	return &Authenticator{tokenSvc: tokenSvc}
}

// Authenticate returns ctx enriched with the token's account ID, or
// ErrMissingToken when no bearer token is present, or ErrInvalidToken when
// verification fails. It has no other side effects.
func (a *Authenticator) Authenticate(ctx context.Context, header string) (context.Context, error) {
	rest, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return nil, domainerrors.ErrMissingToken
	}

	token := strings.TrimSpace(rest)
	if token == "" {
		return nil, domainerrors.ErrMissingToken
	}

	claims, err := a.tokenSvc.Verify(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token verification failed")
	}

	accountID, err := claims.AccountUUID()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token carries no account id")
	}

	ctx = deliverycontext.WithAccountID(ctx, accountID)
	if logger := deliverycontext.GetLogger(ctx); logger != nil {
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("account_id", accountID.String())))
	}

	return ctx, nil
}

// AuthMiddleware adapts Authenticator to echo.
type AuthMiddleware struct {
	authenticator *Authenticator
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authenticator *Authenticator) *AuthMiddleware {
	return &AuthMiddleware{authenticator: authenticator}
}

// Authenticate rejects the request through the error handler, or calls next
// exactly once with the authenticated context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		ctx, err := m.authenticator.Authenticate(req.Context(), req.Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return err
		}

		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
