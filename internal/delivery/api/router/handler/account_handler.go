// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"bookstore/internal/delivery/api/response"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler serves signup and signin.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Signup handles POST /api/auth/signup.
func (h *AccountHandler) Signup(c echo.Context) error {
	input := new(usecase.SignupInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	if _, err := h.uc.Signup(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "User registered successfully!")
}

// Signin handles POST /api/auth/signin. The token goes to the client only.
func (h *AccountHandler) Signin(c echo.Context) error {
	input := new(usecase.SigninInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output, err := h.uc.Signin(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is not valid JSON")
	}

	return c.Validate(input)
}
