// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bookstore/internal/domain/entity"
)

// SignupInput defines the data required to register an account.
type SignupInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,password"`
}

// SigninInput defines the data required to sign in.
type SigninInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,password"`
}

// SignupOutput returns the newly created account.
type SignupOutput struct {
	Account *entity.Account
}

// SigninOutput carries the access token issued at signin.
type SigninOutput struct {
	Token string `json:"token"`
}

// AccountUsecase defines account registration and credential exchange.
type AccountUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Signin(ctx context.Context, input *SigninInput) (*SigninOutput, error)
}
