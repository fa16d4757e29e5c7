package usecase

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBookInput defines the data required to add a book to the catalog.
// Prices are stored in cents precision, up to entity.MaxBookPrice.
type CreateBookInput struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Author      string  `json:"author" validate:"required,max=255"`
	Price       float64 `json:"price" validate:"gte=0,lte=99999999.99"`
	Description string  `json:"description"`
}

// UpdateBookInput is a partial update; nil fields are left unchanged.
type UpdateBookInput struct {
	ID          uuid.UUID `json:"-"`
	Title       *string   `json:"title" validate:"omitnil,min=1,max=255"`
	Author      *string   `json:"author" validate:"omitnil,min=1,max=255"`
	Price       *float64  `json:"price" validate:"omitnil,gte=0,lte=99999999.99"`
	Description *string   `json:"description"`
}

// BookUsecase defines catalog operations. All of them sit behind authentication.
type BookUsecase interface {
	List(ctx context.Context) ([]*entity.Book, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Book, error)
	Create(ctx context.Context, input *CreateBookInput) (*entity.Book, error)
	Update(ctx context.Context, input *UpdateBookInput) (*entity.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
