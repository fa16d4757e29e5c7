package repository

import (
	"context"
	"errors"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookNotFound is returned when no book matches the given ID.
var ErrBookNotFound = errors.New("book not found")

// BookRepository defines book persistence.
type BookRepository interface {
	List(ctx context.Context) ([]*entity.Book, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)
	Create(ctx context.Context, book *entity.Book) error
	// Update saves every field of book; it returns ErrBookNotFound if the row is gone.
	Update(ctx context.Context, book *entity.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookCache is a best-effort read cache in front of BookRepository.
// A miss is reported as (nil, nil).
type BookCache interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Book, error)
	Set(ctx context.Context, book *entity.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
}
