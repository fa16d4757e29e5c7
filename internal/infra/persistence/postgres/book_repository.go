package postgres

import (
	"context"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookRepository implements repository.BookRepository using GORM.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository returns the repository as the domain interface.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

// List returns every book, oldest first.
func (repo *bookRepository) List(ctx context.Context) ([]*entity.Book, error) {
	var rows []*model.BookModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list books")
	}

	books := make([]*entity.Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, toBookDomain(row))
	}

	return books, nil
}

func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&bookM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find book by id")
	}

	return toBookDomain(&bookM), nil
}

// Create stores book and writes back the generated ID, timestamps and the price as stored.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		if isRejectedBookValue(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("book violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	book.ID = bookM.ID
	book.Price = bookM.Price
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// Update writes every mutable column so zero values (price 0, empty description) are persisted.
func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", book.ID).
		Select("title", "author", "price", "description", "updated_at").
		Updates(bookM)
	if result.Error != nil {
		if isRejectedBookValue(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("book violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	book.Price = bookM.Price
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

func (repo *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BookModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	return &entity.Book{
		ID:          data.ID,
		Title:       data.Title,
		Author:      data.Author,
		Price:       data.Price,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		ID:          data.ID,
		Title:       data.Title,
		Author:      data.Author,
		Price:       entity.RoundPrice(data.Price),
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
