package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type bookService struct {
	txManager repository.TransactionManager
	bookRepo  repository.BookRepository
	cache     repository.BookCache
	logger    *slog.Logger
}

// BookServiceParams holds dependencies for bookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BookRepo  repository.BookRepository
	Cache     repository.BookCache
	Logger    *slog.Logger
}

// NewBookService is the constructor for bookService, injected by Fx.
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	return &bookService{
		txManager: params.TxManager,
		bookRepo:  params.BookRepo,
		cache:     params.Cache,
		logger:    params.Logger,
	}
}

func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *bookService) List(ctx context.Context) ([]*entity.Book, error) {
	books, err := srv.bookRepo.List(ctx)
	if err != nil {
		logFailure(srv.log(ctx), "Failed to list books", err)

		return nil, errors.Wrap(err, "failed to list books")
	}

	return books, nil
}

// Get reads through the cache. Cache failures are logged and fall back to the store.
func (srv *bookService) Get(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	cached, err := srv.cache.Get(ctx, id)
	if err != nil {
		srv.log(ctx).Warn("Book cache read failed", slog.Any("bookID", id), slog.Any("error", err))
	}
	if cached != nil {
		return cached, nil
	}

	book, err := srv.bookRepo.FindByID(ctx, id)
	if err != nil {
		err = mapBookError(err)
		logFailure(srv.log(ctx), "Failed to get book", err, slog.Any("bookID", id))

		return nil, err
	}

	if err := srv.cache.Set(ctx, book); err != nil {
		srv.log(ctx).Warn("Book cache write failed", slog.Any("bookID", id), slog.Any("error", err))
	}

	return book, nil
}

func (srv *bookService) Create(ctx context.Context, input *usecase.CreateBookInput) (*entity.Book, error) {
	if input.Title == "" || input.Author == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "title and author are required")
	}
	if !entity.ValidPrice(input.Price) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price is out of range")
	}

	book := &entity.Book{
		Title:       input.Title,
		Author:      input.Author,
		Price:       entity.RoundPrice(input.Price),
		Description: input.Description,
	}
	if err := srv.bookRepo.Create(ctx, book); err != nil {
		logFailure(srv.log(ctx), "Failed to create book", err)

		return nil, errors.Wrap(err, "failed to create book")
	}

	srv.log(ctx).Info("Book created", slog.Any("bookID", book.ID))

	return book, nil
}

// Update applies the non-nil fields of input to the stored book.
func (srv *bookService) Update(ctx context.Context, input *usecase.UpdateBookInput) (*entity.Book, error) {
	if err := checkBookPatch(input); err != nil {
		return nil, err
	}

	var updated *entity.Book
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()

		book, err := bookRepo.FindByID(ctx, input.ID)
		if err != nil {
			return mapBookError(err)
		}

		applyBookPatch(book, input)

		if err := bookRepo.Update(ctx, book); err != nil {
			return mapBookError(err)
		}

		updated = book

		return nil
	})
	if err != nil {
		logFailure(srv.log(ctx), "Failed to update book", err, slog.Any("bookID", input.ID))

		return nil, errors.Wrap(err, "failed to execute book update transaction")
	}

	srv.invalidate(ctx, input.ID)
	srv.log(ctx).Info("Book updated", slog.Any("bookID", input.ID))

	return updated, nil
}

func (srv *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.bookRepo.Delete(ctx, id); err != nil {
		err = mapBookError(err)
		logFailure(srv.log(ctx), "Failed to delete book", err, slog.Any("bookID", id))

		return err
	}

	srv.invalidate(ctx, id)
	srv.log(ctx).Info("Book deleted", slog.Any("bookID", id))

	return nil
}

func (srv *bookService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := srv.cache.Delete(ctx, id); err != nil {
		srv.log(ctx).Warn("Book cache invalidation failed", slog.Any("bookID", id), slog.Any("error", err))
	}
}

func mapBookError(err error) error {
	if errors.Is(err, repository.ErrBookNotFound) {
		return errors.Wrap(domainerrors.ErrBookNotFound, err.Error())
	}

	return errors.Wrap(err, "book store failure")
}

func checkBookPatch(input *usecase.UpdateBookInput) error {
	if input.Title != nil && *input.Title == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "title must not be empty")
	}
	if input.Author != nil && *input.Author == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "author must not be empty")
	}
	if input.Price != nil && !entity.ValidPrice(*input.Price) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "price is out of range")
	}

	return nil
}

func applyBookPatch(book *entity.Book, input *usecase.UpdateBookInput) {
	if input.Title != nil {
		book.Title = *input.Title
	}
	if input.Author != nil {
		book.Author = *input.Author
	}
	if input.Price != nil {
		book.Price = entity.RoundPrice(*input.Price)
	}
	if input.Description != nil {
		book.Description = *input.Description
	}
}
