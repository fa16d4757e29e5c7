package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bookstore/internal/domain/repository"
	mockRepo "bookstore/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx makes txManager run the callback against factory and return its error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}

func newAccountFactory(t *testing.T, accountRepo repository.AccountRepository) *mockRepo.MockRepositoryFactory {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(accountRepo).Maybe()

	return factory
}

func newBookFactory(t *testing.T, bookRepo repository.BookRepository) *mockRepo.MockRepositoryFactory {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().BookRepo().Return(bookRepo).Maybe()

	return factory
}
