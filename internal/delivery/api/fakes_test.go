package api

import (
	"context"
	"slices"
	"sync"
	"time"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"

	"github.com/google/uuid"
)

// memStore is an in-memory record store shared by the fake repositories.
type memStore struct {
	mu       sync.Mutex
	accounts map[string]*entity.Account
	books    map[uuid.UUID]*entity.Book
}

func newMemStore() *memStore {
	return &memStore{
		accounts: make(map[string]*entity.Account),
		books:    make(map[uuid.UUID]*entity.Book),
	}
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *memStore) AccountRepo() repository.AccountRepository { return memAccounts{s} }

func (s *memStore) BookRepo() repository.BookRepository { return memBooks{s} }

type memAccounts struct{ s *memStore }

func (r memAccounts) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, account := range r.s.accounts {
		if account.ID == id {
			copied := *account

			return &copied, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r memAccounts) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	account, ok := r.s.accounts[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	copied := *account

	return &copied, nil
}

func (r memAccounts) Create(_ context.Context, account *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.accounts[account.Email]; ok {
		return domainerrors.ErrAccountExists.WrapMessage("email already registered")
	}

	account.ID = uuid.New()
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	copied := *account
	r.s.accounts[account.Email] = &copied

	return nil
}

type memBooks struct{ s *memStore }

func (r memBooks) List(context.Context) ([]*entity.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	books := make([]*entity.Book, 0, len(r.s.books))
	for _, book := range r.s.books {
		copied := *book
		books = append(books, &copied)
	}
	slices.SortFunc(books, func(a, b *entity.Book) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return books, nil
}

func (r memBooks) FindByID(_ context.Context, id uuid.UUID) (*entity.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	book, ok := r.s.books[id]
	if !ok {
		return nil, repository.ErrBookNotFound
	}
	copied := *book

	return &copied, nil
}

func (r memBooks) Create(_ context.Context, book *entity.Book) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	book.ID = uuid.New()
	book.CreatedAt = time.Now()
	book.UpdatedAt = book.CreatedAt
	copied := *book
	r.s.books[book.ID] = &copied

	return nil
}

func (r memBooks) Update(_ context.Context, book *entity.Book) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.books[book.ID]; !ok {
		return repository.ErrBookNotFound
	}
	book.UpdatedAt = time.Now()
	copied := *book
	r.s.books[book.ID] = &copied

	return nil
}

func (r memBooks) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.books[id]; !ok {
		return repository.ErrBookNotFound
	}
	delete(r.s.books, id)

	return nil
}
