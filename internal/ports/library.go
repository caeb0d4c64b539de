package ports

import (
	"context"

	"audioshelf/internal/domain"
)

// BookRepository defines the interface for book storage operations
type BookRepository interface {
	// ListBooks returns every book, sorted with domain.SortBooks
	ListBooks(ctx context.Context) ([]domain.Book, error)
	GetBook(ctx context.Context, id int64) (*domain.Book, error)

	// AddBook stores a new book and returns it with its assigned ID
	AddBook(ctx context.Context, book domain.Book) (*domain.Book, error)
	UpdatePosition(ctx context.Context, id int64, position int64) error
	RemoveBook(ctx context.Context, id int64) error

	// FindByCoverKey returns the IDs of the books using a cover key
	FindByCoverKey(ctx context.Context, key string) ([]int64, error)
}

// Library is a book store that also remembers the current book
type Library interface {
	BookRepository
	SelectionStore
}
