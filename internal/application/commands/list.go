package commands

import (
	"context"

	"audioshelf/internal/domain"
	"audioshelf/internal/ports"
)

// ListBooksCommand lists every book on the shelf
type ListBooksCommand struct {
	repo ports.BookRepository
}

// NewListBooksCommand creates a new ListBooksCommand
func NewListBooksCommand(repo ports.BookRepository) *ListBooksCommand {
	return &ListBooksCommand{repo: repo}
}

// Execute runs the list books command
func (c *ListBooksCommand) Execute(ctx context.Context) ([]domain.Book, error) {
	return c.repo.ListBooks(ctx)
}

// GetBookCommand fetches a single book
type GetBookCommand struct {
	repo   ports.BookRepository
	BookID int64
}

// NewGetBookCommand creates a new GetBookCommand
func NewGetBookCommand(repo ports.BookRepository, id int64) *GetBookCommand {
	return &GetBookCommand{repo: repo, BookID: id}
}

// Execute runs the get book command
func (c *GetBookCommand) Execute(ctx context.Context) (*domain.Book, error) {
	return getBook(ctx, c.repo, c.BookID)
}
