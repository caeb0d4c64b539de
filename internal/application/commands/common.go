package commands

import (
	"context"
	"fmt"

	"audioshelf/internal/application"
	"audioshelf/internal/domain"
	"audioshelf/internal/ports"
)

// getBook loads a book and maps a missing row to ErrNotFound
func getBook(ctx context.Context, repo ports.BookRepository, id int64) (*domain.Book, error) {
	if err := application.ValidateID("bookID", id); err != nil {
		return nil, err
	}
	book, err := repo.GetBook(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load book %d: %w", id, err)
	}
	if book == nil {
		return nil, fmt.Errorf("book %d: %w", id, application.ErrNotFound)
	}
	return book, nil
}
