package commands

import (
	"context"
	"fmt"

	"audioshelf/internal/domain"
	"audioshelf/internal/ports"
)

// SelectBookCommand marks a book as the one currently playing
type SelectBookCommand struct {
	repo      ports.BookRepository
	selection ports.SelectionStore
	BookID    int64
}

// NewSelectBookCommand creates a new SelectBookCommand
func NewSelectBookCommand(repo ports.BookRepository, selection ports.SelectionStore, id int64) *SelectBookCommand {
	return &SelectBookCommand{
		repo:      repo,
		selection: selection,
		BookID:    id,
	}
}

// Execute runs the select book command
func (c *SelectBookCommand) Execute(ctx context.Context) (*domain.Book, error) {
	book, err := getBook(ctx, c.repo, c.BookID)
	if err != nil {
		return nil, err
	}
	if err := c.selection.SetCurrentBookID(ctx, book.ID); err != nil {
		return nil, fmt.Errorf("failed to select book %d: %w", book.ID, err)
	}
	return book, nil
}

// CurrentBookCommand returns the currently selected book, or nil
type CurrentBookCommand struct {
	repo      ports.BookRepository
	selection ports.SelectionStore
}

// NewCurrentBookCommand creates a new CurrentBookCommand
func NewCurrentBookCommand(repo ports.BookRepository, selection ports.SelectionStore) *CurrentBookCommand {
	return &CurrentBookCommand{repo: repo, selection: selection}
}

// Execute runs the current book command
func (c *CurrentBookCommand) Execute(ctx context.Context) (*domain.Book, error) {
	id, ok, err := c.selection.CurrentBookID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read current book: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return c.repo.GetBook(ctx, id)
}
