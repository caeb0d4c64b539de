package commands

import (
	"context"
	"fmt"

	"audioshelf/internal/application"
	"audioshelf/internal/ports"
)

// RemoveResult contains the result of a remove operation
type RemoveResult struct {
	RemovedID int64
	Message   string
	// OrphanedCover is the cover key no remaining book uses, if any
	OrphanedCover string
}

// RemoveBookCommand removes a book from the shelf
type RemoveBookCommand struct {
	repo   ports.BookRepository
	BookID int64
}

// NewRemoveBookCommand creates a new RemoveBookCommand
func NewRemoveBookCommand(repo ports.BookRepository, id int64) *RemoveBookCommand {
	return &RemoveBookCommand{
		repo:   repo,
		BookID: id,
	}
}

// Validate checks if the remove operation is valid
func (c *RemoveBookCommand) Validate() error {
	return application.ValidateID("bookID", c.BookID)
}

// Execute runs the remove command
func (c *RemoveBookCommand) Execute(ctx context.Context) (*RemoveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	book, err := getBook(ctx, c.repo, c.BookID)
	if err != nil {
		return nil, err
	}

	if err := c.repo.RemoveBook(ctx, c.BookID); err != nil {
		return nil, fmt.Errorf("failed to remove %d: %w", c.BookID, err)
	}

	result := &RemoveResult{
		RemovedID: c.BookID,
		Message:   fmt.Sprintf("Removed %d %s", book.ID, book.Name),
	}

	// The removal already happened, a failed lookup only loses the hint
	if book.CoverKey != "" {
		if ids, err := c.repo.FindByCoverKey(ctx, book.CoverKey); err == nil && len(ids) == 0 {
			result.OrphanedCover = book.CoverKey
			result.Message += fmt.Sprintf(" (cover %s is no longer used)", book.CoverKey)
		}
	}
	return result, nil
}
