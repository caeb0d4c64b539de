package commands

import (
	"context"
	"fmt"

	"audioshelf/internal/application"
	"audioshelf/internal/domain"
	"audioshelf/internal/ports"
)

// SetProgressResult contains the result of a position update
type SetProgressResult struct {
	Book    domain.Book
	Message string
}

// SetProgressCommand moves the playback position of a book
type SetProgressCommand struct {
	repo     ports.BookRepository
	BookID   int64
	Position int64
}

// NewSetProgressCommand creates a new SetProgressCommand
func NewSetProgressCommand(repo ports.BookRepository, id, position int64) *SetProgressCommand {
	return &SetProgressCommand{
		repo:     repo,
		BookID:   id,
		Position: position,
	}
}

// Validate checks if the update is valid
func (c *SetProgressCommand) Validate() error {
	if err := application.ValidateID("bookID", c.BookID); err != nil {
		return err
	}
	return application.ValidateNonNegative("position", c.Position)
}

// Execute runs the set progress command
func (c *SetProgressCommand) Execute(ctx context.Context) (*SetProgressResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	book, err := getBook(ctx, c.repo, c.BookID)
	if err != nil {
		return nil, err
	}
	if c.Position > book.Duration {
		return nil, &application.ProgressError{
			BookID:   c.BookID,
			Position: c.Position,
			Reason:   fmt.Sprintf("past the end (%s)", domain.FormatTime(book.Duration)),
		}
	}

	if err := c.repo.UpdatePosition(ctx, c.BookID, c.Position); err != nil {
		return nil, fmt.Errorf("failed to update book %d: %w", c.BookID, err)
	}

	book.Position = c.Position
	return &SetProgressResult{
		Book: *book,
		Message: fmt.Sprintf("%s at %s of %s",
			book.Name, domain.FormatTime(book.Position), domain.FormatTime(book.Duration)),
	}, nil
}

// FinishBookCommand moves a book to its end
type FinishBookCommand struct {
	repo   ports.BookRepository
	BookID int64
}

// NewFinishBookCommand creates a new FinishBookCommand
func NewFinishBookCommand(repo ports.BookRepository, id int64) *FinishBookCommand {
	return &FinishBookCommand{repo: repo, BookID: id}
}

// Execute runs the finish book command
func (c *FinishBookCommand) Execute(ctx context.Context) (*SetProgressResult, error) {
	book, err := getBook(ctx, c.repo, c.BookID)
	if err != nil {
		return nil, err
	}
	return NewSetProgressCommand(c.repo, c.BookID, book.Duration).Execute(ctx)
}
