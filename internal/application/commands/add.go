package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"audioshelf/internal/application"
	"audioshelf/internal/domain"
	"audioshelf/internal/ports"
)

// AddBookResult contains the result of adding a book
type AddBookResult struct {
	Book    domain.Book
	Message string
}

// AddBookCommand adds a book to the shelf
type AddBookCommand struct {
	repo     ports.BookRepository
	Name     string
	Author   string
	Duration int64
	// CoverExt is the extension of the cover file that will be dropped in
	// the covers directory (e.g. ".jpg"). A fresh cover key is generated.
	CoverExt string
	// CoverKey overrides the generated key when set
	CoverKey string
}

// NewAddBookCommand creates a new AddBookCommand
func NewAddBookCommand(repo ports.BookRepository, name, author string, duration int64) *AddBookCommand {
	return &AddBookCommand{
		repo:     repo,
		Name:     name,
		Author:   author,
		Duration: duration,
		CoverExt: ".jpg",
	}
}

// Validate checks if the add operation is valid
func (c *AddBookCommand) Validate() error {
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	if c.Duration <= 0 {
		return &application.ValidationError{
			Field:   "duration",
			Message: fmt.Sprintf("duration must be positive, got: %d", c.Duration),
		}
	}
	if strings.ContainsAny(c.CoverKey, `/\`) || c.CoverKey == ".." {
		return &application.ValidationError{
			Field:   "coverKey",
			Message: fmt.Sprintf("cover key must be a plain file name, got: %s", c.CoverKey),
		}
	}
	return nil
}

// Execute runs the add book command
func (c *AddBookCommand) Execute(ctx context.Context) (*AddBookResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	key := c.CoverKey
	if key == "" {
		key = NewCoverKey(c.CoverExt)
	}

	book, err := c.repo.AddBook(ctx, domain.Book{
		Name:     strings.TrimSpace(c.Name),
		Author:   strings.TrimSpace(c.Author),
		Duration: c.Duration,
		CoverKey: key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add %q: %w", c.Name, err)
	}

	return &AddBookResult{
		Book:    *book,
		Message: fmt.Sprintf("Added %d %s (cover: %s)", book.ID, book.Name, book.CoverKey),
	}, nil
}

// NewCoverKey returns a unique cover file name with the given extension
func NewCoverKey(ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return uuid.NewString() + ext
}
