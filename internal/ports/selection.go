package ports

import "context"

// SelectionReader answers whether a book is the currently selected one.
// The shelf only ever reads it.
type SelectionReader interface {
	IsCurrentSelection(id int64) bool
}

// SelectionFunc adapts a plain function to SelectionReader
type SelectionFunc func(id int64) bool

func (f SelectionFunc) IsCurrentSelection(id int64) bool {
	return f(id)
}

// SelectionStore persists the current book preference
type SelectionStore interface {
	// CurrentBookID returns the selected book, ok is false when none is set
	CurrentBookID(ctx context.Context) (id int64, ok bool, err error)
	SetCurrentBookID(ctx context.Context, id int64) error
}
