package shelf

import "context"

// CoverState tells what the cover region of a slot currently shows
type CoverState int

const (
	CoverEmpty CoverState = iota
	CoverLoading
	CoverImage
	CoverPlaceholder
)

func (c CoverState) String() string {
	switch c {
	case CoverEmpty:
		return "empty"
	case CoverLoading:
		return "loading"
	case CoverImage:
		return "image"
	case CoverPlaceholder:
		return "placeholder"
	}
	return "unknown"
}

// Slot is one reusable shelf row. Its exported fields are the painted
// state; the binder rewrites all of them on every full bind.
type Slot struct {
	id       int
	position int
	bookID   int64
	coverKey string

	Title         string
	TitleMaxLines int
	Author        string
	AuthorVisible bool

	Progress  float64 // In [0, 1]
	Elapsed   string
	Remaining string

	// IndicatorVisible marks the current selection. Derived on every bind.
	IndicatorVisible bool

	CoverAnchor string
	Cover       string
	CoverState  CoverState

	gen    uint64
	cancel context.CancelFunc
}

// NewSlot creates an unbound slot
func NewSlot(id int) *Slot {
	return &Slot{
		id:            id,
		position:      -1,
		TitleMaxLines: 1,
	}
}

// ID is the slot's own identity, stable across rebinds
func (s *Slot) ID() int {
	return s.id
}

// Position is the list index the slot is bound to, -1 when unbound
func (s *Slot) Position() int {
	return s.position
}

// BookID returns the ID of the bound book
func (s *Slot) BookID() int64 {
	return s.bookID
}

// Bound reports whether the slot currently shows a book
func (s *Slot) Bound() bool {
	return s.position >= 0
}

// Generation is bumped every time a cover load is started or abandoned
func (s *Slot) Generation() uint64 {
	return s.gen
}

// Loading reports whether a cover load is in flight
func (s *Slot) Loading() bool {
	return s.cancel != nil
}

func (s *Slot) cancelLoad() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
}
