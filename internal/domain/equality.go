package domain

// Change describes which render-relevant fields differ between two
// snapshots of the same book.
type Change uint8

const (
	ChangeProgress Change = 1 << iota
	ChangeName
)

// Empty reports whether no field is flagged
func (c Change) Empty() bool {
	return c == 0
}

// OnlyProgress reports whether the progress indicator is the only thing to refresh
func (c Change) OnlyProgress() bool {
	return c == ChangeProgress
}

func (c Change) String() string {
	switch c {
	case 0:
		return "none"
	case ChangeProgress:
		return "progress"
	case ChangeName:
		return "name"
	case ChangeProgress | ChangeName:
		return "progress|name"
	}
	return "unknown"
}

// SameItem reports whether a and b are the same shelf row.
func SameItem(a, b Book) bool {
	return a.ID == b.ID
}

// SameContent reports whether a rebind can be skipped.
//
// Only ID, Position and Name take part. A change limited to Author or
// CoverKey does not trigger a rebind; cover changes go through the
// explicit cover invalidation path instead. Keep it that way unless every
// caller is revisited.
func SameContent(a, b Book) bool {
	return a.ID == b.ID && a.Position == b.Position && a.Name == b.Name
}

// ChangePayload returns the set of content fields that differ
func ChangePayload(a, b Book) Change {
	var c Change
	if a.Position != b.Position {
		c |= ChangeProgress
	}
	if a.Name != b.Name {
		c |= ChangeName
	}
	return c
}

// BookPolicy plugs the book equality rules into the list reconciler
type BookPolicy struct{}

func (BookPolicy) SameItem(a, b Book) bool    { return SameItem(a, b) }
func (BookPolicy) SameContent(a, b Book) bool { return SameContent(a, b) }

// ChangePayload returns a Change, or nil when nothing render-relevant differs
func (BookPolicy) ChangePayload(a, b Book) any {
	c := ChangePayload(a, b)
	if c.Empty() {
		return nil
	}
	return c
}
