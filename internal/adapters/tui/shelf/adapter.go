package shelf

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"audioshelf/internal/domain"
	"audioshelf/internal/reconcile"
)

// Adapter keeps a column of slots in step with the submitted book list
type Adapter struct {
	binder *Binder
	policy domain.BookPolicy
	log    *zap.Logger

	books  []domain.Book
	slots  []*Slot
	pool   []*Slot
	byID   map[int]*Slot
	nextID int

	// Set only while a script is being dispatched
	target []domain.Book
	cmds   []tea.Cmd
}

var _ reconcile.Callback = (*Adapter)(nil)

// NewAdapter creates an empty shelf
func NewAdapter(binder *Binder, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{
		binder: binder,
		log:    log,
		byID:   make(map[int]*Slot),
	}
}

// SubmitList reconciles the shelf with books, which must already be sorted
// and hold unique IDs. The returned command finishes cover work started by
// the binds.
//
// A script that does not fit the slots means the shelf and the list have
// diverged; SubmitList panics with an error wrapping
// reconcile.ErrIndexOutOfRange rather than carry on with a wrong picture.
func (a *Adapter) SubmitList(books []domain.Book) tea.Cmd {
	next := slices.Clone(books)
	script := reconcile.Diff(a.books, next, a.policy)

	inserted, removed, changed := script.Counts()
	a.log.Debug("shelf reconciled",
		zap.Stringer("script", script),
		zap.Int("inserted", inserted),
		zap.Int("removed", removed),
		zap.Int("changed", changed),
	)

	if script.Empty() {
		a.books = next
		return nil
	}

	a.target = next
	a.cmds = nil
	defer func() {
		a.target = nil
		a.cmds = nil
	}()

	reconcile.Dispatch(script, a)

	if len(a.books) != len(next) || len(a.slots) != len(next) {
		panic(fmt.Errorf("shelf: %w: %d books and %d slots after script, want %d",
			reconcile.ErrIndexOutOfRange, len(a.books), len(a.slots), len(next)))
	}
	a.books = next
	for i, s := range a.slots {
		s.position = i
	}

	return tea.Batch(a.cmds...)
}

// OnInserted binds new slots for target[pos:pos+count]
func (a *Adapter) OnInserted(pos, count int) {
	a.mustFit(reconcile.Op{Kind: reconcile.Insert, At: pos, Count: count}, pos+count)

	added := make([]*Slot, count)
	for i := range added {
		s := a.obtain()
		s.position = pos + i
		a.cmds = append(a.cmds, a.binder.Bind(s, a.target[pos+i]))
		added[i] = s
	}
	a.slots = slices.Insert(a.slots, pos, added...)
	a.books = slices.Insert(a.books, pos, a.target[pos:pos+count]...)
}

// OnRemoved unbinds slots and returns them to the pool
func (a *Adapter) OnRemoved(pos, count int) {
	a.mustFit(reconcile.Op{Kind: reconcile.Remove, At: pos, Count: count}, 0)

	for _, s := range a.slots[pos : pos+count] {
		a.binder.Unbind(s)
		a.pool = append(a.pool, s)
	}
	a.slots = slices.Delete(a.slots, pos, pos+count)
	a.books = slices.Delete(a.books, pos, pos+count)
}

// OnChanged rebinds slots in place. A payload limited to progress only
// refreshes the progress bar; anything else is a full bind.
func (a *Adapter) OnChanged(pos, count int, payload any) {
	a.mustFit(reconcile.Op{Kind: reconcile.Change, At: pos, Count: count, Payload: payload}, pos+count)

	for i := pos; i < pos+count; i++ {
		s, book := a.slots[i], a.target[i]
		s.position = i
		a.rebind(s, book, payload)
		a.books[i] = book
	}
}

func (a *Adapter) rebind(s *Slot, book domain.Book, payload any) {
	switch p := payload.(type) {
	case domain.Change:
		if p.OnlyProgress() {
			a.binder.BindProgress(s, book)
			return
		}
	case SelectionChanged:
		a.binder.BindIndicator(s, book)
		return
	}
	a.cmds = append(a.cmds, a.binder.Bind(s, book))
}

// mustFit panics when op does not fit the slots or needs target items
// beyond targetEnd.
func (a *Adapter) mustFit(op reconcile.Op, targetEnd int) {
	err := reconcile.CheckBounds(op, len(a.slots))
	if err == nil && targetEnd > len(a.target) {
		err = fmt.Errorf("%w: %s against %d books", reconcile.ErrIndexOutOfRange, op, len(a.target))
	}
	if err != nil {
		panic(fmt.Errorf("shelf: %w", err))
	}
}

func (a *Adapter) obtain() *Slot {
	if n := len(a.pool); n > 0 {
		s := a.pool[n-1]
		a.pool = a.pool[:n-1]
		return s
	}
	s := NewSlot(a.nextID)
	a.nextID++
	a.byID[s.id] = s
	return s
}

// InvalidateCover fully rebinds the row holding id, typically after its
// cover changed. It does nothing when the book is not on the shelf.
func (a *Adapter) InvalidateCover(id int64) tea.Cmd {
	i := a.IndexOf(id)
	if i < 0 {
		return nil
	}
	return a.binder.Bind(a.slots[i], a.books[i])
}

// InvalidateCoverKey rebinds every row whose cover key is key
func (a *Adapter) InvalidateCoverKey(key string) tea.Cmd {
	var cmds []tea.Cmd
	for i, b := range a.books {
		if b.CoverKey == key {
			cmds = append(cmds, a.binder.Bind(a.slots[i], b))
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// NotifySelectionChanged refreshes the current-selection marker of the
// given books, leaving the rest of their rows alone.
func (a *Adapter) NotifySelectionChanged(ids ...int64) {
	for _, id := range ids {
		if i := a.IndexOf(id); i >= 0 {
			a.rebind(a.slots[i], a.books[i], SelectionChanged{})
		}
	}
}

// HandleMsg applies cover messages. It reports whether msg was one and
// actually changed a slot.
func (a *Adapter) HandleMsg(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case CoverLoadedMsg:
		s, ok := a.byID[msg.Slot]
		if !ok {
			return false
		}
		applied := a.binder.ApplyCover(s, msg)
		if !applied {
			a.log.Debug("stale cover dropped",
				zap.Int("slot", msg.Slot),
				zap.Uint64("generation", msg.Generation),
				zap.String("key", msg.Key),
			)
		}
		return applied
	case coverPlaceholderMsg:
		s, ok := a.byID[msg.Slot]
		if !ok {
			return false
		}
		return a.binder.applyPlaceholder(s, msg)
	}
	return false
}

// Activate resolves the book a slot shows right now and reports the click.
// It returns nil for a slot that is no longer bound.
func (a *Adapter) Activate(slotID int, click ClickType) tea.Cmd {
	s, ok := a.byID[slotID]
	if !ok || !s.Bound() || s.position >= len(a.books) {
		return nil
	}
	book := a.books[s.position]
	return func() tea.Msg {
		return BookClickedMsg{Book: book, Click: click}
	}
}

// ActivateAt is Activate for the slot at pos
func (a *Adapter) ActivateAt(pos int, click ClickType) tea.Cmd {
	if pos < 0 || pos >= len(a.slots) {
		return nil
	}
	return a.Activate(a.slots[pos].id, click)
}

// Len returns the number of books on the shelf
func (a *Adapter) Len() int {
	return len(a.books)
}

// ItemAt returns the book at pos
func (a *Adapter) ItemAt(pos int) domain.Book {
	return a.books[pos]
}

// ItemID returns the stable ID of the book at pos
func (a *Adapter) ItemID(pos int) int64 {
	return a.books[pos].ID
}

// IndexOf returns the position of the book with the given ID, or -1
func (a *Adapter) IndexOf(id int64) int {
	return slices.IndexFunc(a.books, func(b domain.Book) bool {
		return b.ID == id
	})
}

// Books returns a copy of the bound list
func (a *Adapter) Books() []domain.Book {
	return slices.Clone(a.books)
}

// SlotAt returns the slot at pos
func (a *Adapter) SlotAt(pos int) *Slot {
	return a.slots[pos]
}

// Slots returns the bound slots in list order
func (a *Adapter) Slots() []*Slot {
	return slices.Clone(a.slots)
}

// Pooled returns the number of idle slots waiting for reuse
func (a *Adapter) Pooled() int {
	return len(a.pool)
}
