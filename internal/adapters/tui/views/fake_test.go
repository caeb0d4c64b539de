package views

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"audioshelf/internal/domain"
)

// fakeLibrary is an in-memory ports.Library
type fakeLibrary struct {
	books   map[int64]domain.Book
	nextID  int64
	current int64
	hasCur  bool
}

func newFakeLibrary(books ...domain.Book) *fakeLibrary {
	l := &fakeLibrary{books: make(map[int64]domain.Book), nextID: 1}
	for _, b := range books {
		l.books[b.ID] = b
		if b.ID >= l.nextID {
			l.nextID = b.ID + 1
		}
	}
	return l
}

func (l *fakeLibrary) ListBooks(ctx context.Context) ([]domain.Book, error) {
	out := make([]domain.Book, 0, len(l.books))
	for _, b := range l.books {
		out = append(out, b)
	}
	domain.SortBooks(out)
	return out, nil
}

func (l *fakeLibrary) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	b, ok := l.books[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (l *fakeLibrary) AddBook(ctx context.Context, book domain.Book) (*domain.Book, error) {
	book.ID = l.nextID
	l.nextID++
	l.books[book.ID] = book
	return &book, nil
}

func (l *fakeLibrary) UpdatePosition(ctx context.Context, id int64, position int64) error {
	b, ok := l.books[id]
	if !ok {
		return errors.New("no such book")
	}
	b.Position = position
	l.books[id] = b
	return nil
}

func (l *fakeLibrary) RemoveBook(ctx context.Context, id int64) error {
	delete(l.books, id)
	if l.current == id {
		l.hasCur = false
	}
	return nil
}

func (l *fakeLibrary) FindByCoverKey(ctx context.Context, key string) ([]int64, error) {
	var ids []int64
	for id, b := range l.books {
		if b.CoverKey == key {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (l *fakeLibrary) CurrentBookID(ctx context.Context) (int64, bool, error) {
	return l.current, l.hasCur, nil
}

func (l *fakeLibrary) SetCurrentBookID(ctx context.Context, id int64) error {
	l.current, l.hasCur = id, true
	return nil
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// run executes cmd and returns its message, or nil
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// drain runs cmd and every command it batches
func drain(cmd tea.Cmd) []tea.Msg {
	msg := run(cmd)
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drain(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func hour(h int64) int64 {
	return h * 3600 * 1000
}
