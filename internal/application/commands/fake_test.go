package commands

import (
	"context"
	"errors"
	"strings"

	"audioshelf/internal/domain"
)

// fakeRepo is an in-memory BookRepository
type fakeRepo struct {
	books  map[int64]domain.Book
	nextID int64
	err    error
}

func newFakeRepo(books ...domain.Book) *fakeRepo {
	r := &fakeRepo{books: make(map[int64]domain.Book), nextID: 1}
	for _, b := range books {
		r.books[b.ID] = b
		if b.ID >= r.nextID {
			r.nextID = b.ID + 1
		}
	}
	return r
}

func (r *fakeRepo) ListBooks(ctx context.Context) ([]domain.Book, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.Book
	for _, b := range r.books {
		out = append(out, b)
	}
	domain.SortBooks(out)
	return out, nil
}

func (r *fakeRepo) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	if r.err != nil {
		return nil, r.err
	}
	b, ok := r.books[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *fakeRepo) AddBook(ctx context.Context, book domain.Book) (*domain.Book, error) {
	if r.err != nil {
		return nil, r.err
	}
	book.ID = r.nextID
	r.nextID++
	r.books[book.ID] = book
	return &book, nil
}

func (r *fakeRepo) UpdatePosition(ctx context.Context, id int64, position int64) error {
	if r.err != nil {
		return r.err
	}
	b, ok := r.books[id]
	if !ok {
		return errors.New("no such book")
	}
	b.Position = position
	r.books[id] = b
	return nil
}

func (r *fakeRepo) RemoveBook(ctx context.Context, id int64) error {
	if r.err != nil {
		return r.err
	}
	delete(r.books, id)
	return nil
}

func (r *fakeRepo) FindByCoverKey(ctx context.Context, key string) ([]int64, error) {
	if r.err != nil {
		return nil, r.err
	}
	var ids []int64
	for id, b := range r.books {
		if b.CoverKey == key {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// fakeSelection is an in-memory SelectionStore
type fakeSelection struct {
	id  int64
	set bool
}

func (s *fakeSelection) CurrentBookID(ctx context.Context) (int64, bool, error) {
	return s.id, s.set, nil
}

func (s *fakeSelection) SetCurrentBookID(ctx context.Context, id int64) error {
	s.id, s.set = id, true
	return nil
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
