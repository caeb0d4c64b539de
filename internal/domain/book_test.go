package domain

import "testing"

func TestBook_Progress(t *testing.T) {
	tests := []struct {
		name string
		book Book
		want float64
	}{
		{name: "start", book: Book{Position: 0, Duration: 100}, want: 0},
		{name: "half", book: Book{Position: 50, Duration: 100}, want: 0.5},
		{name: "end", book: Book{Position: 100, Duration: 100}, want: 1},
		{name: "past end is clamped", book: Book{Position: 150, Duration: 100}, want: 1},
		{name: "negative position is clamped", book: Book{Position: -5, Duration: 100}, want: 0},
		{name: "zero duration", book: Book{Position: 10, Duration: 0}, want: 0},
		{name: "negative duration", book: Book{Position: 10, Duration: -1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.book.Progress(); got != tt.want {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBook_Remaining(t *testing.T) {
	if got := (Book{Position: 30, Duration: 100}).Remaining(); got != 70 {
		t.Errorf("Remaining() = %d, want 70", got)
	}
	if got := (Book{Position: 130, Duration: 100}).Remaining(); got != 0 {
		t.Errorf("Remaining() = %d, want 0", got)
	}
	if got := (Book{Position: 10}).Remaining(); got != 0 {
		t.Errorf("Remaining() with zero duration = %d, want 0", got)
	}
}

func TestBook_HasAuthor(t *testing.T) {
	if (Book{Author: "  "}).HasAuthor() {
		t.Error("blank author should count as absent")
	}
	if !(Book{Author: "Ursula K. Le Guin"}).HasAuthor() {
		t.Error("expected author to be present")
	}
}

func TestSortBooks(t *testing.T) {
	books := []Book{
		{ID: 3, Name: "b"},
		{ID: 2, Name: "A"},
		{ID: 1, Name: "b"},
	}
	SortBooks(books)

	want := []int64{2, 1, 3}
	for i, id := range want {
		if books[i].ID != id {
			t.Fatalf("position %d: got id %d, want %d", i, books[i].ID, id)
		}
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "00:00"},
		{59 * 1000, "00:00"},
		{61 * 60 * 1000, "01:01"},
		{25*60*60*1000 + 5*60*1000, "25:05"},
		{-10, "00:00"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.ms); got != tt.want {
			t.Errorf("FormatTime(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestBook_CoverTransitionName(t *testing.T) {
	a := Book{ID: 7, Name: "Kindred"}
	b := Book{ID: 7, Name: "Kindred (Unabridged)", CoverKey: "other.png"}
	c := Book{ID: 8, Name: "Kindred"}

	if a.CoverTransitionName() != b.CoverTransitionName() {
		t.Error("name must depend on the id only")
	}
	if a.CoverTransitionName() == c.CoverTransitionName() {
		t.Error("different books share a name")
	}
	if got := a.CoverTransitionName(); got != "bookCoverTransition7" {
		t.Errorf("CoverTransitionName() = %q", got)
	}
}
