package shelf

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"audioshelf/internal/domain"
	"audioshelf/internal/reconcile"
)

func TestAdapter_SubmitIdenticalListDoesNothing(t *testing.T) {
	covers := newFakeCovers()
	a := newTestAdapter(covers, nil)

	books := []domain.Book{book(1, "A", 0), book(2, "B", 3), book(3, "C", 7)}
	a.SubmitList(books)
	slots := a.Slots()
	stats := covers.stats

	if cmd := a.SubmitList(slices.Clone(books)); cmd != nil {
		t.Error("identical submit should not produce commands")
	}
	if covers.stats != stats {
		t.Errorf("identical submit rebound %d slots", covers.stats-stats)
	}
	for i, s := range a.Slots() {
		if s != slots[i] {
			t.Errorf("slot %d replaced", i)
		}
	}
}

func TestAdapter_RemoveAndProgressChange(t *testing.T) {
	covers := newFakeCovers()
	a := newTestAdapter(covers, nil)

	a.SubmitList([]domain.Book{
		{ID: 1, Name: "A", Position: 0, Duration: 10},
		{ID: 2, Name: "B", Position: 0, Duration: 10},
	})
	second := a.SlotAt(1)
	stats := covers.stats

	next := []domain.Book{{ID: 2, Name: "B", Position: 5, Duration: 10}}
	a.SubmitList(next)

	if a.Len() != 1 || a.ItemAt(0) != next[0] {
		t.Fatalf("bound list = %v, want %v", a.Books(), next)
	}
	if a.SlotAt(0) != second {
		t.Error("book 2 should keep its slot")
	}
	if second.Position() != 0 {
		t.Errorf("slot position = %d, want 0", second.Position())
	}
	if covers.stats != stats {
		t.Error("progress-only change should not rebind the cover")
	}
	if second.Progress != 0.5 {
		t.Errorf("progress = %v, want 0.5", second.Progress)
	}
	if a.Pooled() != 1 {
		t.Errorf("pooled = %d, want 1", a.Pooled())
	}
}

func TestAdapter_NameChangeRebindsFully(t *testing.T) {
	covers := newFakeCovers()
	a := newTestAdapter(covers, nil)

	a.SubmitList([]domain.Book{book(1, "A", 0)})
	stats := covers.stats

	renamed := book(1, "A2", 0)
	renamed.CoverKey = "A.png"
	a.SubmitList([]domain.Book{renamed})

	if covers.stats != stats+1 {
		t.Errorf("stats = %d, want one full bind", covers.stats-stats)
	}
	if a.SlotAt(0).Title != "A2" {
		t.Errorf("title = %q", a.SlotAt(0).Title)
	}
}

func TestAdapter_AuthorOnlyChangeKeepsRow(t *testing.T) {
	covers := newFakeCovers()
	a := newTestAdapter(covers, nil)

	a.SubmitList([]domain.Book{book(1, "A", 0)})
	stats := covers.stats

	changed := book(1, "A", 0)
	changed.Author = "Someone Else"
	a.SubmitList([]domain.Book{changed})

	if covers.stats != stats {
		t.Error("author-only change should not rebind")
	}
	if a.SlotAt(0).Author == "Someone Else" {
		t.Error("slot should still show the old author")
	}
	if a.ItemAt(0).Author != "Someone Else" {
		t.Error("bound list should hold the submitted snapshot")
	}
}

func TestAdapter_SlotsFollowList(t *testing.T) {
	a := newTestAdapter(newFakeCovers(), nil)

	steps := [][]int64{
		{1, 2, 3},
		{0, 1, 2, 3, 4},
		{1, 3},
		{3, 1},
		{},
		{5, 6, 7, 8},
		{5, 7, 9, 10},
	}
	for _, ids := range steps {
		books := make([]domain.Book, len(ids))
		for i, id := range ids {
			books[i] = book(id, fmt.Sprintf("B%d", id), 0)
		}
		a.SubmitList(books)

		if got := bookIDs(a); !slices.Equal(got, ids) {
			t.Fatalf("slots show %v, want %v", got, ids)
		}
		for i, s := range a.Slots() {
			if s.Position() != i {
				t.Fatalf("slot %d has position %d", i, s.Position())
			}
		}
	}
}

func TestAdapter_SlotsAreRecycled(t *testing.T) {
	a := newTestAdapter(newFakeCovers(), nil)

	a.SubmitList([]domain.Book{book(1, "A", 0), book(2, "B", 0)})
	old := a.Slots()
	a.SubmitList(nil)
	if a.Pooled() != 2 {
		t.Fatalf("pooled = %d, want 2", a.Pooled())
	}
	a.SubmitList([]domain.Book{book(3, "C", 0)})

	if s := a.SlotAt(0); s != old[0] && s != old[1] {
		t.Error("insert should reuse a pooled slot")
	}
	if a.Pooled() != 1 {
		t.Errorf("pooled = %d, want 1", a.Pooled())
	}
}

func TestAdapter_DeferredPlaceholder(t *testing.T) {
	covers := newFakeCovers()
	covers.data["big.png"] = make([]byte, 2048)
	a := newTestAdapter(covers, nil)

	missing := book(1, "Missing", 0)
	big := book(2, "Big", 0)
	big.CoverKey = "big.png"

	cmd := a.SubmitList([]domain.Book{missing, big})

	for i, s := range a.Slots() {
		if s.CoverState != CoverEmpty || s.Cover != "" {
			t.Fatalf("slot %d placeholder installed synchronously (%s)", i, s.CoverState)
		}
	}

	if n := deliver(a, cmd); n != 2 {
		t.Fatalf("applied %d messages, want 2", n)
	}
	for i, s := range a.Slots() {
		if s.CoverState != CoverPlaceholder {
			t.Errorf("slot %d cover = %s, want placeholder", i, s.CoverState)
		}
		if s.Loading() {
			t.Errorf("slot %d still loading", i)
		}
	}
}

func TestAdapter_CoverLoads(t *testing.T) {
	covers := newFakeCovers()
	covers.data["A.png"] = testPNG(t)
	a := newTestAdapter(covers, nil)

	cmd := a.SubmitList([]domain.Book{book(1, "A", 0)})
	s := a.SlotAt(0)
	if s.CoverState != CoverLoading {
		t.Fatalf("cover = %s, want loading", s.CoverState)
	}
	if s.Cover == "" {
		t.Error("loading slot should show the interim placeholder")
	}

	if n := deliver(a, cmd); n != 1 {
		t.Fatalf("applied %d messages, want 1", n)
	}
	if s.CoverState != CoverImage {
		t.Errorf("cover = %s, want image", s.CoverState)
	}
}

func TestAdapter_BadImageFallsBack(t *testing.T) {
	covers := newFakeCovers()
	covers.data["A.png"] = []byte("not an image")
	a := newTestAdapter(covers, nil)

	deliver(a, a.SubmitList([]domain.Book{book(1, "A", 0)}))

	if got := a.SlotAt(0).CoverState; got != CoverPlaceholder {
		t.Errorf("cover = %s, want placeholder", got)
	}
}

func TestAdapter_RecycledSlotIgnoresStaleLoad(t *testing.T) {
	covers := newFakeCovers()
	covers.data["A.png"] = testPNG(t)
	covers.data["C.png"] = testPNG(t)
	a := newTestAdapter(covers, nil)

	first := a.SubmitList([]domain.Book{book(1, "A", 0)})
	s := a.SlotAt(0)

	a.SubmitList(nil)
	second := a.SubmitList([]domain.Book{book(3, "C", 0)})
	if a.SlotAt(0) != s {
		t.Fatal("expected the slot to be recycled")
	}

	// The first load completes late
	if n := deliver(a, first); n != 0 {
		t.Fatalf("stale load applied to recycled slot")
	}
	if err := covers.ctxs["A.png"].Err(); err == nil {
		t.Error("stale load context should be cancelled")
	}
	if s.CoverState != CoverLoading || s.Title != "C" {
		t.Errorf("slot changed by stale load: %s %q", s.CoverState, s.Title)
	}

	if n := deliver(a, second); n != 1 {
		t.Fatalf("current load not applied")
	}
	if s.CoverState != CoverImage {
		t.Errorf("cover = %s, want image", s.CoverState)
	}
}

func TestAdapter_RebindCancelsPendingPlaceholder(t *testing.T) {
	covers := newFakeCovers()
	covers.data["A.png"] = testPNG(t)
	a := newTestAdapter(covers, nil)

	noCover := book(1, "A", 0)
	noCover.CoverKey = ""
	pending := a.SubmitList([]domain.Book{noCover})

	// The cover appears and the row is rebound before the placeholder lands
	withCover := noCover
	withCover.CoverKey = "A.png"
	if cmd := a.SubmitList([]domain.Book{withCover}); cmd != nil {
		t.Fatal("cover key change alone should not rebind")
	}
	loaded := a.InvalidateCover(1)

	if n := deliver(a, pending); n != 0 {
		t.Error("stale placeholder installed")
	}
	deliver(a, loaded)
	if got := a.SlotAt(0).CoverState; got != CoverImage {
		t.Errorf("cover = %s, want image", got)
	}
}

func TestAdapter_InvalidateCover(t *testing.T) {
	covers := newFakeCovers()
	a := newTestAdapter(covers, nil)
	a.SubmitList([]domain.Book{book(1, "A", 0), book(2, "B", 0)})
	stats := covers.stats

	if cmd := a.InvalidateCover(99); cmd != nil {
		t.Error("unknown book should be ignored")
	}
	if covers.stats != stats {
		t.Error("unknown book caused a bind")
	}

	if cmd := a.InvalidateCover(2); cmd == nil {
		t.Error("expected cover command")
	}
	if covers.stats != stats+1 {
		t.Errorf("stats = %d, want one bind", covers.stats-stats)
	}

	a.InvalidateCoverKey("A.png")
	if covers.stats != stats+2 {
		t.Errorf("stats = %d, want two binds", covers.stats-stats)
	}
}

func TestAdapter_SelectionIndicator(t *testing.T) {
	covers := newFakeCovers()
	sel := &selection{current: 1}
	a := newTestAdapter(covers, sel)

	a.SubmitList([]domain.Book{book(1, "A", 0), book(2, "B", 0)})
	if !a.SlotAt(0).IndicatorVisible || a.SlotAt(1).IndicatorVisible {
		t.Fatal("indicator should mark book 1 only")
	}
	stats := covers.stats

	sel.current = 2
	a.NotifySelectionChanged(1, 2)

	if a.SlotAt(0).IndicatorVisible || !a.SlotAt(1).IndicatorVisible {
		t.Error("indicator should move to book 2")
	}
	if covers.stats != stats {
		t.Error("selection change should not rebind covers")
	}
}

func TestAdapter_IndicatorDoesNotSurviveRecycling(t *testing.T) {
	sel := &selection{current: 1}
	a := newTestAdapter(newFakeCovers(), sel)

	a.SubmitList([]domain.Book{book(1, "A", 0)})
	s := a.SlotAt(0)
	a.SubmitList([]domain.Book{book(2, "B", 0)})

	if a.SlotAt(0) != s {
		t.Fatal("expected the slot to be recycled")
	}
	if s.IndicatorVisible {
		t.Error("recycled slot kept the indicator")
	}
}

func TestAdapter_ActivateResolvesAtInteraction(t *testing.T) {
	a := newTestAdapter(newFakeCovers(), nil)
	a.SubmitList([]domain.Book{book(1, "A", 0), book(2, "B", 0)})
	slotID := a.SlotAt(1).ID()

	a.SubmitList([]domain.Book{book(2, "B", 4)})

	msgs := drain(a.Activate(slotID, ClickMenu))
	if len(msgs) != 1 {
		t.Fatalf("got %d messages", len(msgs))
	}
	clicked := msgs[0].(BookClickedMsg)
	if clicked.Book != book(2, "B", 4) || clicked.Click != ClickMenu {
		t.Errorf("clicked = %+v", clicked)
	}

	a.SubmitList(nil)
	if cmd := a.Activate(slotID, ClickRegular); cmd != nil {
		t.Error("unbound slot should not activate")
	}
	if cmd := a.ActivateAt(0, ClickRegular); cmd != nil {
		t.Error("empty shelf should not activate")
	}
}

func TestAdapter_Lookups(t *testing.T) {
	a := newTestAdapter(newFakeCovers(), nil)
	a.SubmitList([]domain.Book{book(7, "A", 0), book(3, "B", 0)})

	if a.IndexOf(3) != 1 || a.IndexOf(8) != -1 {
		t.Error("IndexOf mismatch")
	}
	if a.ItemID(0) != 7 {
		t.Errorf("ItemID(0) = %d", a.ItemID(0))
	}
}

func TestAdapter_OutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		run  func(a *Adapter)
	}{
		{"remove past end", func(a *Adapter) { a.OnRemoved(2, 1) }},
		{"change past end", func(a *Adapter) { a.OnChanged(1, 2, nil) }},
		{"insert past end", func(a *Adapter) { a.OnInserted(3, 1) }},
		{"insert without target", func(a *Adapter) { a.OnInserted(0, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(newFakeCovers(), nil)
			a.SubmitList([]domain.Book{book(1, "A", 0), book(2, "B", 0)})

			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, reconcile.ErrIndexOutOfRange) {
					t.Errorf("recovered %v, want ErrIndexOutOfRange", r)
				}
			}()
			tt.run(a)
		})
	}
}
