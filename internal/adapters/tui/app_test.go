package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"audioshelf/internal/adapters/sqlite"
	"audioshelf/internal/adapters/tui/shelf"
	"audioshelf/internal/adapters/tui/views"
	"audioshelf/internal/domain"
)

func newTestApp(t *testing.T, events <-chan string) (*App, *sqlite.Library) {
	t.Helper()
	lib := sqlite.NewLibrary()
	if err := lib.Open(filepath.Join(t.TempDir(), "library.db")); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { lib.Close() })

	ctx := context.Background()
	for _, b := range []domain.Book{
		{Name: "Hyperion", Author: "Dan Simmons", Duration: 3600000},
		{Name: "Kindred", Duration: 7200000},
	} {
		if _, err := lib.AddBook(ctx, b); err != nil {
			t.Fatal(err)
		}
	}

	app := NewApp(lib, nil, events, views.ShelfConfig{}, nil)
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	app.Update(app.shelf.Reload()())
	return app, lib
}

// pump feeds the messages produced by cmd back into the app
func pump(app *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			pump(app, c)
		}
		return
	}
	if msg == nil {
		return
	}
	_, next := app.Update(msg)
	pump(app, next)
}

func TestApp_RegularClickSelectsBook(t *testing.T) {
	app, lib := newTestApp(t, nil)

	book := app.shelf.Adapter().ItemAt(1)
	_, cmd := app.Update(shelf.BookClickedMsg{Book: book, Click: shelf.ClickRegular})
	pump(app, cmd)

	id, ok, err := lib.CurrentBookID(context.Background())
	if err != nil || !ok || id != book.ID {
		t.Fatalf("current = %d/%v/%v, want %d", id, ok, err, book.ID)
	}
	if !app.shelf.Adapter().SlotAt(1).IndicatorVisible {
		t.Error("selected book should show the indicator after reload")
	}
	if !strings.Contains(app.View(), "Now playing Kindred") {
		t.Error("expected confirmation message")
	}
}

func TestApp_MenuClickOpensMenu(t *testing.T) {
	app, _ := newTestApp(t, nil)

	book := app.shelf.Adapter().ItemAt(0)
	_, cmd := app.Update(shelf.BookClickedMsg{Book: book, Click: shelf.ClickMenu})
	pump(app, cmd)

	if app.State() != ViewMenu {
		t.Fatalf("state = %d, want menu", app.State())
	}
	if !strings.Contains(app.View(), "Hyperion") {
		t.Error("menu should show the book")
	}

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	pump(app, cmd)
	if app.State() != ViewShelf {
		t.Errorf("state = %d, want shelf", app.State())
	}
}

func TestApp_ActionReloadsShelf(t *testing.T) {
	app, lib := newTestApp(t, nil)

	if _, err := lib.AddBook(context.Background(), domain.Book{Name: "Anathem", Duration: 1}); err != nil {
		t.Fatal(err)
	}
	_, cmd := app.Update(views.ActionDoneMsg{Message: "done"})
	pump(app, cmd)

	if n := app.shelf.Adapter().Len(); n != 3 {
		t.Errorf("Len() = %d, want 3", n)
	}
	if got := app.shelf.Adapter().ItemAt(0).Name; got != "Anathem" {
		t.Errorf("first book = %q", got)
	}
}

func TestApp_CoverEventsRearm(t *testing.T) {
	events := make(chan string, 2)
	app, _ := newTestApp(t, events)

	events <- "cover.jpg"
	msg := app.waitForCover()()
	if got, ok := msg.(views.CoverChangedMsg); !ok || got.Key != "cover.jpg" {
		t.Fatalf("msg = %#v", msg)
	}

	_, cmd := app.Update(msg)
	if cmd == nil {
		t.Fatal("expected the watcher to be re-armed")
	}

	close(events)
	if msg := app.waitForCover()(); msg != nil {
		t.Errorf("closed channel produced %v", msg)
	}
}

func TestApp_BackgroundMessagesReachShelf(t *testing.T) {
	app, lib := newTestApp(t, nil)
	app.Update(views.SwitchToHelpMsg{})

	if _, err := lib.AddBook(context.Background(), domain.Book{Name: "Zen", Duration: 1}); err != nil {
		t.Fatal(err)
	}
	app.Update(app.shelf.Reload()())

	if app.State() != ViewHelp {
		t.Errorf("state = %d, want help", app.State())
	}
	if n := app.shelf.Adapter().Len(); n != 3 {
		t.Errorf("shelf not updated while help is shown: Len() = %d", n)
	}
}
