package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"audioshelf/internal/adapters/tui/shelf"
	"audioshelf/internal/adapters/tui/views"
	"audioshelf/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewShelf ViewState = iota
	ViewMenu
	ViewAdd
	ViewRemove
	ViewHelp
)

// App is the main TUI application model
type App struct {
	lib    ports.Library
	covers <-chan string
	log    *zap.Logger

	state  ViewState
	shelf  *views.ShelfModel
	menu   *views.MenuModel
	add    *views.AddModel
	remove *views.RemoveModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. coverEvents, when not nil, delivers
// keys of cover files that changed.
func NewApp(lib ports.Library, loader ports.CoverLoader, coverEvents <-chan string, cfg views.ShelfConfig, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		lib:    lib,
		covers: coverEvents,
		log:    log,
		state:  ViewShelf,
		shelf:  views.NewShelfModel(lib, loader, cfg, log),
		menu:   views.NewMenuModel(lib),
		add:    views.NewAddModel(lib),
		remove: views.NewRemoveModel(lib),
		help:   views.NewHelpModel(),
	}
}

// SetCoverOpener enables opening covers from the book menu
func (a *App) SetCoverOpener(o ports.CoverOpener) {
	a.menu.SetCoverOpener(o)
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.shelf.Init(), a.waitForCover())
}

// waitForCover blocks on the next cover change
func (a *App) waitForCover() tea.Cmd {
	if a.covers == nil {
		return nil
	}
	ch := a.covers
	return func() tea.Msg {
		key, ok := <-ch
		if !ok {
			return nil
		}
		return views.CoverChangedMsg{Key: key}
	}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.shelf.SetSize(msg.Width, msg.Height)
		a.menu.SetSize(msg.Width, msg.Height)
		a.add.SetSize(msg.Width, msg.Height)
		a.remove.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToShelfMsg:
		a.state = ViewShelf
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToAddMsg:
		a.state = ViewAdd
		a.add.Reset()
		return a, a.add.Init()

	case views.SwitchToMenuMsg:
		a.state = ViewMenu
		a.menu.SetBook(msg.Book)
		return a, nil

	case views.SwitchToRemoveMsg:
		a.state = ViewRemove
		a.remove.SetTarget(msg.Book)
		return a, nil

	case shelf.BookClickedMsg:
		a.log.Debug("book clicked",
			zap.Int64("id", msg.Book.ID),
			zap.Stringer("click", msg.Click),
		)
		if msg.Click == shelf.ClickMenu {
			return a, func() tea.Msg { return views.SwitchToMenuMsg{Book: msg.Book} }
		}
		return a, views.SelectBook(a.lib, msg.Book.ID)

	case views.ActionDoneMsg:
		a.state = ViewShelf
		a.shelf.SetMessage(msg.Message, false)
		return a, a.shelf.Reload()

	case views.ActionErrMsg:
		a.log.Warn("action failed", zap.Error(msg.Err))
		switch a.state {
		case ViewAdd:
			a.add.SetError(msg.Err)
		case ViewMenu:
			a.menu.SetError(msg.Err)
		default:
			a.state = ViewShelf
			a.shelf.SetError(msg.Err)
		}
		return a, nil

	case views.CoverChangedMsg:
		_, cmd := a.shelf.Update(msg)
		return a, tea.Batch(cmd, a.waitForCover())

	case tea.KeyMsg, tea.MouseMsg:
		return a, a.delegate(msg)
	}

	// Everything else is background work for the shelf, whatever is on screen
	_, cmd := a.shelf.Update(msg)
	if a.state != ViewShelf {
		cmd = tea.Batch(cmd, a.delegate(msg))
	}
	return a, cmd
}

// delegate forwards msg to the current view
func (a *App) delegate(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.state {
	case ViewShelf:
		_, cmd = a.shelf.Update(msg)
	case ViewMenu:
		_, cmd = a.menu.Update(msg)
	case ViewAdd:
		_, cmd = a.add.Update(msg)
	case ViewRemove:
		_, cmd = a.remove.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}
	return cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewMenu:
		return a.menu.View()
	case ViewAdd:
		return a.add.View()
	case ViewRemove:
		return a.remove.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.shelf.View()
	}
}

// State returns the current view
func (a *App) State() ViewState {
	return a.state
}
