package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"audioshelf/internal/adapters/tui/shelf"
	"audioshelf/internal/adapters/tui/styles"
	"audioshelf/internal/application/commands"
	"audioshelf/internal/ports"
)

// ShelfKeyMap defines key bindings for the shelf view
type ShelfKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Select   key.Binding
	Menu     key.Binding
	Add      key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var ShelfKeys = ShelfKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "h", "left"),
		key.WithHelp("h/pgup", "prev page"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "l", "right"),
		key.WithHelp("l/pgdn", "next page"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "play"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m", "e"),
		key.WithHelp("m", "menu"),
	),
	Add: key.NewBinding(
		key.WithKeys("a", "n"),
		key.WithHelp("a", "add"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

const (
	// Padding, title with its margin, subtitle, blank line
	headerHeight = 5
	// Message, page line, help line
	footerHeight = 4
)

// ShelfConfig tunes the shelf view
type ShelfConfig struct {
	Binder  shelf.BinderConfig
	Refresh time.Duration // Periodic reload, zero disables it
}

// ShelfModel is the model for the book shelf view
type ShelfModel struct {
	ViewState
	lib       ports.Library
	adapter   *shelf.Adapter
	renderer  *shelf.Renderer
	paginator *Paginator
	spinner   spinner.Model
	refresh   time.Duration
	rowHeight int
	log       *zap.Logger

	loaded     bool
	currentID  int64
	hasCurrent bool
}

// NewShelfModel creates a new shelf model
func NewShelfModel(lib ports.Library, covers ports.CoverLoader, cfg ShelfConfig, log *zap.Logger) *ShelfModel {
	if log == nil {
		log = zap.NewNop()
	}

	m := &ShelfModel{
		lib:       lib,
		paginator: NewPaginator(5),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Spinner)),
		refresh:   cfg.Refresh,
		log:       log,
	}

	binder := shelf.NewBinder(covers, ports.SelectionFunc(m.IsCurrentSelection), cfg.Binder, log)
	cols, rows := binder.CoverSize()
	m.adapter = shelf.NewAdapter(binder, log)
	m.renderer = shelf.NewRenderer(cols, rows)
	m.rowHeight = rows + 1
	return m
}

// IsCurrentSelection reports whether id is the book being played
func (m *ShelfModel) IsCurrentSelection(id int64) bool {
	return m.hasCurrent && m.currentID == id
}

// Adapter exposes the underlying shelf adapter
func (m *ShelfModel) Adapter() *shelf.Adapter {
	return m.adapter
}

// Init loads the library and starts the refresh timer
func (m *ShelfModel) Init() tea.Cmd {
	return tea.Batch(m.load, m.spinner.Tick, m.tick())
}

// Reload reads the library again
func (m *ShelfModel) Reload() tea.Cmd {
	return m.load
}

func (m *ShelfModel) load() tea.Msg {
	ctx := context.Background()

	books, err := commands.NewListBooksCommand(m.lib).Execute(ctx)
	if err != nil {
		return ActionErrMsg{Err: err}
	}
	id, ok, err := m.lib.CurrentBookID(ctx)
	if err != nil {
		return ActionErrMsg{Err: err}
	}
	return BooksLoadedMsg{Books: books, CurrentID: id, HasCurrent: ok}
}

func (m *ShelfModel) tick() tea.Cmd {
	if m.refresh <= 0 {
		return nil
	}
	return tea.Tick(m.refresh, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

// Update handles messages for the shelf
func (m *ShelfModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case BooksLoadedMsg:
		return m, m.apply(msg)

	case refreshTickMsg:
		m.ExpireMessage(time.Now(), messageTTL)
		return m, tea.Batch(m.load, m.tick())

	case CoverChangedMsg:
		return m, m.adapter.InvalidateCoverKey(msg.Key)

	case RefreshCoverMsg:
		return m, m.adapter.InvalidateCover(msg.BookID)

	case ActionErrMsg:
		m.SetError(msg.Err)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, ShelfKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, ShelfKeys.Up):
			m.paginator.CursorUp()
			return m, nil

		case key.Matches(msg, ShelfKeys.Down):
			m.paginator.CursorDown()
			return m, nil

		case key.Matches(msg, ShelfKeys.PageUp):
			m.paginator.PrevPage()
			return m, nil

		case key.Matches(msg, ShelfKeys.PageDown):
			m.paginator.NextPage()
			return m, nil

		case key.Matches(msg, ShelfKeys.Select):
			return m, m.adapter.ActivateAt(m.paginator.Cursor(), shelf.ClickRegular)

		case key.Matches(msg, ShelfKeys.Menu):
			return m, m.adapter.ActivateAt(m.paginator.Cursor(), shelf.ClickMenu)

		case key.Matches(msg, ShelfKeys.Add):
			return m, func() tea.Msg {
				return SwitchToAddMsg{}
			}

		case key.Matches(msg, ShelfKeys.Reload):
			return m, m.load

		case key.Matches(msg, ShelfKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	m.adapter.HandleMsg(msg)
	return m, nil
}

// apply submits a loaded snapshot to the shelf, keeping the cursor on the
// same book when it is still there.
func (m *ShelfModel) apply(msg BooksLoadedMsg) tea.Cmd {
	var focused int64 = -1
	if m.adapter.Len() > 0 && m.paginator.Cursor() < m.adapter.Len() {
		focused = m.adapter.ItemID(m.paginator.Cursor())
	}

	prevID, hadCurrent := m.currentID, m.hasCurrent
	m.currentID, m.hasCurrent = msg.CurrentID, msg.HasCurrent

	cmd := m.adapter.SubmitList(msg.Books)
	if prevID != m.currentID || hadCurrent != m.hasCurrent {
		m.adapter.NotifySelectionChanged(prevID, m.currentID)
	}

	m.loaded = true
	m.paginator.SetTotal(m.adapter.Len())
	if i := m.adapter.IndexOf(focused); i >= 0 {
		m.paginator.SetCursor(i)
	}
	return cmd
}

func (m *ShelfModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.paginator.CursorUp()
		return nil
	case tea.MouseButtonWheelDown:
		m.paginator.CursorDown()
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	pos, ok := m.rowAt(msg.Y)
	if !ok {
		return nil
	}
	m.paginator.SetCursor(pos)

	click := shelf.ClickRegular
	if msg.X >= m.Width-4 {
		click = shelf.ClickMenu
	}
	return m.adapter.ActivateAt(pos, click)
}

// rowAt maps a screen line to a list position
func (m *ShelfModel) rowAt(y int) (int, bool) {
	y -= headerHeight
	if y < 0 || y%m.rowHeight == m.rowHeight-1 {
		return 0, false
	}
	start, end := m.paginator.VisibleRange()
	pos := start + y/m.rowHeight
	if pos >= end {
		return 0, false
	}
	return pos, true
}

// SetSize updates the view dimensions and the page size
func (m *ShelfModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.paginator.SetPageSize((height - headerHeight - footerHeight) / m.rowHeight)
}

// View renders the shelf
func (m *ShelfModel) View() string {
	if !m.loaded {
		return styles.App.Render(m.spinner.View() + " Loading...")
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Audioshelf"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.subtitle()))
	b.WriteString("\n\n")

	if m.adapter.Len() == 0 {
		b.WriteString(styles.MutedText.Render("No books yet. Press a to add one."))
		b.WriteString("\n")
	}

	width := max(m.Width-4, 40)
	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderer.Row(m.adapter.SlotAt(i), width, i == m.paginator.Cursor()))
		b.WriteString("\n\n")
	}

	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	if m.paginator.TotalPages() > 1 {
		b.WriteString(RenderMuted(fmt.Sprintf("page %d/%d", m.paginator.CurrentPage(), m.paginator.TotalPages())))
	}
	if m.loadingCovers() {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n")

	b.WriteString(RenderHelpLine(
		ShelfKeys.Up, ShelfKeys.Down, ShelfKeys.Select, ShelfKeys.Menu,
		ShelfKeys.Add, ShelfKeys.Help, ShelfKeys.Quit,
	))

	return styles.App.Render(b.String())
}

func (m *ShelfModel) subtitle() string {
	n := m.adapter.Len()
	label := fmt.Sprintf("%d books", n)
	if n == 1 {
		label = "1 book"
	}
	if i := m.adapter.IndexOf(m.currentID); m.hasCurrent && i >= 0 {
		label += " · playing " + m.adapter.ItemAt(i).Name
	}
	return label
}

func (m *ShelfModel) loadingCovers() bool {
	for _, s := range m.adapter.Slots() {
		if s.Loading() {
			return true
		}
	}
	return false
}

// Cursor returns the focused list position
func (m *ShelfModel) Cursor() int {
	return m.paginator.Cursor()
}
