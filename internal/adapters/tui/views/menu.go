package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"audioshelf/internal/adapters/tui/styles"
	"audioshelf/internal/application/commands"
	"audioshelf/internal/domain"
	"audioshelf/internal/ports"
)

// MenuKeyMap defines key bindings for the book menu
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Back   key.Binding
}

var MenuKeys = MenuKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "choose"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back"),
	),
}

// MenuAction is an entry of the book menu
type MenuAction int

const (
	ActionPlay MenuAction = iota
	ActionCopyTitle
	ActionRefreshCover
	ActionOpenCover
	ActionMarkFinished
	ActionRestart
	ActionRemove
	ActionBack
)

var menuActions = []struct {
	action MenuAction
	label  string
}{
	{ActionPlay, "Play"},
	{ActionCopyTitle, "Copy title"},
	{ActionRefreshCover, "Refresh cover"},
	{ActionOpenCover, "Open cover"},
	{ActionMarkFinished, "Mark as finished"},
	{ActionRestart, "Start over"},
	{ActionRemove, "Remove from shelf"},
	{ActionBack, "Back"},
}

// MenuModel is the model for the per-book menu
type MenuModel struct {
	ViewState
	lib    ports.Library
	book   domain.Book
	cursor int

	// Writes to the system clipboard
	copyText func(string) error
	// Nil when covers are not local files
	opener ports.CoverOpener
}

// NewMenuModel creates a new menu model
func NewMenuModel(lib ports.Library) *MenuModel {
	return &MenuModel{
		lib:      lib,
		copyText: clipboard.WriteAll,
	}
}

// SetCoverOpener enables the open cover action
func (m *MenuModel) SetCoverOpener(o ports.CoverOpener) {
	m.opener = o
}

// SetBook sets the book the menu acts on
func (m *MenuModel) SetBook(book domain.Book) {
	m.book = book
	m.cursor = 0
	m.ClearMessage()
}

// Book returns the book the menu acts on
func (m *MenuModel) Book() domain.Book {
	return m.book
}

// Init initializes the menu view
func (m *MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view
func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, MenuKeys.Back):
			return m, func() tea.Msg { return SwitchToShelfMsg{} }

		case key.Matches(msg, MenuKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, MenuKeys.Down):
			if m.cursor < len(menuActions)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, MenuKeys.Choose):
			return m, m.run(menuActions[m.cursor].action)
		}
	}

	return m, nil
}

func (m *MenuModel) run(action MenuAction) tea.Cmd {
	book := m.book

	switch action {
	case ActionPlay:
		return SelectBook(m.lib, book.ID)

	case ActionCopyTitle:
		return func() tea.Msg {
			if err := m.copyText(book.Name); err != nil {
				return ActionErrMsg{Err: fmt.Errorf("failed to copy title: %w", err)}
			}
			return ActionDoneMsg{Message: fmt.Sprintf("Copied %q", book.Name)}
		}

	case ActionRefreshCover:
		return tea.Sequence(
			func() tea.Msg { return SwitchToShelfMsg{} },
			func() tea.Msg { return RefreshCoverMsg{BookID: book.ID} },
		)

	case ActionOpenCover:
		return func() tea.Msg {
			if m.opener == nil {
				return ActionErrMsg{Err: fmt.Errorf("covers are not stored in a local directory")}
			}
			if err := m.opener.OpenCover(book.CoverKey); err != nil {
				return ActionErrMsg{Err: fmt.Errorf("failed to open cover: %w", err)}
			}
			return ActionDoneMsg{Message: "Opened " + book.CoverKey}
		}

	case ActionMarkFinished:
		return func() tea.Msg {
			result, err := commands.NewFinishBookCommand(m.lib, book.ID).Execute(context.Background())
			if err != nil {
				return ActionErrMsg{Err: err}
			}
			return ActionDoneMsg{Message: result.Message}
		}

	case ActionRestart:
		return func() tea.Msg {
			result, err := commands.NewSetProgressCommand(m.lib, book.ID, 0).Execute(context.Background())
			if err != nil {
				return ActionErrMsg{Err: err}
			}
			return ActionDoneMsg{Message: result.Message}
		}

	case ActionRemove:
		return func() tea.Msg { return SwitchToRemoveMsg{Book: book} }
	}

	return func() tea.Msg { return SwitchToShelfMsg{} }
}

// SelectBook makes id the current book
func SelectBook(lib ports.Library, id int64) tea.Cmd {
	return func() tea.Msg {
		book, err := commands.NewSelectBookCommand(lib, lib, id).Execute(context.Background())
		if err != nil {
			return ActionErrMsg{Err: err}
		}
		return ActionDoneMsg{Message: "Now playing " + book.Name}
	}
}

// View renders the menu view
func (m *MenuModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(m.book.Name))
	b.WriteString("\n")
	if m.book.HasAuthor() {
		b.WriteString(styles.Subtitle.Render(m.book.Author))
		b.WriteString("\n")
	}
	if m.book.Finished() {
		b.WriteString(styles.Success.Render("Finished"))
		b.WriteString(RenderMuted(" · " + domain.FormatTime(m.book.Duration)))
	} else {
		b.WriteString(RenderMuted(fmt.Sprintf("%s of %s",
			domain.FormatTime(m.book.Position), domain.FormatTime(m.book.Duration))))
	}
	b.WriteString("\n")
	if m.book.CoverKey != "" {
		b.WriteString(RenderLabelValue("Cover", m.book.CoverKey))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, a := range menuActions {
		if i == m.cursor {
			b.WriteString(styles.BookTitleFocused.Render("> " + a.label))
		} else {
			b.WriteString("  " + a.label)
		}
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(MenuKeys.Up, MenuKeys.Down, MenuKeys.Choose, MenuKeys.Back))

	return styles.App.Render(b.String())
}
