package shelf

import (
	tea "github.com/charmbracelet/bubbletea"

	"audioshelf/internal/domain"
)

// ClickType distinguishes the two ways a row can be activated
type ClickType int

const (
	ClickRegular ClickType = iota
	ClickMenu
)

func (c ClickType) String() string {
	switch c {
	case ClickRegular:
		return "regular"
	case ClickMenu:
		return "menu"
	}
	return "unknown"
}

// BookClickedMsg is sent when the user activates a row
type BookClickedMsg struct {
	Book  domain.Book
	Click ClickType
}

// CoverLoadedMsg carries the result of an asynchronous cover load
type CoverLoadedMsg struct {
	Slot       int
	Generation uint64
	Key        string
	Art        string
	Err        error
}

// coverPlaceholderMsg installs the placeholder once the current frame is drawn
type coverPlaceholderMsg struct {
	Slot       int
	Generation uint64
}

// SelectionChanged is the change payload for an indicator-only rebind
type SelectionChanged struct{}

func (SelectionChanged) String() string {
	return "selection"
}

// afterRender delivers msg through the program loop. bubbletea renders the
// view for the current update before it handles the returned message.
func afterRender(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
