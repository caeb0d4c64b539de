package views

import "audioshelf/internal/domain"

// Messages for view switching
type SwitchToShelfMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToAddMsg struct{}

type SwitchToMenuMsg struct {
	Book domain.Book
}

type SwitchToRemoveMsg struct {
	Book domain.Book
}

// BooksLoadedMsg carries a fresh snapshot of the library
type BooksLoadedMsg struct {
	Books      []domain.Book
	CurrentID  int64
	HasCurrent bool
}

// ActionDoneMsg reports a finished library change; the shelf reloads
type ActionDoneMsg struct {
	Message string
}

// ActionErrMsg reports a failed action
type ActionErrMsg struct {
	Err error
}

// RefreshCoverMsg asks the shelf to reload one book's cover
type RefreshCoverMsg struct {
	BookID int64
}

// CoverChangedMsg is sent when a cover file changes on disk
type CoverChangedMsg struct {
	Key string
}

type refreshTickMsg struct{}
