package views

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"audioshelf/internal/application/commands"
	"audioshelf/internal/ports"
)

// RemoveModel is the model for the remove confirmation view
type RemoveModel struct {
	ConfirmationModel
	repo ports.BookRepository
}

// NewRemoveModel creates a new remove view model
func NewRemoveModel(repo ports.BookRepository) *RemoveModel {
	return &RemoveModel{
		ConfirmationModel: NewConfirmationModel(),
		repo:              repo,
	}
}

// Init initializes the remove view
func (m *RemoveModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the remove view
func (m *RemoveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg,
			m.doRemove,
			func() tea.Msg { return SwitchToShelfMsg{} },
		)
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

func (m *RemoveModel) doRemove() tea.Msg {
	if m.Target == nil {
		return SwitchToShelfMsg{}
	}

	result, err := commands.NewRemoveBookCommand(m.repo, m.Target.ID).Execute(context.Background())
	if err != nil {
		return ActionErrMsg{Err: err}
	}
	return ActionDoneMsg{Message: result.Message}
}

// View renders the remove confirmation view
func (m *RemoveModel) View() string {
	return NewViewBuilder().
		Title("Remove Book").
		Warning("Listening progress will be lost.").
		Target(m.Target, "Remove").
		Message(m.Message, m.MessageErr).
		Prompt("Are you sure?").
		String()
}
