package views

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"audioshelf/internal/adapters/tui/styles"
	"audioshelf/internal/application"
	"audioshelf/internal/application/commands"
	"audioshelf/internal/domain"
	"audioshelf/internal/ports"
)

const (
	fieldName = iota
	fieldAuthor
	fieldDuration
	fieldCover
)

// AddModel is the model for the add-book view
type AddModel struct {
	ViewState
	repo ports.BookRepository
	form *InputForm
}

// NewAddModel creates a new add-book view model
func NewAddModel(repo ports.BookRepository) *AddModel {
	return &AddModel{
		repo: repo,
		form: NewInputForm(
			NewInputField("Title", "The Left Hand of Darkness", 200).Require(),
			NewInputField("Author", "Optional", 120),
			NewInputField("Duration", "hh:mm", 12).Require().WithValidator(validDuration),
			NewInputField("Cover file", "Optional, e.g. cover.jpg", 120).WithValidator(validCoverFile),
		),
	}
}

// Reset clears the form
func (m *AddModel) Reset() {
	m.form.Reset()
	m.ClearMessage()
}

// Init initializes the add view
func (m *AddModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the add view
func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case ActionErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToShelfMsg{} }

		case key.Matches(msg, m.form.Keys.Submit):
			if !m.form.OnLastField() {
				m.form.NextField()
				return m, nil
			}
			return m, m.submit()
		}
	}

	return m, m.form.Update(msg)
}

func validDuration(value string) error {
	ms, err := domain.ParseTime(value)
	if err != nil {
		return err
	}
	if ms == 0 {
		return errors.New("duration must be positive")
	}
	return nil
}

func validCoverFile(value string) error {
	if strings.ContainsAny(value, `/\`) || strings.HasPrefix(value, ".") {
		return errors.New("must be a file name in the covers directory")
	}
	return nil
}

func (m *AddModel) submit() tea.Cmd {
	if err := m.form.Validate(); err != nil {
		return func() tea.Msg { return ActionErrMsg{Err: err} }
	}

	name := m.form.Value(fieldName)
	author := m.form.Value(fieldAuthor)
	rawDuration := m.form.Value(fieldDuration)
	cover := m.form.Value(fieldCover)

	return func() tea.Msg {
		duration, err := domain.ParseTime(rawDuration)
		if err != nil {
			return ActionErrMsg{Err: &application.ValidationError{Field: "duration", Message: err.Error()}}
		}

		cmd := commands.NewAddBookCommand(m.repo, name, author, duration)
		cmd.CoverKey = cover
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return ActionErrMsg{Err: err}
		}
		return ActionDoneMsg{Message: result.Message}
	}
}

// View renders the add view
func (m *AddModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Add Book"))
	b.WriteString("\n")

	for i := range m.form.Fields {
		b.WriteString(m.form.RenderField(i))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.form.RenderHelp("add"))

	return styles.App.Render(b.String())
}
