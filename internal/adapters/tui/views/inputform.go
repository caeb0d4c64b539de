package views

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"audioshelf/internal/adapters/tui/styles"
	"audioshelf/internal/application"
)

var errRequired = errors.New("required")

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Next   key.Binding
	Prev   key.Binding
}

// DefaultInputFormKeys returns the default input form key bindings
var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
}

// FieldValidator checks a trimmed, non-empty field value
type FieldValidator func(value string) error

// InputField is a labelled text input with its own validation state
type InputField struct {
	Label    string
	Input    textinput.Model
	Required bool
	Err      error

	validate FieldValidator
}

// NewInputField creates an optional field with the given label and placeholder
func NewInputField(label, placeholder string, charLimit int) InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	return InputField{
		Label: label,
		Input: input,
	}
}

// Require marks the field as mandatory
func (f InputField) Require() InputField {
	f.Required = true
	return f
}

// WithValidator checks every non-empty value with v
func (f InputField) WithValidator(v FieldValidator) InputField {
	f.validate = v
	return f
}

// Value returns the trimmed input text
func (f *InputField) Value() string {
	return strings.TrimSpace(f.Input.Value())
}

// check validates the current value. Empty required fields are only
// flagged when strict is set, so typing into a fresh form stays quiet.
func (f *InputField) check(strict bool) error {
	value := f.Value()
	switch {
	case value == "" && f.Required && strict:
		f.Err = errRequired
	case value == "" || f.validate == nil:
		f.Err = nil
	default:
		f.Err = f.validate(value)
	}
	return f.Err
}

// InputForm manages labelled fields with focus and validation
type InputForm struct {
	Fields       []InputField
	FocusedField int
	Keys         InputFormKeyMap
}

// NewInputForm creates a new input form with the given fields
func NewInputForm(fields ...InputField) *InputForm {
	form := &InputForm{
		Fields: fields,
		Keys:   DefaultInputFormKeys,
	}
	if len(fields) > 0 {
		form.Fields[0].Input.Focus()
	}
	return form
}

// Init returns the blink command for the focused input
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update moves focus or feeds msg to the focused input, re-validating
// it as the user types.
func (f *InputForm) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, f.Keys.Next):
			f.NextField()
			return nil
		case key.Matches(msg, f.Keys.Prev):
			f.focus(f.FocusedField - 1)
			return nil
		}
	}

	if f.FocusedField < 0 || f.FocusedField >= len(f.Fields) {
		return nil
	}
	field := &f.Fields[f.FocusedField]
	var cmd tea.Cmd
	field.Input, cmd = field.Input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		field.check(false)
	}
	return cmd
}

// NextField moves focus to the next field, wrapping around
func (f *InputForm) NextField() {
	f.focus(f.FocusedField + 1)
}

// OnLastField reports whether the last field has focus
func (f *InputForm) OnLastField() bool {
	return f.FocusedField == len(f.Fields)-1
}

func (f *InputForm) focus(index int) {
	n := len(f.Fields)
	if n == 0 {
		return
	}
	index = (index%n + n) % n

	f.Fields[f.FocusedField].Input.Blur()
	f.FocusedField = index
	f.Fields[index].Input.Focus()
}

// Value returns the trimmed value of a field by index
func (f *InputForm) Value(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}
	return f.Fields[index].Value()
}

// Validate checks every field and focuses the first invalid one.
// The returned error is an *application.ValidationError.
func (f *InputForm) Validate() error {
	var first error
	for i := range f.Fields {
		err := f.Fields[i].check(true)
		if err != nil && first == nil {
			first = &application.ValidationError{
				Field:   strings.ToLower(f.Fields[i].Label),
				Message: err.Error(),
			}
			f.focus(i)
		}
	}
	return first
}

// Reset clears all values and errors and focuses the first field
func (f *InputForm) Reset() {
	for i := range f.Fields {
		f.Fields[i].Input.SetValue("")
		f.Fields[i].Err = nil
	}
	f.focus(0)
}

// RenderField renders a field with its label and any validation error
func (f *InputForm) RenderField(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}

	field := f.Fields[index]
	var b strings.Builder

	label := field.Label
	if field.Required {
		label += " *"
	}
	b.WriteString(styles.InputLabel.Render(label))
	b.WriteString("\n")

	if index == f.FocusedField {
		b.WriteString(styles.InputFocused.Render(field.Input.View()))
	} else {
		b.WriteString(styles.InputField.Render(field.Input.View()))
	}

	if field.Err != nil {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render(field.Err.Error()))
	}

	return b.String()
}

// RenderHelp renders the form's key help with submitText for enter
func (f *InputForm) RenderHelp(submitText string) string {
	submit := f.Keys.Submit
	submit.SetHelp("enter", submitText)

	bindings := []key.Binding{submit, f.Keys.Cancel}
	if len(f.Fields) > 1 {
		bindings = append([]key.Binding{f.Keys.Next}, bindings...)
	}
	return RenderHelpLine(bindings...)
}
