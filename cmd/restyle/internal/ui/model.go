package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Step represents the current step in the init flow
type Step int

const (
	StepBasics Step = iota
	StepSummary
	StepDone
)

// Defaults seeds the wizard inputs.
type Defaults struct {
	StylesDir string
	Port      int
}

// Result is what the wizard hands back to the init command.
type Result struct {
	StylesDir string
	Theme     string
	Container string
	Port      int
	Accepted  bool
}

// Field indices into Model.inputs
const (
	fieldStylesDir = iota
	fieldContainer
	fieldTheme
	fieldPort
	fieldCount
)

// KeyMap defines the wizard keyboard shortcuts
type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
}

var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab/↓", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab/↑", "previous field"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// Model is the init wizard state
type Model struct {
	step         Step
	inputs       []textinput.Model
	currentInput int
	accepted     bool
	quitting     bool
	errorMessage string
}

// NewModel creates the wizard model
func NewModel(defaults Defaults) Model {
	stylesInput := textinput.New()
	stylesInput.Placeholder = "styles"
	stylesInput.CharLimit = 100
	stylesInput.Width = 40
	stylesInput.SetValue(defaults.StylesDir)
	stylesInput.Focus()

	containerInput := textinput.New()
	containerInput.Placeholder = "(client default)"
	containerInput.CharLimit = 60
	containerInput.Width = 40

	themeInput := textinput.New()
	themeInput.Placeholder = "theme.yaml (optional)"
	themeInput.CharLimit = 100
	themeInput.Width = 40

	portInput := textinput.New()
	portInput.Placeholder = "8135"
	portInput.CharLimit = 5
	portInput.Width = 10
	portInput.SetValue(strconv.Itoa(defaults.Port))

	return Model{
		step:   StepBasics,
		inputs: []textinput.Model{stylesInput, containerInput, themeInput, portInput},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, DefaultKeyMap.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.step {
		case StepBasics:
			switch {
			case key.Matches(msg, DefaultKeyMap.Next):
				m.focusInput(m.currentInput + 1)
				return m, nil
			case key.Matches(msg, DefaultKeyMap.Prev):
				m.focusInput(m.currentInput - 1)
				return m, nil
			case key.Matches(msg, DefaultKeyMap.Enter):
				if m.currentInput < fieldCount-1 {
					m.focusInput(m.currentInput + 1)
					return m, nil
				}
				if err := m.validate(); err != nil {
					m.errorMessage = err.Error()
					return m, nil
				}
				m.errorMessage = ""
				m.step = StepSummary
				return m, nil
			}

		case StepSummary:
			switch {
			case key.Matches(msg, DefaultKeyMap.Enter):
				m.accepted = true
				m.step = StepDone
				return m, tea.Quit
			case key.Matches(msg, DefaultKeyMap.Back):
				m.step = StepBasics
				return m, nil
			}
		}
	}

	if m.step == StepBasics {
		var cmd tea.Cmd
		m.inputs[m.currentInput], cmd = m.inputs[m.currentInput].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) focusInput(i int) {
	if i < 0 {
		i = fieldCount - 1
	}
	if i >= fieldCount {
		i = 0
	}
	m.inputs[m.currentInput].Blur()
	m.currentInput = i
	m.inputs[m.currentInput].Focus()
}

func (m Model) validate() error {
	if m.inputs[fieldStylesDir].Value() == "" {
		return fmt.Errorf("styles directory is required")
	}
	port, err := strconv.Atoi(m.inputs[fieldPort].Value())
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}

// Result returns the final wizard values
func (m Model) Result() Result {
	port, _ := strconv.Atoi(m.inputs[fieldPort].Value())
	return Result{
		StylesDir: m.inputs[fieldStylesDir].Value(),
		Container: m.inputs[fieldContainer].Value(),
		Theme:     m.inputs[fieldTheme].Value(),
		Port:      port,
		Accepted:  m.accepted,
	}
}
