package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style definitions
var (
	primaryColor = lipgloss.Color("#3b82f6")
	mutedColor   = lipgloss.Color("#94a3b8")
	errorColor   = lipgloss.Color("#ef4444")
	successColor = lipgloss.Color("#10b981")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	activeLabelStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)

var fieldLabels = [fieldCount]string{
	"Styles directory",
	"Managed container id",
	"Theme manifest",
	"Dev server port",
}

// View renders the wizard
func (m Model) View() string {
	if m.quitting && !m.accepted {
		return ""
	}

	switch m.step {
	case StepSummary:
		return m.renderSummary()
	case StepDone:
		return successStyle.Render("✅ Configuration accepted") + "\n"
	default:
		return m.renderBasics()
	}
}

func (m Model) renderBasics() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Restyle project setup"))
	b.WriteString("\n")

	for i, input := range m.inputs {
		label := fieldLabels[i]
		if i == m.currentInput {
			b.WriteString(activeLabelStyle.Render("› " + label))
		} else {
			b.WriteString(labelStyle.Render("  " + label))
		}
		b.WriteString("\n  ")
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	if m.errorMessage != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errorMessage))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab: next field • enter: continue • ctrl+c: quit"))
	return b.String()
}

func (m Model) renderSummary() string {
	result := m.Result()

	var b strings.Builder
	b.WriteString(labelStyle.Render("Styles directory: "))
	b.WriteString(result.StylesDir)
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Container id:     "))
	if result.Container == "" {
		b.WriteString("(client default)")
	} else {
		b.WriteString(result.Container)
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Theme manifest:   "))
	if result.Theme == "" {
		b.WriteString("(none)")
	} else {
		b.WriteString(result.Theme)
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Dev server port:  "))
	b.WriteString(strings.TrimSpace(m.inputs[fieldPort].Value()))

	content := titleStyle.Render("Summary") + "\n" + b.String()

	return boxStyle.Render(content) + "\n" +
		helpStyle.Render("enter: write restyle.json • esc: back • ctrl+c: quit")
}
