package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/dublaj/internal/authform"
	"github.com/thenoetrevino/dublaj/internal/tui/components"
	"github.com/thenoetrevino/dublaj/internal/tui/layers"
	"github.com/thenoetrevino/dublaj/internal/tui/notifications"
	"github.com/thenoetrevino/dublaj/internal/tui/state"
	"github.com/thenoetrevino/dublaj/internal/tui/theme"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if !m.UiState.Ready() {
		view.Content = "Loading..."
		return view
	}

	width, height := m.UiState.Width(), m.UiState.Height()

	base := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.renderCard())
	stack := []*lipgloss.Layer{lipgloss.NewLayer(base)}

	var overlay *lipgloss.Layer
	switch m.UiState.Screen() {
	case state.HelpScreen:
		overlay = layers.CreateCenteredLayer(m.renderHelp(), width, height)
	case state.CloseConfirmScreen:
		overlay = layers.CreateCenteredLayer(m.renderCloseDialog(), width, height)
	}
	if overlay != nil {
		stack = append(stack, overlay)
	}

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

// renderCard renders the account card
func (m Model) renderCard() string {
	width := m.UiState.ContentWidth()
	mode := m.Form.Mode()
	title, subtitle := heading(mode)

	sections := []string{
		components.BrandStyle.Render(m.Config.Form.Brand),
		"",
		m.renderTabs(width),
		"",
		components.HeadingStyle.Render(title),
		components.SubtleStyle.Render(subtitle),
		"",
	}

	for _, field := range m.Form.VisibleFields() {
		if field.Kind() != authform.KindText {
			continue
		}
		sections = append(sections, m.renderInput(field, width))
	}

	if mode == authform.Login {
		sections = append(sections, m.renderRememberRow(width))
	}

	sections = append(sections,
		"",
		m.Inputs.Get(keySubmit).View(),
		"",
		components.RenderDivider(labelSocialDivider, width),
		m.renderSocialRow(),
		m.renderSwitchPrompt(),
		"",
		m.renderStatusLine(width),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return components.CardStyle.Width(m.UiState.CardWidth()).Render(content)
}

// renderTabs marks the active tab with arrows while the tab bar has focus
func (m Model) renderTabs(width int) string {
	tabs := []string{tabLogin, tabRegister}
	selected := 0
	if m.Form.Mode() == authform.Register {
		selected = 1
	}
	if m.Inputs.FocusedKey() == keyTabs {
		tabs[selected] = "‹ " + tabs[selected] + " ›"
	}
	return components.RenderTabs(tabs, selected, width)
}

// renderInput renders a text input with its validation message under it
func (m Model) renderInput(field authform.Field, width int) string {
	input := m.Inputs.Get(field.String())
	if input == nil {
		return ""
	}

	msg, ok := m.Form.Error(field)
	if !ok {
		return input.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		input.View(),
		components.FieldErrorStyle.Render(wordwrap.String(msg, width)),
	)
}

// renderRememberRow renders remember-me on the left and the forgot link on
// the right
func (m Model) renderRememberRow(width int) string {
	remember := m.Inputs.Get(authform.RememberMe.String()).View()
	forgot := m.Inputs.Get(keyForgot).View()

	gap := max(width-lipgloss.Width(remember)-lipgloss.Width(forgot), 1)
	return remember + strings.Repeat(" ", gap) + forgot
}

func (m Model) renderSocialRow() string {
	buttons := make([]string, 0, len(socialProviders)*2)
	for i, p := range socialProviders {
		if i > 0 {
			buttons = append(buttons, " ")
		}
		buttons = append(buttons, m.Inputs.Get(p.key).View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}

func (m Model) renderSwitchPrompt() string {
	question, _ := switchPrompt(m.Form.Mode())
	return components.SubtleStyle.Render(question) + " " + m.Inputs.Get(keySwitch).View()
}

func (m Model) renderStatusLine(width int) string {
	var left string
	if n, ok := m.NotificationState.Latest(); ok {
		left = notifications.RenderInlineFromState(n)
	}
	return components.RenderStatusBar(components.StatusBarProps{
		Width: width,
		Left:  left,
		Right: hintKeys,
	})
}

func (m Model) renderHelp() string {
	width := min(max(m.UiState.Width()-10, 30), 64)
	body := m.help.render(helpMarkdown(m.Config.KeyMappings), width)
	return components.HelpBoxStyle.Render(body)
}

func (m Model) renderCloseDialog() string {
	if !m.DialogState.IsOpen() {
		return ""
	}
	return components.DialogBoxStyle.Render(m.DialogState.Form.View())
}
