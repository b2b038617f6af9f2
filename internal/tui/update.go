package tui

import (
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/dublaj/internal/authform"
	"github.com/thenoetrevino/dublaj/internal/tui/huhforms"
	"github.com/thenoetrevino/dublaj/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.resize()
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == m.Config.KeyMappings.Quit {
			return m, m.quit()
		}

		switch m.UiState.Screen() {
		case state.HelpScreen:
			return m.handleHelpScreen(msg)
		case state.CloseConfirmScreen:
			return m.handleCloseDialog(msg)
		default:
			return m.handleFormScreen(msg)
		}
	}

	// Non-key messages (cursor blink, huh internals) go to whatever is active
	if m.UiState.Screen() == state.CloseConfirmScreen {
		return m.handleCloseDialog(msg)
	}
	_, cmd := m.Inputs.Update(msg)
	return m, cmd
}

// ============================================================================
// FORM SCREEN
// ============================================================================

func (m Model) handleFormScreen(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch key := msg.String(); key {
	case km.Close:
		return m, m.openCloseDialog()
	case km.ShowHelp:
		m.UiState.SetScreen(state.HelpScreen)
		return m, nil
	case km.ToggleMode:
		return m, m.toggleMode()
	case km.Submit:
		return m, m.activate(m.Inputs.FocusedKey())
	case "left", "right":
		if m.Inputs.FocusedKey() == keyTabs {
			mode := authform.Login
			if key == "right" {
				mode = authform.Register
			}
			return m, m.setMode(mode)
		}
	}

	_, cmd := m.Inputs.Update(msg)
	m.syncFocusedValue()
	return m, cmd
}

// activate runs the action of the focused widget. Inputs submit the form.
func (m Model) activate(key string) tea.Cmd {
	switch key {
	case keyTabs, keySwitch:
		return m.toggleMode()
	case keyForgot:
		m.NotificationState.Replace(state.LevelInfo, "Password reset is not available")
		return nil
	case keyGitHub, keyTwitter, keyLinkedIn:
		for _, p := range socialProviders {
			if p.key == key {
				m.NotificationState.Replace(state.LevelInfo, p.label+" sign-in is not available")
			}
		}
		return nil
	default:
		return m.submit()
	}
}

func (m Model) toggleMode() tea.Cmd {
	mode := m.Form.ToggleMode()
	slog.Debug("form mode toggled", "mode", mode)
	return m.layout()
}

func (m Model) setMode(mode authform.Mode) tea.Cmd {
	if m.Form.Mode() == mode {
		return nil
	}
	if err := m.Form.SetMode(mode); err != nil {
		slog.Error("failed to set form mode", "mode", mode, "error", err)
		return nil
	}
	return m.layout()
}

// submit runs the controller's submit and reports the outcome in the
// status line. On validation failure focus moves to the first invalid field.
func (m Model) submit() tea.Cmd {
	payload, err := m.Form.Submit(m.Ctx)
	if err == nil {
		m.NotificationState.Replace(state.LevelInfo,
			fmt.Sprintf("%s form submitted for %s", payload.Mode, payload.Email))
		return nil
	}

	if verr, ok := authform.AsValidationError(err); ok {
		m.NotificationState.Replace(state.LevelError, fieldCountMessage(len(verr.Errors)))
		for _, field := range m.Form.VisibleFields() {
			if _, bad := verr.Errors[field]; bad {
				return m.Inputs.Focus(field.String())
			}
		}
		return nil
	}

	if errors.Is(err, authform.ErrClosed) {
		m.NotificationState.Replace(state.LevelError, "The form is closed")
		return nil
	}

	slog.Error("failed to deliver submission", "mode", m.Form.Mode(), "error", err)
	m.NotificationState.Replace(state.LevelWarning, "Submitted, but it could not be recorded")
	return nil
}

func fieldCountMessage(n int) string {
	if n == 1 {
		return "Fix 1 field to continue"
	}
	return fmt.Sprintf("Fix %d fields to continue", n)
}

// quit sends the close signal to the controller and stops the program
func (m Model) quit() tea.Cmd {
	m.Form.Close()
	return tea.Quit
}

// ============================================================================
// HELP SCREEN
// ============================================================================

// handleHelpScreen closes the overlay on any key. The key itself is consumed.
func (m Model) handleHelpScreen(tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.UiState.SetScreen(state.FormScreen)
	return m, nil
}

// ============================================================================
// CLOSE CONFIRMATION
// ============================================================================

func (m Model) openCloseDialog() tea.Cmd {
	form := m.DialogState.Open(func(confirmed *bool) *huh.Form {
		return huhforms.CreateCloseForm(confirmed, m.Config)
	})
	m.UiState.SetScreen(state.CloseConfirmScreen)
	return form.Init()
}

func (m Model) handleCloseDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.DialogState.IsOpen() {
		m.UiState.SetScreen(state.FormScreen)
		return m, nil
	}

	model, cmd := m.DialogState.Form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.DialogState.Form = f
	}

	if next, done := m.resolveCloseDialog(); done {
		return m, next
	}
	return m, cmd
}

// resolveCloseDialog acts on a finished dialog. done is false while the
// dialog is still waiting for an answer.
func (m Model) resolveCloseDialog() (next tea.Cmd, done bool) {
	switch m.DialogState.Form.State {
	case huh.StateCompleted:
		confirmed := m.DialogState.Confirmed()
		m.DialogState.Reset()
		m.UiState.SetScreen(state.FormScreen)
		if confirmed {
			return m.quit(), true
		}
		return nil, true
	case huh.StateAborted:
		m.DialogState.Reset()
		m.UiState.SetScreen(state.FormScreen)
		return nil, true
	default:
		return nil, false
	}
}
