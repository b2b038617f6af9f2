package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dublaj/internal/authform"
	"github.com/thenoetrevino/dublaj/internal/config"
	"github.com/thenoetrevino/dublaj/internal/tui/components"
	"github.com/thenoetrevino/dublaj/internal/tui/forms"
	"github.com/thenoetrevino/dublaj/internal/tui/state"
)

// Model represents the application state for the TUI. The form's data and
// rules live in the Controller; the Model only owns what is drawn.
type Model struct {
	Ctx               context.Context
	Config            *config.Config
	Form              *authform.Controller
	Inputs            *forms.Form
	UiState           *state.UIState
	NotificationState *state.NotificationState
	DialogState       *state.DialogState
	help              *helpRenderer
}

// InitialModel creates the TUI model around an existing controller
func InitialModel(ctx context.Context, cfg *config.Config, form *authform.Controller) Model {
	components.InitStyles(cfg.ColorScheme)

	m := Model{
		Ctx:               ctx,
		Config:            cfg,
		Form:              form,
		Inputs:            newInputs(cfg),
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		DialogState:       state.NewDialogState(),
		help:              &helpRenderer{},
	}
	m.syncInputs()
	m.layout()

	return m
}

// newInputs builds every widget of the card. Visibility is decided later by
// layout.
func newInputs(cfg *config.Config) *forms.Form {
	masked := cfg.Form.Masked()

	fields := []forms.Field{
		forms.NewButton(keyTabs, "", components.SubtleStyle, components.SubtleStyle),
		forms.NewTextInput(authform.Name.String(), placeholder(authform.Name), false),
		forms.NewTextInput(authform.Email.String(), placeholder(authform.Email), false),
		forms.NewTextInput(authform.Password.String(), placeholder(authform.Password), masked),
		forms.NewTextInput(authform.ConfirmPassword.String(), placeholder(authform.ConfirmPassword), masked),
		forms.NewCheckbox(authform.RememberMe.String(), labelRememberMe, cfg.KeyMappings.ToggleRemember),
		forms.NewButton(keyForgot, labelForgotPassword, components.LinkStyle, components.FocusedLinkStyle),
		forms.NewButton(keySubmit, tabLogin, components.PrimaryButtonStyle, components.FocusedPrimaryButtonStyle),
	}
	for _, p := range socialProviders {
		fields = append(fields, forms.NewButton(p.key, p.label, components.SocialButtonStyle, components.FocusedSocialButtonStyle))
	}
	fields = append(fields, forms.NewButton(keySwitch, tabRegister, components.LinkStyle, components.FocusedLinkStyle))

	f := forms.NewForm(fields...)
	f.SetNavigationKeys([]string{cfg.KeyMappings.NextField}, []string{cfg.KeyMappings.PrevField})
	return f
}

// ringOrder returns the focus order of the card in mode
func ringOrder(mode authform.Mode) []string {
	keys := []string{keyTabs}
	for _, f := range authform.VisibleFields(mode) {
		keys = append(keys, f.String())
	}
	if mode == authform.Login {
		keys = append(keys, keyForgot)
	}
	keys = append(keys, keySubmit)
	for _, p := range socialProviders {
		keys = append(keys, p.key)
	}
	return append(keys, keySwitch)
}

// Init focuses the first field of the current mode
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.focusFirstField()
}

func (m Model) focusFirstField() tea.Cmd {
	visible := m.Form.VisibleFields()
	if len(visible) == 0 {
		return nil
	}
	return m.Inputs.Focus(visible[0].String())
}

// layout applies the current mode to the widgets: which are visible, and
// what the mode-dependent buttons say. Focus moves to the first field when
// the focused widget was hidden.
func (m Model) layout() tea.Cmd {
	mode := m.Form.Mode()

	if submit, ok := m.Inputs.Get(keySubmit).(*forms.Button); ok {
		submit.SetLabel(modeTab(mode))
	}
	if link, ok := m.Inputs.Get(keySwitch).(*forms.Button); ok {
		_, target := switchPrompt(mode)
		link.SetLabel(target)
	}

	if kept := m.Inputs.SetOrder(ringOrder(mode)...); !kept {
		return m.focusFirstField()
	}
	return nil
}

// resize fits the widgets to the card's content width
func (m Model) resize() {
	width := m.UiState.ContentWidth()

	for _, f := range m.Inputs.Fields() {
		if ti, ok := f.(*forms.TextInput); ok {
			ti.SetWidth(width)
		}
	}
	if submit, ok := m.Inputs.Get(keySubmit).(*forms.Button); ok {
		submit.SetStyles(
			components.PrimaryButtonStyle.Width(width),
			components.FocusedPrimaryButtonStyle.Width(width),
		)
	}
}

// syncInputs copies every controller value into its widget
func (m Model) syncInputs() {
	values := m.Form.Fields()
	for _, field := range authform.AllFields {
		switch w := m.Inputs.Get(field.String()).(type) {
		case *forms.TextInput:
			w.SetValue(values.Get(field).Text)
		case *forms.Checkbox:
			w.SetChecked(values.Get(field).Checked)
		}
	}
}

// syncFocusedValue forwards the focused widget's value to the controller
func (m Model) syncFocusedValue() {
	switch w := m.Inputs.Focused().(type) {
	case *forms.TextInput:
		field, err := authform.ParseField(w.Key())
		if err != nil {
			return
		}
		if m.Form.Fields().Get(field).Text != w.Value() {
			_ = m.Form.SetText(field, w.Value())
		}
	case *forms.Checkbox:
		if m.Form.Fields().RememberMe != w.Checked() {
			m.Form.SetRememberMe(w.Checked())
		}
	}
}
