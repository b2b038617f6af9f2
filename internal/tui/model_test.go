package tui

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dublaj/internal/authform"
	"github.com/thenoetrevino/dublaj/internal/config"
	"github.com/thenoetrevino/dublaj/internal/tui/state"
)

var (
	keyTab      = tea.KeyPressMsg{Code: tea.KeyTab}
	keyShiftTab = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	keyEnter    = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyEsc      = tea.KeyPressMsg{Code: tea.KeyEscape}
	keySpace    = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	keyHelp     = tea.KeyPressMsg{Code: tea.KeyF1}
	keyToggle   = tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
	keyQuit     = tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	keyRight    = tea.KeyPressMsg{Code: tea.KeyRight}
	keyLeft     = tea.KeyPressMsg{Code: tea.KeyLeft}
)

// newTestModel builds a sized model around a controller using submitter
func newTestModel(t *testing.T, submitter authform.Submitter) Model {
	t.Helper()

	form := authform.New(authform.WithSubmitter(submitter))
	m := InitialModel(context.Background(), config.Default(), form)
	m.Init()
	return press(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()

	for _, r := range s {
		m = press(t, m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return m
}

// focus tabs until key is focused
func focus(t *testing.T, m Model, key string) Model {
	t.Helper()

	for range len(m.Inputs.Fields()) + 1 {
		if m.Inputs.FocusedKey() == key {
			return m
		}
		m = press(t, m, keyTab)
	}
	t.Fatalf("%q never received focus", key)
	return m
}

func TestInitialModel_StartsInLoginOnEmail(t *testing.T) {
	m := newTestModel(t, authform.NopSubmitter{})

	assert.Equal(t, authform.Login, m.Form.Mode())
	assert.Equal(t, "email", m.Inputs.FocusedKey())
	assert.Equal(t, state.FormScreen, m.UiState.Screen())
}

func TestTyping_UpdatesController(t *testing.T) {
	m := newTestModel(t, authform.NopSubmitter{})

	m = typeText(t, m, "a@b.c")
	m = press(t, m, keyTab)
	m = typeText(t, m, "secret")

	fields := m.Form.Fields()
	assert.Equal(t, "a@b.c", fields.Email)
	assert.Equal(t, "secret", fields.Password)
	assert.Empty(t, m.Form.Errors(), "typing does not validate")
}

func TestFocusRing_SkipsHiddenFields(t *testing.T) {
	tests := []struct {
		name    string
		toggle  bool
		hidden  []string
		visible []string
	}{
		{
			name:    "login",
			hidden:  []string{"name", "confirmPassword"},
			visible: []string{"email", "password", "rememberMe", keyForgot},
		},
		{
			name:    "register",
			toggle:  true,
			hidden:  []string{"rememberMe", keyForgot},
			visible: []string{"name", "email", "password", "confirmPassword"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, authform.NopSubmitter{})
			if tt.toggle {
				m = press(t, m, keyToggle)
			}

			seen := map[string]bool{}
			for range len(m.Inputs.Fields()) * 2 {
				m = press(t, m, keyTab)
				seen[m.Inputs.FocusedKey()] = true
			}

			for _, k := range tt.hidden {
				assert.False(t, seen[k], "%s should be skipped", k)
			}
			for _, k := range tt.visible {
				assert.True(t, seen[k], "%s should be reachable", k)
			}
		})
	}
}

func TestShiftTab_MovesBackward(t *testing.T) {
	m := newTestModel(t, authform.NopSubmitter{})

	m = press(t, m, keyShiftTab)
	assert.Equal(t, keyTabs, m.Inputs.FocusedKey())

	m = press(t, m, keyShiftTab)
	assert.Equal(t, keySwitch, m.Inputs.FocusedKey())
}

func TestToggleMode_PreservesFields(t *testing.T) {
	m := newTestModel(t, authform.NopSubmitter{})
	m = typeText(t, m, "user@example.com")

	m = press(t, m, keyToggle)
	assert.Equal(t, authform.Register, m.Form.Mode())
	assert.Equal(t, "user@example.com", m.Form.Fields().Email)
	assert.Equal(t, "email", m.Inputs.FocusedKey(), "email stays focused across modes")

	m = press(t, m, keyToggle)
	assert.Equal(t, authform.Login, m.Form.Mode())
	assert.Equal(t, "user@example.com", m.Form.Fields().Email)
}

func TestToggleMode_HiddenFocusMovesToFirstField(t *testing.T) {
	m := newTestModel(t, authform.NopSubmitter{})
	m = press(t, m, keyToggle)
	m = focus(t, m, "confirmPassword")

	m = press(t, m, keyToggle)
	assert.Equal(t, authform.Login, m.Form.Mode())
	assert.Equal(t, "email", m.Inputs.FocusedKey())
}

func TestTabBar_ArrowsSelectMode(t *testing.T) {
	m := newTestModel(t, authform.NopSubmitter{})
	m = focus(t, m, keyTabs)

	m = press(t, m, keyRight)
	assert.Equal(t, authform.Register, m.Form.Mode())

	m = press(t, m, keyRight)
	assert.Equal(t, authform.Register, m.Form.Mode(), "right on register stays")

	m = press(t, m, keyLeft)
	assert.Equal(t, authform.Login, m.Form.Mode())
}

func TestArrows_InInputDoNotChangeMode(t *testing.T) {
	m := newTestModel(t, authform.NopSubmitter{})
	m = typeText(t, m, "ab")

	m = press(t, m, keyRight)
	assert.Equal(t, authform.Login, m.Form.Mode())
	assert.Equal(t, "ab", m.Form.Fields().Email)
}

func TestSwitchLink_TogglesMode(t *testing.T) {
	m := newTestModel(t, authform.NopSubmitter{})
	m = focus(t, m, keySwitch)

	m = press(t, m, keyEnter)
	assert.Equal(t, authform.Register, m.Form.Mode())
	assert.Contains(t, m.renderCard(), promptHasAccount)
}

func TestRememberMe_SpaceToggles(t *testing.T) {
	m := newTestModel(t, authform.NopSubmitter{})
	m = focus(t, m, "rememberMe")

	m = press(t, m, keySpace)
	assert.True(t, m.Form.Fields().RememberMe)

	m = press(t, m, keySpace)
	assert.False(t, m.Form.Fields().RememberMe)
}

func TestSubmit_EmptyLoginShowsErrors(t *testing.T) {
	var calls int
	m := newTestModel(t, authform.SubmitterFunc(func(context.Context, authform.Payload) error {
		calls++
		return nil
	}))

	m = press(t, m, keyEnter)

	assert.Zero(t, calls)
	assert.Equal(t, authform.ErrorMap{
		authform.Email:    authform.MsgEmailRequired,
		authform.Password: authform.MsgPasswordRequired,
	}, m.Form.Errors())

	n, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, state.LevelError, n.Level)
	assert.Equal(t, "Fix 2 fields to continue", n.Message)

	card := m.renderCard()
	assert.Contains(t, card, authform.MsgEmailRequired)
	assert.Contains(t, card, authform.MsgPasswordRequired)
}

func TestSubmit_FocusesFirstInvalidField(t *testing.T) {
	m := newTestModel(t, authform.NopSubmitter{})
	m = typeText(t, m, "a@b.c")
	m = focus(t, m, keySubmit)

	m = press(t, m, keyEnter)
	assert.Equal(t, "password", m.Inputs.FocusedKey())
}

func TestSubmit_ValidLoginEmitsPayload(t *testing.T) {
	var got []authform.Payload
	m := newTestModel(t, authform.SubmitterFunc(func(_ context.Context, p authform.Payload) error {
		got = append(got, p)
		return nil
	}))

	m = typeText(t, m, "a@b.c")
	m = press(t, m, keyTab)
	m = typeText(t, m, "123456")
	m = press(t, m, keyEnter)

	require.Len(t, got, 1)
	assert.Equal(t, authform.Login, got[0].Mode)
	assert.Equal(t, "a@b.c", got[0].Email)
	assert.Equal(t, "123456", got[0].Password)
	assert.Nil(t, got[0].Name)
	assert.Empty(t, m.Form.Errors())

	n, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, state.LevelInfo, n.Level)
	assert.Contains(t, n.Message, "a@b.c")
}

func TestSubmit_RegisterMismatch(t *testing.T) {
	m := newTestModel(t, authform.NopSubmitter{})
	m = press(t, m, keyToggle)

	m = focus(t, m, "name")
	m = typeText(t, m, "A")
	m = press(t, m, keyTab)
	m = typeText(t, m, "a@b.co")
	m = press(t, m, keyTab)
	m = typeText(t, m, "abcdef")
	m = press(t, m, keyTab)
	m = typeText(t, m, "abcdeg")
	m = press(t, m, keyEnter)

	assert.Equal(t, authform.ErrorMap{authform.ConfirmPassword: authform.MsgPasswordMismatch}, m.Form.Errors())
	assert.Equal(t, "confirmPassword", m.Inputs.FocusedKey())
	assert.Equal(t, "Fix 1 field to continue", func() string {
		n, _ := m.NotificationState.Latest()
		return n.Message
	}())
}

func TestSubmit_SubmitterFailureWarns(t *testing.T) {
	m := newTestModel(t, authform.SubmitterFunc(func(context.Context, authform.Payload) error {
		return errors.New("disk full")
	}))

	m = typeText(t, m, "a@b.c")
	m = press(t, m, keyTab)
	m = typeText(t, m, "123456")
	m = press(t, m, keyEnter)

	n, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, state.LevelWarning, n.Level)
}

func TestSocialButtons_AreDecorative(t *testing.T) {
	for _, p := range socialProviders {
		t.Run(p.label, func(t *testing.T) {
			var calls int
			m := newTestModel(t, authform.SubmitterFunc(func(context.Context, authform.Payload) error {
				calls++
				return nil
			}))
			m = focus(t, m, p.key)

			m = press(t, m, keyEnter)

			assert.Zero(t, calls)
			assert.Empty(t, m.Form.Errors())
			n, ok := m.NotificationState.Latest()
			require.True(t, ok)
			assert.Equal(t, p.label+" sign-in is not available", n.Message)
		})
	}
}

func TestForgotPassword_IsDecorative(t *testing.T) {
	m := newTestModel(t, authform.NopSubmitter{})
	m = focus(t, m, keyForgot)

	m = press(t, m, keyEnter)

	assert.Empty(t, m.Form.Errors())
	n, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, state.LevelInfo, n.Level)
}

func TestHelpScreen(t *testing.T) {
	m := newTestModel(t, authform.NopSubmitter{})

	m = press(t, m, keyHelp)
	assert.Equal(t, state.HelpScreen, m.UiState.Screen())
	assert.NotEmpty(t, m.renderHelp())

	m = typeText(t, m, "x")
	assert.Equal(t, state.FormScreen, m.UiState.Screen(), "any key closes help")
	assert.Empty(t, m.Form.Fields().Email, "the closing key does not reach the form")

	for _, k := range []tea.KeyPressMsg{keyEsc, keyHelp, keyTab, {Code: tea.KeyEnter}} {
		m = press(t, m, keyHelp)
		require.Equal(t, state.HelpScreen, m.UiState.Screen())
		m = press(t, m, k)
		assert.Equal(t, state.FormScreen, m.UiState.Screen(), k.String())
	}
	assert.False(t, m.DialogState.IsOpen(), "esc on help does not open the close dialog")
}

func TestHelpMarkdown_UsesKeyMappings(t *testing.T) {
	km := config.DefaultKeyMappings()
	km.ToggleMode = "ctrl+o"

	md := helpMarkdown(km)
	assert.Contains(t, md, "`ctrl+o`")
	assert.Contains(t, md, "`tab / shift+tab`")
	assert.Contains(t, md, "`esc`")
}

func TestCloseDialog_OpensOnEsc(t *testing.T) {
	m := newTestModel(t, authform.NopSubmitter{})

	m = press(t, m, keyEsc)

	assert.Equal(t, state.CloseConfirmScreen, m.UiState.Screen())
	require.True(t, m.DialogState.IsOpen())
	assert.NotEmpty(t, m.renderCloseDialog())
	assert.False(t, m.Form.Closed())
}

func TestCloseDialog_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		state      huh.FormState
		confirmed  bool
		wantDone   bool
		wantQuit   bool
		wantScreen state.Screen
	}{
		{"still open", huh.StateNormal, false, false, false, state.CloseConfirmScreen},
		{"confirmed", huh.StateCompleted, true, true, true, state.FormScreen},
		{"declined", huh.StateCompleted, false, true, false, state.FormScreen},
		{"aborted", huh.StateAborted, true, true, false, state.FormScreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, authform.NopSubmitter{})
			m = press(t, m, keyEsc)

			var bound *bool
			m.DialogState.Open(func(confirmed *bool) *huh.Form {
				bound = confirmed
				return huh.NewForm(huh.NewGroup(huh.NewConfirm().Value(confirmed)))
			})
			*bound = tt.confirmed
			m.DialogState.Form.State = tt.state

			next, done := m.resolveCloseDialog()

			assert.Equal(t, tt.wantDone, done)
			assert.Equal(t, tt.wantScreen, m.UiState.Screen())
			assert.Equal(t, tt.wantQuit, m.Form.Closed())
			if tt.wantQuit {
				require.NotNil(t, next)
				_, isQuit := next().(tea.QuitMsg)
				assert.True(t, isQuit)
			}
		})
	}
}

func TestQuit_ClosesController(t *testing.T) {
	m := newTestModel(t, authform.NopSubmitter{})

	updated, cmd := m.Update(keyQuit)
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
	assert.True(t, updated.(Model).Form.Closed())
}

func TestView(t *testing.T) {
	form := authform.New()
	m := InitialModel(context.Background(), config.Default(), form)

	v := m.View()
	assert.Equal(t, "Loading...", v.Content)

	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})
	v = m.View()
	assert.True(t, v.AltScreen)
	assert.NotEqual(t, "Loading...", v.Content)
}

func TestRenderCard_ModeCopy(t *testing.T) {
	m := newTestModel(t, authform.NopSubmitter{})

	login := m.renderCard()
	assert.Contains(t, login, headingLogin)
	assert.Contains(t, login, labelRememberMe)
	assert.Contains(t, login, labelForgotPassword)
	assert.Contains(t, login, promptNoAccount)
	assert.NotContains(t, login, placeholderName)

	m = press(t, m, keyToggle)
	register := m.renderCard()
	assert.Contains(t, register, headingRegister)
	assert.Contains(t, register, placeholderName)
	assert.Contains(t, register, placeholderConfirmPassword)
	assert.NotContains(t, register, labelRememberMe)
	assert.NotContains(t, register, labelForgotPassword)
}
