package state

// Screen represents what the TUI is currently showing.
// Each screen determines which keyboard shortcuts are active.
type Screen int

const (
	FormScreen         Screen = iota // The login/register card
	HelpScreen                       // Key binding overlay
	CloseConfirmScreen               // Asking whether to close the form
)

func (s Screen) String() string {
	switch s {
	case HelpScreen:
		return "help"
	case CloseConfirmScreen:
		return "close-confirm"
	default:
		return "form"
	}
}

// Card width bounds in cells
const (
	MinCardWidth = 32
	MaxCardWidth = 60
)

// UIState manages terminal dimensions and the current screen.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// screen is the screen being displayed
	screen Screen
}

// NewUIState creates a new UIState showing the form.
func NewUIState() *UIState {
	return &UIState{screen: FormScreen}
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Screen returns the current screen.
func (s *UIState) Screen() Screen {
	return s.screen
}

// SetScreen switches to another screen.
func (s *UIState) SetScreen(screen Screen) {
	s.screen = screen
}

// Ready reports whether a window size has been received.
func (s *UIState) Ready() bool {
	return s.width > 0 && s.height > 0
}

// CardWidth returns the width of the form card, clamped to
// [MinCardWidth, MaxCardWidth] and never wider than the terminal.
func (s *UIState) CardWidth() int {
	w := min(max(s.width-4, MinCardWidth), MaxCardWidth)
	if s.width > 0 {
		w = min(w, s.width)
	}
	return w
}

// ContentWidth returns the usable width inside the card border and padding.
func (s *UIState) ContentWidth() int {
	return max(s.CardWidth()-6, 10)
}
