package state

import "charm.land/huh/v2"

// DialogState holds the close-confirmation dialog while it is open.
type DialogState struct {
	// Form is the huh form rendered by the dialog, nil when closed
	Form *huh.Form

	// confirmed is bound to the dialog's confirm field
	confirmed *bool
}

// NewDialogState creates a DialogState with no open dialog.
func NewDialogState() *DialogState {
	return &DialogState{confirmed: new(bool)}
}

// Open installs a dialog built by build, which receives the value pointer
// the dialog must bind to.
func (s *DialogState) Open(build func(confirmed *bool) *huh.Form) *huh.Form {
	*s.confirmed = false
	s.Form = build(s.confirmed)
	return s.Form
}

// IsOpen reports whether a dialog is installed.
func (s *DialogState) IsOpen() bool {
	return s.Form != nil
}

// Confirmed reports the dialog's current answer.
func (s *DialogState) Confirmed() bool {
	return *s.confirmed
}

// Reset drops the dialog.
func (s *DialogState) Reset() {
	s.Form = nil
	*s.confirmed = false
}
