package authform

import "log/slog"

// Payload is the validated, mode-relevant subset of the form fields.
// Optional members are nil when the mode does not use them.
type Payload struct {
	Mode            Mode    `json:"mode"`
	Name            *string `json:"name,omitempty"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ConfirmPassword *string `json:"confirmPassword,omitempty"`
	RememberMe      *bool   `json:"rememberMe,omitempty"`
}

// newPayload projects fs onto the fields mode uses.
func newPayload(mode Mode, fs Fields) Payload {
	p := Payload{
		Mode:     mode,
		Email:    fs.Email,
		Password: fs.Password,
	}
	switch mode {
	case Login:
		remember := fs.RememberMe
		p.RememberMe = &remember
	case Register:
		name, confirm := fs.Name, fs.ConfirmPassword
		p.Name = &name
		p.ConfirmPassword = &confirm
	default:
		panic("authform: unknown mode " + mode.String())
	}
	return p
}

// NameOrEmpty returns the name, or "" when the payload has none.
func (p Payload) NameOrEmpty() string {
	if p.Name == nil {
		return ""
	}
	return *p.Name
}

// Remembered reports the remember-me toggle; false when absent.
func (p Payload) Remembered() bool {
	return p.RememberMe != nil && *p.RememberMe
}

// Redacted marks password values that must not leave the process
const Redacted = "[redacted]"

// Redacted returns a copy safe to print, with both passwords replaced.
func (p Payload) Redacted() Payload {
	out := p
	out.Password = Redacted
	if p.ConfirmPassword != nil {
		confirm := Redacted
		out.ConfirmPassword = &confirm
	}
	return out
}

// LogValue implements slog.LogValuer. Passwords are never written to logs.
func (p Payload) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("mode", p.Mode.String()),
		slog.String("email", p.Email),
		slog.String("password", Redacted),
	}
	if p.Name != nil {
		attrs = append(attrs, slog.String("name", *p.Name))
	}
	if p.RememberMe != nil {
		attrs = append(attrs, slog.Bool("remember_me", *p.RememberMe))
	}
	return slog.GroupValue(attrs...)
}
