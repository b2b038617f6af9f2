package authform

import (
	"fmt"
	"strings"
)

// Mode selects which set of fields the form collects.
type Mode int

const (
	// Login collects email, password and the remember-me toggle.
	Login Mode = iota
	// Register collects name, email, password and its confirmation.
	Register
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case Login:
		return "login"
	case Register:
		return "register"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	switch m {
	case Login:
		return Register
	case Register:
		return Login
	default:
		panic(fmt.Sprintf("authform: unknown mode %d", int(m)))
	}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m == Login || m == Register
}

// ParseMode converts "login" or "register" (any case) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "login":
		return Login, nil
	case "register":
		return Register, nil
	default:
		return Login, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
