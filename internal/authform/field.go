package authform

import (
	"fmt"
	"strconv"
)

// Field identifies one input of the form.
type Field int

const (
	Name Field = iota
	Email
	Password
	ConfirmPassword
	RememberMe
)

// AllFields lists every field in display order.
var AllFields = []Field{Name, Email, Password, ConfirmPassword, RememberMe}

var fieldNames = map[Field]string{
	Name:            "name",
	Email:           "email",
	Password:        "password",
	ConfirmPassword: "confirmPassword",
	RememberMe:      "rememberMe",
}

// String returns the wire name of the field.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Kind reports whether the field holds text or a boolean toggle.
func (f Field) Kind() ValueKind {
	if f == RememberMe {
		return KindToggle
	}
	return KindText
}

// ParseField maps a wire name such as "confirmPassword" to its Field.
func ParseField(name string) (Field, error) {
	for f, n := range fieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// MarshalText implements encoding.TextMarshaler so ErrorMap encodes with wire names.
func (f Field) MarshalText() ([]byte, error) {
	if _, ok := fieldNames[f]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownField, int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Field) UnmarshalText(text []byte) error {
	parsed, err := ParseField(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ValueKind distinguishes text inputs from boolean toggles.
type ValueKind int

const (
	KindText ValueKind = iota
	KindToggle
)

func (k ValueKind) String() string {
	if k == KindToggle {
		return "toggle"
	}
	return "text"
}

// Value is a captured input value tagged with its kind.
type Value struct {
	Kind    ValueKind
	Text    string
	Checked bool
}

// Text wraps a text input value.
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Toggle wraps a checkbox value.
func Toggle(checked bool) Value {
	return Value{Kind: KindToggle, Checked: checked}
}

// ParseValue converts a raw string captured by a view into a Value of the given kind.
// Toggle values accept anything strconv.ParseBool accepts.
func ParseValue(raw string, kind ValueKind) (Value, error) {
	if kind == KindToggle {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrInvalidToggle, raw)
		}
		return Toggle(b), nil
	}
	return Text(raw), nil
}

// Fields is the record of every input value. All members are always defined.
type Fields struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	RememberMe      bool
}

// Get returns the value stored for f.
func (fs Fields) Get(f Field) Value {
	switch f {
	case Name:
		return Text(fs.Name)
	case Email:
		return Text(fs.Email)
	case Password:
		return Text(fs.Password)
	case ConfirmPassword:
		return Text(fs.ConfirmPassword)
	case RememberMe:
		return Toggle(fs.RememberMe)
	default:
		panic(fmt.Sprintf("authform: unknown field %d", int(f)))
	}
}

// set stores v in f. The caller has already checked the kind.
func (fs *Fields) set(f Field, v Value) {
	switch f {
	case Name:
		fs.Name = v.Text
	case Email:
		fs.Email = v.Text
	case Password:
		fs.Password = v.Text
	case ConfirmPassword:
		fs.ConfirmPassword = v.Text
	case RememberMe:
		fs.RememberMe = v.Checked
	default:
		panic(fmt.Sprintf("authform: unknown field %d", int(f)))
	}
}
