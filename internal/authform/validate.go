package authform

import (
	"regexp"
	"unicode/utf16"
)

// Validation messages shown next to the offending field.
const (
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Email is invalid"
	MsgPasswordRequired = "Password is required"
	MsgPasswordShort    = "Password must be at least 6 characters"
	MsgNameRequired     = "Name is required"
	MsgPasswordMismatch = "Passwords do not match"
)

// MinPasswordLength is the shortest accepted password, in UTF-16 code units
// like a browser's string length.
const MinPasswordLength = 6

// emailPattern is a structural check only: something@something.something.
// It is unanchored and accepts plenty of addresses RFC 5322 would reject.
// RE2's \S is ASCII-only, so the class also excludes \v, Unicode separators
// and the BOM.
var emailPattern = regexp.MustCompile(`[^\s\v\p{Z}\x{FEFF}]+@[^\s\v\p{Z}\x{FEFF}]+\.[^\s\v\p{Z}\x{FEFF}]+`)

// validateFields computes the full error map for fs under mode.
func validateFields(mode Mode, fs Fields) ErrorMap {
	errs := ErrorMap{}

	if fs.Email == "" {
		errs[Email] = MsgEmailRequired
	} else if !emailPattern.MatchString(fs.Email) {
		errs[Email] = MsgEmailInvalid
	}

	if fs.Password == "" {
		errs[Password] = MsgPasswordRequired
	} else if passwordLength(fs.Password) < MinPasswordLength {
		errs[Password] = MsgPasswordShort
	}

	switch mode {
	case Login:
		// name and confirmPassword are ignored whatever they hold
	case Register:
		if fs.Name == "" {
			errs[Name] = MsgNameRequired
		}
		// literal comparison: an empty confirmation is a mismatch, not a missing value
		if fs.ConfirmPassword != fs.Password {
			errs[ConfirmPassword] = MsgPasswordMismatch
		}
	default:
		panic("authform: unknown mode " + mode.String())
	}

	return errs
}

// Relevant reports whether field is shown and validated in mode.
func Relevant(mode Mode, field Field) bool {
	switch mode {
	case Login:
		return field == Email || field == Password || field == RememberMe
	case Register:
		return field == Name || field == Email || field == Password || field == ConfirmPassword
	default:
		panic("authform: unknown mode " + mode.String())
	}
}

// VisibleFields lists the fields mode displays, in form order.
func VisibleFields(mode Mode) []Field {
	fields := make([]Field, 0, len(AllFields))
	for _, f := range AllFields {
		if Relevant(mode, f) {
			fields = append(fields, f)
		}
	}
	return fields
}

// passwordLength counts UTF-16 code units, so a character outside the BMP
// counts twice.
func passwordLength(p string) int {
	return len(utf16.Encode([]rune(p)))
}
