package authform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFields_Email(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"empty", "", MsgEmailRequired},
		{"no at sign", "abc", MsgEmailInvalid},
		{"no dot after at", "a@b", MsgEmailInvalid},
		{"minimal shape", "a@b.c", ""},
		{"ordinary", "ada@example.com", ""},
		{"spaces around are tolerated", " a@b.c ", ""},
		{"double at still passes", "a@@b.c", ""},
		{"vertical tab is whitespace", "a@b.\v", MsgEmailInvalid},
		{"no-break space local part", "\u00a0@b.c", MsgEmailInvalid},
		{"ideographic space domain", "a@\u3000.c", MsgEmailInvalid},
		{"en quad in tld", "a@b.\u2000", MsgEmailInvalid},
		{"byte order mark", "\ufeff@b.c", MsgEmailInvalid},
		{"non-ascii letters pass", "ayşe@örnek.com.tr", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateFields(Login, Fields{Email: tt.email, Password: "secret1"})
			if tt.want == "" {
				assert.NotContains(t, errs, Email)
				return
			}
			assert.Equal(t, tt.want, errs[Email])
		})
	}
}

func TestValidateFields_PasswordBoundary(t *testing.T) {
	tests := []struct {
		password string
		want     string
	}{
		{"", MsgPasswordRequired},
		{"12345", MsgPasswordShort},
		{"123456", ""},
		{"şifre1", ""}, // six characters, more than six bytes
		{"şifr", MsgPasswordShort},
		// characters outside the BMP count as two units each
		{"😀😀😀", ""},
		{"ab😀c", MsgPasswordShort},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			errs := validateFields(Login, Fields{Email: "a@b.c", Password: tt.password})
			if tt.want == "" {
				assert.NotContains(t, errs, Password)
				return
			}
			assert.Equal(t, tt.want, errs[Password])
		})
	}
}

func TestValidateFields_LoginIgnoresRegisterFields(t *testing.T) {
	inputs := []Fields{
		{},
		{Name: "", ConfirmPassword: "different"},
		{Name: "Ada", Password: "secret1", ConfirmPassword: "secret2"},
		{Email: "a@b.c", Password: "secret1", ConfirmPassword: ""},
	}
	for _, fs := range inputs {
		errs := validateFields(Login, fs)
		assert.NotContains(t, errs, Name)
		assert.NotContains(t, errs, ConfirmPassword)
	}
}

func TestValidateFields_ConfirmLiteralComparison(t *testing.T) {
	// empty confirmation against a real password is a mismatch
	errs := validateFields(Register, Fields{Name: "Ada", Email: "a@b.c", Password: "secret1"})
	assert.Equal(t, MsgPasswordMismatch, errs[ConfirmPassword])

	// empty against empty is not a mismatch; the password reports required instead
	errs = validateFields(Register, Fields{Name: "Ada", Email: "a@b.c"})
	assert.NotContains(t, errs, ConfirmPassword)
	assert.Equal(t, MsgPasswordRequired, errs[Password])
}

func TestVisibleFields(t *testing.T) {
	assert.Equal(t, []Field{Email, Password, RememberMe}, VisibleFields(Login))
	assert.Equal(t, []Field{Name, Email, Password, ConfirmPassword}, VisibleFields(Register))
}
