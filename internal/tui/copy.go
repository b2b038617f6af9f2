package tui

import "github.com/thenoetrevino/dublaj/internal/authform"

// Card copy
const (
	tabLogin    = "Giriş Yap"
	tabRegister = "Kayıt Ol"

	headingLogin     = "Hesabınıza Giriş Yapın"
	headingRegister  = "Yeni Hesap Oluşturun"
	subtitleLogin    = "Devam etmek için giriş yapın"
	subtitleRegister = "Başlamak için hesabınızı oluşturun"

	placeholderName            = "Ad Soyad"
	placeholderEmail           = "E-posta Adresi"
	placeholderPassword        = "Şifre"
	placeholderConfirmPassword = "Şifre Tekrar"

	labelRememberMe     = "Beni Hatırla"
	labelForgotPassword = "Şifremi Unuttum?"
	labelSocialDivider  = "veya sosyal medya ile"

	promptNoAccount  = "Hesabınız yok mu?"
	promptHasAccount = "Zaten hesabınız var mı?"

	hintKeys = "f1 yardım · esc kapat"
)

// Focus ring keys for widgets that are not form fields
const (
	keyTabs     = "tabs"
	keyForgot   = "forgot"
	keySubmit   = "submit"
	keyGitHub   = "github"
	keyTwitter  = "twitter"
	keyLinkedIn = "linkedin"
	keySwitch   = "switch"
)

// socialProviders lists the decorative social buttons in display order
var socialProviders = []struct {
	key   string
	label string
}{
	{keyGitHub, "GitHub"},
	{keyTwitter, "Twitter"},
	{keyLinkedIn, "LinkedIn"},
}

func modeTab(mode authform.Mode) string {
	if mode == authform.Register {
		return tabRegister
	}
	return tabLogin
}

func heading(mode authform.Mode) (string, string) {
	if mode == authform.Register {
		return headingRegister, subtitleRegister
	}
	return headingLogin, subtitleLogin
}

// switchPrompt returns the question and the link text inviting the user to
// the other mode
func switchPrompt(mode authform.Mode) (string, string) {
	if mode == authform.Register {
		return promptHasAccount, tabLogin
	}
	return promptNoAccount, tabRegister
}

func placeholder(field authform.Field) string {
	switch field {
	case authform.Name:
		return placeholderName
	case authform.Email:
		return placeholderEmail
	case authform.Password:
		return placeholderPassword
	case authform.ConfirmPassword:
		return placeholderConfirmPassword
	default:
		return field.String()
	}
}
