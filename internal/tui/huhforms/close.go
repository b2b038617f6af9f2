package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/dublaj/internal/config"
)

// Close dialog copy
const (
	CloseTitle       = "Formu kapat?"
	CloseDescription = "Girdiğiniz bilgiler kaydedilmeyecek."
	CloseAffirmative = "Kapat"
	CloseNegative    = "Vazgeç"
)

// CreateCloseForm creates the dialog asking whether to close the form.
// The answer is written to confirm.
func CreateCloseForm(confirm *bool, cfg *config.Config) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("close").
				Title(CloseTitle).
				Description(CloseDescription).
				Affirmative(CloseAffirmative).
				Negative(CloseNegative).
				Value(confirm),
		),
	).
		WithTheme(CreateDublajTheme(cfg.ColorScheme)).
		WithKeyMap(CreateDialogKeyMap(cfg.KeyMappings.Close)).
		WithShowHelp(false)
}
