package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/dublaj/internal/config"
)

// helpMarkdown builds the key reference from the configured key mappings
func helpMarkdown(km config.KeyMappings) string {
	rows := [][2]string{
		{km.NextField + " / " + km.PrevField, "Sonraki / önceki alan"},
		{km.Submit, "Gönder ya da seçili düğmeyi çalıştır"},
		{km.ToggleMode, "Giriş Yap / Kayıt Ol arasında geçiş"},
		{"← / →", "Sekme çubuğunda mod seçimi"},
		{km.ToggleRemember, "Beni Hatırla seçeneğini değiştir"},
		{km.ShowHelp, "Bu yardımı aç / kapat"},
		{km.Close, "Formu kapat"},
		{km.Quit, "Hemen çık"},
	}

	var b strings.Builder
	b.WriteString("# Kısayollar\n\n")
	b.WriteString("| Tuş | İşlem |\n|---|---|\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| `%s` | %s |\n", r[0], r[1])
	}
	return b.String()
}

// helpRenderer caches a glamour renderer for the last requested width
type helpRenderer struct {
	width    int
	renderer *glamour.TermRenderer
}

// render renders markdown at width, falling back to the raw text
func (h *helpRenderer) render(markdown string, width int) string {
	if h.renderer == nil || h.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			slog.Error("failed to create help renderer", "error", err)
			return markdown
		}
		h.renderer, h.width = r, width
	}

	out, err := h.renderer.Render(markdown)
	if err != nil {
		slog.Error("failed to render help", "error", err)
		return markdown
	}
	return strings.Trim(out, "\n")
}
