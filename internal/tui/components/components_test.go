package components

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/dublaj/internal/config/colors"
)

func init() {
	InitStyles(*colors.Default())
}

func TestRenderTabs(t *testing.T) {
	out := RenderTabs([]string{"Giriş Yap", "Kayıt Ol"}, 1, 50)

	assert.Contains(t, out, "Giriş Yap")
	assert.Contains(t, out, "Kayıt Ol")
	assert.Equal(t, 3, lipgloss.Height(out))
	assert.LessOrEqual(t, lipgloss.Width(out), 50)
}

func TestRenderDivider(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		width     int
		wantLabel bool
	}{
		{"label fits", "veya sosyal medya ile", 40, true},
		{"too narrow", "veya sosyal medya ile", 12, false},
		{"no label", "", 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderDivider(tt.label, tt.width)
			assert.Equal(t, tt.width, lipgloss.Width(out))
			if tt.wantLabel {
				assert.Contains(t, out, tt.label)
			} else if tt.label != "" {
				assert.NotContains(t, out, tt.label)
			}
		})
	}
}

func TestRenderStatusBar(t *testing.T) {
	out := RenderStatusBar(StatusBarProps{Width: 40, Left: "ok", Right: "f1 yardım"})
	assert.Equal(t, 40, lipgloss.Width(out))
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "f1 yardım")

	narrow := RenderStatusBar(StatusBarProps{Width: 5, Left: "message", Right: "hint"})
	assert.Contains(t, narrow, "message")
	assert.NotContains(t, narrow, "hint")

	hintOnly := RenderStatusBar(StatusBarProps{Width: 2, Right: "hint"})
	assert.Contains(t, hintOnly, "hint")
}
