package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/knownwords/internal/ui/theme"
)

const bannerArt = `
 ██╗  ██╗███╗   ██╗ ██████╗ ██╗    ██╗███╗   ██╗
 ██║ ██╔╝████╗  ██║██╔═══██╗██║    ██║████╗  ██║
 █████╔╝ ██╔██╗ ██║██║   ██║██║ █╗ ██║██╔██╗ ██║
 ██╔═██╗ ██║╚██╗██║██║   ██║██║███╗██║██║╚██╗██║
 ██║  ██╗██║ ╚████║╚██████╔╝╚███╔███╔╝██║ ╚████║
 ╚═╝  ╚═╝╚═╝  ╚═══╝ ╚═════╝  ╚══╝╚══╝ ╚═╝  ╚═══╝`

const bannerCompact = "K N O W N   W O R D S"

// RenderBanner returns the banner styled in the primary color. Terminals
// narrower than 52 columns get the compact form.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 52 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt + "\n" + wordsLine)
}

const wordsLine = "                W   O   R   D   S"
