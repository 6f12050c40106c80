package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/irofield/iro/internal/colour"
)

// isTerminal reports whether f is attached to a terminal. Previews are
// suppressed when output is piped.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// swatch renders a coloured block for the given hex colour.
func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
}

// renderSchemePreview renders the 16 slots and the UI roles as labelled
// swatch rows.
func renderSchemePreview(s *colour.Scheme) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s scheme (%s style)\n\n", s.Mode.String(), s.StyleName)

	hexes := s.HexColors()
	for row := 0; row < 2; row++ {
		for i := row * 8; i < (row+1)*8; i++ {
			b.WriteString(swatch(hexes[i]))
		}
		b.WriteByte('\n')
		for i := row * 8; i < (row+1)*8; i++ {
			fmt.Fprintf(&b, "%-6d", i)
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	roles := []struct {
		name string
		c    colour.RGB
	}{
		{"background", s.Background},
		{"foreground", s.Foreground},
		{"accent", s.Accent},
		{"secondary", s.Secondary},
		{"surface", s.Surface},
		{"error", s.Error},
	}
	for _, role := range roles {
		fmt.Fprintf(&b, "%s %-10s %s\n", swatch(role.c.Hex()), role.name, role.c.Hex())
	}
	return b.String()
}

// renderStyleStrip renders the six chromatic slots a style would
// synthesise with no image input, as a compact identity strip.
func renderStyleStrip(style colour.Style) string {
	bg := colour.RGB{R: 0x1e, G: 0x1e, B: 0x2e}
	fg := colour.RGB{R: 0xcd, G: 0xd6, B: 0xf4}
	slots := colour.MapSlots(nil, bg, fg, style, colour.ModeDark)

	var b strings.Builder
	for i := 1; i < 7; i++ {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(slots[i].Hex())).Render("   "))
	}
	return b.String()
}
