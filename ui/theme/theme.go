package theme

// Theming for the overlay host window: a light and a dark palette plus
// InitStyles to activate the base theme.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PaletteSnapshot represents resolved colors for the active mode.
type PaletteSnapshot struct {
	AppBg     string
	Surface   string
	Primary   string
	Danger    string
	Text      string
	TextMuted string
}

var (
	light = PaletteSnapshot{
		AppBg:     "#f7f9fb",
		Surface:   "#ffffff",
		Primary:   "#2563eb",
		Danger:    "#dc2626",
		Text:      "#1e293b",
		TextMuted: "#64748b",
	}
	dark = PaletteSnapshot{
		AppBg:     "#0f172a",
		Surface:   "#1e293b",
		Primary:   "#3b82f6",
		Danger:    "#ef4444",
		Text:      "#f1f5f9",
		TextMuted: "#94a3b8",
	}
)

// internal flag for current mode
var darkMode bool

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() PaletteSnapshot {
	if darkMode {
		return dark
	}
	return light
}

// InitStyles (re)applies styles for the current mode.
func InitStyles() {
	name := "azure light"
	if darkMode {
		name = "azure dark"
	}
	_ = ActivateTheme(name)
	App.Configure(Background(CurrentPalette().AppBg))
}

// SetDark switches mode and reapplies styles.
func SetDark(d bool) {
	darkMode = d
	InitStyles()
}
