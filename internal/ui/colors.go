package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// themes maps the persisted theme name onto a palette. The stored theme
// survives restarts through the session store.
var themes = map[string]*Palette{
	"light": NewPalette("#7D56F4", "#04B575", "#FF0000", "#FFA500", "#626262"),
	"dark":  NewPalette("#B39DFF", "#2EE6A8", "#FF5F5F", "#FFC14D", "#8A8A8A"),
}

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title: NewBold(t).MarginBottom(1),
		ok:    NewBold(s),
		err:   NewBold(e),
		warn:  NewStyle(w),
		help:  NewEm(h),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

// paletteFor returns the palette for a theme name, defaulting to light.
func paletteFor(theme string) *Palette {
	if p, ok := themes[theme]; ok {
		return p
	}
	return themes["light"]
}
