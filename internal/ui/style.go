package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ripcurl/internal/config"
	"github.com/dshills/ripcurl/internal/input/inputbar"
)

// Theme holds the styles the screen draws with.
type Theme struct {
	Inputbar  tcell.Style
	Statusbar tcell.Style
	Error     tcell.Style
	Warning   tcell.Style
	Title     tcell.Style
	Text      tcell.Style
}

// NewTheme builds a theme from the configured colors. Colors are given as
// "#rrggbb" or a W3C color name; anything tcell cannot parse falls back to
// the terminal default.
func NewTheme(cfg config.StyleConfig) Theme {
	bar := tcell.StyleDefault.
		Background(tcell.GetColor(cfg.InputbarBG)).
		Foreground(tcell.GetColor(cfg.InputbarFG))
	return Theme{
		Inputbar: bar,
		Statusbar: tcell.StyleDefault.
			Background(tcell.GetColor(cfg.StatusbarBG)).
			Foreground(tcell.GetColor(cfg.StatusbarFG)),
		Error:   bar.Foreground(tcell.GetColor(cfg.ErrorFG)).Bold(true),
		Warning: bar.Foreground(tcell.GetColor(cfg.WarningFG)),
		Title:   tcell.StyleDefault.Bold(true),
		Text:    tcell.StyleDefault,
	}
}

// Level returns the input bar style for a notification level.
func (t Theme) Level(level inputbar.Level) tcell.Style {
	switch level {
	case inputbar.Error:
		return t.Error
	case inputbar.Warning:
		return t.Warning
	default:
		return t.Inputbar
	}
}
