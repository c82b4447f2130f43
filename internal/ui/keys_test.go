package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ripcurl/internal/input/key"
)

func TestConvertKeyMatchesBindings(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		spec string
	}{
		{"lower", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), "j"},
		{"upper", tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModNone), "G"},
		{"upper reported with shift", tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModShift), "G"},
		{"punctuation", tcell.NewEventKey(tcell.KeyRune, ':', tcell.ModNone), ":"},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), "<C-c>"},
		{"ctrl rune", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModCtrl), "<C-d>"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "<Esc>"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "<CR>"},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), "<Tab>"},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), "<S-Tab>"},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "<BS>"},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "<Up>"},
		{"function", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "<F5>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertKey(tt.ev)
			want := key.MustParse(tt.spec)
			if !got.Equals(want) {
				t.Errorf("ConvertKey = %#v, want %#v", got, want)
			}
		})
	}
}

func TestConvertKeyChars(t *testing.T) {
	if ev := ConvertKey(tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModShift)); !ev.IsChar() {
		t.Errorf("shifted rune should be text: %#v", ev)
	}
	if ev := ConvertKey(tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl)); ev.IsChar() {
		t.Errorf("control key should not be text: %#v", ev)
	}
	if ev := ConvertKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt)); ev.IsChar() {
		t.Errorf("alt key should not be text: %#v", ev)
	}
}
