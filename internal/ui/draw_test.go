package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ripcurl/internal/browser"
	"github.com/dshills/ripcurl/internal/config"
	"github.com/dshills/ripcurl/internal/engine"
	"github.com/dshills/ripcurl/internal/input/inputbar"
	"github.com/dshills/ripcurl/internal/input/mode"
)

func newTestScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewScreenWith(sim, NewTheme(config.Default().Style))
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(s.Fini)
	sim.SetSize(w, h)
	return s, sim
}

func row(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func TestDrawLayout(t *testing.T) {
	s, sim := newTestScreen(t, 60, 8)
	surf := s.NewSurface()
	surf.SetStatus(browser.Status{
		Title:    "Example",
		URI:      "https://example.com",
		Progress: 100,
		Position: "Top",
		Security: engine.SecuritySecure,
		Mode:     mode.Insert,
	})

	s.Draw(Frame{Surface: surf, Index: 1, Count: 3})

	if got := row(sim, 0); !strings.HasPrefix(got, "Example") || !strings.HasSuffix(got, "[2/3]") {
		t.Errorf("title row = %q", got)
	}
	if got := row(sim, 1); got != "https://example.com" {
		t.Errorf("uri row = %q", got)
	}
	status := row(sim, 6)
	if !strings.HasPrefix(status, "https://example.com") {
		t.Errorf("status row = %q", status)
	}
	if !strings.HasSuffix(status, "-- INSERT -- [SSL] Top") {
		t.Errorf("status row = %q", status)
	}
	if got := row(sim, 7); got != "" {
		t.Errorf("hidden input bar drew %q", got)
	}
}

func TestDrawInputbar(t *testing.T) {
	s, sim := newTestScreen(t, 40, 6)
	surf := s.NewSurface()
	surf.SetStatus(browser.Status{URI: "about:blank"})

	bar := surf.Inputbar()
	bar.SetVisible(true)
	bar.SetText(":open example.org")
	bar.Focus()
	s.Draw(Frame{Surface: surf, Count: 1})

	if got := row(sim, 5); got != ":open example.org" {
		t.Errorf("input bar row = %q", got)
	}
	x, y, visible := sim.GetCursor()
	if !visible || x != len(":open example.org") || y != 5 {
		t.Errorf("cursor = (%d, %d, %v)", x, y, visible)
	}

	bar.SetLevel(inputbar.Error)
	surf.View().Focus()
	s.Draw(Frame{Surface: surf, Count: 1})
	cells, w, _ := sim.GetContents()
	fg, _, _ := cells[5*w].Style.Decompose()
	if want, _, _ := s.theme.Error.Decompose(); fg != want {
		t.Errorf("error foreground = %v, want %v", fg, want)
	}
}

func TestDrawInputbarScrollsToCaret(t *testing.T) {
	s, sim := newTestScreen(t, 10, 4)
	surf := s.NewSurface()
	bar := surf.Inputbar()
	bar.SetVisible(true)
	bar.SetText(":open abcdefghij")
	bar.Focus()
	s.Draw(Frame{Surface: surf, Count: 1})

	if got := row(sim, 3); got != "bcdefghij" {
		t.Errorf("input bar row = %q", got)
	}
}

func TestDrawClosedSurface(t *testing.T) {
	s, sim := newTestScreen(t, 20, 4)
	surf := s.NewSurface()
	surf.SetStatus(browser.Status{Title: "gone"})
	surf.Close()
	s.Draw(Frame{Surface: surf, Count: 1})
	if got := row(sim, 0); got != "" {
		t.Errorf("closed surface drew %q", got)
	}
}

func TestPostRunsOnEventLoop(t *testing.T) {
	s, _ := newTestScreen(t, 20, 4)
	ran := make(chan struct{})
	go s.Post(func() { close(ran) })

	for {
		if in, ok := s.PollEvent().(*tcell.EventInterrupt); ok {
			in.Data().(func())()
			break
		}
	}
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("posted function did not run")
	}
}
