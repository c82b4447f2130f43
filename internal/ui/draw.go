package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Frame is what one redraw shows.
type Frame struct {
	// Surface is the active window's surface, nil when no window is open.
	Surface *Surface

	// Index and Count place the active window among the open ones.
	Index int
	Count int
}

// Draw renders frame and shows it.
func (s *Screen) Draw(frame Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scr := s.screen
	scr.Clear()
	scr.HideCursor()

	w, h := scr.Size()
	surf := frame.Surface
	if surf == nil || surf.closed || w <= 0 || h < 3 {
		scr.Show()
		return
	}

	st := surf.status
	if frame.Count > 1 {
		counter := fmt.Sprintf("[%d/%d]", frame.Index+1, frame.Count)
		drawText(scr, w-len(counter), 0, len(counter), s.theme.Text, counter)
		drawText(scr, 0, 0, w-len(counter)-1, s.theme.Title, st.WindowTitle())
	} else {
		drawText(scr, 0, 0, w, s.theme.Title, st.WindowTitle())
	}
	drawText(scr, 0, 1, w, s.theme.Text, st.URI)

	s.drawStatusbar(w, h-2, surf)
	if surf.entry.visible {
		s.drawInputbar(w, h-1, surf.entry)
	}
	scr.Show()
}

func (s *Screen) drawStatusbar(w, row int, surf *Surface) {
	st := surf.status
	style := s.theme.Statusbar
	fill(s.screen, row, w, style)

	var right []string
	for _, part := range []string{st.Mode.Indicator(), st.Security.Marker(), st.Position} {
		if part != "" {
			right = append(right, part)
		}
	}
	info := strings.Join(right, " ")
	infoWidth := len([]rune(info))

	drawText(s.screen, 0, row, w-infoWidth-1, style, st.Text())
	if infoWidth < w {
		drawText(s.screen, w-infoWidth, row, infoWidth, style, info)
	}
}

func (s *Screen) drawInputbar(w, row int, e *Entry) {
	style := s.theme.Level(e.level)
	fill(s.screen, row, w, style)

	// Scroll so the caret stays on screen.
	offset := 0
	if e.caret >= w {
		offset = e.caret - w + 1
	}
	for i, r := range e.text[offset:] {
		if i >= w {
			break
		}
		s.screen.SetContent(i, row, r, nil, style)
	}
	if e.Focused() {
		s.screen.ShowCursor(e.caret-offset, row)
	}
}

func fill(scr tcell.Screen, row, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		scr.SetContent(x, row, ' ', nil, style)
	}
}

// drawText writes text at (x, y), clipped to width cells.
func drawText(scr tcell.Screen, x, y, width int, style tcell.Style, text string) {
	col := 0
	for _, r := range text {
		if col >= width {
			return
		}
		scr.SetContent(x+col, y, r, nil, style)
		col++
	}
}
