package inputbar

import (
	"strings"
	"testing"

	"github.com/dshills/ripcurl/internal/input"
	"github.com/dshills/ripcurl/internal/input/command"
)

// memWidget is an in-memory Widget with the caret always at the end.
type memWidget struct {
	text    []rune
	level   Level
	visible bool
	focused bool
}

func (w *memWidget) Text() string { return string(w.text) }
func (w *memWidget) SetText(text string) { w.text = []rune(text) }
func (w *memWidget) SetLevel(level Level) { w.level = level }
func (w *memWidget) SetVisible(v bool) { w.visible = v }
func (w *memWidget) Visible() bool { return w.visible }
func (w *memWidget) Focus() { w.focused = true }
func (w *memWidget) Focused() bool { return w.focused }

func (w *memWidget) DeleteBackward() {
	if len(w.text) > 0 {
		w.text = w.text[:len(w.text)-1]
	}
}

func (w *memWidget) DeleteWordBackward() {
	s := strings.TrimRight(string(w.text), " ")
	i := strings.LastIndex(s, " ")
	if i < 1 {
		i = 1
	}
	if len(s) > 0 {
		w.text = []rune(s[:i])
	}
}

func (w *memWidget) DeleteToStart() {
	if len(w.text) > 1 {
		w.text = w.text[:1]
	}
}

type memView struct {
	bar     *memWidget
	focused bool
}

func (v *memView) Focus() {
	v.focused = true
	v.bar.focused = false
}

type window struct {
	calls  []string
	closed bool
}

type fixture struct {
	win     *window
	bar     *memWidget
	view    *memView
	history *command.History
	private bool
	aborts  int
	ctrl    *Controller[*window]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{win: &window{}, bar: &memWidget{}, history: command.NewHistory()}
	f.view = &memView{bar: f.bar}

	commands := []command.Command[*window]{
		{Name: "open", Abbrev: "o", Run: func(w *window, args []string) bool {
			w.calls = append(w.calls, "open "+strings.Join(args, "|"))
			return len(args) > 0
		}},
		{Name: "stay", Run: func(w *window, args []string) bool {
			w.calls = append(w.calls, "stay")
			return false
		}},
		{Name: "quit", Abbrev: "q", Run: func(w *window, args []string) bool {
			w.calls = append(w.calls, "quit")
			w.closed = true
			return true
		}},
	}
	search := func(w *window, text string, arg input.Arg, activated bool) bool {
		state := "typing"
		if activated {
			state = "submit"
		}
		w.calls = append(w.calls, "search "+arg.String()+" "+state+" "+text)
		return activated
	}
	specials := []command.SpecialCommand[*window]{
		{ID: '/', Arg: input.DirNext, Run: search},
		{ID: '?', Arg: input.DirPrevious, Run: search},
	}

	reg, err := command.NewRegistry(commands, specials)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	f.ctrl = New(Config[*window]{
		Target:   f.win,
		Widget:   f.bar,
		View:     f.view,
		Registry: reg,
		History:  f.history,
		Liveness: LivenessFunc(func() bool { return !f.win.closed }),
		Private:  func() bool { return f.private },
		OnAbort:  func() { f.aborts++ },
	})
	return f
}

func (f *fixture) assertAborted(t *testing.T) {
	t.Helper()
	if f.bar.visible || f.bar.Text() != "" || !f.view.focused || f.aborts == 0 {
		t.Errorf("bar not aborted: visible=%v text=%q viewFocused=%v aborts=%d",
			f.bar.visible, f.bar.Text(), f.view.focused, f.aborts)
	}
}

func TestShow(t *testing.T) {
	f := newFixture(t)
	f.bar.level = Error
	f.ctrl.Show(":open ")

	if !f.bar.visible || !f.bar.focused || f.bar.Text() != ":open " || f.bar.level != Default {
		t.Errorf("Show() left bar %+v", f.bar)
	}
	if !f.ctrl.Active() {
		t.Error("Active() should be true after Show")
	}

	f.ctrl.Show("")
	if f.bar.Text() != ":open " {
		t.Errorf("Show(\"\") replaced text with %q", f.bar.Text())
	}
}

func TestActivateDegenerate(t *testing.T) {
	for _, text := range []string{"", ":", ":   ", ":\t"} {
		f := newFixture(t)
		f.ctrl.Show(text)
		f.ctrl.OnActivate(text)
		f.assertAborted(t)
		if len(f.win.calls) != 0 {
			t.Errorf("OnActivate(%q) ran %v", text, f.win.calls)
		}
	}
}

func TestActivateCommand(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Show(":")
	f.ctrl.OnActivate(":open  a   b")

	if len(f.win.calls) != 1 || f.win.calls[0] != "open a|b" {
		t.Errorf("calls = %v", f.win.calls)
	}
	if got := f.history.Entries(); len(got) != 1 || got[0] != ":open  a   b" {
		t.Errorf("history = %q", got)
	}
	f.assertAborted(t)
}

func TestActivateAbbreviation(t *testing.T) {
	f := newFixture(t)
	f.ctrl.OnActivate(":o x")
	if len(f.win.calls) != 1 || f.win.calls[0] != "open x" {
		t.Errorf("calls = %v", f.win.calls)
	}
}

func TestActivateKeepsBarOpen(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Show(":stay")
	f.ctrl.OnActivate(":stay")

	if !f.bar.visible || f.aborts != 0 {
		t.Error("bar should stay open when the handler returns false")
	}
	if !f.view.focused {
		t.Error("focus should return to the view")
	}
}

func TestActivateOpenWithoutArgs(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Show(":open")
	f.ctrl.OnActivate(":open")
	if len(f.win.calls) != 1 || f.win.calls[0] != "open " {
		t.Errorf("calls = %v", f.win.calls)
	}
	if f.aborts != 0 {
		t.Error("open without args should keep the bar")
	}
}

func TestActivateUnknownCommand(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Show(":")
	f.ctrl.OnActivate(":frobnicate now")

	if f.bar.level != Error {
		t.Errorf("level = %v, want error", f.bar.level)
	}
	if got := f.bar.Text(); got != "Unknown command: frobnicate" {
		t.Errorf("text = %q", got)
	}
	if !f.bar.visible {
		t.Error("notification should be visible")
	}
	if len(f.win.calls) != 0 {
		t.Errorf("calls = %v", f.win.calls)
	}
	if f.history.Len() != 1 {
		t.Errorf("history len = %d, want 1", f.history.Len())
	}
	if !f.view.focused || f.bar.focused {
		t.Error("focus should return to the view")
	}
	if f.ctrl.Active() {
		t.Error("bar should not take the next Enter")
	}
}

func TestActivateCaseSensitive(t *testing.T) {
	f := newFixture(t)
	f.ctrl.OnActivate(":Open a")
	if f.bar.level != Error {
		t.Error("command names are case-sensitive")
	}
}

func TestActivatePrivate(t *testing.T) {
	f := newFixture(t)
	f.private = true
	f.ctrl.OnActivate(":open a")
	if f.history.Len() != 0 {
		t.Errorf("private mode recorded %q", f.history.Entries())
	}
	if len(f.win.calls) != 1 {
		t.Errorf("calls = %v", f.win.calls)
	}
}

func TestActivateSpecial(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Show("?")
	f.ctrl.OnActivate("?needle  x")

	if len(f.win.calls) != 1 || f.win.calls[0] != "search previous submit needle  x" {
		t.Errorf("calls = %v", f.win.calls)
	}
	if f.history.Len() != 0 {
		t.Error("special commands are not recorded in history")
	}
	f.assertAborted(t)
}

func TestActivateClosesWindow(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Show(":q")
	f.view.focused = false
	f.ctrl.OnActivate(":q")

	if len(f.win.calls) != 1 || f.win.calls[0] != "quit" {
		t.Errorf("calls = %v", f.win.calls)
	}
	if f.view.focused || f.aborts != 0 {
		t.Error("no UI update may follow a handler that closed the window")
	}
}

func TestOnTextChanged(t *testing.T) {
	f := newFixture(t)
	f.ctrl.OnTextChanged("/nee")
	f.ctrl.OnTextChanged(":open")
	f.ctrl.OnTextChanged("")
	f.ctrl.OnTextChanged("/")

	want := []string{"search next typing nee", "search next typing "}
	if len(f.win.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", f.win.calls, want)
	}
	for i := range want {
		if f.win.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, f.win.calls[i], want[i])
		}
	}
}

func TestNavigateHistory(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Show(":")
	f.ctrl.NavigateHistory(input.DirPrevious)
	if f.bar.Text() != ":" {
		t.Errorf("empty history changed text to %q", f.bar.Text())
	}

	for _, s := range []string{":a", ":b", ":c"} {
		f.history.Add(s)
	}

	var got []string
	for i := 0; i < 4; i++ {
		f.ctrl.NavigateHistory(input.DirPrevious)
		got = append(got, f.bar.Text())
	}
	f.ctrl.NavigateHistory(input.DirNext)
	got = append(got, f.bar.Text())

	want := []string{":c", ":b", ":a", ":c", ":a"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d = %q, want %q", i, got[i], want[i])
		}
	}

	// Showing the bar again starts from the newest entry.
	f.ctrl.Show(":")
	f.ctrl.NavigateHistory(input.DirPrevious)
	if f.bar.Text() != ":c" {
		t.Errorf("after Show, Previous = %q, want :c", f.bar.Text())
	}
}

func TestDeleteChar(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Show(":ab")
	f.ctrl.DeleteChar()
	if f.bar.Text() != ":a" || !f.bar.visible {
		t.Errorf("text = %q visible = %v", f.bar.Text(), f.bar.visible)
	}
	f.ctrl.DeleteChar()
	f.ctrl.DeleteChar()
	f.assertAborted(t)
}

func TestDeleteWordAndLine(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Show(":open example.com")
	f.ctrl.Delete(input.DeleteWord)
	if f.bar.Text() != ":open" {
		t.Errorf("after word delete text = %q", f.bar.Text())
	}
	f.ctrl.Delete(input.DeleteLine)
	if f.bar.Text() != ":" || f.aborts != 0 {
		t.Errorf("after line delete text = %q aborts = %d", f.bar.Text(), f.aborts)
	}
}

func TestNotify(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Notify(Warning, "download failed")
	if f.bar.level != Warning || f.bar.Text() != "download failed" || !f.bar.visible {
		t.Errorf("Notify left bar %+v", f.bar)
	}
	if f.bar.focused {
		t.Error("Notify should not take focus")
	}

	f.ctrl.Abort()
	if f.bar.level != Default {
		t.Error("Abort should clear the notification level")
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name string
		want Level
	}{
		{"error", Error},
		{"warn", Warning},
		{"warning", Warning},
		{"info", Default},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.name); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
	if Error.String() != "error" {
		t.Errorf("Error.String() = %q", Error.String())
	}
}
