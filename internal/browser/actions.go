package browser

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/dshills/ripcurl/internal/config"
	"github.com/dshills/ripcurl/internal/input"
	"github.com/dshills/ripcurl/internal/input/inputbar"
	"github.com/dshills/ripcurl/internal/input/key"
	"github.com/dshills/ripcurl/internal/input/shortcut"
)

// ErrUnknownAction is returned when a binding names no action.
var ErrUnknownAction = errors.New("unknown action")

// actionSpec is a named shortcut action and the kind of argument it takes,
// as understood by input.ParseArg.
type actionSpec struct {
	run  shortcut.Action[*Window]
	kind string
}

// actions are the shortcut actions available to user bindings.
var actions = map[string]actionSpec{
	"abort":          {scAbort, "none"},
	"inputbar":       {scInputbar, "text"},
	"open-current":   {scOpenCurrent, "none"},
	"load":           {scLoad, "text"},
	"search":         {scSearch, "direction"},
	"reload":         {scReload, "flag"},
	"stop":           {scStop, "none"},
	"zoom":           {scZoom, "zoom"},
	"back":           {scBack, "none"},
	"forward":        {scForward, "none"},
	"scroll":         {scScroll, "scroll"},
	"close":          {scClose, "none"},
	"focus-editable": {scFocusEditable, "none"},
	"window":         {scWindow, "direction"},
	"bookmark":       {scBookmark, "none"},
}

// inputbarActions are the input-bar actions available to user bindings.
var inputbarActions = map[string]actionSpec{
	"abort":    {ibAbort, "none"},
	"history":  {ibHistory, "direction"},
	"delete":   {ibDelete, "delete"},
	"complete": {ibComplete, "direction"},
}

// Actions returns the names of the shortcut actions, sorted.
func Actions() []string {
	return sortedKeys(actions)
}

// InputbarActions returns the names of the input-bar actions, sorted.
func InputbarActions() []string {
	return sortedKeys(inputbarActions)
}

func sortedKeys(m map[string]actionSpec) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupAction(table map[string]actionSpec, b config.ShortcutBinding) (actionSpec, input.Arg, error) {
	spec, ok := table[b.Action]
	if !ok {
		return actionSpec{}, nil, fmt.Errorf("%w: %w %q", config.ErrInvalidBinding, ErrUnknownAction, b.Action)
	}
	arg, ok := input.ParseArg(spec.kind, b.Arg)
	if !ok {
		return actionSpec{}, nil, fmt.Errorf("%w: %s: bad %s argument %q", config.ErrInvalidBinding, b.Action, spec.kind, b.Arg)
	}
	return spec, arg, nil
}

// Bind converts a user binding to a shortcut.
func Bind(b config.ShortcutBinding) (shortcut.Shortcut[*Window], error) {
	spec, arg, err := lookupAction(actions, b)
	if err != nil {
		return shortcut.Shortcut[*Window]{}, err
	}
	s, err := shortcut.New(b.Keys, b.ModeMask(), b.Action, spec.run, arg)
	if err != nil {
		return shortcut.Shortcut[*Window]{}, fmt.Errorf("%w: %w", config.ErrInvalidBinding, err)
	}
	return s, nil
}

// BindInputbar converts a user binding to an input-bar shortcut.
func BindInputbar(b config.ShortcutBinding) (shortcut.InputbarShortcut[*Window], error) {
	spec, arg, err := lookupAction(inputbarActions, b)
	if err != nil {
		return shortcut.InputbarShortcut[*Window]{}, err
	}
	s, err := shortcut.NewInputbar(b.Keys, b.Action, spec.run, arg)
	if err != nil {
		return shortcut.InputbarShortcut[*Window]{}, fmt.Errorf("%w: %w", config.ErrInvalidBinding, err)
	}
	return s, nil
}

// Tables builds the shortcut tables from the defaults and user bindings.
// A user binding replaces the default entries for the same key and mode
// mask, and is appended after the remaining defaults.
func Tables(bindings []config.ShortcutBinding) ([]shortcut.Shortcut[*Window], []shortcut.InputbarShortcut[*Window], error) {
	shortcuts := DefaultShortcuts()
	bar := DefaultInputbarShortcuts()

	for i, b := range bindings {
		if b.Inputbar {
			s, err := BindInputbar(b)
			if err != nil {
				return nil, nil, fmt.Errorf("shortcuts[%d]: %w", i, err)
			}
			bar = slices.DeleteFunc(bar, func(d shortcut.InputbarShortcut[*Window]) bool {
				return sameBinding(d.Key, s.Key)
			})
			bar = append(bar, s)
			continue
		}

		s, err := Bind(b)
		if err != nil {
			return nil, nil, fmt.Errorf("shortcuts[%d]: %w", i, err)
		}
		shortcuts = slices.DeleteFunc(shortcuts, func(d shortcut.Shortcut[*Window]) bool {
			return d.Mode == s.Mode && sameBinding(d.Key, s.Key)
		})
		shortcuts = append(shortcuts, s)
	}
	return shortcuts, bar, nil
}

func sameBinding(a, b key.Event) bool {
	return a.Key == b.Key && a.Rune == b.Rune && a.Modifiers == b.Modifiers
}

func scAbort(w *Window, _ input.Arg) {
	w.Abort()
}

func scInputbar(w *Window, arg input.Arg) {
	text, _ := arg.(input.Text)
	w.completer.Reset()
	w.bar.Show(string(text))
}

func scOpenCurrent(w *Window, _ input.Arg) {
	w.completer.Reset()
	w.bar.Show(":open " + w.URI())
}

func scLoad(w *Window, arg input.Arg) {
	text, _ := arg.(input.Text)
	w.Open(string(text))
}

// scSearch repeats the last search, reversing its direction for
// DirPrevious.
func scSearch(w *Window, arg input.Arg) {
	if w.search == "" {
		w.Notify(inputbar.Warning, "No previous search")
		return
	}
	dir := w.searchDir
	if d, _ := arg.(input.Direction); d == input.DirPrevious {
		dir = dir.Reverse()
	}
	w.submitSearch(dir)
}

func scReload(w *Window, arg input.Arg) {
	bypass, _ := arg.(input.Flag)
	w.report("reload", w.page.Reload(bool(bypass)))
}

func scStop(w *Window, _ input.Arg) {
	w.report("stop", w.page.Stop())
}

func scZoom(w *Window, arg input.Arg) {
	z, _ := arg.(input.Zoom)
	w.report("zoom", w.page.Zoom(z))
}

func scBack(w *Window, _ input.Arg) {
	w.report("back", w.page.Back())
}

func scForward(w *Window, _ input.Arg) {
	w.report("forward", w.page.Forward())
}

func scScroll(w *Window, arg input.Arg) {
	s, _ := arg.(input.Scroll)
	w.report("scroll", w.page.Scroll(s))
}

func scClose(w *Window, _ input.Arg) {
	w.Close()
}

func scFocusEditable(w *Window, _ input.Arg) {
	w.report("focus editable", w.page.FocusEditable())
}

func scWindow(w *Window, arg input.Arg) {
	dir, _ := arg.(input.Direction)
	w.set.Cycle(dir)
}

func scBookmark(w *Window, _ input.Arg) {
	addBookmark(w, w.URI())
}

func ibAbort(w *Window, _ input.Arg) {
	w.bar.Abort()
}

func ibHistory(w *Window, arg input.Arg) {
	dir, _ := arg.(input.Direction)
	w.bar.NavigateHistory(dir)
}

func ibDelete(w *Window, arg input.Arg) {
	op, _ := arg.(input.DeleteOp)
	w.bar.Delete(op)
}

func ibComplete(w *Window, arg input.Arg) {
	dir, _ := arg.(input.Direction)
	if line, ok := w.completer.Complete(w.bar.Text(), dir, w.completions); ok {
		w.surface.Inputbar().SetText(line)
	}
}
