package browser

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dshills/ripcurl/internal/input"
	"github.com/dshills/ripcurl/internal/input/command"
	"github.com/dshills/ripcurl/internal/input/inputbar"
	"github.com/dshills/ripcurl/internal/plugin/lua"
)

func cmdOpen(w *Window, args []string) bool {
	if len(args) == 0 {
		return false
	}
	w.Open(strings.Join(args, " "))
	return true
}

func cmdWinOpen(w *Window, args []string) bool {
	w.WinOpen(strings.Join(args, " "))
	return true
}

func cmdBookmark(w *Window, args []string) bool {
	uri := w.URI()
	if len(args) > 0 {
		uri = NormalizeURI(args[0])
	}
	return addBookmark(w, uri)
}

// addBookmark appends uri to the bookmark file and reports the outcome in
// the input bar. It reports whether the bar may close.
func addBookmark(w *Window, uri string) bool {
	b := w.set.bookmarks
	switch {
	case b == nil:
		w.Notify(inputbar.Error, "bookmark: no bookmark file")
		return false
	case uri == "":
		w.Notify(inputbar.Error, "bookmark: nothing to bookmark")
		return false
	}

	added, err := b.Add(uri)
	switch {
	case err != nil:
		w.report("bookmark", err)
	case added:
		w.Notify(inputbar.Default, "Bookmarked "+uri)
	default:
		w.Notify(inputbar.Warning, "Already bookmarked: "+uri)
	}
	return false
}

func cmdBack(w *Window, _ []string) bool {
	w.report("back", w.page.Back())
	return true
}

func cmdForward(w *Window, _ []string) bool {
	w.report("forward", w.page.Forward())
	return true
}

func cmdReload(w *Window, args []string) bool {
	bypass := len(args) > 0 && args[0] == "bypass"
	w.report("reload", w.page.Reload(bypass))
	return true
}

func cmdStop(w *Window, _ []string) bool {
	w.report("stop", w.page.Stop())
	return true
}

func cmdZoom(w *Window, args []string) bool {
	value := ""
	if len(args) > 0 {
		value = args[0]
	}
	arg, ok := input.ParseArg("zoom", value)
	if !ok {
		w.Notify(inputbar.Error, "zoom: expected in, out or reset")
		return false
	}
	w.report("zoom", w.page.Zoom(arg.(input.Zoom)))
	return true
}

func cmdQuit(w *Window, _ []string) bool {
	w.Close()
	return true
}

func cmdQuitAll(w *Window, _ []string) bool {
	w.set.CloseAll()
	return true
}

func cmdPrivate(w *Window, args []string) bool {
	private := !w.set.Private()
	if len(args) > 0 {
		switch args[0] {
		case "on":
			private = true
		case "off":
			private = false
		default:
			w.Notify(inputbar.Error, "private: expected on or off")
			return false
		}
	}
	w.set.SetPrivate(private)
	if private {
		w.Notify(inputbar.Default, "Private browsing on")
	} else {
		w.Notify(inputbar.Default, "Private browsing off")
	}
	return false
}

// specialSearch searches as the user types and remembers the search on
// activation for n and N. Typed text restarts the search from the top;
// an emptied pattern clears the highlight.
func specialSearch(w *Window, text string, arg input.Arg, activated bool) bool {
	dir, _ := arg.(input.Direction)
	if !activated {
		if text == "" {
			w.report("clear search", w.page.ClearSearch())
			return false
		}
		w.report("search", w.page.Search(text, dir, true))
		return false
	}

	w.search, w.searchDir = text, dir
	w.submitSearch(dir)
	return true
}

// LuaCommands adapts commands registered by the init script. Commands whose
// name or abbreviation is taken by builtin are skipped with a warning.
func LuaCommands(cmds []*lua.Command, builtin []command.Command[*Window], logger *log.Logger) []command.Command[*Window] {
	taken := make(map[string]bool)
	for _, c := range builtin {
		taken[c.Name] = true
		if c.Abbrev != "" {
			taken[c.Abbrev] = true
		}
	}

	var out []command.Command[*Window]
	for _, c := range cmds {
		if taken[c.Name] || (c.Abbrev != "" && taken[c.Abbrev]) {
			logger.Warn("skipping lua command: name in use", "command", c.Name, "abbrev", c.Abbrev)
			continue
		}
		taken[c.Name] = true
		if c.Abbrev != "" {
			taken[c.Abbrev] = true
		}

		out = append(out, command.Command[*Window]{
			Name:        c.Name,
			Abbrev:      c.Abbrev,
			Description: c.Description,
			Run: func(w *Window, args []string) bool {
				closeBar, err := c.Invoke(w, args)
				if err != nil {
					w.report("lua", err)
					return false
				}
				return closeBar
			},
		})
	}
	return out
}
