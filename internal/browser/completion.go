package browser

// completions returns the completion candidates for the argument of cmd,
// or the command names when cmd is empty. URIs come most recent first:
// visited pages, then bookmarks.
func (w *Window) completions(cmd string) []string {
	if cmd == "" {
		var names []string
		for _, c := range w.set.registry.Commands() {
			names = append(names, c.Name)
		}
		return names
	}

	c, ok := w.set.registry.Lookup(cmd)
	if !ok {
		return nil
	}
	switch c.Name {
	case "open", "winopen", "bookmark":
		var uris []string
		if w.set.visited != nil {
			uris = append(uris, w.set.visited.Recent(0)...)
		}
		if w.set.bookmarks != nil {
			uris = append(uris, w.set.bookmarks.List()...)
		}
		return uris
	case "zoom":
		return []string{"in", "out", "reset"}
	case "reload":
		return []string{"bypass"}
	case "private":
		return []string{"on", "off"}
	default:
		return nil
	}
}
