// Package complete provides fuzzy completion for the input bar.
//
// The matcher ranks candidates that contain the query's characters in
// order. Scoring favors consecutive matches, matches at word boundaries
// and matches near the start of the text. For URIs the start is the host:
// the scheme and a leading "www." are skipped, so "git" matches the host
// of https://www.github.com as a prefix.
//
// The Completer applies the matcher to a command line such as
// ":open exa". The first completion replaces the word being typed; asking
// again on the line it produced cycles through the ranked results.
//
//	c := complete.New(0)
//	line, ok := c.Complete(":open exa", input.DirNext, func(cmd string) []string {
//	    return history
//	})
package complete
