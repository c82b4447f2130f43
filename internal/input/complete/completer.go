package complete

import (
	"strings"

	"github.com/dshills/ripcurl/internal/input"
)

// Source returns the candidates for the argument of command. command is
// empty when the command name itself is being completed.
type Source func(command string) []string

// Completer completes the last word of a ":" command line.
type Completer struct {
	matcher *Matcher
	limit   int

	// State of the current cycle. last is the line Complete returned.
	base    string
	results []Result
	index   int
	last    string
}

// New creates a completer offering at most limit results; zero means no
// limit.
func New(limit int) *Completer {
	return &Completer{matcher: NewMatcher(nil), limit: limit}
}

// Complete returns line with its last word replaced by a completion. On a
// line it returned itself, it moves to the next result in dir, wrapping
// at either end. ok is false when line is not a command line or nothing
// matches.
func (c *Completer) Complete(line string, dir input.Direction, source Source) (string, bool) {
	if n := len(c.results); n > 0 && line == c.last {
		if dir == input.DirPrevious {
			c.index = (c.index - 1 + n) % n
		} else {
			c.index = (c.index + 1) % n
		}
		c.last = c.base + c.results[c.index].Text
		return c.last, true
	}

	c.Reset()
	base, cmd, word, ok := split(line)
	if !ok {
		return "", false
	}
	results := c.matcher.Match(word, source(cmd), c.limit)
	if len(results) == 0 {
		return "", false
	}

	c.base, c.results = base, results
	if dir == input.DirPrevious {
		c.index = len(results) - 1
	}
	c.last = base + results[c.index].Text
	return c.last, true
}

// Reset forgets the current cycle.
func (c *Completer) Reset() {
	c.base, c.results, c.index, c.last = "", nil, 0, ""
}

// split divides a command line into the text before the last word, the
// command name and the last word. With no space after the name the name
// itself is the word and cmd is empty.
func split(line string) (base, cmd, word string, ok bool) {
	rest, ok := strings.CutPrefix(line, ":")
	if !ok {
		return "", "", "", false
	}
	name, _, hasArg := strings.Cut(rest, " ")
	if !hasArg {
		return ":", "", rest, true
	}
	i := strings.LastIndexByte(line, ' ')
	return line[:i+1], name, line[i+1:], true
}
