// Package formatted holds colour-tagged text used by description screens.
//
// Markup uses colour names as tags, e.g. "<lightred>3</lightred>". A literal
// '<' is written as "<<". Unknown tags are kept as plain text.
package formatted

import (
	"dungeon-lore/internal/colour"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Run is a span of text drawn in a single colour.
type Run struct {
	Colour colour.Colour
	Text   string
}

// String is an append-only sequence of coloured runs.
type String struct {
	runs []Run
	cur  colour.Colour
}

// New returns an empty String whose current colour is light grey.
func New() *String {
	return &String{cur: colour.LightGrey}
}

// TextColour sets the colour used by subsequent Cprintf calls.
func (s *String) TextColour(c colour.Colour) { s.cur = c }

// Colour returns the current text colour.
func (s *String) Colour() colour.Colour { return s.cur }

// Cprintf appends formatted text in the current colour.
func (s *String) Cprintf(format string, args ...any) {
	s.add(s.cur, fmt.Sprintf(format, args...))
}

// Append copies other's runs onto s. The current colour becomes other's.
func (s *String) Append(other *String) {
	if other == nil {
		return
	}
	for _, r := range other.runs {
		s.add(r.Colour, r.Text)
	}
	s.cur = other.cur
}

func (s *String) add(c colour.Colour, text string) {
	if text == "" {
		return
	}
	if n := len(s.runs); n > 0 && s.runs[n-1].Colour == c {
		s.runs[n-1].Text += text
		return
	}
	s.runs = append(s.runs, Run{Colour: c, Text: text})
}

// Parse builds a String from tagged markup. Untagged text uses base.
func Parse(markup string, base colour.Colour) *String {
	out := &String{cur: base}
	stack := []colour.Colour{base}
	var buf strings.Builder
	flush := func() {
		out.add(stack[len(stack)-1], buf.String())
		buf.Reset()
	}

	for i := 0; i < len(markup); i++ {
		ch := markup[i]
		if ch != '<' {
			buf.WriteByte(ch)
			continue
		}
		if i+1 < len(markup) && markup[i+1] == '<' {
			buf.WriteByte('<')
			i++
			continue
		}
		end := strings.IndexByte(markup[i:], '>')
		if end < 0 {
			buf.WriteByte(ch)
			continue
		}
		tag := markup[i+1 : i+end]
		closing := strings.HasPrefix(tag, "/")
		c, ok := colour.Parse(strings.TrimPrefix(tag, "/"))
		if !ok {
			buf.WriteByte(ch)
			continue
		}
		flush()
		if closing {
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		} else {
			stack = append(stack, c)
		}
		i += end
	}
	flush()
	out.cur = stack[len(stack)-1]
	return out
}

// Runs returns the coloured spans in order.
func (s *String) Runs() []Run {
	return append([]Run(nil), s.runs...)
}

// String returns the text with all colour information dropped.
func (s *String) String() string {
	var b strings.Builder
	for _, r := range s.runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Tagged returns the text as markup that Parse(…, colour.LightGrey) reads
// back into the same runs.
func (s *String) Tagged() string {
	var b strings.Builder
	for _, r := range s.runs {
		text := strings.ReplaceAll(r.Text, "<", "<<")
		if r.Colour == colour.LightGrey {
			b.WriteString(text)
			continue
		}
		name := colour.Name(r.Colour)
		fmt.Fprintf(&b, "<%s>%s</%s>", name, text, name)
	}
	return b.String()
}

// Lines splits the runs at newlines. A trailing newline does not produce an
// extra empty line.
func (s *String) Lines() [][]Run {
	var lines [][]Run
	var line []Run
	for _, r := range s.runs {
		parts := strings.Split(r.Text, "\n")
		for i, p := range parts {
			if i > 0 {
				lines = append(lines, line)
				line = nil
			}
			if p != "" {
				line = append(line, Run{Colour: r.Colour, Text: p})
			}
		}
	}
	if line != nil {
		lines = append(lines, line)
	}
	return lines
}

// Chop truncates s to width display cells and pads it with spaces to
// exactly that width.
func Chop(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}
