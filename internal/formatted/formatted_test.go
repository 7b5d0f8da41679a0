package formatted

import (
	"dungeon-lore/internal/colour"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNestedTags(t *testing.T) {
	s := Parse("a - Freeze<white>(1d7)</white> (<lightred>1</lightred>)", colour.LightBlue)

	assert.Equal(t, "a - Freeze(1d7) (1)", s.String())
	assert.Equal(t, []Run{
		{colour.LightBlue, "a - Freeze"},
		{colour.White, "(1d7)"},
		{colour.LightBlue, " ("},
		{colour.LightRed, "1"},
		{colour.LightBlue, ")"},
	}, s.Runs())
	assert.Equal(t, colour.LightBlue, s.Colour())
}

func TestParseKeepsUnknownTagsAndEscapes(t *testing.T) {
	s := Parse("<<b> <octarine>x</octarine> 3 < 4", colour.LightGrey)
	assert.Equal(t, "<b> <octarine>x</octarine> 3 < 4", s.String())
}

func TestParseAcceptsMixedCaseGrayTags(t *testing.T) {
	s := Parse("<DarkGray>x</DarkGray>y", colour.LightGrey)
	assert.Equal(t, "xy", s.String())
	assert.Equal(t, []Run{{colour.DarkGrey, "x"}, {colour.LightGrey, "y"}}, s.Runs())
}

func TestParseUnbalancedCloseDoesNotPopBase(t *testing.T) {
	s := Parse("</red>plain", colour.Yellow)
	require.Len(t, s.Runs(), 1)
	assert.Equal(t, colour.Yellow, s.Runs()[0].Colour)
}

func TestCprintfMergesSameColour(t *testing.T) {
	s := New()
	s.Cprintf("a")
	s.Cprintf("%d", 1)
	s.TextColour(colour.Red)
	s.Cprintf("b")
	assert.Equal(t, []Run{{colour.LightGrey, "a1"}, {colour.Red, "b"}}, s.Runs())
}

func TestAppendTakesOtherColour(t *testing.T) {
	s := New()
	s.Append(Parse("<red>x</red>y", colour.Green))
	assert.Equal(t, colour.Green, s.Colour())
	assert.Equal(t, "xy", s.String())
}

func TestTaggedRoundTrip(t *testing.T) {
	s := New()
	s.Cprintf("1 < 2 ")
	s.TextColour(colour.LightRed)
	s.Cprintf("hot")
	back := Parse(s.Tagged(), colour.LightGrey)
	assert.Equal(t, s.Runs(), back.Runs())
}

func TestLines(t *testing.T) {
	s := Parse("one\n<red>two</red> three\n", colour.LightGrey)
	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, []Run{{colour.LightGrey, "one"}}, lines[0])
	assert.Equal(t, []Run{{colour.Red, "two"}, {colour.LightGrey, " three"}}, lines[1])
}

func TestChop(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"Freeze", 10, "Freeze    "},
		{"Lehudib's Crystal Spear", 10, "Lehudib's "},
		{"abc", 0, ""},
		{"abc", -4, ""},
		{"", 3, "   "},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Chop(c.in, c.width), "Chop(%q, %d)", c.in, c.width)
	}
}
