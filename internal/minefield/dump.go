package minefield

import (
	"fmt"
	"strings"
)

// Dump glyphs.
const (
	GlyphHidden    = '#'
	GlyphFlag      = 'F'
	GlyphQuestion  = '?'
	GlyphEmpty     = '.'
	GlyphMine      = '*'
	GlyphExploded  = 'X'
	GlyphWrongFlag = 'x'
)

// Dump returns a plain-text view of the board, one line per row, prefixed
// by a header of column indices (mod 10). Row labels are right-aligned
// to two digits.
//
// With revealAll set, mines are shown as '*', the exploded mine as 'X' and
// flags on safe cells as 'x'. Otherwise only what the player sees is shown.
func (s *Session) Dump(revealAll bool) string {
	var b strings.Builder

	b.WriteString("   ")
	for c := 0; c < s.grid.cols; c++ {
		b.WriteByte(byte('0' + c%10))
	}
	b.WriteByte('\n')

	exploded, hasExploded := s.Exploded()
	for r := 0; r < s.grid.rows; r++ {
		fmt.Fprintf(&b, "%2d ", r)
		for c := 0; c < s.grid.cols; c++ {
			b.WriteRune(glyph(s.grid.At(r, c), revealAll, hasExploded && exploded == C(r, c)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func glyph(c *Cell, revealAll, exploded bool) rune {
	if exploded {
		return GlyphExploded
	}
	switch c.State {
	case Revealed:
		if c.AdjacentMines == 0 {
			return GlyphEmpty
		}
		return rune('0' + c.AdjacentMines)
	case Flagged:
		if revealAll && !c.IsMine {
			return GlyphWrongFlag
		}
		return GlyphFlag
	}
	if revealAll && c.IsMine {
		return GlyphMine
	}
	if c.State == Questioned {
		return GlyphQuestion
	}
	return GlyphHidden
}
