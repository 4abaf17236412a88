// Package font renders text into the 7-row binary pattern used by the
// contribution grid. It owns the glyph table, character lookup, and the
// compositor that concatenates glyphs into a single bitmap.
package font

import (
	"errors"
	"fmt"
	"sort"
	"unicode"

	"github.com/kuchuk-borom-debbarma/GitCanvas/internal/bitmap"
)

// ErrInvalidSpacing is returned when a negative letter spacing reaches the
// compositor. The configuration layer rejects it earlier; this is the
// compositor's own contract check.
var ErrInvalidSpacing = errors.New("letter spacing must be non-negative")

// UnsupportedCharError reports a character with no glyph in the table.
// Position is the rune index within the input text, or -1 for a bare lookup.
type UnsupportedCharError struct {
	Char     rune
	Position int
}

func (e *UnsupportedCharError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("character %q is not supported", e.Char)
	}
	return fmt.Sprintf("character %q at position %d is not supported", e.Char, e.Position)
}

// glyphs is the parsed, immutable glyph table. It is built once from
// glyphRows at init and only ever read afterwards.
var glyphs map[rune]bitmap.Bitmap

func init() {
	glyphs = make(map[rune]bitmap.Bitmap, len(glyphRows))
	for r, rows := range glyphRows {
		g, err := parseGlyph(rows)
		if err != nil {
			panic(fmt.Sprintf("font: bad glyph definition for %q: %v", r, err))
		}
		glyphs[r] = g
	}
}

// parseGlyph converts '#'/'.' row strings into a validated Bitmap.
func parseGlyph(rows []string) (bitmap.Bitmap, error) {
	cells := make([][]int, len(rows))
	for i, row := range rows {
		cells[i] = make([]int, 0, len(row))
		for _, ch := range row {
			switch ch {
			case '#':
				cells[i] = append(cells[i], 1)
			case '.':
				cells[i] = append(cells[i], 0)
			default:
				return bitmap.Bitmap{}, fmt.Errorf("unexpected rune %q in glyph row", ch)
			}
		}
	}
	return bitmap.FromRows(cells)
}

// Lookup returns the glyph bitmap for a character. Lookup is case-sensitive,
// with one documented exception: a lowercase letter with no glyph of its own
// falls back to its uppercase form. If neither case is defined it returns an
// UnsupportedCharError.
func Lookup(r rune) (bitmap.Bitmap, error) {
	if g, ok := glyphs[r]; ok {
		return g, nil
	}
	if unicode.IsLower(r) {
		if g, ok := glyphs[unicode.ToUpper(r)]; ok {
			return g, nil
		}
	}
	return bitmap.Bitmap{}, &UnsupportedCharError{Char: r, Position: -1}
}

// SupportedChars returns every character with a usable glyph, sorted for
// stable help output.
func SupportedChars() []rune {
	chars := make([]rune, 0, len(glyphs))
	for r := range glyphs {
		chars = append(chars, r)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

// Compose renders text into a single 7-row bitmap, inserting spacing all-zero
// columns between consecutive glyphs (none before the first or after the
// last). An empty text yields the 7x0 bitmap without error. If any character
// has no glyph, Compose fails with an UnsupportedCharError carrying the rune
// and its index, and no partial bitmap is returned.
func Compose(text string, spacing int) (bitmap.Bitmap, error) {
	if spacing < 0 {
		return bitmap.Bitmap{}, ErrInvalidSpacing
	}

	runes := []rune(text)
	parts := make([]bitmap.Bitmap, 0, 2*len(runes))
	spacer := bitmap.New(spacing)

	for i, r := range runes {
		g, err := Lookup(r)
		if err != nil {
			return bitmap.Bitmap{}, &UnsupportedCharError{Char: r, Position: i}
		}
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, g)
	}

	return bitmap.HConcat(parts...), nil
}
