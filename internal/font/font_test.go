package font

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuchuk-borom-debbarma/GitCanvas/internal/bitmap"
)

func TestAllGlyphsHaveGridHeight(t *testing.T) {
	for _, r := range SupportedChars() {
		g, err := Lookup(r)
		require.NoError(t, err, "lookup of %q", r)
		assert.Equal(t, bitmap.GridHeight, g.Rows(), "glyph %q", r)
		assert.Greater(t, g.Cols(), 0, "glyph %q", r)
	}
}

func TestSupportedCharsCoverage(t *testing.T) {
	chars := string(SupportedChars())
	assert.Contains(t, chars, "A")
	assert.Contains(t, chars, "a")
	assert.Contains(t, chars, "0")
	assert.Contains(t, chars, " ")
	assert.Contains(t, chars, "!")
}

func TestLookupUnsupported(t *testing.T) {
	_, err := Lookup('§')

	var ucErr *UnsupportedCharError
	require.ErrorAs(t, err, &ucErr)
	assert.Equal(t, '§', ucErr.Char)
	assert.Equal(t, -1, ucErr.Position)
}

func TestLookupLowercaseFallback(t *testing.T) {
	// Every lowercase letter has its own glyph, so the fallback is exercised
	// through the error path: a lowercase rune whose uppercase form is also
	// missing must fail.
	_, err := Lookup('ß')
	assert.Error(t, err)
}

func TestComposeEmpty(t *testing.T) {
	bm, err := Compose("", 1)
	require.NoError(t, err)
	assert.Equal(t, bitmap.GridHeight, bm.Rows())
	assert.Equal(t, 0, bm.Cols())
}

func TestComposeSingleChar(t *testing.T) {
	h, err := Lookup('H')
	require.NoError(t, err)

	bm, err := Compose("H", 3)
	require.NoError(t, err)
	// No spacing around a single glyph.
	assert.Equal(t, h.Cols(), bm.Cols())
}

func TestComposeSpacingWidth(t *testing.T) {
	h, err := Lookup('H')
	require.NoError(t, err)
	i, err := Lookup('I')
	require.NoError(t, err)

	bm, err := Compose("HI", 1)
	require.NoError(t, err)
	assert.Equal(t, h.Cols()+1+i.Cols(), bm.Cols())

	// Zero spacing is valid and narrower.
	touching, err := Compose("HI", 0)
	require.NoError(t, err)
	assert.Equal(t, h.Cols()+i.Cols(), touching.Cols())
}

func TestComposeSpacingMonotonic(t *testing.T) {
	narrow, err := Compose("ART", 0)
	require.NoError(t, err)
	wide, err := Compose("ART", 3)
	require.NoError(t, err)
	assert.Greater(t, wide.Cols(), narrow.Cols())
}

func TestComposeNegativeSpacing(t *testing.T) {
	_, err := Compose("HI", -1)
	assert.True(t, errors.Is(err, ErrInvalidSpacing))
}

func TestComposeUnsupportedCharPosition(t *testing.T) {
	_, err := Compose("HI§X", 1)

	var ucErr *UnsupportedCharError
	require.ErrorAs(t, err, &ucErr)
	assert.Equal(t, '§', ucErr.Char)
	assert.Equal(t, 2, ucErr.Position)
	assert.Contains(t, ucErr.Error(), "position 2")
}

func TestComposeSpaceContributesGlyph(t *testing.T) {
	withSpace, err := Compose("A B", 1)
	require.NoError(t, err)
	without, err := Compose("AB", 1)
	require.NoError(t, err)
	assert.Greater(t, withSpace.Cols(), without.Cols())
}

func TestComposeOnlyBinaryCells(t *testing.T) {
	bm, err := Compose("Test 123!", 1)
	require.NoError(t, err)
	for r := 0; r < bm.Rows(); r++ {
		for c := 0; c < bm.Cols(); c++ {
			v := bm.At(r, c)
			assert.True(t, v == 0 || v == 1)
		}
	}
}
