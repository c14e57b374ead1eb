package text

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource(t *testing.T) *Source {
	t.Helper()
	src, err := NewSource()
	require.NoError(t, err)
	return src
}

func TestFaceCellSize(t *testing.T) {
	src := testSource(t)
	for _, w := range []Weight{Light, Regular, Bold} {
		for _, h := range Heights() {
			face, err := src.Face(w, h)
			require.NoError(t, err, "%v/%d", w, h)

			assert.Equal(t, int(h), face.Height())
			assert.Equal(t, w, face.Weight())
			assert.Positive(t, face.CellWidth())
			assert.Less(t, face.CellWidth(), int(h), "monospace cells are narrower than tall")

			for _, r := range "AgW|" {
				g, ok := face.Glyph(r)
				assert.True(t, ok, "%q should be covered", r)
				assert.Equal(t, face.CellWidth(), g.Width)
				assert.Equal(t, int(h), g.Height)
				assert.Len(t, g.Pix, g.Width*g.Height)
			}
		}
	}
}

func TestFaceGlyphHasInk(t *testing.T) {
	face, err := testSource(t).Face(Regular, Size32)
	require.NoError(t, err)

	g, ok := face.Glyph('H')
	require.True(t, ok)
	assert.False(t, g.Empty())

	var strong int
	for _, v := range g.Pix {
		if v > 200 {
			strong++
		}
	}
	assert.Positive(t, strong, "'H' should have fully covered pixels")
}

func TestFaceSpaceIsEmpty(t *testing.T) {
	face, err := testSource(t).Face(Regular, Size16)
	require.NoError(t, err)

	g, ok := face.Glyph(' ')
	assert.True(t, ok)
	assert.True(t, g.Empty())
}

func TestFaceFallback(t *testing.T) {
	face, err := testSource(t).Face(Bold, Size24)
	require.NoError(t, err)

	for _, r := range []rune{0x0378, 0xE000, '\t', 0x10FFFF} {
		assert.False(t, face.Covers(r), "%U", r)
		g, ok := face.Glyph(r)
		assert.False(t, ok, "%U", r)
		assert.True(t, g.Empty(), "%U should fall back to a blank cell", r)
		assert.Equal(t, face.CellWidth(), g.Width)
	}
}

func TestFaceBoldDiffersFromRegular(t *testing.T) {
	src := testSource(t)
	regular, err := src.Face(Regular, Size32)
	require.NoError(t, err)
	bold, err := src.Face(Bold, Size32)
	require.NoError(t, err)

	rg, _ := regular.Glyph('W')
	bg, _ := bold.Glyph('W')

	ink := func(g Glyph) (n int) {
		for _, v := range g.Pix {
			n += int(v)
		}
		return n
	}
	assert.Greater(t, ink(bg), ink(rg))
}

func TestSourceInvalidHeight(t *testing.T) {
	_, err := testSource(t).Face(Regular, Height(15))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidHeight))
}

func TestSourceSharesFacesAndGlyphs(t *testing.T) {
	src := testSource(t)
	a, err := src.Face(Regular, Size16)
	require.NoError(t, err)
	b, err := src.Face(Regular, Size16)
	require.NoError(t, err)
	assert.Same(t, a, b)

	require.Zero(t, src.CachedGlyphs())
	a.Glyph('x')
	a.Glyph('x')
	b.Glyph('y')
	assert.Equal(t, 2, src.CachedGlyphs())

	// Uncovered runes share the space entry.
	a.Glyph(0x0378)
	a.Glyph(0x0379)
	assert.Equal(t, 3, src.CachedGlyphs())
}

func TestDefaultSource(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}
