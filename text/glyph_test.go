package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlyphAt(t *testing.T) {
	g := Glyph{Width: 2, Height: 2, Pix: []uint8{1, 2, 3, 4}}

	assert.Equal(t, uint8(1), g.At(0, 0))
	assert.Equal(t, uint8(2), g.At(1, 0))
	assert.Equal(t, uint8(3), g.At(0, 1))
	assert.Equal(t, uint8(4), g.At(1, 1))
	assert.Zero(t, g.At(2, 0))
	assert.Zero(t, g.At(-1, 0))
	assert.Zero(t, g.At(0, 2))
}

func TestGlyphEmpty(t *testing.T) {
	assert.True(t, Glyph{Width: 1, Height: 1, Pix: []uint8{0}}.Empty())
	assert.False(t, Glyph{Width: 1, Height: 1, Pix: []uint8{9}}.Empty())
}
