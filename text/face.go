package text

import (
	"fmt"
	"image"
	"sync"
	"unicode"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fallbackRune replaces characters the face cannot render.
const fallbackRune = ' '

// Face renders glyphs of one weight at one bitmap height.
//
// Every glyph returned by a Face is CellWidth() x Height() pixels.
type Face struct {
	src    *Source
	ol     *outline
	weight Weight
	height Height

	cellWidth int
	ascent    int

	// opentype faces are not safe for concurrent use.
	mu   sync.Mutex
	face font.Face
}

func newFace(src *Source, o *outline, w Weight, h Height) (*Face, error) {
	size := float64(h)
	face, err := openFace(o.font, size)
	if err != nil {
		return nil, fmt.Errorf("text: %s at %d: %w", o.label, int(h), err)
	}

	// Shrink the em size until ascent+descent fits in the bitmap height.
	if lineHeight := lineHeightOf(face); lineHeight > int(h) {
		_ = face.Close()
		size = size * float64(h) / float64(lineHeight)
		face, err = openFace(o.font, size)
		if err != nil {
			return nil, fmt.Errorf("text: %s at %d: %w", o.label, int(h), err)
		}
	}

	adv, ok := face.GlyphAdvance('M')
	if !ok {
		_ = face.Close()
		return nil, fmt.Errorf("text: %s has no advance for 'M'", o.label)
	}

	return &Face{
		src:       src,
		ol:        o,
		weight:    w,
		height:    h,
		cellWidth: max(adv.Round(), 1),
		ascent:    face.Metrics().Ascent.Ceil(),
		face:      face,
	}, nil
}

func openFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func lineHeightOf(f font.Face) int {
	m := f.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// Weight returns the face weight.
func (f *Face) Weight() Weight { return f.weight }

// Height returns the bitmap height, which is also the line advance.
func (f *Face) Height() int { return int(f.height) }

// CellWidth returns the fixed horizontal advance of every glyph.
func (f *Face) CellWidth() int { return f.cellWidth }

// Covers reports whether the face has a glyph for r.
func (f *Face) Covers(r rune) bool {
	if !unicode.IsPrint(r) {
		return false
	}
	_, ok := f.ol.cmap.NominalGlyph(r)
	return ok
}

// Glyph returns the bitmap for r. When the face has no glyph for r the
// space glyph is returned instead and ok is false.
func (f *Face) Glyph(r rune) (g Glyph, ok bool) {
	ok = f.Covers(r)
	if !ok {
		r = fallbackRune
	}
	key := glyphKey{r: r, weight: f.weight, height: f.height}
	g = f.src.glyphs.GetOrCreate(key, func() Glyph {
		return f.rasterize(r)
	})
	return g, ok
}

// rasterize draws r into a fresh cell-sized alpha bitmap.
func (f *Face) rasterize(r rune) Glyph {
	cell := image.NewAlpha(image.Rect(0, 0, f.cellWidth, int(f.height)))

	f.mu.Lock()
	dr, mask, maskp, _, ok := f.face.Glyph(fixed.P(0, f.ascent), r)
	if ok {
		draw.DrawMask(cell, dr, image.Opaque, image.Point{}, mask, maskp, draw.Over)
	}
	f.mu.Unlock()

	return Glyph{
		Width:  f.cellWidth,
		Height: int(f.height),
		Pix:    cell.Pix,
	}
}
