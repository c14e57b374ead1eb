package text

import (
	"bytes"
	"fmt"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/sunburst/internal/cache"
)

// glyphCacheLimit bounds the number of rasterized glyphs kept per Source.
const glyphCacheLimit = 4096

// glyphKey identifies one rasterized glyph.
type glyphKey struct {
	r      rune
	weight Weight
	height Height
}

type faceKey struct {
	weight Weight
	height Height
}

// outline pairs the rasterizable font with its character map.
// x/image renders the outlines; go-text answers coverage queries.
type outline struct {
	font  *opentype.Font
	cmap  *gotext.Face
	label string
}

// Source produces bitmap faces for every supported weight and height.
//
// Source is safe for concurrent use.
type Source struct {
	regular *outline
	bold    *outline

	mu    sync.Mutex
	faces map[faceKey]*Face

	glyphs *cache.Cache[glyphKey, Glyph]
}

// NewSource parses the embedded Go Mono fonts.
func NewSource() (*Source, error) {
	regular, err := parseOutline("gomono", gomono.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := parseOutline("gomonobold", gomonobold.TTF)
	if err != nil {
		return nil, err
	}
	return &Source{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]*Face),
		glyphs:  cache.New[glyphKey, Glyph](glyphCacheLimit),
	}, nil
}

func parseOutline(label string, ttf []byte) (*outline, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFontParse, label, err)
	}
	cmap, err := gotext.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("%w: %s cmap: %w", ErrFontParse, label, err)
	}
	return &outline{font: f, cmap: cmap, label: label}, nil
}

var defaultSource = sync.OnceValues(NewSource)

// Default returns the process-wide Source, building it on first use.
// The embedded fonts are part of the binary, so an error here means the
// build itself is broken.
func Default() (*Source, error) {
	return defaultSource()
}

// Face returns the face for a weight and bitmap height.
// Faces are created once and shared.
func (s *Source) Face(w Weight, h Height) (*Face, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHeight, int(h))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := faceKey{weight: w, height: h}
	if f, ok := s.faces[key]; ok {
		return f, nil
	}
	f, err := newFace(s, s.outlineFor(w), w, h)
	if err != nil {
		return nil, err
	}
	s.faces[key] = f
	return f, nil
}

// CachedGlyphs returns the number of rasterized glyphs currently cached.
func (s *Source) CachedGlyphs() int {
	return s.glyphs.Len()
}

func (s *Source) outlineFor(w Weight) *outline {
	if w == Bold {
		return s.bold
	}
	return s.regular
}
