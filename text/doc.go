// Package text provides monospace bitmap glyphs for sunburst canvases.
//
// Glyphs are fixed-size intensity grids: one byte per pixel, 0 (empty) to
// 255 (fully covered). Every glyph of a face has the same cell width and
// the same height, so text can be laid out on a plain character grid with
// no kerning and fixed line spacing.
//
// # Sizes and weights
//
// Point sizes are bucketed to a small set of bitmap heights:
//
//	text.HeightFor(12) // Size14
//	text.HeightFor(17) // Size18
//	text.HeightFor(40) // Size64
//
// Three weights exist. Light and Regular share the Go Mono outlines,
// Bold uses Go Mono Bold.
//
// # Example usage
//
//	src, err := text.Default()
//	if err != nil {
//	    return err
//	}
//	face, err := src.Face(text.Regular, text.Size16)
//	if err != nil {
//	    return err
//	}
//	g, ok := face.Glyph('A')
//	_ = g.At(3, 5) // intensity of column 3, row 5
//	_ = ok          // false when 'A' had to be replaced by a space
//
// Glyphs are rasterized on first use and cached by the Source.
package text
