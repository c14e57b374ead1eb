// Package renderer provides a name-keyed registry of sunburst renderers.
//
// Renderer implementations register a factory from their init function,
// so importing a renderer package for side effects is enough to make its
// kind available:
//
//	import (
//	    "github.com/gogpu/sunburst/renderer"
//	    _ "github.com/gogpu/sunburst/renderer/ppm"
//	    _ "github.com/gogpu/sunburst/renderer/terminal"
//	)
//
//	r, err := renderer.Open("ppm", "-", 800, 600)
//
// # Kinds
//
// The bundled kinds are:
//
//   - "ppm": binary P6 frames written to stdout or a file
//   - "terminal": an interactive tcell window
//   - "imageseq": one PNG, BMP or TIFF file per frame
//
// The meaning of the target string is defined by each kind.
package renderer
