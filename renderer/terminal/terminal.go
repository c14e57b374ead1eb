// Package terminal presents sunburst frames in a terminal using tcell.
//
// Each terminal cell shows two canvas pixels stacked vertically: the cell
// holds an upper half block ('▀') whose foreground is the top pixel and
// whose background is the bottom pixel. The canvas is scaled with nearest
// neighbour sampling to fill the whole terminal, so the picture follows
// window resizes. A true-color terminal gives the best results.
//
// Pressing Escape, Ctrl-C or 'q' asks the sketch to stop.
package terminal

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	"github.com/gogpu/sunburst"
	"github.com/gogpu/sunburst/renderer"
)

// Kind is the registry name of the terminal renderer.
const Kind = "terminal"

// halfBlock is drawn in every cell; fg paints the top half.
const halfBlock = '▀'

func init() {
	renderer.Register(Kind, func(target string, _, _ int) (sunburst.Renderer, error) {
		return New(target)
	})
}

// Renderer draws frames on a tcell screen.
type Renderer struct {
	screen tcell.Screen
	once   sync.Once

	// scaled is reused across frames while the terminal size is unchanged.
	scaled *image.RGBA
}

// New initializes the terminal screen and returns a renderer for it.
// title is shown as the terminal window title where supported.
func New(title string) (*Renderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init: %w", err)
	}
	return NewWithScreen(screen, title), nil
}

// NewWithScreen returns a renderer for an already initialized screen.
// The renderer owns the screen from then on and finalizes it on Close.
func NewWithScreen(screen tcell.Screen, title string) *Renderer {
	if t, ok := screen.(interface{ SetTitle(string) }); ok && title != "" {
		t.SetTitle(title)
	}
	screen.HideCursor()
	screen.Clear()

	return &Renderer{screen: screen}
}

// Present handles pending input and draws the canvas. It returns false
// once a quit key was pressed. Only events already queued are read, so
// Present never waits for input.
func (r *Renderer) Present(c *sunburst.Canvas) (bool, error) {
	for r.screen.HasPendingEvent() {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return false, nil
		case *tcell.EventKey:
			if isQuit(ev) {
				return false, nil
			}
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}

	r.draw(c.Pixmap())
	r.screen.Show()
	return true, nil
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		// Some terminals report Ctrl-C as a modified rune.
		return ev.Rune() == 'q' || (ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0)
	}
	return false
}

// draw scales pm to cols x 2*rows pixels and writes one half block per cell.
func (r *Renderer) draw(pm *sunburst.Pixmap) {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 || pm.Width() == 0 || pm.Height() == 0 {
		return
	}

	bounds := image.Rect(0, 0, cols, rows*2)
	if r.scaled == nil || r.scaled.Bounds() != bounds {
		r.scaled = image.NewRGBA(bounds)
	}
	draw.NearestNeighbor.Scale(r.scaled, bounds, pm, pm.Bounds(), draw.Src, nil)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := r.scaled.RGBAAt(x, 2*y)
			bottom := r.scaled.RGBAAt(x, 2*y+1)
			r.screen.SetContent(x, y, halfBlock, nil, cellStyle(top, bottom))
		}
	}
}

func cellStyle(top, bottom color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
		Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
}

// Close restores the terminal. Calling it again does nothing.
func (r *Renderer) Close() error {
	r.once.Do(func() {
		r.screen.Fini()
		sunburst.Logger().Debug("terminal renderer closed")
	})
	return nil
}
