package sunburst

// Renderer presents a finished frame.
//
// Present is called once per frame after the draw callback. It returns
// false to ask the sketch to stop (for example when the user closed the
// window). A non-nil error is fatal: the sketch stops and Run returns it.
//
// Renderers that hold resources may also implement io.Closer; Run closes
// them when the loop ends.
type Renderer interface {
	Present(c *Canvas) (bool, error)
}

// RendererFunc adapts an ordinary function to the Renderer interface.
type RendererFunc func(c *Canvas) (bool, error)

// Present calls f(c).
func (f RendererFunc) Present(c *Canvas) (bool, error) {
	return f(c)
}
