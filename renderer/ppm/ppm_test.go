package ppm

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sunburst"
	"github.com/gogpu/sunburst/renderer"
)

// readFrame parses one P6 image from r.
func readFrame(t *testing.T, r *bufio.Reader) (w, h int, data []byte) {
	t.Helper()
	var maxval int
	_, err := fmt.Fscanf(r, "P6\n%d %d\n%d\n", &w, &h, &maxval)
	require.NoError(t, err)
	require.Equal(t, 255, maxval)

	data = make([]byte, w*h*3)
	_, err = io.ReadFull(r, data)
	require.NoError(t, err)
	return w, h, data
}

func TestEncode(t *testing.T) {
	pm := sunburst.NewPixmap(2, 1)
	pm.SetPixel(0, 0, sunburst.RGB(1, 2, 3))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, pm))

	want := append([]byte("P6\n2 1\n255\n"), 1, 2, 3, 255, 255, 255)
	assert.Equal(t, want, buf.Bytes())
}

func TestRendererStreamsFrames(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	c := sunburst.NewCanvas(3, 2)
	for i := 0; i < 3; i++ {
		c.SetStroke(sunburst.RGB(uint8(i), 0, 0))
		c.DrawPoint(sunburst.Pt(0, 0))

		more, err := r.Present(c)
		require.NoError(t, err)
		assert.True(t, more)
	}
	require.NoError(t, r.Close())
	assert.Equal(t, uint64(3), r.Frames())

	br := bufio.NewReader(&buf)
	for i := 0; i < 3; i++ {
		w, h, data := readFrame(t, br)
		assert.Equal(t, 3, w)
		assert.Equal(t, 2, h)
		assert.Equal(t, uint8(i), data[0], "frame %d", i)
	}
	_, err := br.ReadByte()
	assert.ErrorIs(t, err, io.EOF)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRendererWriteError(t *testing.T) {
	r := New(failingWriter{})
	_, err := r.Present(sunburst.NewCanvas(64, 64))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ppm")
	r, err := Create(path)
	require.NoError(t, err)

	_, err = r.Present(sunburst.NewCanvas(4, 4))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("P6\n4 4\n255\n")))
	assert.Len(t, data, len("P6\n4 4\n255\n")+4*4*3)
}

func TestCreateMissingDir(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "missing", "out.ppm"))
	assert.Error(t, err)
}

func TestRegistered(t *testing.T) {
	assert.True(t, renderer.IsRegistered(Kind))

	path := filepath.Join(t.TempDir(), "reg.ppm")
	r, err := renderer.Open(Kind, path, 8, 8)
	require.NoError(t, err)
	require.IsType(t, &Renderer{}, r)
	require.NoError(t, r.(*Renderer).Close())
}

func TestSketchIntegration(t *testing.T) {
	var buf bytes.Buffer
	frames := 0
	stop := sunburst.RendererFunc(func(c *sunburst.Canvas) (bool, error) {
		frames++
		return frames <= 2, nil
	})
	r := New(&buf)

	sk, err := sunburst.NewSketch[int](nil,
		sunburst.WithSize(5, 5),
		sunburst.WithFPS(0),
		sunburst.WithRenderer(sunburst.RendererFunc(func(c *sunburst.Canvas) (bool, error) {
			if more, err := stop.Present(c); !more || err != nil {
				return more, err
			}
			return r.Present(c)
		})),
	)
	require.NoError(t, err)
	require.NoError(t, sk.Run())

	assert.Equal(t, 2*(len("P6\n5 5\n255\n")+5*5*3), buf.Len())
}

func TestIsStdout(t *testing.T) {
	for target, want := range map[string]bool{"": true, "-": true, "out.ppm": false, "--": false} {
		assert.Equal(t, want, IsStdout(target), "target %q", target)
	}
}
