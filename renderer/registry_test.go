package renderer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sunburst"
)

func TestRegisterAndOpen(t *testing.T) {
	var gotTarget string
	var gotW, gotH int
	Register("test-open", func(target string, w, h int) (sunburst.Renderer, error) {
		gotTarget, gotW, gotH = target, w, h
		return sunburst.RendererFunc(func(*sunburst.Canvas) (bool, error) { return true, nil }), nil
	})
	t.Cleanup(func() { Unregister("test-open") })

	require.True(t, IsRegistered("test-open"))

	r, err := Open("test-open", "somewhere", 30, 20)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "somewhere", gotTarget)
	assert.Equal(t, 30, gotW)
	assert.Equal(t, 20, gotH)

	more, err := r.Present(sunburst.NewCanvas(1, 1))
	assert.NoError(t, err)
	assert.True(t, more)
}

func TestOpenUnknownKind(t *testing.T) {
	_, err := Open("no-such-kind", "", 1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKind))
	assert.Contains(t, err.Error(), "no-such-kind")
}

func TestOpenFactoryError(t *testing.T) {
	errBad := errors.New("bad target")
	Register("test-fail", func(string, int, int) (sunburst.Renderer, error) {
		return nil, errBad
	})
	t.Cleanup(func() { Unregister("test-fail") })

	_, err := Open("test-fail", "x", 1, 1)
	assert.ErrorIs(t, err, errBad)
}

func TestAvailableSorted(t *testing.T) {
	noop := func(string, int, int) (sunburst.Renderer, error) { return nil, nil }
	Register("zz-test", noop)
	Register("aa-test", noop)
	t.Cleanup(func() {
		Unregister("zz-test")
		Unregister("aa-test")
	})

	kinds := Available()
	assert.IsNonDecreasing(t, kinds)
	assert.Contains(t, kinds, "aa-test")
	assert.Contains(t, kinds, "zz-test")
}

func TestUnregister(t *testing.T) {
	Register("test-gone", func(string, int, int) (sunburst.Renderer, error) { return nil, nil })
	Unregister("test-gone")

	assert.False(t, IsRegistered("test-gone"))
	_, err := Open("test-gone", "", 1, 1)
	assert.ErrorIs(t, err, ErrUnknownKind)
}
