package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/sunburst"
)

// frameSize is the byte length of one P6 frame.
func frameSize(w, h int) int {
	return len(fmt.Sprintf("P6\n%d %d\n255\n", w, h)) + w*h*3
}

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Cleanup(func() { sunburst.SetLogger(nil) })

	var out, errOut bytes.Buffer
	err = run(args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestRunEachDemo(t *testing.T) {
	for _, name := range demoNames() {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name+".ppm")
			_, stderr, err := runCLI(t,
				"-sketch", name,
				"-renderer", "ppm",
				"-target", path,
				"-width", "120",
				"-height", "90",
				"-fps", "0",
				"-seed", "7",
				"-frames", "3",
			)
			require.NoError(t, err)
			assert.Contains(t, stderr, "sketch stopped")

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Len(t, data, 3*frameSize(120, 90))
		})
	}
}

func TestRunPPMToStdout(t *testing.T) {
	for _, target := range []string{"", "-"} {
		t.Run("target="+target, func(t *testing.T) {
			stdout, _, err := runCLI(t,
				"-sketch", "lissajous",
				"-renderer", "ppm",
				"-target", target,
				"-width", "32",
				"-height", "24",
				"-fps", "0",
				"-frames", "2",
			)
			require.NoError(t, err)
			require.Len(t, stdout, 2*frameSize(32, 24))
			assert.Equal(t, "P6\n32 24\n255\n", stdout[:len("P6\n32 24\n255\n")])
		})
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "cfg.ppm")
	cfg := filepath.Join(dir, "sketch.yaml")
	doc := "sketch: lorenz\nwidth: 40\nheight: 30\nfps: 0\nlog_level: warn\nrenderer:\n  kind: ppm\n  target: " + out + "\n"
	require.NoError(t, os.WriteFile(cfg, []byte(doc), 0o600))

	// -width overrides the file, -height does not.
	_, stderr, err := runCLI(t, "-config", cfg, "-width", "20", "-frames", "2")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "sketch started", "info lines are below the configured level")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("P6\n20 30\n255\n")))
	assert.Len(t, data, 2*frameSize(20, 30))
}

func TestRunSameSeedSameFrames(t *testing.T) {
	dir := t.TempDir()
	render := func(name string) []byte {
		path := filepath.Join(dir, name)
		_, _, err := runCLI(t, "-sketch", "rects", "-renderer", "ppm", "-target", path,
			"-width", "64", "-height", "64", "-fps", "0", "-seed", "99", "-frames", "5")
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return data
	}
	assert.Equal(t, render("a.ppm"), render("b.ppm"))
}

func TestRunList(t *testing.T) {
	stdout, _, err := runCLI(t, "-list")
	require.NoError(t, err)
	for _, want := range []string{"lorenz", "lissajous", "rects", "text", "ppm", "terminal", "imageseq"} {
		assert.Contains(t, stdout, want)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown sketch", []string{"-sketch", "nope", "-renderer", "ppm"}, "unknown sketch"},
		{"unknown renderer", []string{"-renderer", "vga"}, "unknown kind"},
		{"bad size", []string{"-width", "-4", "-renderer", "ppm"}, "invalid configuration"},
		{"bad flag", []string{"-bogus"}, "bogus"},
		{"missing config", []string{"-config", "does-not-exist.toml"}, "does-not-exist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFrameLimit(t *testing.T) {
	presented := 0
	r := &frameLimit{
		Renderer: sunburst.RendererFunc(func(*sunburst.Canvas) (bool, error) {
			presented++
			return true, nil
		}),
		left: 2,
	}
	c := sunburst.NewCanvas(1, 1)
	for _, want := range []bool{true, true, false, false} {
		more, err := r.Present(c)
		require.NoError(t, err)
		assert.Equal(t, want, more)
	}
	assert.Equal(t, 2, presented)
	assert.NoError(t, r.Close())
}
