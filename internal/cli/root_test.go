package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireframe/internal/batch"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "wireframe", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"render", "window", "matrix"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	cfg := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, cfg)
	assert.Equal(t, "c", cfg.Shorthand)
}

func TestRenderCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	render, _, err := cmd.Find([]string{"render"})
	require.NoError(t, err)

	for name, short := range map[string]string{"output": "o", "format": "f", "frames": "n", "workers": "w"} {
		f := render.Flags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, short, f.Shorthand)
	}
	assert.NotNil(t, render.Flags().Lookup("supersample"))
}

func TestMatrixCommand(t *testing.T) {
	out, err := execute(t, "matrix", "--angle", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "normalized dot: 0.7777778")
	assert.Contains(t, out, "rotation 90°")
	assert.Contains(t, out, "yaw:")
}

func TestRenderCommandWritesFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	out, err := execute(t, "render", "-o", dir, "-f", "png", "--width", "32", "--height", "24", "-n", "3", "-w", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Rendered: 3/3")

	for i := 0; i < 3; i++ {
		_, err := os.Stat(filepath.Join(dir, batch.FrameName(i, batch.PNG)))
		assert.NoError(t, err)
	}
	_, err = os.Stat(filepath.Join(dir, batch.ManifestName))
	assert.NoError(t, err)
}

func TestRenderCommandUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "wire.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: tga\nframes: 1\nwidth: 16\nheight: 16\n"), 0644))

	outDir := filepath.Join(dir, "out")
	_, err := execute(t, "--config", cfgPath, "render", "-o", outDir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "frame_00000.tga"))
	assert.NoError(t, err)
}

func TestRenderCommandRejectsBadFormat(t *testing.T) {
	_, err := execute(t, "render", "-o", t.TempDir(), "-f", "gif")
	assert.ErrorContains(t, err, "unknown format")
}
