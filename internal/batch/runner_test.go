package batch

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/photo-watermark/internal/config"
	"github.com/phambaophuc/photo-watermark/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRunner() *Runner {
	cfg := &config.Config{
		Files: config.FilesConfig{
			Extensions:   []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tiff"},
			OutputSuffix: "_watermark",
		},
	}
	return NewRunner(cfg, zap.NewNop())
}

func testStyle() models.WatermarkStyle {
	return models.WatermarkStyle{
		FontSize:  12,
		FontColor: models.RGB{R: 255, G: 255, B: 255},
		Position:  models.PositionBottomRight,
		Opacity:   128,
	}
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, imaging.Save(imaging.New(32, 24, color.NRGBA{80, 80, 80, 255}), path))
}

func TestRunDirectorySkipsSubdirsAndNonImages(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "photos")
	nested := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(nested, 0755))

	writePNG(t, filepath.Join(dir, "a.png"))
	writePNG(t, filepath.Join(nested, "c.png"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("notes"), 0644))

	require.NoError(t, testRunner().Run(dir, testStyle()))

	outDir := filepath.Join(dir, "photos_watermark")
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.png", entries[0].Name())

	// the nested directory was never descended into
	_, err = os.Stat(filepath.Join(nested, "nested_watermark"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(outDir, "c.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunSingleFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "photos")
	require.NoError(t, os.MkdirAll(dir, 0755))
	in := filepath.Join(dir, "a.png")
	writePNG(t, in)

	require.NoError(t, testRunner().Run(in, testStyle()))

	out := filepath.Join(dir, "photos_watermark", "a.png")
	img, err := imaging.Open(out)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 24, img.Bounds().Dy())
}

func TestRunSingleFileUppercaseExtension(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "photos")
	require.NoError(t, os.MkdirAll(dir, 0755))
	in := filepath.Join(dir, "a.PNG")
	writePNG(t, in)

	require.NoError(t, testRunner().Run(in, testStyle()))

	_, err := os.Stat(filepath.Join(dir, "photos_watermark", "a.PNG"))
	assert.NoError(t, err)
}

func TestRunSingleNonImageProducesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "photos")
	require.NoError(t, os.MkdirAll(dir, 0755))
	in := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(in, []byte("hello"), 0644))

	require.NoError(t, testRunner().Run(in, testStyle()))

	_, err := os.Stat(filepath.Join(dir, "photos_watermark"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunMissingPath(t *testing.T) {
	err := testRunner().Run(filepath.Join(t.TempDir(), "nowhere"), testStyle())
	assert.Error(t, err)
}

func TestRunDirectoryContinuesPastBadFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "photos")
	require.NoError(t, os.MkdirAll(dir, 0755))
	// a decodes, b does not
	writePNG(t, filepath.Join(dir, "a.png"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.png"), []byte("broken"), 0644))

	require.NoError(t, testRunner().Run(dir, testStyle()))

	outDir := filepath.Join(dir, "photos_watermark")
	_, err := os.Stat(filepath.Join(outDir, "a.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "b.png"))
	assert.True(t, os.IsNotExist(err))
}
