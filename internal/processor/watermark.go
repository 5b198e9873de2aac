package processor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/photo-watermark/internal/models"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// edgeMargin is the fixed distance in pixels between the text and the
// anchored image edge(s).
const edgeMargin = 10

// ApplyWatermark decodes the image at inputPath, draws text onto a
// transparent overlay per style, composites the overlay over the image and
// writes an opaque re-encode to outputPath. A failed encode leaves no
// partial output file.
func (p *ImageProcessor) ApplyWatermark(inputPath, outputPath, text string, style models.WatermarkStyle) error {
	src, err := imaging.Open(inputPath)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inputPath, err)
	}

	base := imaging.Clone(src)
	bounds := base.Bounds()
	overlay := image.NewNRGBA(bounds)

	face := p.face(style.FontSize)
	textWidth, textHeight := measureText(face, text)
	x, y := textOrigin(style.Position, bounds.Dx(), bounds.Dy(), textWidth, textHeight)

	// Glyph pixels carry the style opacity as their own alpha; NRGBA keeps
	// the color channels un-premultiplied.
	d := &font.Drawer{
		Dst: overlay,
		Src: image.NewUniform(color.NRGBA{
			R: style.FontColor.R,
			G: style.FontColor.G,
			B: style.FontColor.B,
			A: style.Opacity,
		}),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)

	combined := imaging.Overlay(base, overlay, image.Point{}, 1.0)
	flattenOpaque(combined)

	format, err := imaging.FormatFromFilename(outputPath)
	if err != nil {
		return fmt.Errorf("output format for %s: %w", outputPath, err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, combined, format); err != nil {
		return fmt.Errorf("encode %s: %w", outputPath, err)
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return nil
}

// measureText reports the pixel extent of text in face. It prefers the
// bounding-box query and falls back to advance width plus line metrics when
// the box is degenerate.
func measureText(face font.Face, text string) (int, int) {
	box, advance := font.BoundString(face, text)
	w := (box.Max.X - box.Min.X).Ceil()
	h := (box.Max.Y - box.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		m := face.Metrics()
		w = advance.Ceil()
		h = (m.Ascent + m.Descent).Ceil()
	}
	return w, h
}

// textOrigin computes the top-left drawing coordinate for the measured text.
func textOrigin(pos models.Position, imageWidth, imageHeight, textWidth, textHeight int) (int, int) {
	switch pos {
	case models.PositionTopLeft:
		return edgeMargin, edgeMargin
	case models.PositionTopRight:
		return imageWidth - textWidth - edgeMargin, edgeMargin
	case models.PositionBottomLeft:
		return edgeMargin, imageHeight - textHeight - edgeMargin
	case models.PositionCenter:
		return (imageWidth - textWidth) / 2, (imageHeight - textHeight) / 2
	default:
		return imageWidth - textWidth - edgeMargin, imageHeight - textHeight - edgeMargin
	}
}

// flattenOpaque forces alpha to 255 in place, the equivalent of an RGB
// re-encode: color channels are kept, transparency is dropped.
func flattenOpaque(img *image.NRGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
}
