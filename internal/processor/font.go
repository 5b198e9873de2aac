package processor

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontCandidates are tried in order; the list covers the typical system
// font locations per platform without branching on the platform itself.
var fontCandidates = []string{
	"C:/Windows/Fonts/arial.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"arial.ttf",
}

// loadFont returns the first parseable candidate font, or the embedded Go
// Regular when no candidate file is usable. The returned origin is the file
// path, or empty for the embedded font.
func loadFont(candidates []string) (*opentype.Font, string) {
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		ft, err := opentype.Parse(data)
		if err != nil {
			continue
		}
		return ft, path
	}

	if ft, err := opentype.Parse(goregular.TTF); err == nil {
		return ft, ""
	}
	return nil, ""
}

// face sizes the resolved font. The bitmap fallback cannot honor the
// requested size.
func (p *ImageProcessor) face(size int) font.Face {
	if p.font == nil {
		return basicfont.Face7x13
	}

	f, err := opentype.NewFace(p.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		p.logger.Warn("Cannot size font face, falling back to built-in bitmap font")
		return basicfont.Face7x13
	}
	return f
}
