// Package processor renders date watermarks onto images.
package processor

import (
	"go.uber.org/zap"
	"golang.org/x/image/font/opentype"
)

type ImageProcessor struct {
	logger *zap.Logger

	// font is resolved once at construction; nil means every candidate
	// failed and the bitmap fallback face is used.
	font *opentype.Font
}

func NewImageProcessor(logger *zap.Logger) *ImageProcessor {
	ft, origin := loadFont(fontCandidates)
	switch {
	case ft == nil:
		logger.Warn("No usable TrueType font, falling back to built-in bitmap font")
	case origin == "":
		logger.Warn("No system font found, using embedded Go Regular")
	default:
		logger.Info("Loaded watermark font", zap.String("path", origin))
	}

	return &ImageProcessor{logger: logger, font: ft}
}
