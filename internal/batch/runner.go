// Package batch walks the input path and watermarks each image file in turn.
package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/phambaophuc/photo-watermark/internal/config"
	"github.com/phambaophuc/photo-watermark/internal/exifdate"
	"github.com/phambaophuc/photo-watermark/internal/models"
	"github.com/phambaophuc/photo-watermark/internal/processor"
	"go.uber.org/zap"
)

type Runner struct {
	logger *zap.Logger
	files  config.FilesConfig
	dates  *exifdate.Resolver
	proc   *processor.ImageProcessor
}

func NewRunner(cfg *config.Config, logger *zap.Logger) *Runner {
	return &Runner{
		logger: logger,
		files:  cfg.Files,
		dates:  exifdate.NewResolver(logger),
		proc:   processor.NewImageProcessor(logger),
	}
}

// Run watermarks a single image file or every image directly inside a
// directory. The returned error covers only conditions that prevent the
// batch from starting at all; per-file failures are logged and skipped.
func (r *Runner) Run(path string, style models.WatermarkStyle) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("input path %s: %w", path, err)
	}
	if fi.IsDir() {
		return r.runDirectory(path, style)
	}
	return r.runFile(path, style)
}

func (r *Runner) runFile(path string, style models.WatermarkStyle) error {
	if !r.files.Recognized(path) {
		r.logger.Info("Skipping non-image file", zap.String("path", path))
		return nil
	}

	outDir, err := r.ensureOutputDir(filepath.Dir(path))
	if err != nil {
		return err
	}
	r.process(path, outDir, style)
	return nil
}

func (r *Runner) runDirectory(dir string, style models.WatermarkStyle) error {
	outDir, err := r.ensureOutputDir(dir)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", dir, err)
	}

	processed := 0
	for _, entry := range entries {
		// Immediate entries only; subdirectories (including the output
		// directory itself) are neither descended into nor reported.
		if entry.IsDir() {
			continue
		}
		if !r.files.Recognized(entry.Name()) {
			r.logger.Info("Skipping non-image file", zap.String("name", entry.Name()))
			continue
		}
		if r.process(filepath.Join(dir, entry.Name()), outDir, style) {
			processed++
		}
	}

	if processed == 0 {
		r.logger.Info("No image files found", zap.String("dir", dir))
	} else {
		r.logger.Info("Batch complete", zap.Int("processed", processed))
	}
	return nil
}

// ensureOutputDir creates <dir>/<basename(dir)><suffix> if needed.
func (r *Runner) ensureOutputDir(dir string) (string, error) {
	dir = filepath.Clean(dir)
	out := filepath.Join(dir, filepath.Base(dir)+r.files.OutputSuffix)
	if err := os.MkdirAll(out, 0755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", out, err)
	}
	return out, nil
}

func (r *Runner) process(path, outDir string, style models.WatermarkStyle) bool {
	text := r.dates.Resolve(path).Format("2006-01-02")
	outPath := filepath.Join(outDir, filepath.Base(path))

	if err := r.proc.ApplyWatermark(path, outPath, text, style); err != nil {
		r.logger.Error("Watermark failed",
			zap.String("path", path),
			zap.Error(err))
		return false
	}

	r.logger.Info("Saved watermarked image", zap.String("path", outPath))
	return true
}
