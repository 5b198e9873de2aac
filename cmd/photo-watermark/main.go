package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/phambaophuc/photo-watermark/internal/batch"
	"github.com/phambaophuc/photo-watermark/internal/config"
	"github.com/phambaophuc/photo-watermark/internal/models"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	fmt.Println("===== Photo Watermark =====")

	in := bufio.NewScanner(os.Stdin)
	path := prompt(in, "Image file or directory path: ")
	if path == "" {
		logger.Error("No input path given")
		os.Exit(1)
	}

	defs := models.StyleDefaults{
		FontSize:  cfg.Watermark.FontSize,
		FontColor: cfg.Watermark.FontColor,
		Position:  cfg.Watermark.Position,
		Opacity:   cfg.Watermark.Opacity,
	}

	fontSize := prompt(in, fmt.Sprintf("Font size (default: %d): ", defs.FontSize))
	fontColor := prompt(in, fmt.Sprintf("Font color (default: %s, name or r,g,b): ", defs.FontColor))
	position := prompt(in, fmt.Sprintf("Position (default: %s, options: top_left, top_right, bottom_left, bottom_right, center): ", defs.Position))
	opacity := prompt(in, fmt.Sprintf("Opacity 0-255 (default: %d): ", defs.Opacity))

	style, warnings := models.NewStyle(fontSize, fontColor, position, opacity, defs)
	for _, w := range warnings {
		logger.Warn(w)
	}

	runner := batch.NewRunner(cfg, logger)
	if err := runner.Run(path, style); err != nil {
		logger.Error("Run failed", zap.Error(err))
		os.Exit(1)
	}
}

// prompt prints label and returns the trimmed next input line; empty input
// (or a closed stdin) selects the caller's default.
func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}
