package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Watermark WatermarkConfig
	Files     FilesConfig
}

// WatermarkConfig holds the defaults offered at the interactive prompts.
// Empty prompt input selects these values.
type WatermarkConfig struct {
	FontSize  int
	FontColor string
	Position  string
	Opacity   int
}

type FilesConfig struct {
	Extensions   []string
	OutputSuffix string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Watermark: WatermarkConfig{
			FontSize:  getEnvAsInt("WATERMARK_FONT_SIZE", 20),
			FontColor: getEnv("WATERMARK_FONT_COLOR", "white"),
			Position:  getEnv("WATERMARK_POSITION", "bottom_right"),
			Opacity:   getEnvAsInt("WATERMARK_OPACITY", 128),
		},
		Files: FilesConfig{
			Extensions:   []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tiff"},
			OutputSuffix: getEnv("WATERMARK_OUTPUT_SUFFIX", "_watermark"),
		},
	}

	return cfg, nil
}

// Recognized reports whether name ends in one of the configured image
// extensions, compared case-insensitively.
func (f FilesConfig) Recognized(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range f.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
