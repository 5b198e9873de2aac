package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Position names a corner (or the center) of the image the watermark is
// anchored to.
type Position string

const (
	PositionTopLeft     Position = "top_left"
	PositionTopRight    Position = "top_right"
	PositionBottomLeft  Position = "bottom_left"
	PositionBottomRight Position = "bottom_right"
	PositionCenter      Position = "center"
)

type RGB struct {
	R, G, B uint8
}

// WatermarkStyle is validated before construction; the compositor never
// sees an out-of-range value.
type WatermarkStyle struct {
	FontSize  int
	FontColor RGB
	Position  Position
	Opacity   uint8
}

// StyleDefaults are the substitution targets when user input is empty or
// invalid. They come from the config layer.
type StyleDefaults struct {
	FontSize  int
	FontColor string
	Position  string
	Opacity   int
}

// normalize guards against unusable defaults (e.g. a garbage env override)
// so that substitution always yields a valid style.
func (d StyleDefaults) normalize() StyleDefaults {
	if d.FontSize < 1 {
		d.FontSize = 20
	}
	if _, ok := ParseColor(d.FontColor); !ok {
		d.FontColor = "white"
	}
	if _, ok := ParsePosition(d.Position); !ok {
		d.Position = string(PositionBottomRight)
	}
	if d.Opacity < 0 || d.Opacity > 255 {
		d.Opacity = 128
	}
	return d
}

var namedColors = map[string]RGB{
	"white": {255, 255, 255},
	"black": {0, 0, 0},
	"red":   {255, 0, 0},
	"green": {0, 255, 0},
	"blue":  {0, 0, 255},
}

// NewStyle builds a WatermarkStyle from raw console input. Empty fields
// select the default silently; invalid fields select the default and add a
// warning for the caller to log. It never fails.
func NewStyle(fontSize, fontColor, position, opacity string, defs StyleDefaults) (WatermarkStyle, []string) {
	var warnings []string
	defs = defs.normalize()

	size := defs.FontSize
	if fontSize != "" {
		n, err := strconv.Atoi(fontSize)
		if err != nil || n < 1 {
			warnings = append(warnings, fmt.Sprintf("invalid font size %q, using default %d", fontSize, defs.FontSize))
		} else {
			size = n
		}
	}

	colorStr := fontColor
	if colorStr == "" {
		colorStr = defs.FontColor
	}
	color, ok := ParseColor(colorStr)
	if !ok {
		warnings = append(warnings, fmt.Sprintf("invalid color %q, using white", colorStr))
		color = namedColors["white"]
	}

	posStr := position
	if posStr == "" {
		posStr = defs.Position
	}
	pos, ok := ParsePosition(posStr)
	if !ok {
		warnings = append(warnings, fmt.Sprintf("invalid position %q, using %q", posStr, defs.Position))
		pos = Position(defs.Position)
	}

	alpha := defs.Opacity
	if opacity != "" {
		n, err := strconv.Atoi(opacity)
		if err != nil || n < 0 || n > 255 {
			warnings = append(warnings, fmt.Sprintf("opacity %q out of range [0,255], using default %d", opacity, defs.Opacity))
		} else {
			alpha = n
		}
	}

	return WatermarkStyle{
		FontSize:  size,
		FontColor: color,
		Position:  pos,
		Opacity:   uint8(alpha),
	}, warnings
}

// ParseColor accepts one of the named colors (case-insensitive) or a literal
// "r,g,b" triple with each channel in [0,255].
func ParseColor(s string) (RGB, bool) {
	if c, ok := namedColors[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, true
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, false
	}
	var channels [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return RGB{}, false
		}
		channels[i] = uint8(n)
	}
	return RGB{channels[0], channels[1], channels[2]}, true
}

func ParsePosition(s string) (Position, bool) {
	switch Position(s) {
	case PositionTopLeft, PositionTopRight, PositionBottomLeft, PositionBottomRight, PositionCenter:
		return Position(s), true
	}
	return "", false
}
