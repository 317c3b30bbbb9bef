// Package ui provides the graphical host for the Messages desktop shell.
// This file contains icon generation utilities for the system tray.
package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/yllada/messages-desktop/common"
)

// IconConfig defines the configuration for icon generation.
type IconConfig struct {
	Size        int
	FillColor   color.RGBA
	BorderColor color.RGBA
	SymbolColor color.RGBA
	ShowDots    bool
}

// DefaultOnlineIconConfig returns the config used while the service is reachable.
func DefaultOnlineIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   color.RGBA{26, 115, 232, 255},  // Blue
		BorderColor: color.RGBA{66, 133, 244, 255},  // Light blue
		SymbolColor: color.RGBA{255, 255, 255, 255}, // White
		ShowDots:    true,
	}
}

// DefaultOfflineIconConfig returns the config used while the service is unreachable.
func DefaultOfflineIconConfig() IconConfig {
	return IconConfig{
		Size:        common.TrayIconSize,
		FillColor:   color.RGBA{117, 117, 117, 255}, // Dark gray
		BorderColor: color.RGBA{158, 158, 158, 255}, // Gray
		SymbolColor: color.RGBA{255, 255, 255, 255}, // White
		ShowDots:    false,
	}
}

// IconGenerator generates PNG icons for the system tray.
type IconGenerator struct {
	config IconConfig
}

// NewIconGenerator creates a new icon generator with the given config.
func NewIconGenerator(config IconConfig) *IconGenerator {
	return &IconGenerator{config: config}
}

// Generate creates a PNG speech bubble icon and returns the bytes.
func (g *IconGenerator) Generate() ([]byte, error) {
	size := g.config.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	g.drawBubble(img)

	if g.config.ShowDots {
		g.drawDots(img)
	} else {
		g.drawBar(img)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding tray icon: %w", err)
	}
	return buf.Bytes(), nil
}

// drawBubble draws a rounded speech bubble with a tail at the bottom left.
func (g *IconGenerator) drawBubble(img *image.RGBA) {
	size := float64(g.config.Size)
	left, right := 1.0, size-1
	top, bottom := 2.0, size*0.75
	radius := size / 5

	inBody := func(x, y float64) bool {
		if x < left || x > right || y < top || y > bottom {
			return false
		}
		cx := x
		if x < left+radius {
			cx = left + radius
		} else if x > right-radius {
			cx = right - radius
		}
		cy := y
		if y < top+radius {
			cy = top + radius
		} else if y > bottom-radius {
			cy = bottom - radius
		}
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= radius*radius
	}

	// Tail: triangle hanging below the body
	tailTop, tailBottom := bottom, size-1
	tailLeft := size * 0.25
	inTail := func(x, y float64) bool {
		if y < tailTop || y > tailBottom {
			return false
		}
		rel := (y - tailTop) / (tailBottom - tailTop)
		return x >= tailLeft && x <= tailLeft+(size*0.3)*(1-rel)
	}

	inShape := func(x, y float64) bool {
		return inBody(x, y) || inTail(x, y)
	}

	for y := 0; y < g.config.Size; y++ {
		for x := 0; x < g.config.Size; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			if !inShape(fx, fy) {
				continue
			}
			isBorder := !inShape(fx-1, fy) || !inShape(fx+1, fy) ||
				!inShape(fx, fy-1) || !inShape(fx, fy+1)
			if isBorder {
				img.Set(x, y, g.config.BorderColor)
			} else {
				img.Set(x, y, g.config.FillColor)
			}
		}
	}
}

// drawDots draws three typing dots in the bubble.
func (g *IconGenerator) drawDots(img *image.RGBA) {
	size := g.config.Size
	y := size * 3 / 8
	for _, x := range []int{size * 3 / 10, size / 2, size * 7 / 10} {
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				img.Set(x+dx-1, y+dy, g.config.SymbolColor)
			}
		}
	}
}

// drawBar draws a horizontal bar, shown while offline.
func (g *IconGenerator) drawBar(img *image.RGBA) {
	size := g.config.Size
	y := size * 3 / 8
	for x := size * 3 / 10; x <= size*7/10; x++ {
		img.Set(x, y, g.config.SymbolColor)
		img.Set(x, y+1, g.config.SymbolColor)
	}
}

// GenerateOnlineIcon generates the icon shown while online.
func GenerateOnlineIcon() []byte {
	return generateIcon(DefaultOnlineIconConfig())
}

// GenerateOfflineIcon generates the icon shown while offline.
func GenerateOfflineIcon() []byte {
	return generateIcon(DefaultOfflineIconConfig())
}

// generateIcon returns nil when encoding fails; the tray then keeps its
// previous icon.
func generateIcon(config IconConfig) []byte {
	data, err := NewIconGenerator(config).Generate()
	if err != nil {
		common.LogWarn("Tray icon unavailable: %v", err)
		return nil
	}
	return data
}
