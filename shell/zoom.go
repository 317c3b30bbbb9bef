package shell

import (
	"math"
	"strconv"

	"github.com/yllada/messages-desktop/common"
)

// ZoomBounds describes the allowed page zoom range and step.
type ZoomBounds struct {
	Min  float64
	Max  float64
	Step float64
}

// DefaultZoomBounds returns the bounds used by the application.
func DefaultZoomBounds() ZoomBounds {
	return ZoomBounds{Min: common.ZoomMin, Max: common.ZoomMax, Step: common.ZoomStep}
}

// Clamp limits level to the bounds and rounds it to two decimals.
func (b ZoomBounds) Clamp(level float64) float64 {
	if math.IsNaN(level) {
		return common.ZoomDefault
	}
	return RoundZoom(math.Min(b.Max, math.Max(b.Min, level)))
}

// In returns the level one step above level.
func (b ZoomBounds) In(level float64) float64 {
	return b.Clamp(level + b.Step)
}

// Out returns the level one step below level.
func (b ZoomBounds) Out(level float64) float64 {
	return b.Clamp(level - b.Step)
}

// RoundZoom rounds level to two decimals.
func RoundZoom(level float64) float64 {
	return math.Round(level*100) / 100
}

// FormatZoom renders level the way it is written into the page, e.g.
// "1", "1.1" or "0.75".
func FormatZoom(level float64) string {
	return strconv.FormatFloat(RoundZoom(level), 'f', -1, 64)
}
