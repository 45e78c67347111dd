package preview

import (
	"image"
	"image/color"
	"math"
)

// renderGray renders a derived attribute grid as an 8-bit grayscale image.
//
// Hillshade values are already in 0..255 and are used directly. Other
// attributes are stretched linearly between their min and max. NaN cells
// come out black.
func renderGray(grid [][]float64, isHillshade bool) *image.Gray {
	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}

	img := image.NewGray(image.Rect(0, 0, cols, rows))

	low, scale := 0.0, 1.0
	if !isHillshade {
		low, scale = stretchParams(grid)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			value := grid[r][c]
			if math.IsNaN(value) {
				img.SetGray(c, r, color.Gray{Y: 0})
				continue
			}

			scaled := (value - low) * scale
			if scaled < 0 {
				scaled = 0
			}
			if scaled > 255 {
				scaled = 255
			}

			img.SetGray(c, r, color.Gray{Y: uint8(scaled + 0.5)})
		}
	}

	return img
}

// stretchParams finds the offset and scale mapping the grid's valid value
// range onto 0..255. A constant grid maps to mid-gray.
func stretchParams(grid [][]float64) (low, scale float64) {
	low = math.Inf(1)
	high := math.Inf(-1)

	for r := range grid {
		for c := range grid[r] {
			value := grid[r][c]
			if math.IsNaN(value) {
				continue
			}
			low = math.Min(low, value)
			high = math.Max(high, value)
		}
	}

	if math.IsInf(low, 1) || high == low {
		return high - 128, 1
	}

	return low, 255 / (high - low)
}
