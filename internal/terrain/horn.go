package terrain

import (
	"math"

	"github.com/erikmannerfelt/xdem-data/internal/dem"
)

// hornGradients calculates the Horn (1981) finite-difference gradients for
// the cell at (c, r). ok is false for border cells and cells whose 3x3
// window contains nodata.
func hornGradients(raster *dem.EsriASCIIRaster, c, r uint) (dzdx, dzdy float64, ok bool) {
	window, ok := readWindow(raster, c, r)
	if !ok {
		return 0, 0, false
	}

	eight := 8 * raster.CellSize

	dzdx = ((window[2] + 2*window[5] + window[8]) - (window[0] + 2*window[3] + window[6])) / eight
	dzdy = ((window[6] + 2*window[7] + window[8]) - (window[0] + 2*window[1] + window[2])) / eight

	return dzdx, dzdy, true
}

// slopeRadians calculates the Horn slope for every cell, in radians
func slopeRadians(raster dem.EsriASCIIRaster) [][]float64 {
	slope := newGrid(raster)

	eachRow(raster, func(r uint) {
		for c := uint(0); c < raster.Ncols; c++ {
			dzdx, dzdy, ok := hornGradients(&raster, c, r)
			if !ok {
				continue
			}

			slope[r][c] = math.Atan(math.Hypot(dzdx, dzdy))
		}
	})

	return slope
}

// aspectRadians calculates the Horn aspect for every cell, in radians
// clockwise from north. Flat cells get an aspect of pi, matching the
// GDAL convention for zero-slope terrain.
func aspectRadians(raster dem.EsriASCIIRaster, slope [][]float64) [][]float64 {
	aspect := newGrid(raster)

	eachRow(raster, func(r uint) {
		for c := uint(0); c < raster.Ncols; c++ {
			dzdx, dzdy, ok := hornGradients(&raster, c, r)
			if !ok {
				continue
			}

			if slope[r][c] == 0 {
				aspect[r][c] = math.Pi
				continue
			}

			angle := math.Mod(math.Pi/2-math.Atan2(dzdy, -dzdx), 2*math.Pi)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			aspect[r][c] = angle
		}
	})

	return aspect
}

// readWindow reads the 3x3 window around (c, r) in row-major order.
// ok is false if the window leaves the raster or touches nodata.
func readWindow(raster *dem.EsriASCIIRaster, c, r uint) ([9]float64, bool) {
	var window [9]float64

	if c == 0 || r == 0 || c >= raster.Ncols-1 || r >= raster.Nrows-1 {
		return window, false
	}

	i := 0
	for wr := r - 1; wr <= r+1; wr++ {
		for wc := c - 1; wc <= c+1; wc++ {
			value := raster.Data[wr][wc]
			if raster.IsNoData(value) || math.IsNaN(value) {
				return window, false
			}
			window[i] = value
			i++
		}
	}

	return window, true
}

// newGrid allocates a NaN-filled grid with the raster's dimensions
func newGrid(raster dem.EsriASCIIRaster) [][]float64 {
	grid := make([][]float64, raster.Nrows)

	for r := range grid {
		grid[r] = make([]float64, raster.Ncols)
		for c := range grid[r] {
			grid[r][c] = math.NaN()
		}
	}

	return grid
}
