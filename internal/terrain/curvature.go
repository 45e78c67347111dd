package terrain

import (
	"github.com/erikmannerfelt/xdem-data/internal/dem"
)

type curvatureKind int

const (
	generalCurvature curvatureKind = iota
	planformCurvature
	profileCurvature
)

// ztCoefficients calculates the Zevenbergen & Thorne (1987) surface
// coefficients for the cell at (c, r). ok is false for border cells and
// cells whose 3x3 window contains nodata.
func ztCoefficients(raster *dem.EsriASCIIRaster, c, r uint) (d, e, f, g, h float64, ok bool) {
	window, ok := readWindow(raster, c, r)
	if !ok {
		return 0, 0, 0, 0, 0, false
	}

	cell := raster.CellSize
	cell2 := cell * cell

	d = ((window[3]+window[5])/2 - window[4]) / cell2
	e = ((window[1]+window[7])/2 - window[4]) / cell2
	f = (-window[0] + window[2] + window[6] - window[8]) / (4 * cell2)
	g = (-window[3] + window[5]) / (2 * cell)
	h = (window[1] - window[7]) / (2 * cell)

	return d, e, f, g, h, true
}

// curvature calculates one of the Zevenbergen & Thorne curvatures for every
// cell. Values are scaled by 100, expressing curvature per 100 distance
// units. Planform and profile curvature are zero where the gradient
// vanishes.
func curvature(raster dem.EsriASCIIRaster, kind curvatureKind) [][]float64 {
	result := newGrid(raster)

	eachRow(raster, func(r uint) {
		for c := uint(0); c < raster.Ncols; c++ {
			d, e, f, g, h, ok := ztCoefficients(&raster, c, r)
			if !ok {
				continue
			}

			switch kind {
			case generalCurvature:
				result[r][c] = -2 * (d + e) * 100
			case planformCurvature:
				gradient := g*g + h*h
				if gradient == 0 {
					result[r][c] = 0
				} else {
					result[r][c] = 2 * (d*h*h + e*g*g - f*g*h) / gradient * 100
				}
			case profileCurvature:
				gradient := g*g + h*h
				if gradient == 0 {
					result[r][c] = 0
				} else {
					result[r][c] = -2 * (d*g*g + e*h*h + f*g*h) / gradient * 100
				}
			}
		}
	})

	return result
}
