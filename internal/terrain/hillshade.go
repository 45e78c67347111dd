package terrain

import (
	"math"
)

// hillshade blends slope and aspect (both in radians) into a synthetic
// illumination raster.
//
// Values are scaled into 1..255 rather than 0..255, as 0 is usually
// treated as nodata in 8-bit hillshades; the 1.5 offset puts the rounding
// boundary between 1 and 255.
func hillshade(slope, aspect [][]float64, opts Options) [][]float64 {
	azimuthRad := deg2rad(360 - opts.HillshadeAzimuth)
	altitudeRad := deg2rad(opts.HillshadeAltitude)

	sinAltitude := math.Sin(altitudeRad)
	cosAltitude := math.Cos(altitudeRad)

	shaded := make([][]float64, len(slope))

	for r := range slope {
		shaded[r] = make([]float64, len(slope[r]))

		for c := range slope[r] {
			cellSlope := slope[r][c]

			// a z-factor exaggerates the gradients before shading
			if opts.HillshadeZFactor != 1.0 {
				cellSlope = math.Atan(math.Tan(cellSlope) * opts.HillshadeZFactor)
			}

			value := 1.5 + 254*(sinAltitude*math.Cos(cellSlope)+
				cosAltitude*math.Sin(cellSlope)*math.Sin(azimuthRad-aspect[r][c]))

			shaded[r][c] = clamp(value, 0, 255)
		}
	}

	return shaded
}

func deg2rad(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
