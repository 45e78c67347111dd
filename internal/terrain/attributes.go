package terrain

import (
	"fmt"
	"math"

	"github.com/erikmannerfelt/xdem-data/internal/dem"
)

// Attribute names accepted by Derive
const (
	Slope             = "slope"
	Aspect            = "aspect"
	Hillshade         = "hillshade"
	Curvature         = "curvature"
	PlanformCurvature = "planform_curvature"
	ProfileCurvature  = "profile_curvature"
	MaximumCurvature  = "maximum_curvature"
)

// Options control unit conversion and hillshade illumination
type Options struct {
	HillshadeAltitude float64
	HillshadeAzimuth  float64
	HillshadeZFactor  float64
	Degrees           bool
}

// DefaultOptions returns the illumination and unit defaults
// (sun at 45° altitude, 315° azimuth, no exaggeration, angles in degrees)
func DefaultOptions() Options {
	return Options{
		HillshadeAltitude: 45.0,
		HillshadeAzimuth:  315.0,
		HillshadeZFactor:  1.0,
		Degrees:           true,
	}
}

// Derive computes the requested terrain attributes from the DEM.
//
// Intermediates are shared: slope is computed once even if several requested
// attributes depend on it. Slope and aspect are computed in radians and only
// converted to degrees on output when opts.Degrees is set. Cells whose 3x3
// window touches the raster border or a nodata cell are NaN.
func Derive(raster dem.EsriASCIIRaster, attributes []string, opts Options) (map[string][][]float64, error) {
	for _, attribute := range attributes {
		switch attribute {
		case Slope, Aspect, Hillshade, Curvature, PlanformCurvature, ProfileCurvature, MaximumCurvature:
		default:
			return nil, fmt.Errorf("unknown terrain attribute: %s", attribute)
		}
	}

	// figure out which intermediates are needed, so nothing is computed twice
	makeSlope := anyOf(attributes, Slope, Aspect, Hillshade, PlanformCurvature, ProfileCurvature, MaximumCurvature)
	makeAspect := anyOf(attributes, Aspect, Hillshade)
	makeHillshade := anyOf(attributes, Hillshade)
	makeCurvature := anyOf(attributes, Curvature)
	makePlanform := anyOf(attributes, PlanformCurvature, MaximumCurvature)
	makeProfile := anyOf(attributes, ProfileCurvature, MaximumCurvature)
	makeMaximum := anyOf(attributes, MaximumCurvature)

	computed := map[string][][]float64{}

	if makeSlope {
		computed[Slope] = slopeRadians(raster)
	}
	if makeAspect {
		computed[Aspect] = aspectRadians(raster, computed[Slope])
	}
	if makeHillshade {
		computed[Hillshade] = hillshade(computed[Slope], computed[Aspect], opts)
	}
	if makeCurvature {
		computed[Curvature] = curvature(raster, generalCurvature)
	}
	if makePlanform {
		computed[PlanformCurvature] = curvature(raster, planformCurvature)
	}
	if makeProfile {
		computed[ProfileCurvature] = curvature(raster, profileCurvature)
	}
	if makeMaximum {
		computed[MaximumCurvature] = maximumCurvature(computed[PlanformCurvature], computed[ProfileCurvature])
	}

	if opts.Degrees {
		for _, angular := range []string{Slope, Aspect} {
			if grid, found := computed[angular]; found {
				computed[angular] = toDegrees(grid)
			}
		}
	}

	// only hand back what was asked for
	output := make(map[string][][]float64, len(attributes))
	for _, attribute := range attributes {
		output[attribute] = computed[attribute]
	}

	return output, nil
}

func anyOf(attributes []string, wanted ...string) bool {
	for _, attribute := range attributes {
		for _, w := range wanted {
			if attribute == w {
				return true
			}
		}
	}
	return false
}

func maximumCurvature(planform, profile [][]float64) [][]float64 {
	maximum := make([][]float64, len(planform))

	for r := range planform {
		maximum[r] = make([]float64, len(planform[r]))
		for c := range planform[r] {
			maximum[r][c] = math.Max(planform[r][c], profile[r][c])
		}
	}

	return maximum
}

func toDegrees(grid [][]float64) [][]float64 {
	converted := make([][]float64, len(grid))

	for r := range grid {
		converted[r] = make([]float64, len(grid[r]))
		for c := range grid[r] {
			converted[r][c] = grid[r][c] * 180.0 / math.Pi
		}
	}

	return converted
}
