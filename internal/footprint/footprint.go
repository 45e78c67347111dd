package footprint

import (
	"encoding/json"
	"math"
	"os"
	"path"

	"github.com/erikmannerfelt/xdem-data/internal/dem"
	"github.com/erikmannerfelt/xdem-data/internal/metajson"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Write a footprint.geojson into given output directory, holding the DEM
// extent as a polygon feature with a few summary properties.
func Write(outputDirectory string, raster dem.EsriASCIIRaster, meta metajson.MetaJSON) error {
	minX := raster.Xll()
	minY := raster.Yll()
	maxX := minX + float64(raster.Ncols)*raster.CellSize
	maxY := minY + float64(raster.Nrows)*raster.CellSize

	ring := orb.Ring{
		{minX, minY},
		{maxX, minY},
		{maxX, maxY},
		{minX, maxY},
		{minX, minY},
	}

	feature := geojson.NewFeature(orb.Polygon{ring})
	feature.Properties["displayName"] = meta.DisplayName
	feature.Properties["epsg"] = meta.Epsg
	feature.Properties["cellSize"] = raster.CellSize
	feature.Properties["ncols"] = raster.Ncols
	feature.Properties["nrows"] = raster.Nrows

	minElev, maxElev, found := elevationRange(raster)
	if found {
		feature.Properties["elevationMin"] = minElev
		feature.Properties["elevationMax"] = maxElev
	}

	collection := geojson.NewFeatureCollection()
	collection.Append(feature)

	bytes, err := json.MarshalIndent(collection, "", "    ")
	if err != nil {
		return err
	}

	f, err := os.Create(path.Join(outputDirectory, "footprint.geojson"))
	if err != nil {
		return err
	}

	_, err = f.Write(bytes)
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// elevationRange finds the min and max elevation, skipping nodata cells.
// found is false if the raster holds no valid cell at all.
func elevationRange(raster dem.EsriASCIIRaster) (minElev, maxElev float64, found bool) {
	minElev = math.Inf(1)
	maxElev = math.Inf(-1)

	for r := uint(0); r < raster.Nrows; r++ {
		for c := uint(0); c < raster.Ncols; c++ {
			value := raster.Data[r][c]
			if raster.IsNoData(value) || math.IsNaN(value) {
				continue
			}

			found = true
			minElev = math.Min(minElev, value)
			maxElev = math.Max(maxElev, value)
		}
	}

	return minElev, maxElev, found
}
