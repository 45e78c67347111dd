package groundtruth

import (
	"math"
	"path"
	"testing"

	"github.com/erikmannerfelt/xdem-data/internal/dem"
	"github.com/erikmannerfelt/xdem-data/internal/metajson"
	"github.com/erikmannerfelt/xdem-data/internal/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDEM() dem.EsriASCIIRaster {
	x := 500000.0
	y := 8675000.0

	data := make([][]float64, 6)
	for r := range data {
		data[r] = make([]float64, 6)
		for c := range data[r] {
			data[r][c] = float64(c) * 2
		}
	}

	return dem.EsriASCIIRaster{
		Ncols:       6,
		Nrows:       6,
		Xcorner:     &x,
		Ycorner:     &y,
		CellSize:    20,
		NoDataValue: -9999,
		Data:        data,
	}
}

func TestApplyElevationOffset(t *testing.T) {
	raster := testDEM()
	raster.Data[0][0] = raster.NoDataValue

	applyElevationOffset(&raster, 10)

	assert.Equal(t, 12.0, raster.Data[0][1])

	// nodata cells keep their marker value
	assert.Equal(t, raster.NoDataValue, raster.Data[0][0])
}

func TestOutputRasterSharesGeometry(t *testing.T) {
	source := testDEM()
	grid := [][]float64{{1}}

	output := outputRaster(source, grid)

	assert.Equal(t, source.Ncols, output.Ncols)
	assert.Equal(t, source.Nrows, output.Nrows)
	assert.Equal(t, source.Xll(), output.Xll())
	assert.Equal(t, source.Yll(), output.Yll())
	assert.Equal(t, source.CellSize, output.CellSize)
	assert.Equal(t, outputNoDataValue, output.NoDataValue)
}

func TestBuildManifest(t *testing.T) {
	raster := testDEM()
	meta := metajson.MetaJSON{DisplayName: "Longyearbyen", Epsg: 32633}

	m := buildManifest(raster, meta, defaultAttributes)

	assert.Equal(t, "xdem-data", m.Generator)
	assert.Equal(t, "Longyearbyen", m.DisplayName)
	assert.Equal(t, 32633, m.Epsg)
	assert.Equal(t, uint(6), m.Ncols)
	require.Len(t, m.Attributes, len(defaultAttributes))
	assert.Equal(t, "slope_Horn.asc.gz", m.Attributes[0].File)
	assert.Equal(t, outputNoDataValue, m.Attributes[0].Nodata)
}

func TestSaveAllRoundTrip(t *testing.T) {
	dir := t.TempDir()
	raster := testDEM()

	attributes := defaultAttributes[:2]
	outputs := make([]dem.EsriASCIIRaster, len(attributes))

	for i, attribute := range attributes {
		opts := terrain.DefaultOptions()
		opts.Degrees = attribute.Degrees

		derived, err := terrain.Derive(raster, []string{attribute.Attribute}, opts)
		require.NoError(t, err)

		outputs[i] = outputRaster(raster, derived[attribute.Attribute])
	}

	saveAll(dir, attributes, outputs)

	slope, err := dem.Read(path.Join(dir, "slope_Horn.asc.gz"))
	require.NoError(t, err)

	assert.Equal(t, raster.Ncols, slope.Ncols)
	assert.Equal(t, outputNoDataValue, slope.NoDataValue)

	// the DEM rises 2 per 20 units eastwards
	expected := math.Atan(0.1) * 180 / math.Pi
	assert.InDelta(t, expected, slope.Z(2, 2), 1e-6)

	// border cells are saved as nodata
	assert.True(t, slope.IsNoData(slope.Z(0, 0)))
}
