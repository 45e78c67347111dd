package dem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEsriASCIIRaster(t *testing.T) {
	input := `NCOLS 3
NROWS 2
XLLCORNER 100.5
YLLCORNER 200
CELLSIZE 5
NODATA_VALUE -99999
1 2 3
4 5 -99999
`

	raster, err := ParseEsriASCIIRaster(strings.NewReader(input))
	require.NoError(t, err)

	cols, rows := raster.Dims()
	assert.Equal(t, uint(3), cols)
	assert.Equal(t, uint(2), rows)
	assert.Equal(t, 5.0, raster.CellSize)
	assert.Equal(t, -99999.0, raster.NoDataValue)
	assert.Equal(t, 100.5, raster.Xll())
	assert.Equal(t, 200.0, raster.Yll())

	assert.Equal(t, 1.0, raster.Z(0, 0))
	assert.Equal(t, 5.0, raster.Z(1, 1))
	assert.True(t, raster.IsNoData(raster.Z(2, 1)))
}

func TestParseEsriASCIIRasterCenterOrigin(t *testing.T) {
	input := `NCOLS 2
NROWS 2
XLLCENTER 10
YLLCENTER 20
CELLSIZE 2
1 2
3 4
`

	raster, err := ParseEsriASCIIRaster(strings.NewReader(input))
	require.NoError(t, err)

	// center coordinates are normalized to the cell corner
	assert.Equal(t, 9.0, raster.Xll())
	assert.Equal(t, 19.0, raster.Yll())

	// NODATA_VALUE is optional and defaults to -9999
	assert.Equal(t, -9999.0, raster.NoDataValue)
}

func TestParseEsriASCIIRasterMissingHeader(t *testing.T) {
	input := `NCOLS 2
NROWS 2
CELLSIZE 1
1 2
3 4
`

	_, err := ParseEsriASCIIRaster(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mandatory")
}

func TestParseEsriASCIIRasterShortRow(t *testing.T) {
	input := `NCOLS 3
NROWS 2
XLLCORNER 0
YLLCORNER 0
CELLSIZE 1
1 2 3
4 5
`

	_, err := ParseEsriASCIIRaster(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestParseEsriASCIIRasterTooFewRows(t *testing.T) {
	input := `NCOLS 2
NROWS 3
XLLCORNER 0
YLLCORNER 0
CELLSIZE 1
1 2
3 4
`

	_, err := ParseEsriASCIIRaster(strings.NewReader(input))
	require.Error(t, err)
}

func TestParseEsriASCIIRasterInvalidCellSize(t *testing.T) {
	input := `NCOLS 2
NROWS 2
XLLCORNER 0
YLLCORNER 0
CELLSIZE 0
1 2
3 4
`

	_, err := ParseEsriASCIIRaster(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CELLSIZE")
}
