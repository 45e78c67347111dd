package dem

import (
	"bytes"
	"math"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRaster() EsriASCIIRaster {
	x := 10.0
	y := 20.0

	return EsriASCIIRaster{
		Ncols:       3,
		Nrows:       2,
		Xcorner:     &x,
		Ycorner:     &y,
		CellSize:    2.5,
		NoDataValue: -99999,
		Data: [][]float64{
			{1, 2.5, math.NaN()},
			{-4, 5, 6},
		},
	}
}

func TestWrite(t *testing.T) {
	buffer := bytes.Buffer{}

	err := Write(&buffer, testRaster())
	require.NoError(t, err)

	parsed, err := ParseEsriASCIIRaster(&buffer)
	require.NoError(t, err)

	assert.Equal(t, uint(3), parsed.Ncols)
	assert.Equal(t, uint(2), parsed.Nrows)
	assert.Equal(t, 10.0, parsed.Xll())
	assert.Equal(t, 20.0, parsed.Yll())
	assert.Equal(t, 2.5, parsed.CellSize)

	// NaN cells are written as the nodata value
	assert.Equal(t, -99999.0, parsed.Z(2, 0))
	assert.Equal(t, 2.5, parsed.Z(1, 0))
	assert.Equal(t, -4.0, parsed.Z(0, 1))
}

func TestSaveAndReadGzipped(t *testing.T) {
	filePath := path.Join(t.TempDir(), "raster.asc.gz")

	err := Save(filePath, testRaster())
	require.NoError(t, err)

	parsed, err := Read(filePath)
	require.NoError(t, err)

	assert.Equal(t, uint(3), parsed.Ncols)
	assert.Equal(t, 6.0, parsed.Z(2, 1))
	assert.True(t, parsed.IsNoData(parsed.Z(2, 0)))
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(path.Join(t.TempDir(), "nope.asc.gz"))
	require.Error(t, err)
}
