package dem

// EsriASCIIRaster represents a ESRI ASCII Grid
type EsriASCIIRaster struct {
	Ncols, Nrows     uint
	Xcenter, Ycenter *float64
	Xcorner, Ycorner *float64
	CellSize         float64
	NoDataValue      float64
	Data             [][]float64
}

// Dims returns the dimensions of the grid.
func (raster EsriASCIIRaster) Dims() (c, r uint) {
	return raster.Ncols, raster.Nrows
}

// Z returns the value of a grid value at (c, r).
// It will panic if c or r are out of bounds for the grid.
func (raster EsriASCIIRaster) Z(c, r uint) float64 {
	return raster.Data[r][c]
}

// IsNoData tests whether the given value is the raster's nodata marker
func (raster EsriASCIIRaster) IsNoData(value float64) bool {
	return value == raster.NoDataValue
}

// Xll returns the x coordinate of the lower left corner of the grid.
// Center coordinates are normalized to the corner.
func (raster EsriASCIIRaster) Xll() float64 {
	if raster.Xcorner != nil {
		return *raster.Xcorner
	}
	if raster.Xcenter != nil {
		return *raster.Xcenter - raster.CellSize/2
	}
	return 0
}

// Yll returns the y coordinate of the lower left corner of the grid.
// Center coordinates are normalized to the corner.
func (raster EsriASCIIRaster) Yll() float64 {
	if raster.Ycorner != nil {
		return *raster.Ycorner
	}
	if raster.Ycenter != nil {
		return *raster.Ycenter - raster.CellSize/2
	}
	return 0
}

// X returns the coordinate for the column at the index c.
func (raster EsriASCIIRaster) X(c uint) float64 {
	return raster.Xll() + float64(c)*raster.CellSize
}

// Y returns the coordinate for the row at the index r.
// Row 0 is the northernmost row.
func (raster EsriASCIIRaster) Y(r uint) float64 {
	return raster.Yll() + float64(raster.Nrows-r)*raster.CellSize
}
