package dem

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Write emits the raster as an ESRI ASCII Grid.
// The origin is always written in corner form and NaN cells are
// replaced with the raster's nodata value.
func Write(writer io.Writer, raster EsriASCIIRaster) error {
	w := bufio.NewWriter(writer)

	fmt.Fprintf(w, "NCOLS %d\n", raster.Ncols)
	fmt.Fprintf(w, "NROWS %d\n", raster.Nrows)
	fmt.Fprintf(w, "XLLCORNER %s\n", formatCell(raster.Xll()))
	fmt.Fprintf(w, "YLLCORNER %s\n", formatCell(raster.Yll()))
	fmt.Fprintf(w, "CELLSIZE %s\n", formatCell(raster.CellSize))
	fmt.Fprintf(w, "NODATA_VALUE %s\n", formatCell(raster.NoDataValue))

	for r := uint(0); r < raster.Nrows; r++ {
		fields := make([]string, raster.Ncols)
		for c := uint(0); c < raster.Ncols; c++ {
			value := raster.Data[r][c]
			if math.IsNaN(value) {
				value = raster.NoDataValue
			}
			fields[c] = formatCell(value)
		}

		if _, err := fmt.Fprintln(w, strings.Join(fields, " ")); err != nil {
			return err
		}
	}

	return w.Flush()
}

// Save writes the raster to the given path.
// Files ending in .gz are transparently compressed.
func Save(path string, raster EsriASCIIRaster) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	var writer io.Writer = file
	var gz *gzip.Writer

	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(file)
		writer = gz
	}

	if err := Write(writer, raster); err != nil {
		file.Close()
		return err
	}

	if gz != nil {
		if err := gz.Close(); err != nil {
			file.Close()
			return err
		}
	}

	return file.Close()
}

func formatCell(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
