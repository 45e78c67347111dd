package dem

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Read digital elevation model from given path.
// Files ending in .gz are transparently decompressed.
func Read(path string) (EsriASCIIRaster, error) {
	file, err := os.Open(path)
	if err != nil {
		return EsriASCIIRaster{}, err
	}
	defer file.Close()

	var reader io.Reader = file

	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return EsriASCIIRaster{}, err
		}
		defer gz.Close()
		reader = gz
	}

	return ParseEsriASCIIRaster(reader)
}
