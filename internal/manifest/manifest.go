package manifest

import (
	"encoding/json"
	"os"
	"path"
)

// Entry describes a single generated attribute raster
type Entry struct {
	File      string  `json:"file"`
	Attribute string  `json:"attribute"`
	Degrees   bool    `json:"degrees"`
	Nodata    float64 `json:"nodata"`
}

// Manifest describes a full set of generated ground-truth rasters
type Manifest struct {
	Generator   string  `json:"generator"`
	Version     string  `json:"version"`
	DisplayName string  `json:"displayName"`
	Epsg        int     `json:"epsg"`
	Ncols       uint    `json:"ncols"`
	Nrows       uint    `json:"nrows"`
	CellSize    float64 `json:"cellSize"`
	Attributes  []Entry `json:"attributes"`
}

// Write a manifest.json into given output directory
func Write(outputDirectory string, m Manifest) error {
	// create file
	f, err := os.Create(path.Join(outputDirectory, "manifest.json"))
	if err != nil {
		return err
	}

	// marshal
	bytes, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return err
	}

	// write file
	_, err = f.Write(bytes)
	if err != nil {
		return err
	}

	// close file
	err = f.Close()
	if err != nil {
		return err
	}

	return err
}
