package metajson

import (
	"encoding/json"
	"os"
)

// MetaJSON represents the structure of the meta.json next to a DEM fixture
type MetaJSON struct {
	DisplayName     string  `json:"displayName"`
	Author          string  `json:"author"`
	Epsg            int     `json:"epsg"`
	ElevationOffset float64 `json:"elevationOffset"`
	NodataValue     float64 `json:"nodataValue"`
}

// Read meta.json from given path
func Read(metaJSONPath string) (MetaJSON, error) {

	var val MetaJSON

	byteValue, err := os.ReadFile(metaJSONPath)
	if err != nil {
		return val, err
	}

	err = json.Unmarshal(byteValue, &val)

	return val, err
}
