package groundtruth

import (
	"encoding/json"
	"log"
	"os"

	"github.com/erikmannerfelt/xdem-data/internal/terrain"
)

// attributeSpec maps an output file name to a terrain attribute
type attributeSpec struct {
	File      string `json:"file"`
	Attribute string `json:"attribute"`
	Degrees   bool   `json:"degrees"`
}

// defaultAttributes is the fixture set the test suite expects.
// The Horn suffix marks the gradient method used for slope/aspect/hillshade.
var defaultAttributes = []attributeSpec{
	{File: "slope_Horn", Attribute: terrain.Slope, Degrees: true},
	{File: "aspect_Horn", Attribute: terrain.Aspect, Degrees: true},
	{File: "hillshade_Horn", Attribute: terrain.Hillshade},
	{File: "curvature", Attribute: terrain.Curvature},
	{File: "profile_curvature", Attribute: terrain.ProfileCurvature},
	{File: "planform_curvature", Attribute: terrain.PlanformCurvature, Degrees: true},
}

type settingsJSON struct {
	Attributes        []attributeSpec `json:"attributes"`
	HillshadeAltitude *float64        `json:"hillshadeAltitude"`
	HillshadeAzimuth  *float64        `json:"hillshadeAzimuth"`
	HillshadeZFactor  *float64        `json:"hillshadeZFactor"`
}

// loadAttributeSettings loads the attribute set and hillshade illumination
// from given settings file. An empty path yields the defaults.
func loadAttributeSettings(settingsPath string) ([]attributeSpec, terrain.Options) {
	opts := terrain.DefaultOptions()

	if settingsPath == "" {
		return defaultAttributes, opts
	}

	byteValue, err := os.ReadFile(settingsPath)
	if err != nil {
		log.Fatal(err)
	}

	var settings settingsJSON
	err = json.Unmarshal(byteValue, &settings)
	if err != nil {
		log.Fatal(err)
	}

	attributes := settings.Attributes
	if len(attributes) == 0 {
		attributes = defaultAttributes
	}

	if settings.HillshadeAltitude != nil {
		opts.HillshadeAltitude = *settings.HillshadeAltitude
	}
	if settings.HillshadeAzimuth != nil {
		opts.HillshadeAzimuth = *settings.HillshadeAzimuth
	}
	if settings.HillshadeZFactor != nil {
		opts.HillshadeZFactor = *settings.HillshadeZFactor
	}

	return attributes, opts
}
