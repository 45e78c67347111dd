package groundtruth

import (
	"os"
	"path"
	"testing"

	"github.com/erikmannerfelt/xdem-data/internal/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAttributeSettingsDefaults(t *testing.T) {
	attributes, opts := loadAttributeSettings("")

	assert.Equal(t, defaultAttributes, attributes)
	assert.Equal(t, terrain.DefaultOptions(), opts)

	// the Horn fixture trio plus the curvature trio
	require.Len(t, attributes, 6)
	assert.Equal(t, "slope_Horn", attributes[0].File)
	assert.Equal(t, terrain.Slope, attributes[0].Attribute)
	assert.True(t, attributes[0].Degrees)
	assert.Equal(t, "hillshade_Horn", attributes[2].File)
	assert.False(t, attributes[2].Degrees)
}

func TestLoadAttributeSettingsFromFile(t *testing.T) {
	settingsPath := path.Join(t.TempDir(), "attribute_settings.json")

	content := `{
		"attributes": [
			{"file": "hillshade_low_sun", "attribute": "hillshade"}
		],
		"hillshadeAltitude": 10,
		"hillshadeAzimuth": 90
	}`

	require.NoError(t, os.WriteFile(settingsPath, []byte(content), 0o644))

	attributes, opts := loadAttributeSettings(settingsPath)

	require.Len(t, attributes, 1)
	assert.Equal(t, "hillshade_low_sun", attributes[0].File)
	assert.Equal(t, terrain.Hillshade, attributes[0].Attribute)

	assert.Equal(t, 10.0, opts.HillshadeAltitude)
	assert.Equal(t, 90.0, opts.HillshadeAzimuth)
	assert.Equal(t, 1.0, opts.HillshadeZFactor)
}
