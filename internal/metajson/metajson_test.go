package metajson

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	metaPath := path.Join(t.TempDir(), "meta.json")

	content := `{
		"displayName": "Longyearbyen",
		"author": "NPI",
		"epsg": 32633,
		"elevationOffset": 0,
		"nodataValue": -9999
	}`

	require.NoError(t, os.WriteFile(metaPath, []byte(content), 0o644))

	meta, err := Read(metaPath)
	require.NoError(t, err)

	assert.Equal(t, "Longyearbyen", meta.DisplayName)
	assert.Equal(t, "NPI", meta.Author)
	assert.Equal(t, 32633, meta.Epsg)
	assert.Equal(t, -9999.0, meta.NodataValue)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(path.Join(t.TempDir(), "meta.json"))
	require.Error(t, err)
}

func TestReadInvalidJSON(t *testing.T) {
	metaPath := path.Join(t.TempDir(), "meta.json")
	require.NoError(t, os.WriteFile(metaPath, []byte("{nope"), 0o644))

	_, err := Read(metaPath)
	require.Error(t, err)
}
