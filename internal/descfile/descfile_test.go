package descfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vearutop/edrmeta"
)

func TestLoad(t *testing.T) {
	h, err := Load("../../testdata/hdr10.yaml")
	require.NoError(t, err)

	require.NotNil(t, h.MasteringDisplay)
	assert.Equal(t, edrmeta.DisplayP3D65(0.0001, 1000), *h.MasteringDisplay)
	assert.Equal(t, &edrmeta.ContentLightMetadata{MaxCLL: 1000, MaxFALL: 400}, h.ContentLight)
	assert.Equal(t, &edrmeta.AmbientViewingEnvironment{
		Illuminance: 314,
		Light:       edrmeta.Chromaticity{X: 0.3127, Y: 0.329},
	}, h.AmbientViewing)
}

func TestLoad_structured(t *testing.T) {
	h, err := Load("../../testdata/structured.yaml")
	require.NoError(t, err)

	require.NotNil(t, h.MasteringDisplay)
	assert.Equal(t, edrmeta.BT2020D65(0.005, 4000), *h.MasteringDisplay)
	assert.Equal(t, &edrmeta.ContentLightMetadata{MaxCLL: 4000, MaxFALL: 1000}, h.ContentLight)
	assert.Nil(t, h.AmbientViewing)
}

func TestLoad_hlg(t *testing.T) {
	h, err := Load("../../testdata/hlg.yaml")
	require.NoError(t, err)

	assert.Nil(t, h.MasteringDisplay)
	assert.Nil(t, h.ContentLight)
	require.NotNil(t, h.AmbientViewing)
	assert.Equal(t, 5.0, h.AmbientViewing.Illuminance)
}

func TestLoad_missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_empty(t *testing.T) {
	h, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, edrmeta.HDRMetadata{}, h)
}

func TestParse_invalid(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown field":    "mastering: {}\n",
		"bad master":       "master_display: G(1,2)\n",
		"bad max cll":      "max_cll: 1000\n",
		"both forms":       "max_cll: 1000,400\ncontent_light: {max_cll: 1, max_fall: 1}\n",
		"out of range":     "ambient_viewing: {illuminance: 10, light: {x: 1.2, y: 0.3}}\n",
		"max below min":    "mastering_display: {min_luminance: 10, max_luminance: 1}\n",
		"malformed yaml":   "ambient_viewing: [\n",
		"wrong value type": "content_light: {max_cll: big}\n",
	} {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, name)
	}

	_, err := Parse([]byte("master_display: G(1,2)\n"))
	assert.ErrorIs(t, err, edrmeta.ErrInvalidMetadata)
}
