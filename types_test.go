package edrmeta

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	m, c, a := testMetadata()
	assert.NoError(t, HDRMetadata{MasteringDisplay: m, ContentLight: c, AmbientViewing: a}.Validate())
	assert.NoError(t, HDRMetadata{}.Validate())
	assert.NoError(t, c.Validate())

	for name, h := range map[string]HDRMetadata{
		"primary out of range": {MasteringDisplay: &MasteringDisplayMetadata{Blue: Chromaticity{X: 1.01}}},
		"nan white point":      {MasteringDisplay: &MasteringDisplayMetadata{WhitePoint: Chromaticity{Y: float32(math.NaN())}}},
		"negative luminance":   {MasteringDisplay: &MasteringDisplayMetadata{MinLuminance: -1}},
		"max below min":        {MasteringDisplay: &MasteringDisplayMetadata{MinLuminance: 10, MaxLuminance: 1}},
		"infinite luminance":   {MasteringDisplay: &MasteringDisplayMetadata{MaxLuminance: math.Inf(1)}},
		"negative illuminance": {AmbientViewing: &AmbientViewingEnvironment{Illuminance: -5}},
		"ambient light":        {AmbientViewing: &AmbientViewingEnvironment{Light: Chromaticity{X: -0.1}}},
	} {
		assert.ErrorIs(t, h.Validate(), ErrInvalidMetadata, name)
	}
}
