package edrmeta

const (
	// chromaticityUnit is the fixed-point scale of a chromaticity coordinate (0.00002 steps).
	chromaticityUnit = 50000.0
	// luminanceUnit is the fixed-point scale of luminance and illuminance (0.0001 steps).
	luminanceUnit = 10000.0
)

const (
	defaultMinLuminance       = 0.1
	defaultMaxLuminance       = 1000.0
	defaultOpticalOutputScale = 10000.0
)

// Payload sizes are derived from field widths.
const (
	masteringDisplaySize = 4*2*2 + 2*4 // GBR primaries + white point, max/min luminance
	contentLightSize     = 2 * 2
	ambientViewingSize   = 4 + 2*2
)

// Exported sizes of the SEI payloads.
const (
	MasteringDisplaySize = 24
	ContentLightSize     = 4
	AmbientViewingSize   = 8
)

// Layout assertions: a negative array length fails compilation.
var (
	_ [masteringDisplaySize - MasteringDisplaySize]struct{}
	_ [MasteringDisplaySize - masteringDisplaySize]struct{}
	_ [contentLightSize - ContentLightSize]struct{}
	_ [ContentLightSize - contentLightSize]struct{}
	_ [ambientViewingSize - AmbientViewingSize]struct{}
	_ [AmbientViewingSize - ambientViewingSize]struct{}
)

const payloadBundleFormat = "edrmeta-1"
