package edrmeta

// D65 white point.
var whiteD65 = Chromaticity{X: 0.3127, Y: 0.3290}

// DisplayP3D65 describes a Display P3 mastering display with a D65 white point.
func DisplayP3D65(minNits, maxNits float64) MasteringDisplayMetadata {
	return MasteringDisplayMetadata{
		Red:          Chromaticity{X: 0.680, Y: 0.320},
		Green:        Chromaticity{X: 0.265, Y: 0.690},
		Blue:         Chromaticity{X: 0.150, Y: 0.060},
		WhitePoint:   whiteD65,
		MinLuminance: minNits,
		MaxLuminance: maxNits,
	}
}

// BT2020D65 describes a BT.2020 mastering display.
func BT2020D65(minNits, maxNits float64) MasteringDisplayMetadata {
	return MasteringDisplayMetadata{
		Red:          Chromaticity{X: 0.708, Y: 0.292},
		Green:        Chromaticity{X: 0.170, Y: 0.797},
		Blue:         Chromaticity{X: 0.131, Y: 0.046},
		WhitePoint:   whiteD65,
		MinLuminance: minNits,
		MaxLuminance: maxNits,
	}
}

// BT709D65 describes a BT.709 mastering display.
func BT709D65(minNits, maxNits float64) MasteringDisplayMetadata {
	return MasteringDisplayMetadata{
		Red:          Chromaticity{X: 0.640, Y: 0.330},
		Green:        Chromaticity{X: 0.300, Y: 0.600},
		Blue:         Chromaticity{X: 0.150, Y: 0.060},
		WhitePoint:   whiteD65,
		MinLuminance: minNits,
		MaxLuminance: maxNits,
	}
}
