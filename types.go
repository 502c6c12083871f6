package edrmeta

import (
	"fmt"
	"math"
)

// Chromaticity is a CIE 1931 (x, y) coordinate.
type Chromaticity struct {
	X float32 `yaml:"x" json:"x"`
	Y float32 `yaml:"y" json:"y"`
}

// MasteringDisplayMetadata describes the colour volume of the display used to master content.
// Luminance values are in nits.
type MasteringDisplayMetadata struct {
	Red          Chromaticity `yaml:"red" json:"red"`
	Green        Chromaticity `yaml:"green" json:"green"`
	Blue         Chromaticity `yaml:"blue" json:"blue"`
	WhitePoint   Chromaticity `yaml:"white_point" json:"white_point"`
	MinLuminance float64      `yaml:"min_luminance" json:"min_luminance"`
	MaxLuminance float64      `yaml:"max_luminance" json:"max_luminance"`
}

// ContentLightMetadata holds content light levels in nits.
type ContentLightMetadata struct {
	MaxCLL  uint16 `yaml:"max_cll" json:"max_cll"`   // max content light level
	MaxFALL uint16 `yaml:"max_fall" json:"max_fall"` // max frame-average light level
}

// AmbientViewingEnvironment describes the nominal viewing environment.
type AmbientViewingEnvironment struct {
	Illuminance float64      `yaml:"illuminance" json:"illuminance"` // lux
	Light       Chromaticity `yaml:"light" json:"light"`
}

// HDRMetadata holds zero or one of each descriptor, nil means absent.
type HDRMetadata struct {
	MasteringDisplay *MasteringDisplayMetadata  `yaml:"mastering_display,omitempty" json:"mastering_display,omitempty"`
	ContentLight     *ContentLightMetadata      `yaml:"content_light,omitempty" json:"content_light,omitempty"`
	AmbientViewing   *AmbientViewingEnvironment `yaml:"ambient_viewing,omitempty" json:"ambient_viewing,omitempty"`
}

// Validate checks that both coordinates lie in [0, 1].
func (c Chromaticity) Validate() error {
	if !unitRange(c.X) || !unitRange(c.Y) {
		return fmt.Errorf("%w: chromaticity (%g, %g) outside [0, 1]", ErrInvalidMetadata, c.X, c.Y)
	}
	return nil
}

// Validate checks primaries, white point and luminance range.
func (m MasteringDisplayMetadata) Validate() error {
	for _, p := range []struct {
		name string
		c    Chromaticity
	}{
		{"red", m.Red},
		{"green", m.Green},
		{"blue", m.Blue},
		{"white point", m.WhitePoint},
	} {
		if err := p.c.Validate(); err != nil {
			return fmt.Errorf("%s: %w", p.name, err)
		}
	}
	if !nonNegative(m.MinLuminance) || !nonNegative(m.MaxLuminance) {
		return fmt.Errorf("%w: negative luminance", ErrInvalidMetadata)
	}
	if m.MaxLuminance < m.MinLuminance {
		return fmt.Errorf("%w: max luminance %g below min luminance %g", ErrInvalidMetadata, m.MaxLuminance, m.MinLuminance)
	}
	return nil
}

// Validate always succeeds, any uint16 pair is a valid light level.
func (c ContentLightMetadata) Validate() error {
	return nil
}

// Validate checks illuminance sign and light chromaticity.
func (a AmbientViewingEnvironment) Validate() error {
	if !nonNegative(a.Illuminance) {
		return fmt.Errorf("%w: negative illuminance %g", ErrInvalidMetadata, a.Illuminance)
	}
	if err := a.Light.Validate(); err != nil {
		return fmt.Errorf("ambient light: %w", err)
	}
	return nil
}

// Validate checks every present descriptor.
func (h HDRMetadata) Validate() error {
	if h.MasteringDisplay != nil {
		if err := h.MasteringDisplay.Validate(); err != nil {
			return fmt.Errorf("mastering display: %w", err)
		}
	}
	if h.AmbientViewing != nil {
		if err := h.AmbientViewing.Validate(); err != nil {
			return fmt.Errorf("ambient viewing: %w", err)
		}
	}
	return nil
}

func unitRange(v float32) bool {
	return v >= 0 && v <= 1
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
