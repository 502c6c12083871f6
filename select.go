package edrmeta

import "fmt"

// Kind identifies an EDRMetadata variant.
type Kind string

// Available variants.
const (
	KindHDR10        Kind = "hdr10"
	KindHLG          Kind = "hlg"
	KindDefaultHDR10 Kind = "hdr10-default"
)

// EDRMetadata is the value handed to the presentation layer.
// It is one of HDR10, HLG or DefaultHDR10.
type EDRMetadata interface {
	Kind() Kind
	edrMetadata()
}

// HDR10 carries static mastering display and content light payloads.
type HDR10 struct {
	DisplayInfo        []byte // 24-byte mastering display colour volume
	ContentInfo        []byte // 4-byte content light level
	OpticalOutputScale float32
}

// HLG signals hybrid log-gamma content.
// AmbientViewingEnvironment is nil when the presentation layer cannot take it.
type HLG struct {
	AmbientViewingEnvironment []byte
}

// DefaultHDR10 is HDR10 described by a plain luminance range.
type DefaultHDR10 struct {
	MinLuminance       float32
	MaxLuminance       float32
	OpticalOutputScale float32
}

// Kind implements EDRMetadata.
func (HDR10) Kind() Kind { return KindHDR10 }

// Kind implements EDRMetadata.
func (HLG) Kind() Kind { return KindHLG }

// Kind implements EDRMetadata.
func (DefaultHDR10) Kind() Kind { return KindDefaultHDR10 }

func (HDR10) edrMetadata()        {}
func (HLG) edrMetadata()          {}
func (DefaultHDR10) edrMetadata() {}

// Capabilities describes what the presentation layer accepts.
type Capabilities struct {
	// AmbientViewing is set when HLG metadata may carry an ambient viewing environment.
	AmbientViewing bool
}

// DefaultMetadata returns the fallback HDR10 variant: 0.1 to 1000 nits, scale 10000.
func DefaultMetadata() DefaultHDR10 {
	return DefaultHDR10{
		MinLuminance:       defaultMinLuminance,
		MaxLuminance:       defaultMaxLuminance,
		OpticalOutputScale: defaultOpticalOutputScale,
	}
}

// SelectMetadata picks the variant for h, in priority order:
// HDR10 when both mastering display and content light are present,
// HLG when ambient viewing is present, DefaultHDR10 otherwise.
//
// Without caps.AmbientViewing the HLG variant is returned without its payload even if
// ambient data is available.
func SelectMetadata(h HDRMetadata, caps Capabilities, opts ...func(o *EncodeOptions)) (EDRMetadata, error) {
	if h.MasteringDisplay != nil && h.ContentLight != nil {
		display, err := EncodeMasteringDisplay(*h.MasteringDisplay, opts...)
		if err != nil {
			return nil, fmt.Errorf("select hdr10: %w", err)
		}
		content, err := EncodeContentLight(*h.ContentLight, opts...)
		if err != nil {
			return nil, fmt.Errorf("select hdr10: %w", err)
		}
		return HDR10{
			DisplayInfo:        display,
			ContentInfo:        content,
			OpticalOutputScale: defaultOpticalOutputScale,
		}, nil
	}

	if h.AmbientViewing != nil {
		if !caps.AmbientViewing {
			return HLG{}, nil
		}
		ambient, err := EncodeAmbientViewing(*h.AmbientViewing, opts...)
		if err != nil {
			return nil, fmt.Errorf("select hlg: %w", err)
		}
		return HLG{AmbientViewingEnvironment: ambient}, nil
	}

	return DefaultMetadata(), nil
}
