package edrmeta

import (
	"errors"
	"fmt"
)

// PayloadBundle is a serializable form of EDRMetadata for handing it to another process.
// Byte fields are base64-encoded in JSON.
type PayloadBundle struct {
	Format             string  `json:"format"`
	Kind               Kind    `json:"kind"`
	DisplayInfo        []byte  `json:"display_info,omitempty"`
	ContentInfo        []byte  `json:"content_info,omitempty"`
	AmbientViewing     []byte  `json:"ambient_viewing,omitempty"`
	MinLuminance       float32 `json:"min_luminance,omitempty"`
	MaxLuminance       float32 `json:"max_luminance,omitempty"`
	OpticalOutputScale float32 `json:"optical_output_scale,omitempty"`
}

// BuildPayloadBundle captures md in a bundle.
func BuildPayloadBundle(md EDRMetadata) (*PayloadBundle, error) {
	b := &PayloadBundle{Format: payloadBundleFormat}

	switch v := md.(type) {
	case HDR10:
		b.Kind = KindHDR10
		b.DisplayInfo = v.DisplayInfo
		b.ContentInfo = v.ContentInfo
		b.OpticalOutputScale = v.OpticalOutputScale
	case HLG:
		b.Kind = KindHLG
		b.AmbientViewing = v.AmbientViewingEnvironment
	case DefaultHDR10:
		b.Kind = KindDefaultHDR10
		b.MinLuminance = v.MinLuminance
		b.MaxLuminance = v.MaxLuminance
		b.OpticalOutputScale = v.OpticalOutputScale
	case nil:
		return nil, errors.New("edr metadata missing")
	default:
		return nil, fmt.Errorf("unsupported edr metadata %T", md)
	}

	return b, b.Validate()
}

// Validate ensures the bundle carries well-sized payloads for its kind.
func (b *PayloadBundle) Validate() error {
	if b == nil {
		return errors.New("payload bundle is nil")
	}
	if b.Format == "" {
		return errors.New("payload bundle missing format")
	}
	if b.Format != payloadBundleFormat {
		return errors.New("unsupported payload bundle format")
	}

	switch b.Kind {
	case KindHDR10:
		if len(b.DisplayInfo) != MasteringDisplaySize {
			return fmt.Errorf("%w: display info has %d bytes", ErrLayoutMismatch, len(b.DisplayInfo))
		}
		if len(b.ContentInfo) != ContentLightSize {
			return fmt.Errorf("%w: content info has %d bytes", ErrLayoutMismatch, len(b.ContentInfo))
		}
		if !(b.OpticalOutputScale > 0) {
			return fmt.Errorf("%w: optical output scale %g", ErrInvalidMetadata, b.OpticalOutputScale)
		}
	case KindHLG:
		if b.AmbientViewing != nil && len(b.AmbientViewing) != AmbientViewingSize {
			return fmt.Errorf("%w: ambient viewing has %d bytes", ErrLayoutMismatch, len(b.AmbientViewing))
		}
	case KindDefaultHDR10:
		if b.MaxLuminance < b.MinLuminance {
			return fmt.Errorf("%w: max luminance below min luminance", ErrInvalidMetadata)
		}
		if !(b.OpticalOutputScale > 0) {
			return fmt.Errorf("%w: optical output scale %g", ErrInvalidMetadata, b.OpticalOutputScale)
		}
	default:
		return fmt.Errorf("unknown payload kind %q", b.Kind)
	}

	return nil
}

// Metadata restores the EDRMetadata value from a bundle.
func (b *PayloadBundle) Metadata() (EDRMetadata, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	switch b.Kind {
	case KindHDR10:
		return HDR10{DisplayInfo: b.DisplayInfo, ContentInfo: b.ContentInfo, OpticalOutputScale: b.OpticalOutputScale}, nil
	case KindHLG:
		return HLG{AmbientViewingEnvironment: b.AmbientViewing}, nil
	default:
		return DefaultHDR10{MinLuminance: b.MinLuminance, MaxLuminance: b.MaxLuminance, OpticalOutputScale: b.OpticalOutputScale}, nil
	}
}
