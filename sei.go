package edrmeta

import (
	"fmt"

	"github.com/vearutop/edrmeta/internal/seibuf"
)

// EncodeMasteringDisplay builds the 24-byte mastering display colour volume payload.
//
// Layout, big-endian: green, blue, red primaries and white point as (x, y) uint16 pairs
// in units of 0.00002, then max and min luminance as uint32 in units of 0.0001 nits.
func EncodeMasteringDisplay(m MasteringDisplayMetadata, opts ...func(o *EncodeOptions)) ([]byte, error) {
	opt := newEncodeOptions(opts)

	var coords [8]uint16
	for i, f := range []struct {
		name string
		v    float32
	}{
		{"green.x", m.Green.X}, {"green.y", m.Green.Y},
		{"blue.x", m.Blue.X}, {"blue.y", m.Blue.Y},
		{"red.x", m.Red.X}, {"red.y", m.Red.Y},
		{"white_point.x", m.WhitePoint.X}, {"white_point.y", m.WhitePoint.Y},
	} {
		c, err := opt.coordinate(f.name, f.v)
		if err != nil {
			return nil, fmt.Errorf("mastering display: %w", err)
		}
		coords[i] = c
	}

	maxLum, err := opt.luminance("max_luminance", m.MaxLuminance)
	if err != nil {
		return nil, fmt.Errorf("mastering display: %w", err)
	}
	minLum, err := opt.luminance("min_luminance", m.MinLuminance)
	if err != nil {
		return nil, fmt.Errorf("mastering display: %w", err)
	}

	buf, err := opt.alloc(MasteringDisplaySize)
	if err != nil {
		return nil, fmt.Errorf("mastering display: %w", err)
	}
	w := seibuf.NewWriter(buf)
	for _, c := range coords {
		w.PutUint16(c)
	}
	w.PutUint32(maxLum)
	w.PutUint32(minLum)

	return finish("mastering display", w, MasteringDisplaySize)
}

// EncodeContentLight builds the 4-byte content light level payload: MaxCLL, MaxFALL as big-endian uint16.
func EncodeContentLight(c ContentLightMetadata, opts ...func(o *EncodeOptions)) ([]byte, error) {
	opt := newEncodeOptions(opts)

	buf, err := opt.alloc(ContentLightSize)
	if err != nil {
		return nil, fmt.Errorf("content light: %w", err)
	}
	w := seibuf.NewWriter(buf)
	w.PutUint16(c.MaxCLL)
	w.PutUint16(c.MaxFALL)

	return finish("content light", w, ContentLightSize)
}

// EncodeAmbientViewing builds the 8-byte ambient viewing environment payload:
// illuminance as uint32 in units of 0.0001 lux, then light x, y as uint16 in units of 0.00002.
func EncodeAmbientViewing(a AmbientViewingEnvironment, opts ...func(o *EncodeOptions)) ([]byte, error) {
	opt := newEncodeOptions(opts)

	lux, err := opt.luminance("ambient_illuminance", a.Illuminance)
	if err != nil {
		return nil, fmt.Errorf("ambient viewing: %w", err)
	}
	x, err := opt.coordinate("ambient_light.x", a.Light.X)
	if err != nil {
		return nil, fmt.Errorf("ambient viewing: %w", err)
	}
	y, err := opt.coordinate("ambient_light.y", a.Light.Y)
	if err != nil {
		return nil, fmt.Errorf("ambient viewing: %w", err)
	}

	buf, err := opt.alloc(AmbientViewingSize)
	if err != nil {
		return nil, fmt.Errorf("ambient viewing: %w", err)
	}
	w := seibuf.NewWriter(buf)
	w.PutUint32(lux)
	w.PutUint16(x)
	w.PutUint16(y)

	return finish("ambient viewing", w, AmbientViewingSize)
}

func finish(name string, w *seibuf.Writer, size int) ([]byte, error) {
	if w.Len() != size {
		return nil, fmt.Errorf("%s: %w: %d bytes written, want %d", name, ErrLayoutMismatch, w.Len(), size)
	}
	return w.Bytes(), nil
}
