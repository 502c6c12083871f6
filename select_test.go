package edrmeta

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMetadata() (*MasteringDisplayMetadata, *ContentLightMetadata, *AmbientViewingEnvironment) {
	m := DisplayP3D65(0.0001, 1000)
	return &m,
		&ContentLightMetadata{MaxCLL: 1000, MaxFALL: 400},
		&AmbientViewingEnvironment{Illuminance: 314, Light: Chromaticity{X: 0.3127, Y: 0.329}}
}

func TestSelectMetadata_hdr10(t *testing.T) {
	m, c, a := testMetadata()

	for _, caps := range []Capabilities{{}, {AmbientViewing: true}} {
		for _, ambient := range []*AmbientViewingEnvironment{nil, a} {
			md, err := SelectMetadata(HDRMetadata{MasteringDisplay: m, ContentLight: c, AmbientViewing: ambient}, caps)
			require.NoError(t, err)
			require.IsType(t, HDR10{}, md)

			hdr10 := md.(HDR10)
			assert.Equal(t, KindHDR10, md.Kind())
			assert.Len(t, hdr10.DisplayInfo, MasteringDisplaySize)
			assert.Equal(t, []byte{0x03, 0xe8, 0x01, 0x90}, hdr10.ContentInfo)
			assert.Equal(t, float32(10000), hdr10.OpticalOutputScale)
		}
	}
}

func TestSelectMetadata_hlg(t *testing.T) {
	_, c, a := testMetadata()

	md, err := SelectMetadata(HDRMetadata{AmbientViewing: a}, Capabilities{AmbientViewing: true})
	require.NoError(t, err)
	require.IsType(t, HLG{}, md)
	assert.Equal(t, KindHLG, md.Kind())

	want, err := EncodeAmbientViewing(*a)
	require.NoError(t, err)
	assert.Equal(t, want, md.(HLG).AmbientViewingEnvironment)

	// Content light alone does not make HDR10.
	md, err = SelectMetadata(HDRMetadata{ContentLight: c, AmbientViewing: a}, Capabilities{AmbientViewing: true})
	require.NoError(t, err)
	assert.Equal(t, KindHLG, md.Kind())
}

func TestSelectMetadata_hlgWithoutAmbientSupport(t *testing.T) {
	_, _, a := testMetadata()

	md, err := SelectMetadata(HDRMetadata{AmbientViewing: a}, Capabilities{})
	require.NoError(t, err)
	assert.Equal(t, HLG{}, md)
	assert.Nil(t, md.(HLG).AmbientViewingEnvironment)

	// Ambient data is not encoded at all, so out of range values do not fail.
	md, err = SelectMetadata(HDRMetadata{AmbientViewing: &AmbientViewingEnvironment{Illuminance: -1}}, Capabilities{})
	require.NoError(t, err)
	assert.Equal(t, HLG{}, md)
}

func TestSelectMetadata_default(t *testing.T) {
	m, c, _ := testMetadata()

	for _, h := range []HDRMetadata{
		{},
		{MasteringDisplay: m},
		{ContentLight: c},
	} {
		md, err := SelectMetadata(h, Capabilities{AmbientViewing: true})
		require.NoError(t, err)
		assert.Equal(t, KindDefaultHDR10, md.Kind())
		assert.Equal(t, DefaultHDR10{MinLuminance: 0.1, MaxLuminance: 1000, OpticalOutputScale: 10000}, md)
	}
}

func TestSelectMetadata_encodeError(t *testing.T) {
	_, c, _ := testMetadata()
	bad := DisplayP3D65(0, 1e6)

	_, err := SelectMetadata(HDRMetadata{MasteringDisplay: &bad, ContentLight: c}, Capabilities{})
	assert.ErrorIs(t, err, ErrNumericOverflow)

	_, err = SelectMetadata(HDRMetadata{AmbientViewing: &AmbientViewingEnvironment{Light: Chromaticity{X: 3}}},
		Capabilities{AmbientViewing: true})
	assert.ErrorIs(t, err, ErrNumericOverflow)

	md, err := SelectMetadata(HDRMetadata{MasteringDisplay: &bad, ContentLight: c}, Capabilities{},
		func(o *EncodeOptions) { o.Overflow = OverflowClamp })
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, md.(HDR10).DisplayInfo[16:20])
}

func TestSelectMetadata_concurrent(t *testing.T) {
	m, c, a := testMetadata()
	h := HDRMetadata{MasteringDisplay: m, ContentLight: c, AmbientViewing: a}

	want, err := SelectMetadata(h, Capabilities{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]EDRMetadata, 16)
	errs := make([]error, len(results))
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = SelectMetadata(h, Capabilities{})
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, want, results[i])
	}
}
