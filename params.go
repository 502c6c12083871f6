package edrmeta

import (
	"encoding/binary"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var reMasterDisplay = regexp.MustCompile(
	`^G\((\d+),(\d+)\)B\((\d+),(\d+)\)R\((\d+),(\d+)\)WP\((\d+),(\d+)\)L\((\d+),(\d+)\)$`)

// ParseMasterDisplay reads an x265/ffmpeg style master-display string,
// e.g. "G(13250,34500)B(7500,3000)R(34000,16000)WP(15635,16450)L(10000000,1)".
// Coordinates are in units of 0.00002 and luminance in units of 0.0001 nits.
func ParseMasterDisplay(s string) (MasteringDisplayMetadata, error) {
	var m MasteringDisplayMetadata

	match := reMasterDisplay.FindStringSubmatch(strings.Join(strings.Fields(s), ""))
	if len(match) != 11 {
		return m, fmt.Errorf("%w: malformed master-display %q", ErrInvalidMetadata, s)
	}

	var v [10]uint64
	for i := range v {
		n, err := strconv.ParseUint(match[i+1], 10, 32)
		if err != nil {
			return m, fmt.Errorf("%w: master-display field %d: %v", ErrInvalidMetadata, i, err)
		}
		if i < 8 && n > 0xffff {
			return m, fmt.Errorf("%w: master-display coordinate %d out of range", ErrInvalidMetadata, n)
		}
		v[i] = n
	}

	coord := func(n uint64) float32 { return float32(n) / chromaticityUnit }
	m.Green = Chromaticity{X: coord(v[0]), Y: coord(v[1])}
	m.Blue = Chromaticity{X: coord(v[2]), Y: coord(v[3])}
	m.Red = Chromaticity{X: coord(v[4]), Y: coord(v[5])}
	m.WhitePoint = Chromaticity{X: coord(v[6]), Y: coord(v[7])}
	m.MaxLuminance = float64(v[8]) / luminanceUnit
	m.MinLuminance = float64(v[9]) / luminanceUnit

	return m, nil
}

// FormatMasterDisplay renders m in the master-display string form.
func FormatMasterDisplay(m MasteringDisplayMetadata) (string, error) {
	sei, err := EncodeMasteringDisplay(m)
	if err != nil {
		return "", err
	}

	u16 := func(i int) uint16 { return binary.BigEndian.Uint16(sei[i:]) }
	u32 := func(i int) uint32 { return binary.BigEndian.Uint32(sei[i:]) }

	return fmt.Sprintf("G(%d,%d)B(%d,%d)R(%d,%d)WP(%d,%d)L(%d,%d)",
		u16(0), u16(2), u16(4), u16(6), u16(8), u16(10), u16(12), u16(14), u32(16), u32(20)), nil
}

// ParseMaxCLL reads a "MaxCLL,MaxFALL" string such as "1000,400".
func ParseMaxCLL(s string) (ContentLightMetadata, error) {
	var c ContentLightMetadata

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return c, fmt.Errorf("%w: malformed max-cll %q", ErrInvalidMetadata, s)
	}

	cll, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 16)
	if err != nil {
		return c, fmt.Errorf("%w: max-cll: %v", ErrInvalidMetadata, errors.Unwrap(err))
	}
	fall, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 16)
	if err != nil {
		return c, fmt.Errorf("%w: max-fall: %v", ErrInvalidMetadata, errors.Unwrap(err))
	}

	c.MaxCLL = uint16(cll)
	c.MaxFALL = uint16(fall)

	return c, nil
}

// FormatMaxCLL renders c as "MaxCLL,MaxFALL".
func FormatMaxCLL(c ContentLightMetadata) string {
	return strconv.FormatUint(uint64(c.MaxCLL), 10) + "," + strconv.FormatUint(uint64(c.MaxFALL), 10)
}
