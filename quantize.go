package edrmeta

import "math"

// OverflowPolicy decides what happens when a quantized value does not fit its field.
type OverflowPolicy int

const (
	// OverflowReject fails encoding with *OverflowError.
	OverflowReject OverflowPolicy = iota
	// OverflowClamp saturates to the nearest representable value and reports it to OnClamp.
	OverflowClamp
)

// EncodeOptions controls SEI payload encoding.
type EncodeOptions struct {
	Overflow OverflowPolicy
	// OnClamp is called for every clamped field when Overflow is OverflowClamp.
	OnClamp func(field string, value float64, limit uint64)
	// Alloc provides the output buffer, it must have capacity for size bytes.
	// Default is make([]byte, size).
	Alloc func(size int) []byte
}

func newEncodeOptions(opts []func(o *EncodeOptions)) EncodeOptions {
	opt := EncodeOptions{Overflow: OverflowReject}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	return opt
}

func (o *EncodeOptions) alloc(size int) ([]byte, error) {
	if o.Alloc == nil {
		return make([]byte, size), nil
	}
	buf := o.Alloc(size)
	if cap(buf) < size {
		return nil, ErrAllocation
	}
	return buf[:size], nil
}

// coordinate quantizes in float32, the precision chromaticity is carried in.
// The explicit conversion after the multiply keeps fused multiply-add out of the result.
func (o *EncodeOptions) coordinate(field string, v float32) (uint16, error) {
	q, err := o.quantize(field, float64(float32(v*chromaticityUnit)+0.5), math.MaxUint16)
	return uint16(q), err
}

// luminance quantizes in float64, so every uint32 code maps back to itself.
func (o *EncodeOptions) luminance(field string, v float64) (uint32, error) {
	q, err := o.quantize(field, float64(v*luminanceUnit)+0.5, math.MaxUint32)
	return uint32(q), err
}

// quantize floors q and checks it against limit.
func (o *EncodeOptions) quantize(field string, q float64, limit uint64) (uint64, error) {
	q = math.Floor(q)

	switch {
	case math.IsNaN(q) || q < 0:
		return o.overflow(field, q, limit, 0)
	case q > float64(limit):
		return o.overflow(field, q, limit, limit)
	}

	return uint64(q), nil
}

func (o *EncodeOptions) overflow(field string, q float64, limit, clamped uint64) (uint64, error) {
	if o.Overflow != OverflowClamp {
		return 0, &OverflowError{Field: field, Value: q, Limit: limit}
	}
	if o.OnClamp != nil {
		o.OnClamp(field, q, limit)
	}
	return clamped, nil
}
