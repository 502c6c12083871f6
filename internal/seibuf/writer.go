// Package seibuf serializes fixed-layout big-endian records.
package seibuf

import "encoding/binary"

// Writer appends big-endian fields to a buffer.
// Fields are written one by one so the result never depends on in-memory struct padding.
type Writer struct {
	buf []byte
}

// NewWriter starts writing at the beginning of buf, reusing its capacity.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf[:0]}
}

// PutUint16 appends v in big-endian order.
func (w *Writer) PutUint16(v uint16) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
}

// PutUint32 appends v in big-endian order.
func (w *Writer) PutUint32(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf
}
