package blelink

import (
	"encoding/binary"
	"errors"
)

// ErrNoSpace is the error returned when a write does not fit in the
// remaining buffer capacity.
var ErrNoSpace = errors.New("no space left in buffer")

// A ByteWriter is a cursor over a caller-provided buffer. Writes fill
// the buffer front to back and fail closed: a write that does not fit
// returns ErrNoSpace and consumes no space at all, so a refused write
// never leaves a truncated field behind. ByteWriter does not allocate.
type ByteWriter struct {
	buf []byte
}

// NewByteWriter returns a writer storing into buf.
func NewByteWriter(buf []byte) *ByteWriter {
	return &ByteWriter{buf: buf}
}

// SpaceLeft returns the number of bytes that can still be written.
func (w *ByteWriter) SpaceLeft() int { return len(w.buf) }

// WriteSlice copies all of b into the buffer.
func (w *ByteWriter) WriteSlice(b []byte) error {
	if len(b) > len(w.buf) {
		return ErrNoSpace
	}
	copy(w.buf, b)
	w.buf = w.buf[len(b):]
	return nil
}

// WriteByte writes a single byte. It implements io.ByteWriter.
func (w *ByteWriter) WriteByte(c byte) error {
	if len(w.buf) < 1 {
		return ErrNoSpace
	}
	w.buf[0] = c
	w.buf = w.buf[1:]
	return nil
}

// WriteUint16 writes v in little endian byte order, the order of every
// multi-octet field on the advertising channel.
func (w *ByteWriter) WriteUint16(v uint16) error {
	if len(w.buf) < 2 {
		return ErrNoSpace
	}
	binary.LittleEndian.PutUint16(w.buf, v)
	w.buf = w.buf[2:]
	return nil
}
