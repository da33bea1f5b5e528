package packets

import (
	"bytes"
	"encoding/binary"
)

// reader is a bounds-checked cursor over a read-only byte slice. Every
// read method advances the position and fails with ErrTruncated if the
// slice does not hold enough bytes, so callers never thread an offset by
// hand across a chain of decode calls.
type reader struct {
	buf []byte
	pos int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

// remaining returns the number of unread bytes.
func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}

func (r *reader) readU8() (byte, error) {
	if r.remaining() < 1 {
		return 0, ErrTruncated
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

func (r *reader) readU16BE() (uint16, error) {
	if r.remaining() < 2 {
		return 0, ErrTruncated
	}
	v := binary.BigEndian.Uint16(r.buf[r.pos : r.pos+2])
	r.pos += 2
	return v, nil
}

// readBytes returns the next n bytes as a sub-slice of the reader's
// backing array. The returned slice is not copied; callers that retain it
// past the lifetime of the input buffer must copy it themselves.
func (r *reader) readBytes(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, ErrTruncated
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// readRest returns every byte not yet consumed.
func (r *reader) readRest() []byte {
	b := r.buf[r.pos:]
	r.pos = len(r.buf)
	return b
}

// readLengthPrefixed reads a u16-length-prefixed byte sequence — the wire
// shape underlying both UTF-8 string fields and raw MQTT byte fields
// (the will message).
func (r *reader) readLengthPrefixed() ([]byte, error) {
	n, err := r.readU16BE()
	if err != nil {
		return nil, err
	}
	return r.readBytes(int(n))
}

// writer is a thin wrapper over bytes.Buffer exposing big-endian integer
// and raw byte writes. Writes never fail — appending to a growable
// buffer cannot run out of room — so every write method returns nothing.
type writer struct {
	buf bytes.Buffer
}

func (w *writer) writeU8(v byte) {
	w.buf.WriteByte(v)
}

func (w *writer) writeU16BE(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

func (w *writer) writeBytes(b []byte) {
	w.buf.Write(b)
}

// writeLengthPrefixed writes a u16-length-prefixed byte sequence.
func (w *writer) writeLengthPrefixed(b []byte) {
	w.writeU16BE(uint16(len(b)))
	w.buf.Write(b)
}

func (w *writer) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *writer) Len() int {
	return w.buf.Len()
}
