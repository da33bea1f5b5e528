package packets

// maxRemainingLength is the largest value the 4-byte Remaining Length
// variable byte integer can represent (§1.5.5 non-normative, MQTT 3.1.1).
const maxRemainingLength = 268435455

// encodeVarint appends the MQTT Remaining Length encoding of length to w:
// 7 data bits per byte, bit 7 set on every byte but the last. Emits the
// minimum number of bytes required.
func encodeVarint(w *writer, length int) {
	for {
		b := byte(length % 128)
		length /= 128
		if length > 0 {
			b |= 0x80
		}
		w.writeU8(b)
		if length == 0 {
			return
		}
	}
}

// decodeVarint reads an MQTT Remaining Length from r, returning the
// decoded value and the number of bytes consumed (1-4). Fails with
// ErrMalformedVarint if a fifth continuation byte would be required, and
// with ErrTruncated if the underlying reader runs out of input first.
func decodeVarint(r *reader) (value, consumed int, err error) {
	var multiplier uint32
	var v uint32
	for i := 0; i < 4; i++ {
		b, err := r.readU8()
		if err != nil {
			return 0, i, ErrTruncated
		}
		consumed++

		v |= uint32(b&0x7f) << multiplier
		if v > maxRemainingLength {
			return 0, consumed, ErrMalformedVarint
		}

		if b&0x80 == 0 {
			return int(v), consumed, nil
		}
		multiplier += 7
	}
	return 0, consumed, ErrMalformedVarint
}
