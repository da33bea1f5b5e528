package packets

import (
	"unicode/utf8"
	"unsafe"
)

// bytesToString provides a zero-alloc, no-copy byte-to-string conversion,
// safe here because the byte slices handed to it are never mutated after
// the conversion (they are either freshly decoded or about to go out of
// scope). Via https://github.com/golang/go/issues/25484#issuecomment-391415660.
func bytesToString(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

// validUTF8 reports whether b is well-formed UTF-8 per the MQTT 3.1.1
// string requirements [MQTT-1.5.4-1]. MQTT 3.1.1 does not forbid the null
// character the way MQTT 5 properties do, so unlike later codecs this
// check is utf8.Valid alone.
func validUTF8(b []byte) bool {
	return utf8.Valid(b)
}

// encodeStringField appends an MQTT UTF-8 encoded string to w: a
// big-endian u16 length followed by the raw bytes [MQTT-1.5.4-1]. Fails
// ErrStringTooLong if val exceeds the 16-bit length field's range.
func encodeStringField(w *writer, val string) error {
	if len(val) > 0xffff {
		return ErrStringTooLong
	}
	w.writeLengthPrefixed([]byte(val))
	return nil
}

// decodeStringField reads an MQTT UTF-8 encoded string from r and
// validates it.
func decodeStringField(r *reader) (string, error) {
	b, err := r.readLengthPrefixed()
	if err != nil {
		return "", err
	}
	if !validUTF8(b) {
		return "", ErrBadUTF8
	}
	return bytesToString(b), nil
}

// encodeBinaryField appends a length-prefixed field whose contents are
// not required to be UTF-8. The CONNECT will message is the one field
// carried this way; user name and password go through encodeStringField
// and are validated as UTF-8 like every other string field.
func encodeBinaryField(w *writer, val []byte) error {
	if len(val) > 0xffff {
		return ErrStringTooLong
	}
	w.writeLengthPrefixed(val)
	return nil
}

func decodeBinaryField(r *reader) ([]byte, error) {
	return r.readLengthPrefixed()
}
