package packets

import "errors"

// Errors returned by Encode and Decode. Each is a distinct sentinel so
// callers can distinguish failure modes with errors.Is; wrapped detail is
// attached with fmt.Errorf's %w, not a new error value.
var (
	// ErrTruncated means the input ended before a field could be read in
	// full. On Decode the caller may retry once more bytes have arrived.
	ErrTruncated = errors.New("packets: truncated input")

	// ErrMalformedVarint means the Remaining Length variable byte integer
	// exceeded 4 bytes without a terminator. A buffer that runs out first
	// yields ErrTruncated instead.
	ErrMalformedVarint = errors.New("packets: malformed variable byte integer")

	// ErrReservedPacketType means the fixed header's upper nibble was 0
	// (reserved) or 15 (reserved).
	ErrReservedPacketType = errors.New("packets: reserved packet type")

	// ErrMalformedFixedHeader means the fixed header's lower nibble had
	// reserved bits set to something other than their required value.
	ErrMalformedFixedHeader = errors.New("packets: malformed fixed header")

	// ErrBadUTF8 means a string field was not well-formed MQTT UTF-8.
	ErrBadUTF8 = errors.New("packets: invalid utf-8 string")

	// ErrStringTooLong means an encode-time string exceeded 65535 bytes.
	ErrStringTooLong = errors.New("packets: string exceeds 65535 bytes")

	// ErrPayloadTooLarge means the encoded variable header and payload
	// exceeded the maximum representable Remaining Length (268,435,455).
	ErrPayloadTooLarge = errors.New("packets: payload exceeds maximum remaining length")

	// ErrTrailingBytes means a variant's decodeBody left bytes unconsumed
	// in the Remaining Length body.
	ErrTrailingBytes = errors.New("packets: trailing bytes after decoded body")

	// ErrProtocolViolation means a variant-specific invariant from the
	// MQTT 3.1.1 spec was violated on decode.
	ErrProtocolViolation = errors.New("packets: protocol violation")

	// ErrInvalidPacket is the encode-side counterpart of
	// ErrProtocolViolation: the caller supplied a packet value whose
	// fields are individually well-typed but jointly inconsistent.
	ErrInvalidPacket = errors.New("packets: invalid packet")
)
